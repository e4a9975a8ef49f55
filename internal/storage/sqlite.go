// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-rpsls/internal/config"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished match.
type MatchRecord struct {
	ID          int64
	MatchID     string
	GameID      string
	Player      string
	PlayerScore int
	AgentScore  int
	Winner      string // "player" or "agent"
	Rounds      int
	CreatedAt   time.Time
}

// Stats aggregates a set of matches.
type Stats struct {
	GameID      string
	Played      int
	PlayerWins  int
	AgentWins   int
	TotalRounds int
	LastPlayed  time.Time
}

// WinRate returns the player's share of won matches in [0, 1].
func (s Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.PlayerWins) / float64(s.Played)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL,
			player_score INTEGER NOT NULL,
			agent_score INTEGER NOT NULL,
			winner TEXT NOT NULL,
			rounds INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_matches_game_id ON matches(game_id, created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_player ON matches(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match and returns its row ID.
// MatchID and CreatedAt are filled in when empty.
func (s *Store) SaveMatch(m MatchRecord) (int64, error) {
	if m.MatchID == "" {
		m.MatchID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, game_id, player, player_score, agent_score, winner, rounds, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID, m.GameID, m.Player, m.PlayerScore, m.AgentScore, m.Winner, m.Rounds,
		m.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const selectMatch = `SELECT id, match_id, game_id, player, player_score, agent_score, winner, rounds, created_at FROM matches`

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchRecord, error) {
	var m MatchRecord
	var createdAt any
	err := row.Scan(&m.ID, &m.MatchID, &m.GameID, &m.Player, &m.PlayerScore, &m.AgentScore, &m.Winner, &m.Rounds, &createdAt)
	if err != nil {
		return m, err
	}
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// parseTime handles both driver-parsed times and raw strings.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func (s *Store) queryMatches(query string, args ...any) ([]MatchRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return matches, nil
}

// MatchFilter narrows match queries. Empty fields match everything.
type MatchFilter struct {
	GameID string
	Player string
}

func (f MatchFilter) where() (string, []any) {
	var conds []string
	var args []any
	if f.GameID != "" {
		conds = append(conds, "game_id = ?")
		args = append(args, f.GameID)
	}
	if f.Player != "" {
		conds = append(conds, "player = ?")
		args = append(args, f.Player)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// FindMatches returns the newest matches selected by f.
func (s *Store) FindMatches(f MatchFilter, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	where, args := f.where()
	return s.queryMatches(selectMatch+where+` ORDER BY created_at DESC, id DESC LIMIT ?`, append(args, limit)...)
}

// RecentMatches returns the newest matches for a game, or for all games
// when gameID is empty.
func (s *Store) RecentMatches(gameID string, limit int) ([]MatchRecord, error) {
	return s.FindMatches(MatchFilter{GameID: gameID}, limit)
}

// PlayerMatches returns the newest matches played under a player name.
func (s *Store) PlayerMatches(player string, limit int) ([]MatchRecord, error) {
	return s.FindMatches(MatchFilter{Player: player}, limit)
}

// MatchByID returns a match by its match ID, or nil if it does not exist.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	m, err := scanMatch(s.db.QueryRow(selectMatch+` WHERE match_id = ?`, matchID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// GameStats aggregates all matches of a game.
func (s *Store) GameStats(gameID string) (*Stats, error) {
	return s.MatchStats(MatchFilter{GameID: gameID})
}

// MatchStats aggregates the matches selected by f.
func (s *Store) MatchStats(f MatchFilter) (*Stats, error) {
	stats := &Stats{GameID: f.GameID}
	var lastPlayed any

	where, args := f.where()
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(winner = 'player'), 0),
		        COALESCE(SUM(winner = 'agent'), 0),
		        COALESCE(SUM(rounds), 0),
		        MAX(created_at)
		 FROM matches`+where,
		args...,
	).Scan(&stats.Played, &stats.PlayerWins, &stats.AgentWins, &stats.TotalRounds, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get match stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearMatches deletes all matches of a game.
func (s *Store) ClearMatches(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM matches WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
