package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rpsls/internal/config"
	"github.com/vovakirdan/tui-rpsls/internal/core"
	"github.com/vovakirdan/tui-rpsls/internal/registry"
	"github.com/vovakirdan/tui-rpsls/internal/storage"
)

// resizer is implemented by games that can relayout without restarting.
type resizer interface {
	Resize(w, h int)
}

// GameModel runs one game inside Bubble Tea.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	savedID    int64  // row ID of the last stored match
	tickGen    uint64 // generation of the tick chain this model owns
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Player == "" {
		cfg.Player = core.DefaultConfig().Player
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		gameState:  game.State(),
		tickGen:    nextTickGen(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if r, ok := m.game.(resizer); ok {
			r.Resize(msg.Width, msg.Height)
		} else if !m.gameState.GameOver {
			m.game.Reset(m.config)
		}
		return m, nil

	case TickMsg:
		if msg.gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keyMapper.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		return m, nil
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Concluded {
		m.saveMatch(result.State)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

func (m *GameModel) saveMatch(state core.GameState) {
	winner := "agent"
	if state.Won {
		winner = "player"
	}

	m.logger.Info("match finished",
		"game", m.game.ID(),
		"player", m.config.Player,
		"score", fmt.Sprintf("%d:%d", state.Score, state.OpponentScore),
		"rounds", state.Rounds,
	)

	if m.store == nil {
		return
	}
	id, err := m.store.SaveMatch(storage.MatchRecord{
		GameID:      m.game.ID(),
		Player:      m.config.Player,
		PlayerScore: state.Score,
		AgentScore:  state.OpponentScore,
		Winner:      winner,
		Rounds:      state.Rounds,
	})
	if err != nil {
		m.logger.Warn("could not save match", "error", err)
		return
	}
	m.savedID = id
}

// saveScreenshot writes the current frame as plain text under ~/.rpsls/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := config.ExpandHome(filepath.Join("~", config.DirName, "screenshots"))
	if err != nil {
		m.logger.Warn("could not resolve screenshot directory", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user asked to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// LastSavedID returns the storage row of the latest finished match, or 0.
func (m GameModel) LastSavedID() int64 {
	return m.savedID
}

// Run plays a game in the local terminal until the user quits or goes back.
// It reports whether the user asked for the menu.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (bool, error) {
	model := standaloneModel{NewGameModel(game, store, logger, cfg)}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}

	if sm, ok := final.(standaloneModel); ok {
		return sm.BackToMenu(), nil
	}
	return false, nil
}

// standaloneModel quits the program on back so Run can return to its caller.
type standaloneModel struct {
	GameModel
}

func (m standaloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.GameModel = gm
	}
	if m.GameModel.BackToMenu() {
		return m, tea.Quit
	}
	return m, cmd
}
