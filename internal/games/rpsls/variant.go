package rpsls

// Variant is a named hand set played with the same beats relation.
type Variant struct {
	ID    string
	Title string
	Hands []Hand
}

var (
	// Classic is the five-hand game.
	Classic = Variant{
		ID:    "rpsls",
		Title: "Rock Paper Scissors Lizard Spock",
		Hands: AllHands(),
	}

	// Original is plain Rock-Paper-Scissors.
	Original = Variant{
		ID:    "rps",
		Title: "Rock Paper Scissors",
		Hands: []Hand{Rock, Paper, Scissors},
	}
)

// Variants returns the built-in variants.
func Variants() []Variant {
	return []Variant{Classic, Original}
}

// Allows reports whether h is part of the variant.
func (v Variant) Allows(h Hand) bool {
	for _, vh := range v.Hands {
		if vh == h {
			return true
		}
	}
	return false
}
