package domain

import "fmt"

// Suit identifies one of the four suits. Its integer value doubles as the
// foundation index for that suit.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a deck.
const NumSuits = 4

// String returns the suit glyph.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	}
	return "?"
}

// Color is the color of a suit.
type Color uint8

const (
	Black Color = iota
	Red
)

// Color returns Red for hearts and diamonds, Black otherwise.
func (s Suit) Color() Color {
	if s == Diamonds || s == Hearts {
		return Red
	}
	return Black
}

// Card is a playing card. Rank and Suit never change after creation; FaceUp
// flips as the card is revealed and re-hidden by undo.
type Card struct {
	Rank   int
	Suit   Suit
	FaceUp bool
}

// String returns the card face, or the face-down marker when hidden.
func (c Card) String() string {
	if !c.FaceUp {
		return "[*]"
	}
	return c.Label()
}

// Label returns the card face regardless of the FaceUp flag (e.g. "7♡").
func (c Card) Label() string {
	return fmt.Sprintf("%d%s", c.Rank, c.Suit)
}

// newDeck returns one face-down card per (rank, suit) pair, 4*maxRank in all.
func newDeck(maxRank int) []Card {
	deck := make([]Card, 0, NumSuits*maxRank)
	for s := Clubs; s <= Spades; s++ {
		for r := 1; r <= maxRank; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}
