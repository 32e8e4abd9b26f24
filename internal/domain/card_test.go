package domain

import "testing"

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{Card{Rank: 1, Suit: Hearts, FaceUp: true}, "1♡"},
		{Card{Rank: 13, Suit: Spades, FaceUp: true}, "13♠"},
		{Card{Rank: 7, Suit: Diamonds, FaceUp: true}, "7♢"},
		{Card{Rank: 2, Suit: Clubs, FaceUp: true}, "2♣"},
		{Card{Rank: 9, Suit: Clubs}, "[*]"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.card.String(); got != tt.want {
				t.Errorf("Card.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSuitColors(t *testing.T) {
	if Hearts.Color() != Red || Diamonds.Color() != Red {
		t.Fatalf("hearts and diamonds should be red")
	}
	if Clubs.Color() != Black || Spades.Color() != Black {
		t.Fatalf("clubs and spades should be black")
	}
}

func TestNewDeck(t *testing.T) {
	deck := newDeck(13)
	if len(deck) != 52 {
		t.Fatalf("newDeck(13) returned %d cards, want 52", len(deck))
	}
	seen := make(map[string]bool)
	for _, c := range deck {
		if c.FaceUp {
			t.Fatalf("fresh deck card %s should start face-down", c.Label())
		}
		key := c.Label()
		if seen[key] {
			t.Fatalf("duplicate card: %s", key)
		}
		seen[key] = true
	}
}
