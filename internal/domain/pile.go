package domain

// Pile is an ordered card container with top-of-pile access. The top of the
// pile is the last element.
type Pile struct {
	cards []Card
}

// AddTop places a card on top of the pile.
func (p *Pile) AddTop(c Card) {
	p.cards = append(p.cards, c)
}

// RemoveTop removes and returns the top card. ok is false on an empty pile.
func (p *Pile) RemoveTop() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	c := p.cards[len(p.cards)-1]
	p.cards = p.cards[:len(p.cards)-1]
	return c, true
}

// Extend places cards on top of the pile, preserving their order.
func (p *Pile) Extend(cards []Card) {
	p.cards = append(p.cards, cards...)
}

// Cut removes and returns the top n cards, preserving their relative order.
// ok is false, with no mutation, when the pile holds fewer than n cards or
// n < 1.
func (p *Pile) Cut(n int) ([]Card, bool) {
	if n < 1 || n > len(p.cards) {
		return nil, false
	}
	cut := make([]Card, n)
	copy(cut, p.cards[len(p.cards)-n:])
	p.cards = p.cards[:len(p.cards)-n]
	return cut, true
}

// Top returns the top card without removing it.
func (p *Pile) Top() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// TopN returns a copy of the top n cards in pile order (deepest first).
// ok is false when the pile holds fewer than n cards or n < 1.
func (p *Pile) TopN(n int) ([]Card, bool) {
	if n < 1 || n > len(p.cards) {
		return nil, false
	}
	out := make([]Card, n)
	copy(out, p.cards[len(p.cards)-n:])
	return out, true
}

// TurnTop sets the FaceUp flag of the top card. Reports whether a card was
// there to turn.
func (p *Pile) TurnTop(faceUp bool) bool {
	if len(p.cards) == 0 {
		return false
	}
	p.cards[len(p.cards)-1].FaceUp = faceUp
	return true
}

// Len returns the number of cards in the pile.
func (p *Pile) Len() int { return len(p.cards) }

// IsEmpty reports whether the pile holds no cards.
func (p *Pile) IsEmpty() bool { return len(p.cards) == 0 }

// Cards returns a copy of the pile contents, bottom first.
func (p *Pile) Cards() []Card {
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	return out
}
