package domain

// isValidMove reports whether base may be placed on onto: base must be
// face-up, of the opposite color, and exactly one rank below onto.
func isValidMove(base, onto Card) bool {
	if !base.FaceUp {
		return false
	}
	if base.Suit.Color() == onto.Suit.Color() {
		return false
	}
	return base.Rank == onto.Rank-1
}

// isRun reports whether cards (deepest first) form a face-up, alternating
// color, strictly descending sequence.
func isRun(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	if !cards[0].FaceUp {
		return false
	}
	for i := 1; i < len(cards); i++ {
		if !isValidMove(cards[i], cards[i-1]) {
			return false
		}
	}
	return true
}

// foundationAccepts reports whether the accumulation rule lets card land on
// foundation f: rank 1 on an empty foundation, otherwise exactly one rank
// above the current top.
func foundationAccepts(f *Pile, card Card) bool {
	top, ok := f.Top()
	if !ok {
		return card.Rank == 1
	}
	return top.Rank == card.Rank-1
}

// Transfer moves the top count cards from src onto dst. Rule violations
// (moving onto itself, too few cards, a broken run, an unwilling
// destination) return (false, nil) with no mutation and no history entry.
// A malformed handle or count < 1 is a caller bug and returns an error,
// likewise without mutation.
//
// An empty non-foundation destination accepts only a run based on a card of
// the maximum rank. A foundation destination accepts a single card under the
// accumulation rule. The moved run itself is revalidated even though only
// legally built runs should ever exist.
func (g *Game) Transfer(src, dst PileRef, count int) (bool, error) {
	if count < 1 {
		return false, ErrBadCount
	}
	from, err := g.pile(src)
	if err != nil {
		return false, err
	}
	to, err := g.pile(dst)
	if err != nil {
		return false, err
	}
	if from == to {
		return false, nil
	}
	run, ok := from.TopN(count)
	if !ok {
		return false, nil
	}
	if !isRun(run) {
		return false, nil
	}

	if dst.Kind == FoundationPile {
		// Foundations take one card at a time, suit-matched.
		card := run[len(run)-1]
		if count != 1 || int(card.Suit) != dst.Index || !foundationAccepts(to, card) {
			return false, nil
		}
	} else if to.IsEmpty() {
		if run[0].Rank != g.maxRank {
			return false, nil
		}
	} else {
		top, _ := to.Top()
		if !isValidMove(run[0], top) {
			return false, nil
		}
	}

	cards, _ := from.Cut(count)
	to.Extend(cards)
	g.recordTransfer(from, src, dst, count)
	return true, nil
}

// MoveToFoundation moves the top card of src onto its suit's foundation.
// Same silent-rejection and history semantics as Transfer.
func (g *Game) MoveToFoundation(src PileRef) (bool, error) {
	from, err := g.pile(src)
	if err != nil {
		return false, err
	}
	card, ok := from.Top()
	if !ok || !card.FaceUp {
		return false, nil
	}
	f := &g.foundations[card.Suit]
	if from == f {
		return false, nil
	}
	if !foundationAccepts(f, card) {
		return false, nil
	}
	c, _ := from.RemoveTop()
	f.AddTop(c)
	g.recordTransfer(from, src, Foundation(card.Suit), 1)
	return true, nil
}

// Draw moves one card from the stock onto the waste, face-up. When the stock
// is empty the whole waste is recycled back to the stock in reversed order,
// restoring the original draw order; the recycle bypasses the transfer rules
// entirely. Either way a draw entry is recorded.
func (g *Game) Draw() {
	if g.stock.IsEmpty() {
		cards, _ := g.waste.Cut(g.waste.Len())
		reverse(cards)
		g.stock.Extend(cards)
	} else {
		c, _ := g.stock.RemoveTop()
		c.FaceUp = true
		g.waste.AddTop(c)
	}
	g.history = append(g.history, entry{kind: drawEntry})
}

// recordTransfer reveals the card exposed on the source pile and appends the
// transfer to the history, capturing whether that card was hidden before so
// undo can re-hide it. An emptied source records hidden=false; there is
// nothing to re-hide.
func (g *Game) recordTransfer(from *Pile, src, dst PileRef, count int) {
	hidden := false
	if top, ok := from.Top(); ok {
		hidden = !top.FaceUp
		from.TurnTop(true)
	}
	g.history = append(g.history, entry{
		kind:         transferEntry,
		src:          src,
		dst:          dst,
		count:        count,
		hiddenBefore: hidden,
	})
}

func reverse(cards []Card) {
	for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
		cards[i], cards[j] = cards[j], cards[i]
	}
}
