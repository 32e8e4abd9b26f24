package domain

// entryKind tags history entries.
type entryKind uint8

const (
	drawEntry entryKind = iota
	transferEntry
)

// entry records one accepted mutation so it can be exactly reversed. Only
// handles and counts are stored, never card data; undo reconstructs state by
// re-moving cards the board already owns.
type entry struct {
	kind         entryKind
	src, dst     PileRef
	count        int
	hiddenBefore bool
}

// HistoryLen returns the number of recorded, not yet undone, actions.
func (g *Game) HistoryLen() int { return len(g.history) }

// Undo reverses the most recent accepted action. It is a strict single-step
// LIFO inverse: no redo, no batching. A no-op when the history is empty.
//
// A draw is inverted against the current pile states: an empty waste means
// the draw was a recycle, so the stock is moved back to the waste in
// reversed order; otherwise the top waste card returns to the stock. A
// transfer first re-hides the card the original move revealed (when it was
// hidden before), then moves the recorded count back from the destination.
func (g *Game) Undo() {
	if len(g.history) == 0 {
		return
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	switch last.kind {
	case drawEntry:
		if g.waste.IsEmpty() {
			cards, _ := g.stock.Cut(g.stock.Len())
			reverse(cards)
			g.waste.Extend(cards)
		} else {
			c, _ := g.waste.RemoveTop()
			g.stock.AddTop(c)
		}
	case transferEntry:
		from := g.mustPile(last.src)
		to := g.mustPile(last.dst)
		if last.hiddenBefore {
			from.TurnTop(false)
		}
		cards, _ := to.Cut(last.count)
		from.Extend(cards)
	}
}
