package domain

import "testing"

func up(rank int, s Suit) Card   { return Card{Rank: rank, Suit: s, FaceUp: true} }
func down(rank int, s Suit) Card { return Card{Rank: rank, Suit: s} }

func TestPileTopIsLast(t *testing.T) {
	var p Pile
	p.AddTop(up(1, Clubs))
	p.AddTop(up(2, Clubs))
	top, ok := p.Top()
	if !ok || top.Rank != 2 {
		t.Fatalf("expected top rank 2, got %v ok=%v", top, ok)
	}
	c, ok := p.RemoveTop()
	if !ok || c.Rank != 2 || p.Len() != 1 {
		t.Fatalf("RemoveTop: got %v ok=%v len=%d", c, ok, p.Len())
	}
}

func TestPileCutPreservesOrder(t *testing.T) {
	var p Pile
	for r := 1; r <= 5; r++ {
		p.AddTop(up(r, Hearts))
	}
	cut, ok := p.Cut(3)
	if !ok {
		t.Fatalf("Cut(3) rejected")
	}
	if len(cut) != 3 || cut[0].Rank != 3 || cut[1].Rank != 4 || cut[2].Rank != 5 {
		t.Fatalf("cut out of order: %v", cut)
	}
	if p.Len() != 2 {
		t.Fatalf("expected 2 cards left, got %d", p.Len())
	}
	// put the run back, order intact
	p.Extend(cut)
	if p.Len() != 5 {
		t.Fatalf("Extend should restore all cards")
	}
	top, _ := p.Top()
	if top.Rank != 5 {
		t.Fatalf("expected rank 5 back on top, got %v", top)
	}
}

func TestPileCutTooManyRejected(t *testing.T) {
	var p Pile
	p.AddTop(up(1, Spades))
	if _, ok := p.Cut(2); ok {
		t.Fatalf("Cut(2) of a 1-card pile should be rejected")
	}
	if _, ok := p.Cut(0); ok {
		t.Fatalf("Cut(0) should be rejected")
	}
	if p.Len() != 1 {
		t.Fatalf("rejected cut must not mutate the pile")
	}
}

func TestPileTopNIsReadOnly(t *testing.T) {
	var p Pile
	p.AddTop(down(4, Clubs))
	p.AddTop(up(3, Hearts))
	view, ok := p.TopN(2)
	if !ok || len(view) != 2 {
		t.Fatalf("TopN(2) failed: %v ok=%v", view, ok)
	}
	if view[0].Rank != 4 || view[1].Rank != 3 {
		t.Fatalf("TopN order wrong: %v", view)
	}
	view[0].FaceUp = true
	if p.cards[0].FaceUp {
		t.Fatalf("mutating the view must not touch the pile")
	}
	if _, ok := p.TopN(3); ok {
		t.Fatalf("TopN beyond pile size should be rejected")
	}
}

func TestPileTurnTop(t *testing.T) {
	var p Pile
	if p.TurnTop(true) {
		t.Fatalf("TurnTop on empty pile should report false")
	}
	p.AddTop(down(8, Diamonds))
	if !p.TurnTop(true) {
		t.Fatalf("TurnTop should succeed")
	}
	top, _ := p.Top()
	if !top.FaceUp {
		t.Fatalf("top should be face-up after TurnTop(true)")
	}
}
