package tui

import (
	"strings"
	"testing"

	"github.com/jaminalder/codex-klondike/internal/domain"
)

func TestRenderBoardLayout(t *testing.T) {
	out := RenderBoard(domain.NewGame(13, 42).Snapshot())
	for _, want := range []string{
		"STOCK", "WASTE", "FOUND ♣", "FOUND ♠",
		"Pile 1", "Pile 7",
		"(24 cards)", "(1 card)", "(7 cards)",
		"(1 shown)",
		"[*]",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("board output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "\n") < 10 {
		t.Fatalf("board output suspiciously short:\n%s", out)
	}
}

func TestRenderBoardEmptyPiles(t *testing.T) {
	snap := domain.NewGame(13, 42).Snapshot()
	snap.Stock = nil
	snap.Waste = nil
	out := RenderBoard(snap)
	if !strings.Contains(out, "_") {
		t.Fatalf("empty piles should render as underscores:\n%s", out)
	}
	if !strings.Contains(out, "(0 cards)") {
		t.Fatalf("empty piles should render a zero count:\n%s", out)
	}
}
