package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jaminalder/codex-klondike/internal/domain"
)

// colWidth is the display width of one pile column.
const colWidth = 9

var (
	cellStyle = lipgloss.NewStyle().Width(colWidth)
	redStyle  = cellStyle.Foreground(lipgloss.Color("9"))
)

// cell renders one fixed-width card cell, red suits in red.
func cell(c domain.Card) string {
	if c.FaceUp && c.Suit.Color() == domain.Red {
		return redStyle.Render(c.String())
	}
	return cellStyle.Render(c.String())
}

// blank renders a fixed-width cell for s.
func blank(s string) string {
	return cellStyle.Render(s)
}

// RenderBoard renders the board in the fixed-width layout of the original
// text game: stock, waste and foundations up top, then the tableau grid with
// card and shown counts per column.
func RenderBoard(snap domain.Snapshot) string {
	var b strings.Builder

	b.WriteString(blank("STOCK"))
	b.WriteString(blank("WASTE"))
	for s := domain.Suit(0); s < domain.NumSuits; s++ {
		b.WriteString(blank("FOUND " + s.String()))
	}
	b.WriteString("\n")

	if len(snap.Stock) > 0 {
		b.WriteString(blank("[*]"))
	} else {
		b.WriteString(blank("_"))
	}
	b.WriteString(pileTopCell(snap.Waste))
	for _, f := range snap.Foundations {
		b.WriteString(pileTopCell(f))
	}
	b.WriteString("\n")

	b.WriteString(blank(countLabel(len(snap.Stock))))
	b.WriteString(blank(countLabel(len(snap.Waste))))
	for _, f := range snap.Foundations {
		b.WriteString(blank(countLabel(len(f))))
	}
	b.WriteString("\n\n")

	for col := range snap.Tableau {
		b.WriteString(blank(fmt.Sprintf("Pile %d", col+1)))
	}
	b.WriteString("\n")

	tallest := 0
	for _, cards := range snap.Tableau {
		if len(cards) > tallest {
			tallest = len(cards)
		}
	}
	for row := 0; row < tallest; row++ {
		for _, cards := range snap.Tableau {
			if row < len(cards) {
				b.WriteString(cell(cards[row]))
			} else {
				b.WriteString(blank(""))
			}
		}
		b.WriteString("\n")
	}

	for _, cards := range snap.Tableau {
		b.WriteString(blank(countLabel(len(cards))))
	}
	b.WriteString("\n")
	for _, cards := range snap.Tableau {
		shown := 0
		for _, c := range cards {
			if c.FaceUp {
				shown++
			}
		}
		b.WriteString(blank(fmt.Sprintf("(%d shown)", shown)))
	}
	b.WriteString("\n")
	return b.String()
}

func pileTopCell(cards []domain.Card) string {
	if len(cards) == 0 {
		return blank("_")
	}
	return cell(cards[len(cards)-1])
}

func countLabel(n int) string {
	if n == 1 {
		return "(1 card)"
	}
	return fmt.Sprintf("(%d cards)", n)
}
