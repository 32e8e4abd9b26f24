package domain

import (
	"errors"
	"math"
	"math/rand"
)

// DefaultMaxRank is the rank of a standard deck.
const DefaultMaxRank = 13

// Errors returned for structurally invalid requests. Rule violations are not
// errors; they are silently rejected.
var (
	ErrBadPile  = errors.New("bad pile reference")
	ErrBadCount = errors.New("bad card count")
)

// PileKind classifies the piles on the board.
type PileKind uint8

const (
	StockPile PileKind = iota
	WastePile
	FoundationPile
	TableauPile
)

// PileRef is a stable handle to one pile on the board. Foundation indices are
// suit values; tableau indices are zero-based column numbers.
type PileRef struct {
	Kind  PileKind
	Index int
}

// Stock returns the handle of the stock pile.
func Stock() PileRef { return PileRef{Kind: StockPile} }

// Waste returns the handle of the waste pile.
func Waste() PileRef { return PileRef{Kind: WastePile} }

// Foundation returns the handle of the foundation for suit s.
func Foundation(s Suit) PileRef { return PileRef{Kind: FoundationPile, Index: int(s)} }

// Tableau returns the handle of tableau column col.
func Tableau(col int) PileRef { return PileRef{Kind: TableauPile, Index: col} }

// Game owns every pile and card of one solitaire deal and enforces move
// legality. All mutation goes through Draw, Transfer, MoveToFoundation and
// Undo; cards are only ever relocated or flipped, never created or destroyed
// after the deal.
type Game struct {
	maxRank     int
	stock       Pile
	waste       Pile
	foundations [NumSuits]Pile
	tableau     []Pile
	history     []entry
}

// NewGame deals a fresh game with the given maximum rank, shuffled by seed.
// The same seed always produces the same deal. Columns are dealt in a
// staircase: column i receives i+1 cards with only the top one face-up; the
// rest of the deck goes to the stock face-up.
func NewGame(maxRank int, seed int64) *Game {
	if maxRank < 1 {
		maxRank = DefaultMaxRank
	}
	numCards := NumSuits * maxRank
	numCols := int(math.Floor(math.Sqrt(float64(numCards))))
	g := &Game{
		maxRank: maxRank,
		tableau: make([]Pile, numCols),
	}

	deck := newDeck(maxRank)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	for col := range g.tableau {
		for n := 0; n <= col; n++ {
			g.tableau[col].AddTop(deck[len(deck)-1])
			deck = deck[:len(deck)-1]
		}
		g.tableau[col].TurnTop(true)
	}
	for i := range deck {
		deck[i].FaceUp = true
	}
	g.stock.Extend(deck)
	return g
}

// MaxRank returns the highest rank in this deal.
func (g *Game) MaxRank() int { return g.maxRank }

// NumColumns returns the number of tableau columns.
func (g *Game) NumColumns() int { return len(g.tableau) }

// pile resolves a handle to its pile, or ErrBadPile.
func (g *Game) pile(ref PileRef) (*Pile, error) {
	switch ref.Kind {
	case StockPile:
		return &g.stock, nil
	case WastePile:
		return &g.waste, nil
	case FoundationPile:
		if ref.Index < 0 || ref.Index >= NumSuits {
			return nil, ErrBadPile
		}
		return &g.foundations[ref.Index], nil
	case TableauPile:
		if ref.Index < 0 || ref.Index >= len(g.tableau) {
			return nil, ErrBadPile
		}
		return &g.tableau[ref.Index], nil
	}
	return nil, ErrBadPile
}

// mustPile resolves a handle recorded by the engine itself.
func (g *Game) mustPile(ref PileRef) *Pile {
	p, err := g.pile(ref)
	if err != nil {
		panic(err)
	}
	return p
}

// PileLen returns the size of the referenced pile.
func (g *Game) PileLen(ref PileRef) (int, error) {
	p, err := g.pile(ref)
	if err != nil {
		return 0, err
	}
	return p.Len(), nil
}

// FaceUpCount returns the number of face-up cards in tableau column col.
func (g *Game) FaceUpCount(col int) int {
	if col < 0 || col >= len(g.tableau) {
		return 0
	}
	n := 0
	for _, c := range g.tableau[col].cards {
		if c.FaceUp {
			n++
		}
	}
	return n
}

// IsComplete reports whether the game is effectively won: stock and waste
// empty and no face-down card left on the tableau.
func (g *Game) IsComplete() bool {
	if !g.stock.IsEmpty() || !g.waste.IsEmpty() {
		return false
	}
	for i := range g.tableau {
		for _, c := range g.tableau[i].cards {
			if !c.FaceUp {
				return false
			}
		}
	}
	return true
}

// Snapshot is a deep copy of the board for renderers and tests. Mutating a
// snapshot never touches the live game.
type Snapshot struct {
	MaxRank     int
	Stock       []Card
	Waste       []Card
	Foundations [NumSuits][]Card
	Tableau     [][]Card
	HistoryLen  int
	Complete    bool
}

// Snapshot returns a deep copy of the current board state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		MaxRank:    g.maxRank,
		Stock:      g.stock.Cards(),
		Waste:      g.waste.Cards(),
		Tableau:    make([][]Card, len(g.tableau)),
		HistoryLen: len(g.history),
		Complete:   g.IsComplete(),
	}
	for s := range g.foundations {
		snap.Foundations[s] = g.foundations[s].Cards()
	}
	for i := range g.tableau {
		snap.Tableau[i] = g.tableau[i].Cards()
	}
	return snap
}
