package web

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/jaminalder/codex-klondike/internal/app"
	"github.com/jaminalder/codex-klondike/internal/domain"
)

type templates struct {
	base  *template.Template
	game  *template.Template
	board *template.Template
	index *template.Template
}

// View models keep the templates free of game logic.

type cardView struct {
	Label string
	Red   bool
}

type namedPileView struct {
	Name  string
	Token string
	Top   *cardView
	Count int
}

type columnView struct {
	Number int // 1-based, as shown to the player
	Token  string
	Cards  []cardView
	Count  int
	Shown  int
}

type boardView struct {
	ID          string
	Error       string
	Won         bool
	Moves       int
	StockCount  int
	Waste       namedPileView
	Foundations []namedPileView
	Columns     []columnView
}

func toCardView(c domain.Card) cardView {
	return cardView{Label: c.String(), Red: c.FaceUp && c.Suit.Color() == domain.Red}
}

func topView(cards []domain.Card) *cardView {
	if len(cards) == 0 {
		return nil
	}
	cv := toCardView(cards[len(cards)-1])
	return &cv
}

func makeBoardView(ses app.Session, errMsg string) boardView {
	b := ses.Board
	v := boardView{
		ID:         ses.ID,
		Error:      errMsg,
		Won:        ses.Status == app.Won,
		Moves:      ses.Moves,
		StockCount: len(b.Stock),
		Waste: namedPileView{
			Name:  "Waste",
			Token: "w",
			Top:   topView(b.Waste),
			Count: len(b.Waste),
		},
	}
	for s := domain.Suit(0); s < domain.NumSuits; s++ {
		f := b.Foundations[s]
		v.Foundations = append(v.Foundations, namedPileView{
			Name:  s.String(),
			Token: fmt.Sprintf("f%d", s),
			Top:   topView(f),
			Count: len(f),
		})
	}
	for col, cards := range b.Tableau {
		cv := columnView{
			Number: col + 1,
			Token:  fmt.Sprintf("t%d", col),
			Count:  len(cards),
		}
		for _, c := range cards {
			cv.Cards = append(cv.Cards, toCardView(c))
			if c.FaceUp {
				cv.Shown++
			}
		}
		v.Columns = append(v.Columns, cv)
	}
	return v
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/htmx.org/dist/ext/sse.js"></script>
<style>
.red { color: #b00 }
.alert { color: #b00; font-weight: bold }
.col { display: inline-block; vertical-align: top; width: 5em }
</style>
</head><body>{{template "content" .}}</body></html>`))
	template.Must(base.New("board").Parse(boardTemplate))
	index := template.Must(template.Must(base.Clone()).New("content").Parse(
		`<h1>Klondike</h1><form action="/game" method="post"><button>Deal</button></form>`))
	game := template.Must(template.Must(base.Clone()).New("content").Parse(`
<div hx-ext="sse" hx-sse="connect:/game/{{.ID}}/events">
  <div id="board" hx-sse="swap:board">{{template "board" .Board}}</div>
</div>`))
	// Standalone board template used for fragment rendering
	board := template.Must(template.New("board_only").Parse(boardTemplate))
	return &templates{base: base, game: game, board: board, index: index}
}

func renderTemplate(t *template.Template, name string, data any) []byte {
	var buf bytes.Buffer
	if name == "" {
		_ = t.Execute(&buf, data)
	} else {
		_ = t.ExecuteTemplate(&buf, name, data)
	}
	return buf.Bytes()
}

const boardTemplate = `
<div id="board">
  {{if .Error}}
  <div class="alert">{{.Error}}</div>
  {{end}}
  {{if .Won}}
  <div class="win">You Win in {{.Moves}} steps!</div>
  {{end}}
  <div class="top-row">
    <span class="pile">Stock: {{if gt .StockCount 0}}[*]{{else}}_{{end}} ({{.StockCount}})</span>
    <span class="pile">Waste: {{with .Waste.Top}}<span {{if .Red}}class="red"{{end}}>{{.Label}}</span>{{else}}_{{end}} ({{.Waste.Count}})</span>
    {{range .Foundations}}
    <span class="pile">{{.Name}}: {{with .Top}}<span {{if .Red}}class="red"{{end}}>{{.Label}}</span>{{else}}_{{end}} ({{.Count}})</span>
    {{end}}
  </div>
  <div class="tableau">
    {{range .Columns}}
    <div class="col">
      <b>Pile {{.Number}}</b>
      {{range .Cards}}<div {{if .Red}}class="red"{{end}}>{{.Label}}</div>{{end}}
      <div>({{.Count}} cards)</div>
      <div>({{.Shown}} shown)</div>
    </div>
    {{end}}
  </div>
  <div class="controls">
    <form hx-post="/game/{{.ID}}/draw" hx-target="#board" hx-swap="outerHTML" method="post"><button>Draw</button></form>
    <form hx-post="/game/{{.ID}}/undo" hx-target="#board" hx-swap="outerHTML" method="post"><button>Undo</button></form>
    <form hx-post="/game/{{.ID}}/move" hx-target="#board" hx-swap="outerHTML" method="post">
      <select name="src">
        <option value="w">waste</option>
        {{range .Foundations}}<option value="{{.Token}}">foundation {{.Name}}</option>{{end}}
        {{range .Columns}}<option value="{{.Token}}">pile {{.Number}}</option>{{end}}
      </select>
      <select name="dst">
        {{range .Columns}}<option value="{{.Token}}">pile {{.Number}}</option>{{end}}
        {{range .Foundations}}<option value="{{.Token}}">foundation {{.Name}}</option>{{end}}
      </select>
      <input type="number" name="count" value="1" min="1">
      <button>Move</button>
    </form>
    <form hx-post="/game/{{.ID}}/foundation" hx-target="#board" hx-swap="outerHTML" method="post">
      <select name="src">
        <option value="w">waste</option>
        {{range .Columns}}<option value="{{.Token}}">pile {{.Number}}</option>{{end}}
      </select>
      <button>To foundation</button>
    </form>
    <form hx-post="/game/{{.ID}}/reset" hx-target="#board" hx-swap="outerHTML" method="post"><button>Reset</button></form>
  </div>
  <div class="moves">Round {{.Moves}}</div>
</div>
`
