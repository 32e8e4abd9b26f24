package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jaminalder/codex-klondike/internal/domain"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

// Model is the bubbletea model driving one local game.
type Model struct {
	game    *domain.Game
	maxRank int
	seed    func() int64
	moves   int
	won     bool

	m        mode
	input    textinput.Model
	logLines []string

	width  int
	height int
}

// NewModel deals a game and prepares the command line.
func NewModel(maxRank int, seed func() int64) Model {
	ti := textinput.New()
	ti.Placeholder = "move..."
	ti.Prompt = "> "
	ti.CharLimit = 40
	ti.Width = 40

	return Model{
		game:    domain.NewGame(maxRank, seed()),
		maxRank: maxRank,
		seed:    seed,
		input:   ti,
		logLines: []string{
			"ready (press i to enter a move, ? shows the move language)",
		},
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "i":
				m.m = modeInput
				m.input.SetValue("")
				m.input.Focus()
				return m, nil
			case "d":
				m.execCommand("d")
				return m, nil
			case "u", "z":
				m.execCommand("u")
				return m, nil
			case "?":
				m.showHelp()
				return m, nil
			default:
				return m, nil
			}

		case modeInput:
			switch msg.String() {
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				m.m = modeNormal
				m.input.Blur()
				if line != "" {
					return m, m.execCommand(line)
				}
				return m, nil
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) execCommand(line string) tea.Cmd {
	m.appendLog("> " + line)

	cmd, err := parseCommand(line, m.game.NumColumns())
	if err != nil {
		m.appendLog("improper input")
		return nil
	}

	before := m.game.HistoryLen()
	switch cmd.kind {
	case actQuit:
		return tea.Quit
	case actHelp:
		m.showHelp()
	case actReset:
		m.game = domain.NewGame(m.maxRank, m.seed())
		m.moves = 0
		m.won = false
		m.appendLog("new game dealt")
		return nil
	case actDraw:
		wasEmpty := m.stockLen() == 0
		m.game.Draw()
		if wasEmpty {
			m.appendLog("recycled the waste into the stock")
		} else {
			m.appendLog("drew a card")
		}
	case actUndo:
		if before == 0 {
			m.appendLog("nothing to undo")
		} else {
			m.game.Undo()
			m.appendLog("undid the last move")
		}
	case actTransfer:
		ok, err := m.game.Transfer(cmd.src, cmd.dst, cmd.count)
		switch {
		case err != nil:
			m.appendLog("improper input")
		case ok:
			m.appendLog("moved")
		default:
			m.appendLog("illegal move")
		}
	case actFoundation:
		ok, err := m.game.MoveToFoundation(cmd.src)
		switch {
		case err != nil:
			m.appendLog("improper input")
		case ok:
			m.appendLog("moved to foundation")
		default:
			m.appendLog("illegal move")
		}
	}

	if m.game.HistoryLen() != before {
		m.moves++
	}
	m.finish()
	return nil
}

// finish runs the win sweep once the board is complete, sending every
// remaining tableau card to the foundations in reverse column order.
func (m *Model) finish() {
	if m.won || !m.game.IsComplete() {
		return
	}
	for {
		moved := false
		for col := m.game.NumColumns() - 1; col >= 0; col-- {
			if ok, _ := m.game.MoveToFoundation(domain.Tableau(col)); ok {
				moved = true
			}
		}
		if !moved {
			break
		}
	}
	for col := 0; col < m.game.NumColumns(); col++ {
		if n, _ := m.game.PileLen(domain.Tableau(col)); n > 0 {
			return
		}
	}
	m.won = true
	m.appendLog(fmt.Sprintf("You Win in %d steps!", m.moves))
}

func (m *Model) stockLen() int {
	n, _ := m.game.PileLen(domain.Stock())
	return n
}

func (m *Model) showHelp() {
	for _, ln := range []string{
		"d            draw from the stock",
		"u or z       undo the last move",
		"1 2          move a card from pile 1 to pile 2",
		"w 1          move a card from the waste to pile 1",
		"1 f          move a card from pile 1 to its foundation",
		"w f          move a card from the waste to its foundation",
		"f2 1         move a card from foundation 2 to pile 1",
		"m3 1 2       move the top 3 cards from pile 1 to pile 2",
		"reset        start a new game",
		"quit         quit",
	} {
		m.appendLog(ln)
	}
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > 200 {
		m.logLines = m.logLines[len(m.logLines)-200:]
	}
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	status := "PLAY"
	if m.won {
		status = "WON"
	}
	modeStr := "NORMAL"
	if m.m == modeInput {
		modeStr = "INPUT"
	}
	header := titleStyle.Render(fmt.Sprintf("klondike  [%s]  round:%d  mode:%s", status, m.moves+1, modeStr))

	board := boxStyle.Render(RenderBoard(m.game.Snapshot()))

	logHeight := 6
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logBox := boxStyle.Width(max(40, m.width-2)).Render(logBody)

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "press i to enter a move, q to quit"
	}
	inputBox := boxStyle.Width(max(40, m.width-2)).Render(inputLine)

	return header + "\n" + board + "\n" + logBox + "\n" + inputBox + "\n"
}
