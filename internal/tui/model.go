// Package tui implements a terminal Spider Solitaire board with Bubble Tea.
//
// The game runs locally: every key press goes through the same game.GameState
// actions the web server uses.
package tui

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/GoSpider/internal/game"
	"k8s.io/klog/v2"
)

type cursor struct {
	column, index int
}

// Model is the Bubble Tea model of a game played in the terminal.
type Model struct {
	Game   *game.GameState
	KeyMap KeyMap

	cursor        cursor
	notice        string
	rng           *rand.Rand
	width, height int
}

// New starts a game with the given difficulty. A nil rng uses the global random source.
func New(d game.Difficulty, rng *rand.Rand) (Model, error) {
	g, err := game.NewGame(d, rng)
	if err != nil {
		return Model{}, err
	}
	m := Model{Game: g, KeyMap: Keys, rng: rng}
	m.cursorToTop()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("GoSpider")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.KeyMap.Left):
			m.cursor.column = (m.cursor.column - 1 + game.NumColumns) % game.NumColumns
			m.cursorToTop()

		case key.Matches(msg, m.KeyMap.Right):
			m.cursor.column = (m.cursor.column + 1) % game.NumColumns
			m.cursorToTop()

		case key.Matches(msg, m.KeyMap.Up):
			col := m.Game.Tableau[m.cursor.column]
			if m.cursor.index > 0 && col[m.cursor.index-1].FaceUp {
				m.cursor.index--
			}

		case key.Matches(msg, m.KeyMap.Down):
			if m.cursor.index < len(m.Game.Tableau[m.cursor.column])-1 {
				m.cursor.index++
			}

		case key.Matches(msg, m.KeyMap.Click):
			m.apply(m.Game.Click(m.cursor.column, m.cursor.index))

		case key.Matches(msg, m.KeyMap.Cancel):
			m.Game = m.Game.ClearSelection()
			m.notice = ""

		case key.Matches(msg, m.KeyMap.Deal):
			m.apply(m.Game.Deal())

		case key.Matches(msg, m.KeyMap.NewGame):
			m.newGame(m.Game.Difficulty)

		case key.Matches(msg, m.KeyMap.Difficulty):
			d, err := game.ParseDifficulty(msg.String())
			if err != nil {
				m.notice = err.Error()
				break
			}
			m.newGame(d)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// apply records the result of a game action.
func (m *Model) apply(next *game.GameState, outcome game.Outcome, err error) {
	if err != nil {
		klog.V(1).Infof("tui: action refused: %v", err)
		m.notice = game.Explain(err)
		return
	}
	m.Game = next
	klog.V(1).Infof("tui: %s at column %d, card %d", outcome.Kind, m.cursor.column, m.cursor.index)
	switch {
	case next.Won():
		klog.Infof("tui: game won, score %d in %d moves", next.Score, next.Moves)
		m.notice = "You won!"
	case outcome.SetsCompleted > 0:
		m.notice = "Run completed!"
	default:
		m.notice = ""
	}
	if outcome.Kind == game.OutcomeMoved || outcome.Kind == game.OutcomeDealt {
		m.cursorToTop()
	}
}

func (m *Model) newGame(d game.Difficulty) {
	g, err := game.NewGame(d, m.rng)
	if err != nil {
		m.notice = err.Error()
		return
	}
	klog.Infof("tui: new game with %s", d)
	m.Game = g
	m.notice = ""
	m.cursorToTop()
}

// cursorToTop points the cursor at the top card of its column, or at the column itself if empty.
func (m *Model) cursorToTop() {
	m.cursor.index = len(m.Game.Tableau[m.cursor.column]) - 1
}

func (m Model) View() string {
	if m.Game.Won() {
		return m.place(m.renderWin())
	}
	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.renderBoard(),
		"",
		noticeStyle.Render(m.notice),
		m.renderHelp(),
	)
	return m.place(view)
}

func (m Model) place(view string) string {
	if m.width == 0 || m.height == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

func (m Model) renderHeader() string {
	g := m.Game
	return headerStyle.Render(fmt.Sprintf("Spider %s   Score: %d   Moves: %d   Completed: %d/%d   Deals left: %d",
		g.Difficulty, g.Score, g.Moves, g.Foundations, game.WinningSets, g.DealsLeft()))
}

func (m Model) renderBoard() string {
	columns := make([]string, game.NumColumns)
	for i, col := range m.Game.Tableau {
		columns[i] = m.renderColumn(i, col)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m Model) renderColumn(column int, col game.Column) string {
	onCursor := m.cursor.column == column
	if len(col) == 0 {
		style := slotStyle
		if onCursor {
			style = style.Reverse(true)
		}
		return style.Render("[  ]")
	}

	cells := make([]string, len(col))
	for i, c := range col {
		var style lipgloss.Style
		label := "▒▒▒"
		switch {
		case !c.FaceUp:
			style = faceDownStyle
		case c.Suit.IsRed():
			style = redStyle
			label = c.Rank.String() + c.Suit.String()
		default:
			style = blackStyle
			label = c.Rank.String() + c.Suit.String()
		}
		if m.isSelected(column, i) {
			style = style.Background(selectedColor).Foreground(lipgloss.Color("#000000"))
		}
		if onCursor && i == m.cursor.index {
			style = style.Reverse(true)
		}
		cells[i] = style.Render(label)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cells...)
}

func (m Model) isSelected(column, index int) bool {
	col, idx, ok := m.Game.Selection.Get()
	return ok && col == column && index >= idx
}

func (m Model) renderHelp() string {
	parts := make([]string, 0, len(m.KeyMap.ShortHelp()))
	for _, b := range m.KeyMap.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}

func (m Model) renderWin() string {
	g := m.Game
	msg := fmt.Sprintf("%s\n\nFinal score %d in %d moves.\n\nPress 'n' to play again or 'q' to quit.",
		headerStyle.Render("You won!"), g.Score, g.Moves)
	return winStyle.Render(msg)
}
