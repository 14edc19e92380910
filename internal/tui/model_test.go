package tui

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janpfeifer/GoSpider/internal/game"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func newModel(t *testing.T) Model {
	t.Helper()
	m, err := New(game.OneSuit, rand.New(rand.NewPCG(7, 11)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m
}

func TestCursor(t *testing.T) {
	m := newModel(t)
	if m.cursor.column != 0 || m.cursor.index != 5 {
		t.Fatalf("Expected the cursor on the top card of column 0, got %+v", m.cursor)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.cursor.column != game.NumColumns-1 || m.cursor.index != 4 {
		t.Errorf("Expected the cursor to wrap to the top card of the last column, got %+v", m.cursor)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, runes("l"))
	if m.cursor.column != 1 || m.cursor.index != 5 {
		t.Errorf("Expected the cursor on the top card of column 1, got %+v", m.cursor)
	}

	// Only the top card is face up after the initial deal.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor.index != 5 {
		t.Errorf("Expected the cursor to stay on the face-up card, got %+v", m.cursor)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor.index != 5 {
		t.Errorf("Expected the cursor to stay on the top card, got %+v", m.cursor)
	}
}

func TestSelectAndCancel(t *testing.T) {
	m := newModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	col, idx, ok := m.Game.Selection.Get()
	if !ok || col != 0 || idx != 5 {
		t.Fatalf("Expected card 5 of column 0 selected, got %s", m.Game.Selection)
	}
	if !m.isSelected(0, 5) || m.isSelected(1, 5) {
		t.Errorf("isSelected does not match the selection %s", m.Game.Selection)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Game.Selection.Active() {
		t.Errorf("Expected esc to clear the selection, got %s", m.Game.Selection)
	}

	// Selecting then clicking the same column again deselects.
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeySpace})
	if m.Game.Selection.Active() {
		t.Errorf("Expected a second click to deselect, got %s", m.Game.Selection)
	}
}

func TestMoveWithKeys(t *testing.T) {
	m := newModel(t)
	var s game.GameState
	s.Difficulty = game.OneSuit
	s.Score = game.InitialScore
	s.Tableau[0] = game.Column{{ID: 1, Suit: game.Spades, Rank: 9, FaceUp: true}}
	s.Tableau[1] = game.Column{
		{ID: 2, Suit: game.Spades, Rank: 3},
		{ID: 3, Suit: game.Spades, Rank: 10, FaceUp: true},
	}
	for i := range game.NumColumns {
		s.Stock = append(s.Stock, game.Card{ID: 10 + i, Suit: game.Spades, Rank: game.Ace})
	}
	m.Game = &s
	m.cursorToTop()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Game.Moves != 1 || len(m.Game.Tableau[0]) != 0 || len(m.Game.Tableau[1]) != 3 {
		t.Fatalf("Expected the 9 to move onto the 10, got %s", m.Game)
	}
	if m.cursor.column != 1 || m.cursor.index != 2 {
		t.Errorf("Expected the cursor on the moved card, got %+v", m.cursor)
	}

	// Dealing with an empty column is refused and explained.
	m = press(t, m, runes("d"))
	if !strings.Contains(m.notice, "empty column") {
		t.Errorf("Expected a notice about the empty column, got %q", m.notice)
	}
}

func TestDealAndNewGame(t *testing.T) {
	m := newModel(t)
	m = press(t, m, runes("d"))
	if len(m.Game.Stock) != game.StockSize-game.NumColumns {
		t.Errorf("Expected %d cards in the stock after a deal, got %d", game.StockSize-game.NumColumns, len(m.Game.Stock))
	}
	if m.cursor.index != 6 {
		t.Errorf("Expected the cursor on the dealt card, got %+v", m.cursor)
	}

	m = press(t, m, runes("n"))
	if len(m.Game.Stock) != game.StockSize || m.Game.Difficulty != game.OneSuit {
		t.Errorf("Expected a fresh one suit game, got %s", m.Game)
	}

	m = press(t, m, runes("4"))
	if m.Game.Difficulty != game.FourSuits {
		t.Errorf("Expected a four suit game, got %s", m.Game.Difficulty)
	}
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("Expected tea.QuitMsg, got %T", cmd())
	}
}

func TestView(t *testing.T) {
	m := newModel(t)
	m = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	view := m.View()
	for _, want := range []string{"Score: 500", "Deals left: 5", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View is missing %q:\n%s", want, view)
		}
	}

	m.Game = m.Game.Clone()
	m.Game.Foundations = game.WinningSets
	if view := m.View(); !strings.Contains(view, "You won!") {
		t.Errorf("Expected the win screen, got:\n%s", view)
	}
}
