package game

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
)

const (
	// InitialScore is the score at the start of a game.
	InitialScore = 500

	// SetBonus is added to the score for every completed King to Ace run.
	SetBonus = 100

	// MovePenalty is subtracted from the score for every move.
	MovePenalty = 1

	// WinningSets is the number of completed runs needed to win: all 104 cards.
	WinningSets = DeckSize / SetSize
)

// Selection is the optional (column, card index) pair picked by the player.
// The zero value is "no selection". Use Get to read it.
//
// In JSON it is either null or {"column": c, "index": i}.
type Selection struct {
	active        bool
	column, index int
}

// NoSelection returns an empty selection.
func NoSelection() Selection { return Selection{} }

// SelectionAt returns a selection of the cards of column from index to the top.
func SelectionAt(column, index int) Selection {
	return Selection{active: true, column: column, index: index}
}

// Get returns the selected column and card index, and whether there is a selection at all.
func (s Selection) Get() (column, index int, ok bool) {
	if !s.active {
		return -1, -1, false
	}
	return s.column, s.index, true
}

// Active reports whether anything is selected.
func (s Selection) Active() bool { return s.active }

type selectionJSON struct {
	Column *int `json:"column"`
	Index  *int `json:"index"`
}

func (s Selection) MarshalJSON() ([]byte, error) {
	if !s.active {
		return []byte("null"), nil
	}
	return json.Marshal(selectionJSON{Column: &s.column, Index: &s.index})
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = NoSelection()
		return nil
	}
	var v selectionJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Column == nil || v.Index == nil || *v.Column < 0 || *v.Column >= NumColumns || *v.Index < 0 {
		return fmt.Errorf("invalid selection %s", data)
	}
	*s = SelectionAt(*v.Column, *v.Index)
	return nil
}

func (s Selection) String() string {
	if !s.active {
		return "none"
	}
	return fmt.Sprintf("column %d from card %d", s.column, s.index)
}

// Phase of a game.
type Phase int

const (
	PhaseSelecting Phase = iota
	PhaseSequenceSelected
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "selecting"
	case PhaseSequenceSelected:
		return "sequence-selected"
	case PhaseWon:
		return "won"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// GameState is the full state of one game.
//
// A GameState is never modified by its methods: every transition returns a
// new GameState and leaves the receiver as it was.
type GameState struct {
	Difficulty  Difficulty `json:"difficulty"`
	Tableau     Tableau    `json:"tableau"`
	Stock       []Card     `json:"stock"`
	Foundations int        `json:"foundations"` // Completed runs removed from play.
	Moves       int        `json:"moves"`
	Score       int        `json:"score"`
	Selection   Selection  `json:"selection"`
}

// NewGame builds, shuffles and deals a new game.
// If rng is nil the global math/rand/v2 source is used.
func NewGame(d Difficulty, rng *rand.Rand) (*GameState, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDifficulty, int(d))
	}
	tableau, stock := DealInitial(CreateDeck(d, rng))
	return &GameState{
		Difficulty: d,
		Tableau:    tableau,
		Stock:      stock,
		Score:      InitialScore,
		Selection:  NoSelection(),
	}, nil
}

// Clone returns a deep copy of the state.
func (s *GameState) Clone() *GameState {
	out := *s
	out.Tableau = s.Tableau.Clone()
	out.Stock = make([]Card, len(s.Stock))
	copy(out.Stock, s.Stock)
	return &out
}

// Won returns whether all runs have been completed.
func (s *GameState) Won() bool {
	return s.Foundations >= WinningSets
}

// Phase returns where the game is in its select/move cycle.
func (s *GameState) Phase() Phase {
	switch {
	case s.Won():
		return PhaseWon
	case s.Selection.Active():
		return PhaseSequenceSelected
	default:
		return PhaseSelecting
	}
}

// DealsLeft returns how many times the stock can still be dealt.
func (s *GameState) DealsLeft() int {
	return len(s.Stock) / NumColumns
}

// CardCount returns the number of cards accounted for: on the tableau, in the
// stock and in completed runs. It is always DeckSize.
func (s *GameState) CardCount() int {
	n := len(s.Stock) + s.Foundations*SetSize
	for _, col := range s.Tableau {
		n += len(col)
	}
	return n
}

// HasEmptyColumn returns whether any tableau column has no cards.
func (s *GameState) HasEmptyColumn() bool {
	for _, col := range s.Tableau {
		if len(col) == 0 {
			return true
		}
	}
	return false
}

func (s *GameState) String() string {
	return fmt.Sprintf("GameState{%s, score=%d, moves=%d, foundations=%d, stock=%d, selection=%s}",
		s.Difficulty, s.Score, s.Moves, s.Foundations, len(s.Stock), s.Selection)
}
