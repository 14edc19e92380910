package game

import "fmt"

// OutcomeKind describes what a player action did.
type OutcomeKind int

const (
	OutcomeIgnored OutcomeKind = iota
	OutcomeSelected
	OutcomeDeselected
	OutcomeMoved
	OutcomeDealt
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeMoved:
		return "moved"
	case OutcomeDealt:
		return "dealt"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// Outcome of a player action.
type Outcome struct {
	Kind OutcomeKind

	// SetsCompleted is the number of King to Ace runs removed by the action.
	SetsCompleted int
}

// Click interprets a click on card index of column.
//
// Use index -1 to click on the column itself (e.g. an empty column).
//
//   - Without a selection, the clicked cards are selected if they can be moved together.
//   - Clicking the selected column again clears the selection.
//   - Otherwise the selected cards are moved to the clicked column. An empty
//     column accepts any run. If the move is not legal, the clicked cards
//     become the new selection when they are movable, or the selection is cleared.
//
// Invalid moves are not errors: only out-of-range indices and clicks on a won
// game return one.
func (s *GameState) Click(column, index int) (*GameState, Outcome, error) {
	if s.Won() {
		return s, Outcome{}, ErrGameOver
	}
	if column < 0 || column >= NumColumns || index < -1 || index >= len(s.Tableau[column]) {
		return s, Outcome{}, fmt.Errorf("%w: column %d, card %d", ErrOutOfRange, column, index)
	}

	selCol, selIdx, ok := s.Selection.Get()
	if !ok {
		return s.selectAt(column, index)
	}
	if selCol == column {
		return s.ClearSelection(), Outcome{Kind: OutcomeDeselected}, nil
	}

	next, outcome, err := s.Move(selCol, selIdx, column)
	if err == nil {
		return next, outcome, nil
	}
	// Not a legal move: reinterpret the click as a new selection.
	next, outcome, _ = s.ClearSelection().selectAt(column, index)
	if outcome.Kind == OutcomeIgnored {
		outcome.Kind = OutcomeDeselected
	}
	return next, outcome, nil
}

// Select selects the cards of column from index up, if they can be moved together.
// Any previous selection is replaced, and unmovable cards leave nothing selected.
func (s *GameState) Select(column, index int) (*GameState, Outcome, error) {
	if s.Won() {
		return s, Outcome{}, ErrGameOver
	}
	if column < 0 || column >= NumColumns || index < 0 || index >= len(s.Tableau[column]) {
		return s, Outcome{}, fmt.Errorf("%w: column %d, card %d", ErrOutOfRange, column, index)
	}
	return s.ClearSelection().selectAt(column, index)
}

// ClearSelection returns the state with no cards selected.
func (s *GameState) ClearSelection() *GameState {
	if !s.Selection.Active() {
		return s
	}
	next := s.Clone()
	next.Selection = NoSelection()
	return next
}

func (s *GameState) selectAt(column, index int) (*GameState, Outcome, error) {
	if index < 0 || !CanMoveSequence(s.Tableau[column][index:]) {
		return s, Outcome{Kind: OutcomeIgnored}, nil
	}
	next := s.Clone()
	next.Selection = SelectionAt(column, index)
	return next, Outcome{Kind: OutcomeSelected}, nil
}

// Move moves the cards of column from, starting at index, to the top of column to.
//
// The cards must form a movable run, and either the destination is empty or
// its top card is one rank above the run's bottom card. On success the move is
// counted, the selection is cleared, and completed runs are removed from every column.
func (s *GameState) Move(from, index, to int) (*GameState, Outcome, error) {
	if s.Won() {
		return s, Outcome{}, ErrGameOver
	}
	if from < 0 || from >= NumColumns || to < 0 || to >= NumColumns ||
		index < 0 || index >= len(s.Tableau[from]) {
		return s, Outcome{}, fmt.Errorf("%w: move from column %d, card %d to column %d", ErrOutOfRange, from, index, to)
	}
	if from == to {
		return s, Outcome{}, fmt.Errorf("%w: source and destination are both column %d", ErrIllegalMove, from)
	}
	moving := s.Tableau[from][index:]
	if !CanMoveSequence(moving) {
		return s, Outcome{}, fmt.Errorf("%w: %s", ErrNotMovable, Column(moving))
	}
	dest := s.Tableau[to]
	if len(dest) > 0 && !IsValidMove(moving, dest.Top()) {
		return s, Outcome{}, fmt.Errorf("%w: %s onto %s", ErrIllegalMove, moving[0], dest.Top())
	}

	next := s.Clone()
	rest, run := next.Tableau[from].Split(index)
	next.Tableau[from] = rest
	next.Tableau[to] = append(next.Tableau[to], run...)
	next.Moves++
	next.Score -= MovePenalty
	next.Selection = NoSelection()
	sets := next.removeCompleteSets()
	return next, Outcome{Kind: OutcomeMoved, SetsCompleted: sets}, nil
}

// Deal deals one face-up card from the stock onto every column.
//
// It is refused with ErrEmptyColumn if any column is empty, and with
// ErrStockEmpty if there is nothing left to deal; the state is not changed then.
// Dealing clears the selection and is not counted as a move. Runs are only
// removed after moves, so a run completed by a deal stays until the next move.
func (s *GameState) Deal() (*GameState, Outcome, error) {
	if s.Won() {
		return s, Outcome{}, ErrGameOver
	}
	if len(s.Stock) < NumColumns {
		return s, Outcome{}, ErrStockEmpty
	}
	if s.HasEmptyColumn() {
		return s, Outcome{}, ErrEmptyColumn
	}
	next := s.Clone()
	for i := range next.Tableau {
		card := next.Stock[len(next.Stock)-1]
		next.Stock = next.Stock[:len(next.Stock)-1]
		card.FaceUp = true
		next.Tableau[i] = append(next.Tableau[i], card)
	}
	next.Selection = NoSelection()
	return next, Outcome{Kind: OutcomeDealt}, nil
}

// removeCompleteSets runs the set check once on every column of a freshly
// moved state, updating foundations and score. It returns the number of runs removed.
func (s *GameState) removeCompleteSets() int {
	sets := 0
	for i, col := range s.Tableau {
		newCol, removed := CheckAndRemoveCompleteSet(col)
		if !removed {
			continue
		}
		s.Tableau[i] = newCol
		s.Foundations++
		s.Score += SetBonus
		sets++
	}
	return sets
}
