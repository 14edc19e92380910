package game

// BoardView is what a client is allowed to see of a GameState:
// face-down cards have their suit and rank hidden, and the stock is only a count.
type BoardView struct {
	Difficulty  Difficulty `json:"difficulty"`
	Columns     []Column   `json:"columns"`
	StockCount  int        `json:"stock_count"`
	DealsLeft   int        `json:"deals_left"`
	Foundations int        `json:"foundations"`
	Moves       int        `json:"moves"`
	Score       int        `json:"score"`
	Selection   Selection  `json:"selection"`
	Won         bool       `json:"won"`
}

// View returns the client-safe projection of the state.
func (s *GameState) View() BoardView {
	v := BoardView{
		Difficulty:  s.Difficulty,
		Columns:     make([]Column, NumColumns),
		StockCount:  len(s.Stock),
		DealsLeft:   s.DealsLeft(),
		Foundations: s.Foundations,
		Moves:       s.Moves,
		Score:       s.Score,
		Selection:   s.Selection,
		Won:         s.Won(),
	}
	for i, col := range s.Tableau {
		masked := make(Column, len(col))
		for j, c := range col {
			if !c.FaceUp {
				c = Card{ID: c.ID}
			}
			masked[j] = c
		}
		v.Columns[i] = masked
	}
	return v
}

// IsSelected returns whether card index of column is part of the current selection.
func (v *BoardView) IsSelected(column, index int) bool {
	col, idx, ok := v.Selection.Get()
	return ok && col == column && index >= idx
}
