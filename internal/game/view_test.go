package game

import (
	"encoding/json"
	"math/rand/v2"
	"testing"
)

func TestView(t *testing.T) {
	s, err := NewGame(FourSuits, rand.New(rand.NewPCG(9, 9)))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	s, _, _ = s.Click(2, len(s.Tableau[2])-1)
	v := s.View()

	if v.StockCount != StockSize || v.DealsLeft != 5 {
		t.Errorf("Unexpected stock: %d cards, %d deals", v.StockCount, v.DealsLeft)
	}
	if len(v.Columns) != NumColumns {
		t.Fatalf("Expected %d columns, got %d", NumColumns, len(v.Columns))
	}
	for i, col := range v.Columns {
		for j, c := range col {
			orig := s.Tableau[i][j]
			if c.ID != orig.ID {
				t.Errorf("Column %d card %d: ID %d, expected %d", i, j, c.ID, orig.ID)
			}
			if c.FaceUp && c != orig {
				t.Errorf("Column %d card %d: face-up card changed from %s to %s", i, j, orig, c)
			}
			if !c.FaceUp && (c.Rank != 0 || c.Suit != 0) {
				t.Errorf("Column %d card %d: face-down card leaks %s", i, j, c)
			}
		}
	}
	if !v.IsSelected(2, len(v.Columns[2])-1) || v.IsSelected(2, 0) || v.IsSelected(1, 4) {
		t.Errorf("Unexpected IsSelected results for selection %s", v.Selection)
	}

	// Masking must not touch the state.
	if s.Tableau[0][0].Rank == 0 {
		t.Errorf("View modified the state")
	}

	// And the stock is never sent.
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal view: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Failed to unmarshal view: %v", err)
	}
	if _, found := fields["stock"]; found {
		t.Errorf("View JSON contains the stock")
	}
}

func TestSelectionJSON(t *testing.T) {
	data, err := json.Marshal(NoSelection())
	if err != nil || string(data) != "null" {
		t.Errorf("Expected no selection to encode as null, got %s, %v", data, err)
	}

	data, err = json.Marshal(SelectionAt(3, 0))
	if err != nil || string(data) != `{"column":3,"index":0}` {
		t.Errorf("Unexpected encoding %s, %v", data, err)
	}
	var sel Selection
	if err := json.Unmarshal(data, &sel); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if col, idx, ok := sel.Get(); !ok || col != 3 || idx != 0 {
		t.Errorf("Expected column 3 from card 0, got %s", sel)
	}
	if err := json.Unmarshal([]byte("null"), &sel); err != nil || sel.Active() {
		t.Errorf("Expected null to clear the selection, got %s, %v", sel, err)
	}

	// Coordinates never come without the selection being active.
	for _, bad := range []string{`{"column":3}`, `{"index":2}`, `{"column":10,"index":0}`, `{"column":1,"index":-1}`} {
		if err := json.Unmarshal([]byte(bad), &sel); err == nil {
			t.Errorf("Expected %s to be rejected, got %s", bad, sel)
		}
	}
}
