package game

import (
	"math/rand/v2"
	"testing"
)

func TestDealInitial(t *testing.T) {
	deck := CreateDeck(TwoSuits, rand.New(rand.NewPCG(7, 7)))
	tableau, stock := DealInitial(deck)

	dealt := 0
	for i, col := range tableau {
		want := 5
		if i < 4 {
			want = 6
		}
		if len(col) != want {
			t.Errorf("Column %d: expected %d cards, got %d", i, want, len(col))
		}
		dealt += len(col)
		for j, c := range col {
			isTop := j == len(col)-1
			if c.FaceUp != isTop {
				t.Errorf("Column %d card %d: face-up=%v, expected %v", i, j, c.FaceUp, isTop)
			}
		}
	}
	if dealt != InitialDeal {
		t.Errorf("Expected %d cards dealt, got %d", InitialDeal, dealt)
	}
	if len(stock) != StockSize {
		t.Errorf("Expected %d cards in the stock, got %d", StockSize, len(stock))
	}
	if dealt+len(stock) != DeckSize {
		t.Errorf("Expected %d cards in total, got %d", DeckSize, dealt+len(stock))
	}

	// Stock keeps the deck order, and nothing is face-up in it.
	for i, c := range stock {
		if c.ID != deck[InitialDeal+i].ID {
			t.Fatalf("Stock card %d: expected ID %d, got %d", i, deck[InitialDeal+i].ID, c.ID)
		}
		if c.FaceUp {
			t.Errorf("Stock card %d is face-up", i)
		}
	}

	// Round-robin dealing: card i lands on column i%10.
	if tableau[3][1].ID != deck[13].ID {
		t.Errorf("Expected deck card 13 as second card of column 3, got %s", tableau[3][1])
	}

	// The deck itself is untouched.
	for _, c := range deck {
		if c.FaceUp {
			t.Fatalf("DealInitial modified the deck: %s is face-up", c)
		}
	}
}
