package game

import "testing"

func TestCanMoveSequence(t *testing.T) {
	tests := []struct {
		name     string
		cards    []Card
		expected bool
	}{
		{"Empty", nil, false},
		{"Single face-up", []Card{up(7, Hearts)}, true},
		{"Single face-down", []Card{down(King, Spades)}, false},
		{"Same suit descending", []Card{up(King, Spades), up(Queen, Spades)}, true},
		{"Suit mismatch", []Card{up(King, Spades), up(Queen, Hearts)}, false},
		{"Gap in ranks", []Card{up(9, Clubs), up(7, Clubs)}, false},
		{"Ascending", []Card{up(7, Clubs), up(8, Clubs)}, false},
		{"Face-down inside run", []Card{up(9, Clubs), down(8, Clubs), up(7, Clubs)}, false},
		{"Full run", run(Diamonds, King, Ace), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMoveSequence(tt.cards); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestIsValidMove(t *testing.T) {
	six, seven := up(6, Spades), up(7, Spades)
	tests := []struct {
		name     string
		moving   []Card
		dest     *Card
		expected bool
	}{
		{"One rank below, cross-suit", []Card{up(5, Hearts)}, &six, true},
		{"Two ranks below", []Card{up(5, Hearts)}, &seven, false},
		{"Absent destination", []Card{up(5, Hearts)}, nil, false},
		{"Run placed by its bottom card", []Card{up(6, Hearts), up(5, Hearts)}, &seven, true},
		{"Run placed by its top card", []Card{up(6, Hearts), up(5, Hearts)}, &six, false},
		{"Nothing to move", nil, &six, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidMove(tt.moving, tt.dest); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCheckAndRemoveCompleteSet(t *testing.T) {
	t.Run("Removes run and exposes new top", func(t *testing.T) {
		col := append(Column{down(3, Hearts), down(9, Clubs)}, run(Clubs, King, Ace)...)
		newCol, removed := CheckAndRemoveCompleteSet(col)
		if !removed {
			t.Fatalf("Expected the run to be removed")
		}
		if len(newCol) != 2 {
			t.Fatalf("Expected 2 cards left, got %d: %s", len(newCol), newCol)
		}
		if !newCol[1].FaceUp {
			t.Errorf("Expected new top card %s to be face-up", newCol[1])
		}
		if newCol[0].FaceUp {
			t.Errorf("Expected card below the top to stay face-down")
		}
		if col[1].FaceUp || len(col) != 15 {
			t.Errorf("Input column was modified: %s", col)
		}

		// Idempotence.
		again, removed := CheckAndRemoveCompleteSet(newCol)
		if removed {
			t.Errorf("Expected nothing removed the second time")
		}
		if len(again) != len(newCol) {
			t.Errorf("Expected column unchanged, got %s", again)
		}
	})

	t.Run("Exactly one run leaves an empty column", func(t *testing.T) {
		newCol, removed := CheckAndRemoveCompleteSet(run(Spades, King, Ace))
		if !removed || len(newCol) != 0 {
			t.Errorf("Expected an empty column, got removed=%v, %s", removed, newCol)
		}
	})

	tests := []struct {
		name string
		col  Column
	}{
		{"Too short", run(Spades, Queen, Ace)},
		{"Mixed suits", append(run(Spades, King, 8), run(Hearts, 7, Ace)...)},
		{"Not ending in Ace", append(Column{up(Ace, Spades)}, run(Spades, King, 2)...)},
		{"Face-down King", append(Column{down(King, Spades)}, run(Spades, Queen, Ace)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newCol, removed := CheckAndRemoveCompleteSet(tt.col)
			if removed {
				t.Errorf("Expected nothing to be removed from %s", tt.col)
			}
			if len(newCol) != len(tt.col) {
				t.Errorf("Expected column unchanged, got %d cards instead of %d", len(newCol), len(tt.col))
			}
		})
	}
}

func TestColumnSplit(t *testing.T) {
	col := Column{down(2, Spades), down(5, Hearts), up(9, Clubs), up(8, Clubs)}
	rest, moving := col.Split(2)
	if len(rest) != 2 || len(moving) != 2 {
		t.Fatalf("Expected 2+2 cards, got %s | %s", rest, moving)
	}
	if !rest[1].FaceUp {
		t.Errorf("Expected %s to be exposed", rest[1])
	}
	if col[1].FaceUp {
		t.Errorf("Split modified the original column")
	}

	rest, moving = col.Split(0)
	if len(rest) != 0 || len(moving) != 4 {
		t.Errorf("Expected 0+4 cards, got %s | %s", rest, moving)
	}
}

func TestExposeTop(t *testing.T) {
	if got := ExposeTop(nil); len(got) != 0 {
		t.Errorf("Expected empty column, got %s", got)
	}
	col := Column{down(4, Spades)}
	got := ExposeTop(col)
	if !got[0].FaceUp {
		t.Errorf("Expected top card face-up")
	}
	if col[0].FaceUp {
		t.Errorf("ExposeTop modified its input")
	}
}
