package game

// SetSize is the length of a complete King to Ace run.
const SetSize = int(King)

// CanMoveSequence returns whether cards, as stored in a column (bottom to top),
// can be picked up together: it must be non-empty, all face-up, all of one suit,
// and each card one rank below the previous.
func CanMoveSequence(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	for i, c := range cards {
		if !c.FaceUp {
			return false
		}
		if i == 0 {
			continue
		}
		prev := cards[i-1]
		if c.Suit != prev.Suit || c.Rank != prev.Rank-1 {
			return false
		}
	}
	return true
}

// IsValidMove returns whether moving can be placed on a column whose top card
// is dest: the bottom card of moving must be exactly one rank below dest.
// Suits don't need to match.
//
// A nil dest (empty column) is never valid here: moves to empty columns are
// always allowed and are handled by the caller without asking IsValidMove.
func IsValidMove(moving []Card, dest *Card) bool {
	if dest == nil || len(moving) == 0 {
		return false
	}
	return moving[0].Rank == dest.Rank-1
}

// CheckAndRemoveCompleteSet looks for a complete King to Ace run of a single
// suit, all face-up, at the top of the column.
// If found, it returns the column without those 13 cards, with its new top
// card turned face-up, and removed=true.
// Otherwise it returns the column unchanged and removed=false.
//
// col itself is never modified.
func CheckAndRemoveCompleteSet(col Column) (newColumn Column, removed bool) {
	if len(col) < SetSize {
		return col, false
	}
	start := len(col) - SetSize
	tail := col[start:]
	if tail[0].Rank != King || !CanMoveSequence(tail) {
		return col, false
	}
	rest, _ := col.Split(start)
	return rest, true
}

// ExposeTop returns the column with its top card face-up.
// If the column is empty or its top card is already face-up, col is returned
// as is; otherwise a copy is returned and col is left untouched.
func ExposeTop(col Column) Column {
	if len(col) == 0 || col[len(col)-1].FaceUp {
		return col
	}
	col = col.Clone()
	col[len(col)-1].FaceUp = true
	return col
}
