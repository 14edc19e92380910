package game

// up and down build face-up and face-down cards for tests.
// IDs are irrelevant to the rules, so they are left at zero unless set explicitly.
func up(r Rank, s Suit) Card   { return Card{Rank: r, Suit: s, FaceUp: true} }
func down(r Rank, s Suit) Card { return Card{Rank: r, Suit: s} }

// run returns the face-up cards from rank `from` down to rank `to` of one suit.
func run(s Suit, from, to Rank) Column {
	var col Column
	for r := from; r >= to; r-- {
		col = append(col, up(r, s))
	}
	return col
}
