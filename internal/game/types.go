package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit of a card.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
)

// AllSuits in the order they are introduced as the difficulty grows:
// 1 suit uses only Spades, 2 suits add Hearts, 4 suits use all of them.
var AllSuits = [...]Suit{Spades, Hearts, Clubs, Diamonds}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	}
	return "?"
}

// IsRed returns whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank of a card, from Ace (1) to King (13).
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

var rankNames = [...]string{"?", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}
	return rankNames[r]
}

// Card is a single card in play.
// Only FaceUp ever changes after the deck is built.
type Card struct {
	ID     int  `json:"id"`
	Suit   Suit `json:"suit"`
	Rank   Rank `json:"rank"`
	FaceUp bool `json:"face_up"`
}

func (c Card) String() string {
	if !c.FaceUp {
		return "[" + c.Rank.String() + c.Suit.String() + "]"
	}
	return c.Rank.String() + c.Suit.String()
}

// Column is one pile of the tableau: index 0 is the bottom card, the last element is the top.
type Column []Card

// Top returns the top card of the column, or nil if it is empty.
// The returned pointer refers to a copy.
func (col Column) Top() *Card {
	if len(col) == 0 {
		return nil
	}
	top := col[len(col)-1]
	return &top
}

// Clone returns an independent copy of the column.
func (col Column) Clone() Column {
	if col == nil {
		return nil
	}
	out := make(Column, len(col))
	copy(out, col)
	return out
}

// Split cuts the column at index i, returning the cards below i and the cards
// from i to the top, as independent copies.
// The new top card of rest is turned face-up.
func (col Column) Split(i int) (rest, moving Column) {
	rest = col[:i].Clone()
	if rest == nil {
		rest = Column{}
	}
	moving = col[i:].Clone()
	return ExposeTop(rest), moving
}

func (col Column) String() string {
	parts := make([]string, len(col))
	for i, c := range col {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// NumColumns is the number of columns in the tableau.
const NumColumns = 10

// Tableau holds the playable columns.
type Tableau [NumColumns]Column

// Clone returns a deep copy of the tableau.
func (t Tableau) Clone() Tableau {
	var out Tableau
	for i, col := range t {
		out[i] = col.Clone()
	}
	return out
}

// Difficulty is the number of distinct suits in the deck.
type Difficulty int

const (
	OneSuit   Difficulty = 1
	TwoSuits  Difficulty = 2
	FourSuits Difficulty = 4
)

// Valid reports whether d is one of OneSuit, TwoSuits or FourSuits.
func (d Difficulty) Valid() bool {
	return d == OneSuit || d == TwoSuits || d == FourSuits
}

func (d Difficulty) String() string {
	switch d {
	case OneSuit:
		return "1 suit"
	case TwoSuits:
		return "2 suits"
	case FourSuits:
		return "4 suits"
	}
	return fmt.Sprintf("invalid difficulty (%d)", int(d))
}

// ParseDifficulty converts "1", "2" or "4" into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	d := Difficulty(n)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return d, nil
}
