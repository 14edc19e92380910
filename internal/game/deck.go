package game

import (
	"fmt"
	"math/rand/v2"
)

// DeckSize is the number of cards in a Spider deck: two standard decks worth.
const DeckSize = 104

// CreateDeck builds the 104 cards for the given difficulty and shuffles them.
//
// The first d suits of AllSuits are used, and each contributes Ace to King
// repeatedly until the deck is full, so every suit appears 104/d times.
// Cards get IDs 0 to 103 (before shuffling) and start face-down.
//
// If rng is nil the global math/rand/v2 source is used.
// It panics if d is not a valid Difficulty: callers are expected to validate
// user input with ParseDifficulty or Difficulty.Valid.
func CreateDeck(d Difficulty, rng *rand.Rand) []Card {
	if !d.Valid() {
		panic(fmt.Sprintf("game.CreateDeck: %s", d))
	}
	copies := DeckSize / (int(d) * int(King))
	deck := make([]Card, 0, DeckSize)
	for _, suit := range AllSuits[:d] {
		for range copies {
			for rank := Ace; rank <= King; rank++ {
				deck = append(deck, Card{ID: len(deck), Suit: suit, Rank: rank})
			}
		}
	}
	shuffle(deck, rng)
	return deck
}

// shuffle is a Fisher-Yates shuffle.
func shuffle(cards []Card, rng *rand.Rand) {
	swap := func(i, j int) { cards[i], cards[j] = cards[j], cards[i] }
	if rng == nil {
		rand.Shuffle(len(cards), swap)
		return
	}
	rng.Shuffle(len(cards), swap)
}
