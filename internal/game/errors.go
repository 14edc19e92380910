package game

import "errors"

var (
	ErrInvalidDifficulty = errors.New("difficulty must be 1, 2 or 4 suits")
	ErrOutOfRange        = errors.New("column or card index out of range")
	ErrNotMovable        = errors.New("cards are not a movable same-suit descending run")
	ErrIllegalMove       = errors.New("illegal move")
	ErrEmptyColumn       = errors.New("all columns must have at least one card before dealing")
	ErrStockEmpty        = errors.New("no cards left in the stock")
	ErrGameOver          = errors.New("game is already won")
)

// Explain returns the text shown to a player for an error returned by a game action.
func Explain(err error) string {
	switch {
	case errors.Is(err, ErrEmptyColumn):
		return "You can't deal while there is an empty column."
	case errors.Is(err, ErrStockEmpty):
		return "No more cards to deal."
	case errors.Is(err, ErrGameOver):
		return "The game is over: start a new one."
	}
	return err.Error()
}
