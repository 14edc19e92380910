package game

const (
	// InitialDeal is the number of cards dealt to the tableau at the start.
	InitialDeal = 54

	// StockSize is the number of cards left after the initial deal: 5 deals of 10.
	StockSize = DeckSize - InitialDeal
)

// DealInitial distributes a shuffled deck into the tableau and the stock.
//
// Cards are dealt one per column in turn, so columns 0 to 3 end up with 6 cards
// and columns 4 to 9 with 5. The top card of each column is then turned face-up.
// The remaining cards become the stock, in deck order: the last card is the top
// of the stock.
//
// The deck itself is not modified.
func DealInitial(deck []Card) (Tableau, []Card) {
	var tableau Tableau
	n := min(InitialDeal, len(deck))
	for i, card := range deck[:n] {
		card.FaceUp = false
		tableau[i%NumColumns] = append(tableau[i%NumColumns], card)
	}
	for i := range tableau {
		tableau[i] = ExposeTop(tableau[i])
	}

	stock := make([]Card, len(deck)-n)
	copy(stock, deck[n:])
	for i := range stock {
		stock[i].FaceUp = false
	}
	return tableau, stock
}
