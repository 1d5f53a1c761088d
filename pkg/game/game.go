// Package game holds the blackjack rules shared by dealer and player: cards,
// hands, decks, and the two thresholds the whole game turns on.
package game

// Rule thresholds.
const (
	// BustLimit is the highest hand total that is still in play.
	BustLimit = 21

	// DealerStand is the total at which the dealer stops drawing.
	DealerStand = 17
)
