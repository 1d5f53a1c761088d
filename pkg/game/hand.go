package game

import "strings"

// Hand is the cards a participant holds, in the order they were dealt.
type Hand []Card

// Total sums the hand's blackjack value. Aces always count 11; there is no
// soft recount, so a pair of aces busts on the spot.
func (h Hand) Total() int {
	total := 0
	for _, c := range h {
		total += c.Value()
	}
	return total
}

// Busted reports whether the hand has gone over the bust limit.
func (h Hand) Busted() bool {
	return h.Total() > BustLimit
}

// String renders the hand as space-separated cards, e.g. "A♣ 10♥".
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
