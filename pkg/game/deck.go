package game

import (
	"errors"
	"math/rand"
)

// ErrDeckExhausted is returned by Draw when no cards remain.
var ErrDeckExhausted = errors.New("game: deck exhausted")

// Deck is a pile of cards. Draw takes from the end, so the last element is
// the top of the pile.
type Deck []Card

// NewDeck builds the standard 52 cards in canonical order: suits 0-3 on the
// outside, ranks 1-13 within each suit.
func NewDeck() Deck {
	deck := make(Deck, 0, 52)
	for s := SuitClubs; s <= SuitSpades; s++ {
		for r := RankAce; r <= RankKing; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Shuffle permutes the deck in place using the supplied source.
func (d Deck) Shuffle(r *rand.Rand) {
	// Fisher-Yates
	for i := len(d) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(*d) == 0 {
		return Card{}, ErrDeckExhausted
	}
	top := (*d)[len(*d)-1]
	*d = (*d)[:len(*d)-1]
	return top, nil
}
