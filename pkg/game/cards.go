package game

import "strconv"

// Suit is a card suit, numbered 0-3 as it travels on the wire.
type Suit byte

const (
	SuitClubs Suit = iota
	SuitDiamonds
	SuitHearts
	SuitSpades
)

// Rank is a card rank, 1-13 with the ace low on the wire (but high in
// value).
type Rank uint16

const (
	RankAce   Rank = 1
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
)

// Card is a single playing card as dealt and displayed.
type Card struct {
	Rank Rank
	Suit Suit
}

// Value returns the card's blackjack worth: face cards count 10, the ace
// always counts 11, everything else counts its rank.
func (c Card) Value() int {
	if c.Rank >= RankJack {
		return 10
	}
	if c.Rank == RankAce {
		return 11
	}
	return int(c.Rank)
}

// String renders the card the way the table prints it, e.g. "A♣" or "10♥".
func (c Card) String() string {
	ranks := map[Rank]string{
		RankAce: "A", RankJack: "J", RankQueen: "Q", RankKing: "K",
	}
	suits := map[Suit]string{
		SuitClubs: "♣", SuitDiamonds: "♦", SuitHearts: "♥", SuitSpades: "♠",
	}
	r, ok := ranks[c.Rank]
	if !ok {
		r = strconv.Itoa(int(c.Rank))
	}
	s, ok := suits[c.Suit]
	if !ok {
		s = "?"
	}
	return r + s
}
