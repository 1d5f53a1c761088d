package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestCardValue(t *testing.T) {
	tests := []struct {
		card Card
		want int
	}{
		{Card{Rank: RankAce, Suit: SuitClubs}, 11},
		{Card{Rank: 2, Suit: SuitHearts}, 2},
		{Card{Rank: 9, Suit: SuitDiamonds}, 9},
		{Card{Rank: 10, Suit: SuitSpades}, 10},
		{Card{Rank: RankJack, Suit: SuitClubs}, 10},
		{Card{Rank: RankQueen, Suit: SuitHearts}, 10},
		{Card{Rank: RankKing, Suit: SuitSpades}, 10},
	}
	for _, tt := range tests {
		if got := tt.card.Value(); got != tt.want {
			t.Errorf("%v.Value() = %d, want %d", tt.card, got, tt.want)
		}
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{Card{Rank: RankAce, Suit: SuitClubs}, "A♣"},
		{Card{Rank: 10, Suit: SuitHearts}, "10♥"},
		{Card{Rank: RankKing, Suit: SuitSpades}, "K♠"},
		{Card{Rank: 7, Suit: SuitDiamonds}, "7♦"},
		{Card{Rank: 5, Suit: Suit(9)}, "5?"},
	}
	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestHandTotal(t *testing.T) {
	tests := []struct {
		name string
		hand Hand
		want int
	}{
		{"empty", Hand{}, 0},
		{"ace and king", Hand{{Rank: RankAce}, {Rank: RankKing}}, 21},
		{"two aces bust outright", Hand{{Rank: RankAce}, {Rank: RankAce}}, 22},
		{"numbers", Hand{{Rank: 2}, {Rank: 5}, {Rank: 9}}, 16},
		{"faces", Hand{{Rank: RankJack}, {Rank: RankQueen}, {Rank: RankKing}}, 30},
	}
	for _, tt := range tests {
		if got := tt.hand.Total(); got != tt.want {
			t.Errorf("%s: Total() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestHandBusted(t *testing.T) {
	under := Hand{{Rank: RankAce}, {Rank: RankKing}}
	if under.Busted() {
		t.Errorf("21 reported as bust")
	}
	over := Hand{{Rank: RankKing}, {Rank: RankQueen}, {Rank: 2}}
	if !over.Busted() {
		t.Errorf("22 not reported as bust")
	}
}

func TestHandString(t *testing.T) {
	h := Hand{{Rank: RankAce, Suit: SuitClubs}, {Rank: 10, Suit: SuitHearts}}
	if got := h.String(); got != "A♣ 10♥" {
		t.Errorf("String() = %q, want %q", got, "A♣ 10♥")
	}
}

func TestNewDeckCanonicalOrder(t *testing.T) {
	d := NewDeck()
	if len(d) != 52 {
		t.Fatalf("len = %d, want 52", len(d))
	}
	if d[0] != (Card{Rank: RankAce, Suit: SuitClubs}) {
		t.Errorf("first card = %v, want A♣", d[0])
	}
	if d[51] != (Card{Rank: RankKing, Suit: SuitSpades}) {
		t.Errorf("last card = %v, want K♠", d[51])
	}
	seen := make(map[Card]bool, 52)
	for _, c := range d {
		if seen[c] {
			t.Fatalf("duplicate card %v", c)
		}
		seen[c] = true
	}
}

func TestDrawFromTop(t *testing.T) {
	d := NewDeck()
	first, err := d.Draw()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if first != (Card{Rank: RankKing, Suit: SuitSpades}) {
		t.Errorf("first draw = %v, want K♠", first)
	}
	second, err := d.Draw()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if second != (Card{Rank: RankQueen, Suit: SuitSpades}) {
		t.Errorf("second draw = %v, want Q♠", second)
	}
	if len(d) != 50 {
		t.Errorf("len after two draws = %d, want 50", len(d))
	}
}

func TestDrawExhausted(t *testing.T) {
	d := Deck{}
	if _, err := d.Draw(); !errors.Is(err, ErrDeckExhausted) {
		t.Errorf("err = %v, want ErrDeckExhausted", err)
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := NewDeck()
	a.Shuffle(rand.New(rand.NewSource(7)))
	b := NewDeck()
	b.Shuffle(rand.New(rand.NewSource(7)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %v vs %v", i, a[i], b[i])
		}
	}
	seen := make(map[Card]bool, 52)
	for _, c := range a {
		if seen[c] {
			t.Fatalf("shuffle duplicated %v", c)
		}
		seen[c] = true
	}
}
