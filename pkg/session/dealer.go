package session

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hadari24/blackjack-network/pkg/game"
	"github.com/hadari24/blackjack-network/pkg/protocol"
)

// DealerOption configures a Dealer.
type DealerOption func(*Dealer)

// WithRand sets the randomness source used to shuffle each round's deck.
func WithRand(r *rand.Rand) DealerOption {
	return func(d *Dealer) {
		d.rng = r
	}
}

// WithDeckFunc replaces the per-round deck builder. Tests use it to stack a
// round with known cards.
func WithDeckFunc(fn func() game.Deck) DealerOption {
	return func(d *Dealer) {
		d.newDeck = fn
	}
}

// Dealer plays the house side of a match: it reads the opening request,
// deals from a fresh shuffled deck every round, and settles each round
// with a result payload.
type Dealer struct {
	rng     *rand.Rand
	newDeck func() game.Deck
}

// NewDealer creates a Dealer with the given options.
func NewDealer(opts ...DealerOption) *Dealer {
	d := &Dealer{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.newDeck == nil {
		d.newDeck = func() game.Deck {
			deck := game.NewDeck()
			deck.Shuffle(d.rng)
			return deck
		}
	}
	return d
}

// Run plays a full match on rw: it reads the game request, plays the
// requested number of rounds, and returns the request alongside the tally
// of results from the player's perspective. A protocol fault or dropped
// connection ends the match early with the rounds settled so far.
func (d *Dealer) Run(rw io.ReadWriter) (protocol.Request, Tally, error) {
	var tally Tally

	req, err := protocol.ReadRequest(rw)
	if err != nil {
		return protocol.Request{}, tally, fmt.Errorf("session: read request: %w", err)
	}
	log.Printf("dealer: match with %q, %d rounds", req.ClientName, req.Rounds)

	for round := 1; round <= req.Rounds; round++ {
		outcome, err := d.playRound(rw)
		if err != nil {
			return req, tally, fmt.Errorf("session: round %d: %w", round, err)
		}
		tally.add(outcome)
		log.Printf("dealer: round %d/%d: %s", round, req.Rounds, protocol.OutcomeName(outcome))
	}
	return req, tally, nil
}

// playRound runs one round on a fresh deck and returns the outcome sent to
// the player.
func (d *Dealer) playRound(rw io.ReadWriter) (byte, error) {
	deck := d.newDeck()

	var player, dealer game.Hand

	// Initial deal: two player cards and the dealer upcard, each announced
	// as it lands. The hole card is drawn now but stays hidden.
	for i := 0; i < 2; i++ {
		if _, err := dealCard(rw, &deck, &player); err != nil {
			return 0, err
		}
	}
	if _, err := dealCard(rw, &deck, &dealer); err != nil {
		return 0, err
	}
	hole, err := deck.Draw()
	if err != nil {
		return 0, err
	}

	playerBusted := false
	dealerBusted := false
	if player.Busted() {
		// Bust straight off the deal. No turns; the hole card is never shown.
		playerBusted = true
	} else {
		playerBusted, err = d.playerTurn(rw, &deck, &player)
		if err != nil {
			return 0, err
		}
		if !playerBusted {
			dealerBusted, err = d.dealerTurn(rw, &deck, &dealer, hole)
			if err != nil {
				return 0, err
			}
		}
	}

	outcome := settle(player, dealer, playerBusted, dealerBusted)
	if err := protocol.Write(rw, protocol.Deal{Outcome: outcome}); err != nil {
		return 0, err
	}
	return outcome, nil
}

// playerTurn reads decisions until the player stands or busts. The bust
// check runs before each read, so a player already over the limit never
// gets asked.
func (d *Dealer) playerTurn(rw io.ReadWriter, deck *game.Deck, hand *game.Hand) (bool, error) {
	for {
		if hand.Busted() {
			return true, nil
		}
		dec, err := protocol.ReadDecision(rw)
		if err != nil {
			return false, err
		}
		switch dec.Token {
		case protocol.DecisionHit:
			if _, err := dealCard(rw, deck, hand); err != nil {
				return false, err
			}
		case protocol.DecisionStand:
			return false, nil
		default:
			return false, fmt.Errorf("%w: %q", protocol.ErrBadDecision, dec.Token)
		}
	}
}

// dealerTurn shows the hole card, then draws until the house reaches its
// standing total or busts.
func (d *Dealer) dealerTurn(rw io.ReadWriter, deck *game.Deck, hand *game.Hand, hole game.Card) (bool, error) {
	*hand = append(*hand, hole)
	if err := announce(rw, hole); err != nil {
		return false, err
	}
	for {
		total := hand.Total()
		if total > game.BustLimit {
			return true, nil
		}
		if total >= game.DealerStand {
			return false, nil
		}
		if _, err := dealCard(rw, deck, hand); err != nil {
			return false, err
		}
	}
}

// settle decides the round from the player's perspective. A player bust
// loses outright; only when both sides stay under the limit do the totals
// get compared.
func settle(player, dealer game.Hand, playerBusted, dealerBusted bool) byte {
	if playerBusted {
		return protocol.OutcomeLoss
	}
	if dealerBusted {
		return protocol.OutcomeWin
	}
	playerTotal, dealerTotal := player.Total(), dealer.Total()
	switch {
	case playerTotal > dealerTotal:
		return protocol.OutcomeWin
	case playerTotal < dealerTotal:
		return protocol.OutcomeLoss
	default:
		return protocol.OutcomeTie
	}
}

// dealCard draws the top card into hand and announces it to the player.
func dealCard(w io.Writer, deck *game.Deck, hand *game.Hand) (game.Card, error) {
	c, err := deck.Draw()
	if err != nil {
		return game.Card{}, err
	}
	*hand = append(*hand, c)
	if err := announce(w, c); err != nil {
		return game.Card{}, err
	}
	return c, nil
}

// announce sends a card to the player inside a round-still-open payload.
func announce(w io.Writer, c game.Card) error {
	return protocol.Write(w, protocol.Deal{
		Outcome: protocol.OutcomeNotOver,
		Rank:    uint16(c.Rank),
		Suit:    byte(c.Suit),
	})
}
