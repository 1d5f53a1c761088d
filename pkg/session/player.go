package session

import (
	"fmt"
	"io"

	"github.com/hadari24/blackjack-network/pkg/game"
	"github.com/hadari24/blackjack-network/pkg/protocol"
)

// Strategy decides the player's move during its turn.
type Strategy interface {
	// Decide returns DecisionHit or DecisionStand given the player's current
	// hand and the dealer's upcard.
	Decide(hand game.Hand, up game.Card) (string, error)
}

// StandAt returns a Strategy that hits while the hand total is below limit
// and stands once it reaches it.
func StandAt(limit int) Strategy {
	return standAt(limit)
}

type standAt int

func (s standAt) Decide(hand game.Hand, _ game.Card) (string, error) {
	if hand.Total() < int(s) {
		return protocol.DecisionHit, nil
	}
	return protocol.DecisionStand, nil
}

// Events carries optional callbacks the player session fires as a match
// progresses. Nil callbacks are skipped.
type Events struct {
	// RoundStart fires before each round, 1-based.
	RoundStart func(round, rounds int)
	// Hands fires whenever a card lands on either side of the table.
	Hands func(player, dealer game.Hand)
	// Bust fires when the player's own hand goes over the limit.
	Bust func(total int)
	// Result fires when a round closes, with the outcome code as received.
	Result func(round int, outcome byte)
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithStrategy sets how the player decides its moves. The default stands at
// the dealer's own threshold.
func WithStrategy(s Strategy) PlayerOption {
	return func(p *Player) {
		p.strategy = s
	}
}

// WithEvents registers callbacks for match progress.
func WithEvents(e Events) PlayerOption {
	return func(p *Player) {
		p.events = e
	}
}

// Player plays the table side of a match: it opens with a game request,
// answers its turns through a Strategy, and keeps score from the results
// the dealer sends.
type Player struct {
	name     string
	rounds   int
	strategy Strategy
	events   Events
}

// NewPlayer creates a Player that will ask for the given number of rounds.
func NewPlayer(name string, rounds int, opts ...PlayerOption) *Player {
	p := &Player{
		name:     name,
		rounds:   rounds,
		strategy: StandAt(game.DealerStand),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run plays the full match on rw and returns the tally of results. The
// request is rejected up front if the round count does not fit the wire
// format.
func (p *Player) Run(rw io.ReadWriter) (Tally, error) {
	var tally Tally

	if err := protocol.Write(rw, protocol.Request{Rounds: p.rounds, ClientName: p.name}); err != nil {
		return tally, fmt.Errorf("session: send request: %w", err)
	}

	for round := 1; round <= p.rounds; round++ {
		if p.events.RoundStart != nil {
			p.events.RoundStart(round, p.rounds)
		}
		outcome, err := p.playRound(rw)
		if err != nil {
			return tally, fmt.Errorf("session: round %d: %w", round, err)
		}
		tally.add(outcome)
		if p.events.Result != nil {
			p.events.Result(round, outcome)
		}
	}
	return tally, nil
}

// playRound follows one round from the initial deal to the result payload.
func (p *Player) playRound(rw io.ReadWriter) (byte, error) {
	var player, dealer game.Hand

	// Initial deal: two cards for the player, then the dealer upcard.
	for i := 0; i < 3; i++ {
		deal, err := protocol.ReadDeal(rw)
		if err != nil {
			return 0, err
		}
		if i < 2 {
			player = append(player, toCard(deal))
		} else {
			dealer = append(dealer, toCard(deal))
		}
	}
	if p.events.Hands != nil {
		p.events.Hands(player, dealer)
	}
	up := dealer[0]

	// Player turn. The bust check comes first: a hand already over the
	// limit, even straight off the deal, never sends a decision.
	for {
		if player.Busted() {
			if p.events.Bust != nil {
				p.events.Bust(player.Total())
			}
			break
		}
		token, err := p.strategy.Decide(player, up)
		if err != nil {
			return 0, fmt.Errorf("decide: %w", err)
		}
		if err := protocol.Write(rw, protocol.Decision{Token: token}); err != nil {
			return 0, err
		}
		if token == protocol.DecisionStand {
			break
		}
		deal, err := protocol.ReadDeal(rw)
		if err != nil {
			return 0, err
		}
		// A dealer may close the round on the spot instead of dealing.
		if deal.Outcome != protocol.OutcomeNotOver {
			return deal.Outcome, nil
		}
		player = append(player, toCard(deal))
		if p.events.Hands != nil {
			p.events.Hands(player, dealer)
		}
	}

	// Dealer reveal and result. Cards keep arriving while the round is
	// open; the first closing payload ends it.
	for {
		deal, err := protocol.ReadDeal(rw)
		if err != nil {
			return 0, err
		}
		if deal.Outcome == protocol.OutcomeNotOver {
			dealer = append(dealer, toCard(deal))
			if p.events.Hands != nil {
				p.events.Hands(player, dealer)
			}
			continue
		}
		return deal.Outcome, nil
	}
}

// toCard lifts a wire payload's card fields into the game's card type.
func toCard(d protocol.Deal) game.Card {
	return game.Card{Rank: game.Rank(d.Rank), Suit: game.Suit(d.Suit)}
}
