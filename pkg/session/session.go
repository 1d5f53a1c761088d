// Package session runs blackjack matches over an established connection: the
// dealer side drives the rounds and enforces the rules, the player side
// follows them. Both sides work against any io.ReadWriter, so a match runs
// the same over TCP or an in-memory pipe.
package session

import "github.com/hadari24/blackjack-network/pkg/protocol"

// Tally counts round results from the player's perspective.
type Tally struct {
	Wins   int
	Losses int
	Ties   int
}

// add records one round's outcome. Unknown outcome codes count nothing.
func (t *Tally) add(outcome byte) {
	switch outcome {
	case protocol.OutcomeWin:
		t.Wins++
	case protocol.OutcomeLoss:
		t.Losses++
	case protocol.OutcomeTie:
		t.Ties++
	}
}

// Rounds is the number of rounds the tally covers.
func (t Tally) Rounds() int {
	return t.Wins + t.Losses + t.Ties
}

// WinRate is the fraction of rounds won, 0 for an empty tally.
func (t Tally) WinRate() float64 {
	if t.Rounds() == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Rounds())
}
