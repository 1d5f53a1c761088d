// Package stats keeps the dealer's lifetime numbers: one record per match
// and the aggregate counters the HTTP API and dashboard read.
package stats

import (
	"sync"
	"time"
)

// MatchRecord is one match as the dealer saw it, faulted or clean.
type MatchRecord struct {
	ID         string    `json:"id" yaml:"id"`
	ClientName string    `json:"client_name" yaml:"client_name"`
	Requested  int       `json:"requested_rounds" yaml:"requested_rounds"`
	Wins       int       `json:"wins" yaml:"wins"`
	Losses     int       `json:"losses" yaml:"losses"`
	Ties       int       `json:"ties" yaml:"ties"`
	Fault      string    `json:"fault,omitempty" yaml:"fault,omitempty"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	EndedAt    time.Time `json:"ended_at" yaml:"ended_at"`
}

// Rounds is the number of rounds the match actually settled.
func (m MatchRecord) Rounds() int {
	return m.Wins + m.Losses + m.Ties
}

// Summary is a point-in-time view of the dealer's numbers. Win/loss/tie
// counts are from the players' perspective, same as the wire outcomes.
type Summary struct {
	DealerName    string    `json:"dealer_name" yaml:"dealer_name"`
	StartedAt     time.Time `json:"started_at" yaml:"started_at"`
	UptimeSeconds int64     `json:"uptime_seconds" yaml:"uptime_seconds"`
	Matches       int       `json:"matches" yaml:"matches"`
	Rounds        int       `json:"rounds" yaml:"rounds"`
	PlayerWins    int       `json:"player_wins" yaml:"player_wins"`
	PlayerLosses  int       `json:"player_losses" yaml:"player_losses"`
	PlayerTies    int       `json:"player_ties" yaml:"player_ties"`
	Faults        int       `json:"faults" yaml:"faults"`
	InMatch       bool      `json:"in_match" yaml:"in_match"`
	CurrentPlayer string    `json:"current_player,omitempty" yaml:"current_player,omitempty"`
}

// ActiveMatch describes the match being played right now.
type ActiveMatch struct {
	ID        string    `json:"id" yaml:"id"`
	Player    string    `json:"player" yaml:"player"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
}

// Registry is an in-memory stats store backed by a read/write mutex. One
// lives for the life of the dealer process.
type Registry struct {
	mu         sync.RWMutex
	dealerName string
	started    time.Time
	records    []MatchRecord

	matches int
	rounds  int
	wins    int
	losses  int
	ties    int
	faults  int

	inMatch bool
	active  ActiveMatch
}

// NewRegistry returns an empty registry for the named dealer.
func NewRegistry(dealerName string) *Registry {
	return &Registry{
		dealerName: dealerName,
		started:    time.Now(),
	}
}

// MatchStarted marks the table busy. player identifies who is seated; the
// remote address does until a name is known.
func (r *Registry) MatchStarted(id, player string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inMatch = true
	r.active = ActiveMatch{ID: id, Player: player, StartedAt: time.Now()}
}

// MatchEnded appends the record and folds it into the aggregates.
func (r *Registry) MatchEnded(rec MatchRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	r.matches++
	r.rounds += rec.Rounds()
	r.wins += rec.Wins
	r.losses += rec.Losses
	r.ties += rec.Ties
	if rec.Fault != "" {
		r.faults++
	}
	r.inMatch = false
	r.active = ActiveMatch{}
}

// Summary returns the aggregate view as of now.
func (r *Registry) Summary() Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := Summary{
		DealerName:    r.dealerName,
		StartedAt:     r.started,
		UptimeSeconds: int64(time.Since(r.started).Seconds()),
		Matches:       r.matches,
		Rounds:        r.rounds,
		PlayerWins:    r.wins,
		PlayerLosses:  r.losses,
		PlayerTies:    r.ties,
		Faults:        r.faults,
		InMatch:       r.inMatch,
	}
	if r.inMatch {
		s.CurrentPlayer = r.active.Player
	}
	return s
}

// Active returns the match being played right now, if any.
func (r *Registry) Active() (ActiveMatch, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active, r.inMatch
}

// Match returns the record with the given id.
func (r *Registry) Match(id string) (MatchRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].ID == id {
			return r.records[i], true
		}
	}
	return MatchRecord{}, false
}

// Recent returns up to limit match records, most recent first. limit <= 0
// returns everything.
func (r *Registry) Recent(limit int) []MatchRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]MatchRecord, 0)
	for i := len(r.records) - 1; i >= 0; i-- {
		out = append(out, r.records[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
