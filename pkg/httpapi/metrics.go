package httpapi

import (
	"fmt"
	"net/http"
)

// handleMetrics exports the dealer's counters in Prometheus text exposition
// format. Win/loss/tie counts are from the players' perspective.
func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")

	sum := s.reg.Summary()
	fmt.Fprintf(w, "# HELP blackjack_matches_total Total number of matches played.\n")
	fmt.Fprintf(w, "# TYPE blackjack_matches_total counter\n")
	fmt.Fprintf(w, "blackjack_matches_total %d\n\n", sum.Matches)

	fmt.Fprintf(w, "# HELP blackjack_rounds_total Total number of rounds settled.\n")
	fmt.Fprintf(w, "# TYPE blackjack_rounds_total counter\n")
	fmt.Fprintf(w, "blackjack_rounds_total %d\n\n", sum.Rounds)

	fmt.Fprintf(w, "# HELP blackjack_player_wins_total Rounds the players won.\n")
	fmt.Fprintf(w, "# TYPE blackjack_player_wins_total counter\n")
	fmt.Fprintf(w, "blackjack_player_wins_total %d\n\n", sum.PlayerWins)

	fmt.Fprintf(w, "# HELP blackjack_player_losses_total Rounds the players lost.\n")
	fmt.Fprintf(w, "# TYPE blackjack_player_losses_total counter\n")
	fmt.Fprintf(w, "blackjack_player_losses_total %d\n\n", sum.PlayerLosses)

	fmt.Fprintf(w, "# HELP blackjack_player_ties_total Rounds that pushed.\n")
	fmt.Fprintf(w, "# TYPE blackjack_player_ties_total counter\n")
	fmt.Fprintf(w, "blackjack_player_ties_total %d\n\n", sum.PlayerTies)

	fmt.Fprintf(w, "# HELP blackjack_faults_total Matches that ended on a protocol or network fault.\n")
	fmt.Fprintf(w, "# TYPE blackjack_faults_total counter\n")
	fmt.Fprintf(w, "blackjack_faults_total %d\n\n", sum.Faults)

	busy := 0
	if sum.InMatch {
		busy = 1
	}
	fmt.Fprintf(w, "# HELP blackjack_table_busy Whether a match is being played right now.\n")
	fmt.Fprintf(w, "# TYPE blackjack_table_busy gauge\n")
	fmt.Fprintf(w, "blackjack_table_busy %d\n\n", busy)

	fmt.Fprintf(w, "# HELP blackjack_uptime_seconds Seconds since the dealer opened the table.\n")
	fmt.Fprintf(w, "# TYPE blackjack_uptime_seconds gauge\n")
	fmt.Fprintf(w, "blackjack_uptime_seconds %d\n", sum.UptimeSeconds)
}
