package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hadari24/blackjack-network/pkg/client"
	"github.com/hadari24/blackjack-network/pkg/game"
	"github.com/hadari24/blackjack-network/pkg/protocol"
	"github.com/hadari24/blackjack-network/pkg/session"
)

var (
	playName    string
	playRounds  int
	playAuto    bool
	playStandAt int
	playOffer   int
	playTimeout time.Duration
	playAgain   bool
)

var (
	roundStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2"))

	lossStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("1"))

	tieStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("3"))
)

// playCmd joins a discovered dealer for a match.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Find a dealer on the network and play a match",
	Long: `Play listens for a dealer's UDP offer, connects to the advertised
table, and plays the requested number of rounds. By default you are asked
to hit or stand each turn; --auto plays a fixed strategy instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if playName != "" {
			cfg.PlayerName = playName
		}
		if cmd.Flags().Changed("rounds") {
			cfg.Rounds = playRounds
		}
		if cmd.Flags().Changed("offer-port") {
			cfg.OfferPort = playOffer
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		opts := []client.Option{
			client.WithOfferPort(cfg.OfferPort),
			client.WithEvents(matchEvents(out, playAuto)),
		}
		if playAuto {
			opts = append(opts, client.WithStrategy(session.StandAt(playStandAt)))
		} else {
			opts = append(opts, client.WithStrategy(&promptStrategy{
				in:  bufio.NewScanner(cmd.InOrStdin()),
				out: out,
			}))
		}
		c := client.New(cfg.PlayerName, opts...)

		for {
			ctx := cmd.Context()
			cancel := context.CancelFunc(func() {})
			if playTimeout > 0 {
				ctx, cancel = context.WithTimeout(cmd.Context(), playTimeout)
			}
			dealer, tally, err := c.Play(ctx, cfg.Rounds)
			cancel()
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\nMatch against %s: %s  (win rate %.0f%%)\n",
				dealer.Name, scoreline(tally), tally.WinRate()*100)
			if !playAgain {
				return nil
			}
			fmt.Fprintln(out, "\nLooking for the next table...")
		}
	},
}

// scoreline renders a tally as styled win/loss/tie counts.
func scoreline(t session.Tally) string {
	return fmt.Sprintf("%s %s %s",
		winStyle.Render(fmt.Sprintf("%dW", t.Wins)),
		lossStyle.Render(fmt.Sprintf("%dL", t.Losses)),
		tieStyle.Render(fmt.Sprintf("%dT", t.Ties)))
}

// matchEvents prints match progress. In interactive mode the prompt already
// shows the hands, so only auto mode prints them per card.
func matchEvents(out io.Writer, showHands bool) session.Events {
	return session.Events{
		RoundStart: func(round, rounds int) {
			fmt.Fprintf(out, "\n%s\n", roundStyle.Render(fmt.Sprintf("Round %d of %d", round, rounds)))
		},
		Hands: func(player, dealer game.Hand) {
			if !showHands {
				return
			}
			fmt.Fprintf(out, "You: %s (%d)  Dealer: %s (%d)\n",
				player, player.Total(), dealer, dealer.Total())
		},
		Bust: func(total int) {
			fmt.Fprintf(out, "%s\n", lossStyle.Render(fmt.Sprintf("Bust at %d!", total)))
		},
		Result: func(round int, outcome byte) {
			var styled string
			switch outcome {
			case protocol.OutcomeWin:
				styled = winStyle.Render("You win")
			case protocol.OutcomeLoss:
				styled = lossStyle.Render("Dealer wins")
			case protocol.OutcomeTie:
				styled = tieStyle.Render("Push")
			default:
				styled = protocol.OutcomeName(outcome)
			}
			fmt.Fprintf(out, "%s\n", styled)
		},
	}
}

// promptStrategy asks the human at the terminal to hit or stand.
type promptStrategy struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *promptStrategy) Decide(hand game.Hand, up game.Card) (string, error) {
	fmt.Fprintf(p.out, "Your hand: %s (%d)  Dealer shows: %s\n", hand, hand.Total(), up)
	for {
		fmt.Fprint(p.out, "[h]it or [s]tand? ")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("input closed")
		}
		switch strings.ToLower(strings.TrimSpace(p.in.Text())) {
		case "h", "hit":
			return protocol.DecisionHit, nil
		case "s", "stand":
			return protocol.DecisionStand, nil
		}
		fmt.Fprintln(p.out, "Please answer h or s.")
	}
}

func init() {
	playCmd.Flags().StringVar(&playName, "name", "", "player name sent to the dealer (default \"Player\")")
	playCmd.Flags().IntVar(&playRounds, "rounds", 1, "rounds to request, 0 through 255")
	playCmd.Flags().BoolVar(&playAuto, "auto", false, "play automatically instead of prompting")
	playCmd.Flags().IntVar(&playStandAt, "stand-at", game.DealerStand, "with --auto, hit until reaching this total")
	playCmd.Flags().IntVar(&playOffer, "offer-port", client.DefaultOfferPort, "UDP port to listen on for offers")
	playCmd.Flags().DurationVar(&playTimeout, "timeout", 0, "give up if no match finishes in this long, 0 waits forever")
	playCmd.Flags().BoolVar(&playAgain, "again", false, "after a match, look for the next dealer and keep playing")
	rootCmd.AddCommand(playCmd)
}
