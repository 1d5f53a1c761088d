// Package client is the player's side of the table: it waits for a dealer
// offer on the local network, dials the advertised port, and plays the
// match.
package client

import (
	"context"
	"fmt"
	"log"
	"net"

	"github.com/hadari24/blackjack-network/pkg/discovery"
	"github.com/hadari24/blackjack-network/pkg/session"
)

// DefaultOfferPort is where dealers broadcast and players listen.
const DefaultOfferPort = 13122

// Option configures a Client.
type Option func(*Client)

// WithOfferPort sets the UDP port to listen on for offers.
func WithOfferPort(port int) Option {
	return func(c *Client) {
		c.offerPort = port
	}
}

// WithStrategy sets how the player answers its turns.
func WithStrategy(s session.Strategy) Option {
	return func(c *Client) {
		c.strategy = s
	}
}

// WithEvents registers callbacks for match progress.
func WithEvents(e session.Events) Option {
	return func(c *Client) {
		c.events = e
	}
}

// Client plays matches under a fixed name against whatever dealer it finds.
type Client struct {
	name      string
	offerPort int
	strategy  session.Strategy
	events    session.Events
}

// New creates a Client that plays as name.
func New(name string, opts ...Option) *Client {
	c := &Client{
		name:      name,
		offerPort: DefaultOfferPort,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Play finds one dealer, connects, and plays a match of the given number of
// rounds. It returns the dealer it played against alongside the tally.
func (c *Client) Play(ctx context.Context, rounds int) (discovery.Dealer, session.Tally, error) {
	l, err := discovery.OpenListener(c.offerPort)
	if err != nil {
		return discovery.Dealer{}, session.Tally{}, err
	}
	defer l.Close()

	log.Printf("client: listening for offers on udp :%d", c.offerPort)
	dealer, err := l.Next(ctx)
	if err != nil {
		return discovery.Dealer{}, session.Tally{}, fmt.Errorf("client: discover dealer: %w", err)
	}
	log.Printf("client: offer from %q, table at %s", dealer.Name, dealer.Addr)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", dealer.Addr.String())
	if err != nil {
		return dealer, session.Tally{}, fmt.Errorf("client: dial %s: %w", dealer.Addr, err)
	}
	defer conn.Close()

	opts := []session.PlayerOption{session.WithEvents(c.events)}
	if c.strategy != nil {
		opts = append(opts, session.WithStrategy(c.strategy))
	}
	tally, err := session.NewPlayer(c.name, rounds, opts...).Run(conn)
	if err != nil {
		return dealer, tally, err
	}
	log.Printf("client: match done: %d-%d-%d, win rate %.2f",
		tally.Wins, tally.Losses, tally.Ties, tally.WinRate())
	return dealer, tally, nil
}
