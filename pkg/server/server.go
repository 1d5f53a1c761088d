// Package server runs the dealer end to end: it advertises the table over
// UDP, accepts one player at a time over TCP, plays the match, records the
// result, and goes back to advertising.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/hadari24/blackjack-network/pkg/discovery"
	"github.com/hadari24/blackjack-network/pkg/protocol"
	"github.com/hadari24/blackjack-network/pkg/session"
	"github.com/hadari24/blackjack-network/pkg/stats"
)

// Defaults for a table nobody configured.
const (
	DefaultDealerName    = "Bossi"
	DefaultTCPPort       = 2005
	DefaultOfferPort     = 13122
	DefaultOfferInterval = time.Second
)

// Option configures a Server.
type Option func(*Server)

// WithDealerName sets the name broadcast in offers.
func WithDealerName(name string) Option {
	return func(s *Server) {
		s.name = name
	}
}

// WithTCPPort sets the game port. Port 0 binds an ephemeral port; offers
// always advertise the port actually bound.
func WithTCPPort(port int) Option {
	return func(s *Server) {
		s.tcpPort = port
	}
}

// WithOfferPort sets the UDP port offers are sent to.
func WithOfferPort(port int) Option {
	return func(s *Server) {
		s.offerPort = port
	}
}

// WithOfferInterval sets the advertising cadence, which doubles as the
// accept timeout between offers.
func WithOfferInterval(d time.Duration) Option {
	return func(s *Server) {
		s.offerInterval = d
	}
}

// WithBroadcastAddr overrides where offers are sent, for directed broadcast
// or loopback runs.
func WithBroadcastAddr(ip net.IP) Option {
	return func(s *Server) {
		s.broadcastIP = ip
	}
}

// WithDealer injects the session dealer, stacked decks and all.
func WithDealer(d *session.Dealer) Option {
	return func(s *Server) {
		s.dealer = d
	}
}

// WithStats injects a shared stats registry, letting the HTTP API read the
// same numbers the server writes.
func WithStats(reg *stats.Registry) Option {
	return func(s *Server) {
		s.stats = reg
	}
}

// Server owns the dealer's sockets and plays one match at a time.
type Server struct {
	name          string
	tcpPort       int
	offerPort     int
	offerInterval time.Duration
	broadcastIP   net.IP
	dealer        *session.Dealer
	stats         *stats.Registry
}

// New creates a Server with the given options.
func New(opts ...Option) *Server {
	s := &Server{
		name:          DefaultDealerName,
		tcpPort:       DefaultTCPPort,
		offerPort:     DefaultOfferPort,
		offerInterval: DefaultOfferInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dealer == nil {
		s.dealer = session.NewDealer()
	}
	if s.stats == nil {
		s.stats = stats.NewRegistry(s.name)
	}
	return s
}

// Stats returns the registry this server records matches into.
func (s *Server) Stats() *stats.Registry {
	return s.stats
}

// Run binds the game and broadcast sockets and serves until ctx is
// cancelled: offer, accept, play, close, and around again.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.tcpPort))
	if err != nil {
		return fmt.Errorf("server: listen tcp :%d: %w", s.tcpPort, err)
	}
	defer ln.Close()
	tcpLn := ln.(*net.TCPListener)
	boundPort := ln.Addr().(*net.TCPAddr).Port

	var annOpts []discovery.AnnouncerOption
	if s.broadcastIP != nil {
		annOpts = append(annOpts, discovery.WithBroadcastAddr(s.broadcastIP))
	}
	ann, err := discovery.OpenAnnouncer(s.offerPort, annOpts...)
	if err != nil {
		return err
	}
	defer ann.Close()

	offer := protocol.Offer{TCPPort: uint16(boundPort), DealerName: s.name}
	log.Printf("server: dealer %q up, tcp :%d, offers to udp :%d", s.name, boundPort, s.offerPort)

	for {
		conn, err := s.awaitPlayer(ctx, tcpLn, ann, offer)
		if err != nil {
			if ctx.Err() != nil {
				log.Printf("server: shutting down")
				return nil
			}
			return err
		}

		s.playMatch(conn)

		// Breathe before advertising again, like any croupier between
		// players.
		select {
		case <-ctx.Done():
			log.Printf("server: shutting down")
			return nil
		case <-time.After(s.offerInterval):
		}
	}
}

// awaitPlayer alternates one offer broadcast with one accept window until a
// player connects.
func (s *Server) awaitPlayer(ctx context.Context, ln *net.TCPListener, ann *discovery.Announcer, offer protocol.Offer) (net.Conn, error) {
	log.Printf("server: broadcasting offers, waiting for a player")
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := ann.Announce(offer); err != nil {
			// A flapping interface shouldn't kill the table.
			log.Printf("server: %v", err)
		}
		if err := ln.SetDeadline(time.Now().Add(s.offerInterval)); err != nil {
			return nil, err
		}
		conn, err := ln.Accept()
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			return nil, fmt.Errorf("server: accept: %w", err)
		}
		return conn, nil
	}
}

// playMatch runs one full match on conn and records it, fault or not.
func (s *Server) playMatch(conn net.Conn) {
	defer conn.Close()

	id := uuid.NewString()
	remote := conn.RemoteAddr().String()
	log.Printf("server: session %s: player connected from %s", id, remote)
	s.stats.MatchStarted(id, remote)

	started := time.Now()
	req, tally, err := s.dealer.Run(conn)

	rec := stats.MatchRecord{
		ID:         id,
		ClientName: req.ClientName,
		Requested:  req.Rounds,
		Wins:       tally.Wins,
		Losses:     tally.Losses,
		Ties:       tally.Ties,
		StartedAt:  started,
		EndedAt:    time.Now(),
	}
	if err != nil {
		rec.Fault = err.Error()
		log.Printf("server: session %s: %v", id, err)
	} else {
		log.Printf("server: session %s: match done, %d-%d-%d for %q",
			id, tally.Wins, tally.Losses, tally.Ties, req.ClientName)
	}
	s.stats.MatchEnded(rec)
	log.Printf("server: session %s: closed, back to broadcasting", id)
}
