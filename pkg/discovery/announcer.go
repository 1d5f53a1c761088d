// Package discovery moves dealer offers across the local network: the dealer
// side broadcasts them over UDP, the player side listens on the shared offer
// port and picks out the first offer worth dialling.
package discovery

import (
	"context"
	"fmt"
	"net"

	"github.com/hadari24/blackjack-network/pkg/protocol"
)

// AnnouncerOption configures an Announcer.
type AnnouncerOption func(*Announcer)

// WithBroadcastAddr overrides the destination IP for offers. The default is
// the limited broadcast address; a directed subnet broadcast works too.
func WithBroadcastAddr(ip net.IP) AnnouncerOption {
	return func(a *Announcer) {
		a.destIP = ip
	}
}

// Announcer sends dealer offers to the offer port from a broadcast-capable
// UDP socket.
type Announcer struct {
	conn   net.PacketConn
	destIP net.IP
	dest   *net.UDPAddr
}

// OpenAnnouncer creates the broadcast socket aimed at the given offer port.
func OpenAnnouncer(offerPort int, opts ...AnnouncerOption) (*Announcer, error) {
	a := &Announcer{destIP: net.IPv4bcast}
	for _, opt := range opts {
		opt(a)
	}

	lc := net.ListenConfig{Control: broadcastControl}
	conn, err := lc.ListenPacket(context.Background(), "udp4", ":0")
	if err != nil {
		return nil, fmt.Errorf("discovery: open broadcast socket: %w", err)
	}
	a.conn = conn
	a.dest = &net.UDPAddr{IP: a.destIP, Port: offerPort}
	return a, nil
}

// Announce broadcasts a single offer datagram.
func (a *Announcer) Announce(offer protocol.Offer) error {
	b, err := offer.Encode()
	if err != nil {
		return err
	}
	if _, err := a.conn.WriteTo(b, a.dest); err != nil {
		return fmt.Errorf("discovery: broadcast offer: %w", err)
	}
	return nil
}

// Close shuts the broadcast socket.
func (a *Announcer) Close() error {
	return a.conn.Close()
}
