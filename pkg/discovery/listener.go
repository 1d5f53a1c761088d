package discovery

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/hadari24/blackjack-network/pkg/protocol"
)

// Dealer is a discovered table: the name it advertised and the TCP address
// to dial, built from the offer's port and the datagram's source IP.
type Dealer struct {
	Name string
	Addr *net.TCPAddr
}

// Listener waits on the offer port for dealer broadcasts. The port is opened
// with address reuse so several players on one host can listen at once.
type Listener struct {
	conn net.PacketConn
}

// OpenListener binds the offer port. Port 0 picks an ephemeral port, which
// only makes sense for tests.
func OpenListener(offerPort int) (*Listener, error) {
	lc := net.ListenConfig{Control: reuseControl}
	conn, err := lc.ListenPacket(context.Background(), "udp4", fmt.Sprintf(":%d", offerPort))
	if err != nil {
		return nil, fmt.Errorf("discovery: bind offer port %d: %w", offerPort, err)
	}
	return &Listener{conn: conn}, nil
}

// Next blocks until a valid offer arrives and returns the dealer behind it.
// Datagrams that are short, carry the wrong marker, or carry the wrong type
// are skipped without comment; the network is full of other people's
// traffic.
func (l *Listener) Next(ctx context.Context) (Dealer, error) {
	if err := ctx.Err(); err != nil {
		return Dealer{}, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := l.conn.SetReadDeadline(deadline); err != nil {
			return Dealer{}, err
		}
	}

	// When ctx is cancelled, expire the read deadline so ReadFrom unblocks
	// promptly. The goroutine exits cleanly once Next returns.
	waitDone := make(chan struct{})
	defer close(waitDone)
	go func() {
		select {
		case <-ctx.Done():
			_ = l.conn.SetReadDeadline(time.Now())
		case <-waitDone:
		}
	}()

	buf := make([]byte, 1024)
	for {
		n, addr, err := l.conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return Dealer{}, ctx.Err()
			}
			return Dealer{}, fmt.Errorf("discovery: read offer: %w", err)
		}
		offer, err := protocol.DecodeOffer(buf[:n])
		if err != nil {
			continue
		}
		if offer.Magic != protocol.MagicMarker || offer.Type != protocol.TypeOffer {
			continue
		}
		udp, ok := addr.(*net.UDPAddr)
		if !ok {
			continue
		}
		return Dealer{
			Name: offer.DealerName,
			Addr: &net.TCPAddr{IP: udp.IP, Port: int(offer.TCPPort)},
		}, nil
	}
}

// LocalAddr returns the bound address of the offer socket.
func (l *Listener) LocalAddr() net.Addr {
	return l.conn.LocalAddr()
}

// Close shuts the offer socket.
func (l *Listener) Close() error {
	return l.conn.Close()
}
