package protocol

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Offer is the dealer advertisement broadcast over UDP. TCPPort tells a
// discovering client where the dealer accepts game connections.
type Offer struct {
	Magic      uint32
	Type       byte
	TCPPort    uint16
	DealerName string
}

// Request opens a game over TCP: how many rounds the client wants to play,
// and the name the dealer should greet it by.
type Request struct {
	Magic      uint32
	Type       byte
	Rounds     int
	ClientName string
}

// Decision is the client's move during its turn: DecisionHit or
// DecisionStand, nothing else.
type Decision struct {
	Magic uint32
	Type  byte
	Token string
}

// Deal is the dealer's payload: a dealt card while the round is open
// (OutcomeNotOver), or the round's result with a zeroed card.
type Deal struct {
	Magic   uint32
	Type    byte
	Outcome byte
	Rank    uint16
	Suit    byte
}

// Encode serialises the offer into its fixed 39-byte layout. The magic
// marker and type tag are written unconditionally; the dealer name is
// truncated to NameLen bytes and NUL padded.
func (o Offer) Encode() ([]byte, error) {
	b := make([]byte, OfferSize)
	binary.BigEndian.PutUint32(b[0:4], MagicMarker)
	b[4] = TypeOffer
	binary.BigEndian.PutUint16(b[5:7], o.TCPPort)
	copy(b[7:], o.DealerName)
	return b, nil
}

// Encode serialises the request into its fixed 38-byte layout. Rounds must
// fit a single byte.
func (r Request) Encode() ([]byte, error) {
	if r.Rounds < 0 || r.Rounds > 255 {
		return nil, fmt.Errorf("%w: rounds %d outside 0-255", ErrInvalidArgument, r.Rounds)
	}
	b := make([]byte, RequestSize)
	binary.BigEndian.PutUint32(b[0:4], MagicMarker)
	b[4] = TypeRequest
	b[5] = byte(r.Rounds)
	copy(b[6:], r.ClientName)
	return b, nil
}

// Encode serialises the decision into its fixed 10-byte layout. Only the two
// legal tokens are accepted.
func (d Decision) Encode() ([]byte, error) {
	if d.Token != DecisionHit && d.Token != DecisionStand {
		return nil, fmt.Errorf("%w: decision token %q", ErrInvalidArgument, d.Token)
	}
	b := make([]byte, DecisionSize)
	binary.BigEndian.PutUint32(b[0:4], MagicMarker)
	b[4] = TypePayload
	copy(b[5:], d.Token)
	return b, nil
}

// Encode serialises the deal into its fixed 9-byte layout.
func (d Deal) Encode() ([]byte, error) {
	b := make([]byte, DealSize)
	binary.BigEndian.PutUint32(b[0:4], MagicMarker)
	b[4] = TypePayload
	b[5] = d.Outcome
	binary.BigEndian.PutUint16(b[6:8], d.Rank)
	b[8] = d.Suit
	return b, nil
}

// DecodeOffer parses a broadcast datagram. It checks only the length; the
// caller decides whether Magic and Type make the packet worth acting on.
func DecodeOffer(b []byte) (Offer, error) {
	if len(b) < OfferSize {
		return Offer{}, fmt.Errorf("%w: offer needs %d bytes, got %d", ErrShortMessage, OfferSize, len(b))
	}
	return Offer{
		Magic:      binary.BigEndian.Uint32(b[0:4]),
		Type:       b[4],
		TCPPort:    binary.BigEndian.Uint16(b[5:7]),
		DealerName: unpackName(b[7:OfferSize]),
	}, nil
}

// DecodeRequest parses a game request.
func DecodeRequest(b []byte) (Request, error) {
	if len(b) < RequestSize {
		return Request{}, fmt.Errorf("%w: request needs %d bytes, got %d", ErrShortMessage, RequestSize, len(b))
	}
	return Request{
		Magic:      binary.BigEndian.Uint32(b[0:4]),
		Type:       b[4],
		Rounds:     int(b[5]),
		ClientName: unpackName(b[6:RequestSize]),
	}, nil
}

// DecodeDecision parses a client decision. The token comes back raw; the
// dealer decides whether it is one of the legal moves.
func DecodeDecision(b []byte) (Decision, error) {
	if len(b) < DecisionSize {
		return Decision{}, fmt.Errorf("%w: decision needs %d bytes, got %d", ErrShortMessage, DecisionSize, len(b))
	}
	return Decision{
		Magic: binary.BigEndian.Uint32(b[0:4]),
		Type:  b[4],
		Token: string(b[5:DecisionSize]),
	}, nil
}

// DecodeDeal parses a dealer payload.
func DecodeDeal(b []byte) (Deal, error) {
	if len(b) < DealSize {
		return Deal{}, fmt.Errorf("%w: deal needs %d bytes, got %d", ErrShortMessage, DealSize, len(b))
	}
	return Deal{
		Magic:   binary.BigEndian.Uint32(b[0:4]),
		Type:    b[4],
		Outcome: b[5],
		Rank:    binary.BigEndian.Uint16(b[6:8]),
		Suit:    b[8],
	}, nil
}

// unpackName decodes a fixed-width name field: the bytes up to the first
// NUL, as UTF-8.
func unpackName(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
