package protocol

import (
	"errors"
	"fmt"
	"io"
)

// Encoder is any protocol message that can serialise itself into its fixed
// wire layout.
type Encoder interface {
	Encode() ([]byte, error)
}

// Write encodes m and sends it down w in one call. A failed write is
// reported as ErrConnectionClosed so callers treat it like a dropped peer.
func Write(w io.Writer, m Encoder) error {
	b, err := m.Encode()
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionClosed, err)
	}
	return nil
}

// ReadRequest reads exactly one game request from r and validates its magic
// marker.
func ReadRequest(r io.Reader) (Request, error) {
	var buf [RequestSize]byte
	if err := readExact(r, buf[:]); err != nil {
		return Request{}, err
	}
	req, err := DecodeRequest(buf[:])
	if err != nil {
		return Request{}, err
	}
	if req.Magic != MagicMarker {
		return Request{}, fmt.Errorf("%w: 0x%08X", ErrBadMagic, req.Magic)
	}
	return req, nil
}

// ReadDecision reads exactly one client decision from r and validates its
// magic marker. The token itself is left to the caller.
func ReadDecision(r io.Reader) (Decision, error) {
	var buf [DecisionSize]byte
	if err := readExact(r, buf[:]); err != nil {
		return Decision{}, err
	}
	dec, err := DecodeDecision(buf[:])
	if err != nil {
		return Decision{}, err
	}
	if dec.Magic != MagicMarker {
		return Decision{}, fmt.Errorf("%w: 0x%08X", ErrBadMagic, dec.Magic)
	}
	return dec, nil
}

// ReadDeal reads exactly one dealer payload from r and validates its magic
// marker.
func ReadDeal(r io.Reader) (Deal, error) {
	var buf [DealSize]byte
	if err := readExact(r, buf[:]); err != nil {
		return Deal{}, err
	}
	deal, err := DecodeDeal(buf[:])
	if err != nil {
		return Deal{}, err
	}
	if deal.Magic != MagicMarker {
		return Deal{}, fmt.Errorf("%w: 0x%08X", ErrBadMagic, deal.Magic)
	}
	return deal, nil
}

// readExact fills buf from r. Any short read, EOF included, comes back as
// ErrConnectionClosed: a peer that stopped mid-message is gone.
func readExact(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrConnectionClosed
		}
		return fmt.Errorf("%w: %v", ErrConnectionClosed, err)
	}
	return nil
}
