package protocol

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestOfferGoldenBytes(t *testing.T) {
	b, err := Offer{TCPPort: 2005, DealerName: "Bossi"}.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0xAB, 0xCD, 0xDC, 0xBA, 0x02, 0x07, 0xD5, 'B', 'o', 's', 's', 'i'}
	want = append(want, make([]byte, NameLen-5)...)
	if !bytes.Equal(b, want) {
		t.Fatalf("offer bytes = % X, want % X", b, want)
	}
}

func TestOfferRoundTrip(t *testing.T) {
	b, err := Offer{TCPPort: 61234, DealerName: "Lucky Sevens"}.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeOffer(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Magic != MagicMarker {
		t.Errorf("Magic = 0x%08X, want 0x%08X", got.Magic, MagicMarker)
	}
	if got.Type != TypeOffer {
		t.Errorf("Type = 0x%X, want 0x%X", got.Type, TypeOffer)
	}
	if got.TCPPort != 61234 {
		t.Errorf("TCPPort = %d, want 61234", got.TCPPort)
	}
	if got.DealerName != "Lucky Sevens" {
		t.Errorf("DealerName = %q, want %q", got.DealerName, "Lucky Sevens")
	}
}

func TestRequestGoldenBytes(t *testing.T) {
	b, err := Request{Rounds: 3, ClientName: "Alice"}.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0xAB, 0xCD, 0xDC, 0xBA, 0x03, 0x03, 'A', 'l', 'i', 'c', 'e'}
	want = append(want, make([]byte, NameLen-5)...)
	if !bytes.Equal(b, want) {
		t.Fatalf("request bytes = % X, want % X", b, want)
	}
}

func TestRequestRoundTrip(t *testing.T) {
	for _, rounds := range []int{0, 1, 255} {
		b, err := Request{Rounds: rounds, ClientName: "Dana"}.Encode()
		if err != nil {
			t.Fatalf("rounds %d: encode: %v", rounds, err)
		}
		got, err := DecodeRequest(b)
		if err != nil {
			t.Fatalf("rounds %d: decode: %v", rounds, err)
		}
		if got.Rounds != rounds {
			t.Errorf("Rounds = %d, want %d", got.Rounds, rounds)
		}
		if got.ClientName != "Dana" {
			t.Errorf("ClientName = %q, want %q", got.ClientName, "Dana")
		}
	}
}

func TestRequestEncodeRejectsRoundsOutOfRange(t *testing.T) {
	for _, rounds := range []int{-1, 256, 1000} {
		if _, err := (Request{Rounds: rounds, ClientName: "x"}).Encode(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("rounds %d: err = %v, want ErrInvalidArgument", rounds, err)
		}
	}
}

func TestDecisionGoldenBytes(t *testing.T) {
	b, err := Decision{Token: DecisionHit}.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0xAB, 0xCD, 0xDC, 0xBA, 0x04, 'H', 'i', 't', 't', 't'}
	if !bytes.Equal(b, want) {
		t.Fatalf("decision bytes = % X, want % X", b, want)
	}
}

func TestDecisionEncodeTokens(t *testing.T) {
	for _, tok := range []string{DecisionHit, DecisionStand} {
		if _, err := (Decision{Token: tok}).Encode(); err != nil {
			t.Errorf("token %q: %v", tok, err)
		}
	}
	for _, tok := range []string{"", "HIT", "Hit", "hittt", "Stand ", "Hitttt"} {
		if _, err := (Decision{Token: tok}).Encode(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("token %q: err = %v, want ErrInvalidArgument", tok, err)
		}
	}
}

func TestDealGoldenBytes(t *testing.T) {
	card, err := Deal{Outcome: OutcomeNotOver, Rank: 12, Suit: 3}.Encode()
	if err != nil {
		t.Fatalf("encode card: %v", err)
	}
	wantCard := []byte{0xAB, 0xCD, 0xDC, 0xBA, 0x04, 0x00, 0x00, 0x0C, 0x03}
	if !bytes.Equal(card, wantCard) {
		t.Fatalf("card bytes = % X, want % X", card, wantCard)
	}

	result, err := Deal{Outcome: OutcomeWin}.Encode()
	if err != nil {
		t.Fatalf("encode result: %v", err)
	}
	wantResult := []byte{0xAB, 0xCD, 0xDC, 0xBA, 0x04, 0x03, 0x00, 0x00, 0x00}
	if !bytes.Equal(result, wantResult) {
		t.Fatalf("result bytes = % X, want % X", result, wantResult)
	}
}

func TestDealRoundTrip(t *testing.T) {
	b, err := Deal{Outcome: OutcomeTie, Rank: 13, Suit: 2}.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeDeal(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Outcome != OutcomeTie || got.Rank != 13 || got.Suit != 2 {
		t.Errorf("deal = %+v, want outcome %d rank 13 suit 2", got, OutcomeTie)
	}
}

func TestNameTruncatedAtLimit(t *testing.T) {
	long := strings.Repeat("a", NameLen+8)
	b, err := Offer{TCPPort: 1, DealerName: long}.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeOffer(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.DealerName != long[:NameLen] {
		t.Errorf("DealerName = %q (%d bytes), want %d a's", got.DealerName, len(got.DealerName), NameLen)
	}
}

func TestNameFullWidthNoPadding(t *testing.T) {
	exact := strings.Repeat("b", NameLen)
	b, err := Request{Rounds: 1, ClientName: exact}.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeRequest(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ClientName != exact {
		t.Errorf("ClientName = %q, want full %d-byte name", got.ClientName, NameLen)
	}
}

func TestNameStopsAtFirstNUL(t *testing.T) {
	b, err := Request{Rounds: 1, ClientName: "Bo\x00ssi"}.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeRequest(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ClientName != "Bo" {
		t.Errorf("ClientName = %q, want %q", got.ClientName, "Bo")
	}
}

func TestDecodeShortBuffers(t *testing.T) {
	if _, err := DecodeOffer(make([]byte, OfferSize-1)); !errors.Is(err, ErrShortMessage) {
		t.Errorf("offer: err = %v, want ErrShortMessage", err)
	}
	if _, err := DecodeRequest(make([]byte, RequestSize-1)); !errors.Is(err, ErrShortMessage) {
		t.Errorf("request: err = %v, want ErrShortMessage", err)
	}
	if _, err := DecodeDecision(make([]byte, DecisionSize-1)); !errors.Is(err, ErrShortMessage) {
		t.Errorf("decision: err = %v, want ErrShortMessage", err)
	}
	if _, err := DecodeDeal(nil); !errors.Is(err, ErrShortMessage) {
		t.Errorf("deal: err = %v, want ErrShortMessage", err)
	}
}

func TestOutcomeName(t *testing.T) {
	if got := OutcomeName(OutcomeWin); got != "WIN" {
		t.Errorf("OutcomeName(OutcomeWin) = %q, want WIN", got)
	}
	if got := OutcomeName(0x7F); got != "UNKNOWN" {
		t.Errorf("OutcomeName(0x7F) = %q, want UNKNOWN", got)
	}
}
