package protocol

import "testing"

func FuzzDecodeOffer(f *testing.F) {
	if seed, err := (Offer{TCPPort: 2005, DealerName: "Bossi"}).Encode(); err == nil {
		f.Add(seed)
	}
	f.Add(make([]byte, OfferSize))
	f.Add([]byte{0xAB, 0xCD, 0xDC, 0xBA})
	f.Fuzz(func(t *testing.T, data []byte) {
		off, err := DecodeOffer(data)
		if err != nil {
			return
		}
		// Re-encoding normalises magic and type; everything else survives.
		back, err := off.Encode()
		if err != nil {
			t.Fatalf("re-encode: %v", err)
		}
		got, err := DecodeOffer(back)
		if err != nil {
			t.Fatalf("re-decode: %v", err)
		}
		if got.TCPPort != off.TCPPort || got.DealerName != off.DealerName {
			t.Fatalf("round trip changed offer: %+v -> %+v", off, got)
		}
	})
}

func FuzzDecodeRequest(f *testing.F) {
	if seed, err := (Request{Rounds: 3, ClientName: "Alice"}).Encode(); err == nil {
		f.Add(seed)
	}
	f.Add(make([]byte, RequestSize))
	f.Fuzz(func(t *testing.T, data []byte) {
		req, err := DecodeRequest(data)
		if err != nil {
			return
		}
		back, err := req.Encode()
		if err != nil {
			return
		}
		got, err := DecodeRequest(back)
		if err != nil {
			t.Fatalf("re-decode: %v", err)
		}
		if got.Rounds != req.Rounds || got.ClientName != req.ClientName {
			t.Fatalf("round trip changed request: %+v -> %+v", req, got)
		}
	})
}

func FuzzDecodeDeal(f *testing.F) {
	if seed, err := (Deal{Outcome: OutcomeNotOver, Rank: 13, Suit: 3}).Encode(); err == nil {
		f.Add(seed)
	}
	f.Add(make([]byte, DealSize))
	f.Fuzz(func(t *testing.T, data []byte) {
		deal, err := DecodeDeal(data)
		if err != nil {
			return
		}
		back, err := deal.Encode()
		if err != nil {
			t.Fatalf("re-encode: %v", err)
		}
		got, err := DecodeDeal(back)
		if err != nil {
			t.Fatalf("re-decode: %v", err)
		}
		if got.Outcome != deal.Outcome || got.Rank != deal.Rank || got.Suit != deal.Suit {
			t.Fatalf("round trip changed deal: %+v -> %+v", deal, got)
		}
	})
}
