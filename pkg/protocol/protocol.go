// Package protocol defines the blackjack wire protocol: the shared magic
// marker, message type tags, game outcomes, and the fixed binary layout of
// every message exchanged between a dealer and its clients.
package protocol

// MagicMarker opens every protocol message, UDP and TCP alike. A receiver
// must reject any message that does not start with it.
const MagicMarker uint32 = 0xABCDDCBA

// Message type tags identify the layout of the bytes that follow the marker.
const (
	TypeOffer   byte = 0x2 // dealer -> broadcast (UDP)
	TypeRequest byte = 0x3 // client -> dealer (TCP)
	TypePayload byte = 0x4 // both directions (TCP)
)

// Round outcomes carried in dealer payloads. OutcomeNotOver marks a card
// delivery; the other three close a round.
const (
	OutcomeNotOver byte = 0x0
	OutcomeTie     byte = 0x1
	OutcomeLoss    byte = 0x2
	OutcomeWin     byte = 0x3
)

// NameLen is the fixed width of every name field: UTF-8 bytes, truncated at
// 32 and padded with NULs.
const NameLen = 32

// Exact wire sizes of each message kind.
const (
	OfferSize    = 4 + 1 + 2 + NameLen // marker + type + port + name = 39
	RequestSize  = 4 + 1 + 1 + NameLen // marker + type + rounds + name = 38
	DecisionSize = 4 + 1 + 5           // marker + type + token = 10
	DealSize     = 4 + 1 + 1 + 2 + 1   // marker + type + outcome + rank + suit = 9
)

// Decision tokens. Exactly five ASCII bytes each; nothing else is legal on
// the wire.
const (
	DecisionHit   = "Hittt"
	DecisionStand = "Stand"
)

// OutcomeNames maps outcome codes to human-readable names for logging and
// client display.
var OutcomeNames = map[byte]string{
	OutcomeNotOver: "NOT OVER",
	OutcomeTie:     "TIE",
	OutcomeLoss:    "LOSS",
	OutcomeWin:     "WIN",
}

// OutcomeName returns the printable name of an outcome code, or "UNKNOWN"
// for codes outside the known set.
func OutcomeName(o byte) string {
	if n, ok := OutcomeNames[o]; ok {
		return n
	}
	return "UNKNOWN"
}
