package model

import "time"

// Message is one entry in a two-party thread keyed by resident id.
// Outgoing marks messages sent by the viewer; the rest were received.
type Message struct {
	ID       string    `json:"id"`
	Outgoing bool      `json:"outgoing"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sent_at"`
}
