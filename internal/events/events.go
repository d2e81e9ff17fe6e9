// Package events fans listing changes out to SSE subscribers.
package events

import (
	"encoding/json"
	"time"

	"companies-engine/internal/domain"
)

const (
	TypePing           = "ping"
	TypeListingCreated = "listing_created"
	TypeListingFilled  = "listing_filled"
	TypeListingStatus  = "listing_status"

	Version = 1
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// ListingChange is the payload of every listing_* event. Company is included
// so subscribers can refresh a single directory entry.
type ListingChange struct {
	ID      int64  `json:"id"`
	Company string `json:"company"`
	Title   string `json:"title,omitempty"`
	Status  string `json:"status,omitempty"`
	Filled  bool   `json:"filled"`
}

func ChangeOf(l domain.Listing) ListingChange {
	return ListingChange{
		ID:      l.ID,
		Company: l.CompanyName,
		Title:   l.Title,
		Status:  l.Status,
		Filled:  l.Filled,
	}
}

// MakeEvent encodes one event envelope. A payload that fails to marshal is
// sent without data.
func MakeEvent(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			raw = b
		}
	}
	b, _ := json.Marshal(Event{
		Type:      typ,
		Version:   Version,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	})
	return string(b)
}
