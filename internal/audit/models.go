// Package audit records append-only events for every state-changing
// operation. Events flow through a buffered worker into pluggable sinks.
package audit

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event is one append-only audit record.
type Event struct {
	ID            string    `json:"event_id"`
	Timestamp     time.Time `json:"timestamp"`
	Action        string    `json:"action"`
	Actor         string    `json:"actor"`
	RequestID     string    `json:"request_id,omitempty"`
	CitizenID     string    `json:"citizen_id,omitempty"`
	SchemeID      string    `json:"scheme_id,omitempty"`
	ApplicationID string    `json:"application_id,omitempty"`
	Outcome       string    `json:"outcome"`
	Details       string    `json:"details,omitempty"`
}

// NewEventID returns a fresh audit event ID.
func NewEventID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "EVT-" + strings.ToUpper(raw[:12])
}
