package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Record is an opaque document in the generic record store. Every non-auth
// collection of the platform (vehicles, traffic signals, bookings, ...) is a
// Kind; the payload is stored as-is and never interpreted by this service.
type Record struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
