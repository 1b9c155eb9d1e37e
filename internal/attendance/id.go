package attendance

import "github.com/google/uuid"

// EphemeralPrefix marks ids of entries that were never written to a backend.
const EphemeralPrefix = "ephemeral-"

// NewID returns a random entry id.
func NewID() string {
	return uuid.NewString()
}
