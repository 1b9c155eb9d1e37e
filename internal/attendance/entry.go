package attendance

// StorageKey is the backend key holding the attendance collection. The
// schema version is part of the name; a new version means a new key.
const StorageKey = "fitfriend_attendance_log_v1"

// DateLayout is the on-disk format of Entry.Date.
const DateLayout = "2006-01-02"

// DefaultRoster is the member list used when configuration provides none.
var DefaultRoster = []string{"Alex P.", "Jamie L.", "Casey B.", "Jordan M.", "MySelf"}

// Entry is one recorded gym visit.
type Entry struct {
	ID     string `json:"id"`
	Member string `json:"member"`
	Date   string `json:"date"`
}

// AddResult describes what Record did with a candidate entry.
type AddResult struct {
	Entry Entry
	// Created is false when an entry for the same member and date already existed.
	Created bool
	// Persisted is false when the store has no backend.
	Persisted bool
}
