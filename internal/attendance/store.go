// Package attendance owns the persisted collection of gym visits and the
// fixed member roster.
package attendance

import (
	"io"
	"log/slog"
	"time"

	"github.com/fitfriend/fitfriend/internal/storage"
)

// Store mediates all access to the attendance collection. A Store built
// with a nil backend models an execution context without storage: reads
// are empty and writes are no-ops.
type Store struct {
	backend storage.Backend
	roster  []string
	logger  *slog.Logger
	newID   func() string
}

// Option configures a Store.
type Option func(*Store)

// WithRoster replaces the default roster.
func WithRoster(members []string) Option {
	return func(s *Store) {
		s.roster = append([]string(nil), members...)
	}
}

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDFunc overrides id generation.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewStore creates a store over backend, which may be nil.
func NewStore(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		roster:  append([]string(nil), DefaultRoster...),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:   NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Available reports whether the store has a storage backend.
func (s *Store) Available() bool {
	return s.backend != nil
}

// ListMembers returns the roster in its configured order.
func (s *Store) ListMembers() []string {
	return append([]string(nil), s.roster...)
}

// ListAttendance returns every persisted entry. Read failures and malformed
// data are logged and reported as an empty collection.
func (s *Store) ListAttendance() []Entry {
	if s.backend == nil {
		return []Entry{}
	}

	data, ok, err := s.backend.Get(StorageKey)
	if err != nil {
		s.logger.Error("reading attendance failed", "key", StorageKey, "error", err)
		return []Entry{}
	}
	if !ok || len(data) == 0 {
		return []Entry{}
	}

	entries, err := Decode(data)
	if err != nil {
		s.logger.Warn("discarding malformed attendance data", "key", StorageKey, "error", err)
		return []Entry{}
	}
	return entries
}

// FindAttendance looks up an entry by id.
func (s *Store) FindAttendance(id string) (Entry, bool) {
	for _, e := range s.ListAttendance() {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// AddAttendance records a visit for member on the calendar day of date. If
// the member already has an entry for that day, the existing entry is
// returned and nothing is written.
func (s *Store) AddAttendance(member string, date time.Time) (Entry, error) {
	res, err := s.Record(member, date)
	if err != nil {
		return Entry{}, err
	}
	return res.Entry, nil
}

// Record is AddAttendance with the outcome spelled out.
func (s *Store) Record(member string, date time.Time) (AddResult, error) {
	day := date.Format(DateLayout)

	if s.backend == nil {
		e := Entry{ID: EphemeralPrefix + s.newID(), Member: member, Date: day}
		s.logger.Warn("no storage backend; attendance will not be persisted", "member", member, "date", day)
		return AddResult{Entry: e, Created: true}, nil
	}

	current := s.ListAttendance()
	for _, e := range current {
		if e.Member == member && e.Date == day {
			s.logger.Debug("attendance already logged", "member", member, "date", day, "id", e.ID)
			return AddResult{Entry: e, Persisted: true}, nil
		}
	}

	e := Entry{ID: s.newID(), Member: member, Date: day}
	updated := append(current, e)
	if err := s.write("add", updated); err != nil {
		return AddResult{}, err
	}
	return AddResult{Entry: e, Created: true, Persisted: true}, nil
}

// RecordAll records a visit for member on each of days with a single read
// and at most one write. Days already logged, or repeated in days, come back
// with Created false. Nothing is written when every day already exists.
func (s *Store) RecordAll(member string, days []time.Time) ([]AddResult, error) {
	results := make([]AddResult, 0, len(days))

	if s.backend == nil {
		for _, d := range days {
			e := Entry{ID: EphemeralPrefix + s.newID(), Member: member, Date: d.Format(DateLayout)}
			results = append(results, AddResult{Entry: e, Created: true})
		}
		s.logger.Warn("no storage backend; attendance will not be persisted", "member", member, "days", len(days))
		return results, nil
	}

	current := s.ListAttendance()
	existing := make(map[string]Entry)
	for _, e := range current {
		if e.Member == member {
			existing[e.Date] = e
		}
	}

	created := 0
	for _, d := range days {
		day := d.Format(DateLayout)
		if e, ok := existing[day]; ok {
			results = append(results, AddResult{Entry: e, Persisted: true})
			continue
		}
		e := Entry{ID: s.newID(), Member: member, Date: day}
		existing[day] = e
		current = append(current, e)
		results = append(results, AddResult{Entry: e, Created: true, Persisted: true})
		created++
	}

	if created == 0 {
		return results, nil
	}
	if err := s.write("add", current); err != nil {
		return nil, err
	}
	return results, nil
}

// RemoveAttendance deletes the entry with the given id. Unknown ids are
// ignored.
func (s *Store) RemoveAttendance(id string) error {
	if s.backend == nil {
		return nil
	}

	current := s.ListAttendance()
	updated := make([]Entry, 0, len(current))
	for _, e := range current {
		if e.ID != id {
			updated = append(updated, e)
		}
	}
	if len(updated) == len(current) {
		return nil
	}
	return s.write("remove", updated)
}

// ClearAllAttendance erases the persisted collection.
func (s *Store) ClearAllAttendance() error {
	if s.backend == nil {
		return nil
	}
	if err := s.backend.Remove(StorageKey); err != nil {
		return &StorageWriteError{Op: "clear", Key: StorageKey, Err: err}
	}
	return nil
}

// write replaces the stored collection in a single Set.
func (s *Store) write(op string, entries []Entry) error {
	data, err := Encode(entries)
	if err != nil {
		return &StorageWriteError{Op: op, Key: StorageKey, Err: err}
	}
	if err := s.backend.Set(StorageKey, data); err != nil {
		s.logger.Error("writing attendance failed", "op", op, "key", StorageKey, "error", err)
		return &StorageWriteError{Op: op, Key: StorageKey, Err: err}
	}
	return nil
}
