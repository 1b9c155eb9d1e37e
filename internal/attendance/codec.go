package attendance

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode serialises the collection as a JSON array. A nil slice encodes as [].
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(entries)
}

// Decode parses a persisted collection. Anything other than an array of
// objects carrying string id, member and date fields yields ErrMalformed.
func Decode(data []byte) ([]Entry, error) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected an array", ErrMalformed)
	}

	entries := make([]Entry, 0, len(raw))
	for i, obj := range raw {
		var e Entry
		fields := []struct {
			name string
			dst  *string
		}{
			{"id", &e.ID},
			{"member", &e.Member},
			{"date", &e.Date},
		}
		for _, f := range fields {
			v, ok := obj[f.name]
			if !ok {
				return nil, fmt.Errorf("%w: element %d has no %q", ErrMalformed, i, f.name)
			}
			if !bytes.HasPrefix(bytes.TrimSpace(v), []byte(`"`)) || json.Unmarshal(v, f.dst) != nil {
				return nil, fmt.Errorf("%w: element %d field %q is not a string", ErrMalformed, i, f.name)
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}
