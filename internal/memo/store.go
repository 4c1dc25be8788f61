package memo

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"memocal/internal/calendar"
	"memocal/internal/logs"
)

// Store is an immutable snapshot mapping day keys to note text.
// Set returns a new Store and never modifies the receiver.
type Store struct {
	notes map[string]string
}

// Entry is a single stored note
type Entry struct {
	Key  string
	Text string
}

// Empty returns a store with no notes
func Empty() Store {
	return Store{notes: map[string]string{}}
}

// Decode parses a serialized store. The input must be a JSON object of
// string values.
func Decode(data []byte) (Store, error) {
	var notes map[string]string
	if err := json.Unmarshal(data, &notes); err != nil {
		return Empty(), fmt.Errorf("decode notes: %w", err)
	}
	if notes == nil {
		notes = map[string]string{}
	}
	return Store{notes: notes}, nil
}

// ReadStore reads the store from slot and reports why it could not be used.
// The returned store is empty whenever err is non-nil. A slot that was never
// written is not an error.
func ReadStore(slot Slot) (Store, error) {
	data, err := slot.Read()
	if err != nil {
		if errors.Is(err, ErrSlotEmpty) {
			return Empty(), nil
		}
		return Empty(), fmt.Errorf("could not read notes: %w", err)
	}

	store, err := Decode(data)
	if err != nil {
		return Empty(), fmt.Errorf("stored notes are malformed: %w", err)
	}
	return store, nil
}

// Load reads the store from slot. A missing, unreadable or malformed slot
// yields an empty store.
func Load(slot Slot) Store {
	store, err := ReadStore(slot)
	if err != nil {
		logs.Logger.Printf("Warning: %v, starting empty", err)
		return store
	}

	logs.Logger.Printf("Loaded %d notes", store.Len())
	return store
}

// Encode serializes the full store as a JSON object
func (s Store) Encode() ([]byte, error) {
	notes := s.notes
	if notes == nil {
		notes = map[string]string{}
	}
	return json.Marshal(notes)
}

// Get returns the note for date's day, or "" if there is none
func (s Store) Get(date time.Time) string {
	return s.notes[calendar.DayKey(date)]
}

// Has reports whether date's day has an entry, including an emptied one
func (s Store) Has(date time.Time) bool {
	_, ok := s.notes[calendar.DayKey(date)]
	return ok
}

// Len returns the number of entries
func (s Store) Len() int {
	return len(s.notes)
}

// Set returns a new store with date's note set to text. An empty text is
// stored as is. The new store is written to slot before it is returned; on a
// write error the new store is still returned alongside the error.
func (s Store) Set(slot Slot, date time.Time, text string) (Store, error) {
	next := Store{notes: maps.Clone(s.notes)}
	if next.notes == nil {
		next.notes = map[string]string{}
	}
	next.notes[calendar.DayKey(date)] = text

	if slot == nil {
		return next, nil
	}

	data, err := next.Encode()
	if err != nil {
		return next, err
	}
	if err := slot.Write(data); err != nil {
		return next, fmt.Errorf("save notes: %w", err)
	}
	return next, nil
}

// Entries returns all entries sorted by key
func (s Store) Entries() []Entry {
	keys := slices.Sorted(maps.Keys(s.notes))
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k, Text: s.notes[k]})
	}
	return entries
}

// NonEmpty returns entries whose text is not empty, sorted by key
func (s Store) NonEmpty() []Entry {
	var entries []Entry
	for _, e := range s.Entries() {
		if e.Text != "" {
			entries = append(entries, e)
		}
	}
	return entries
}
