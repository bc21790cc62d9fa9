package theme

import (
	"errors"
	"fmt"
	"log"
)

// StorageKey is the durable key the theme is persisted under.
const StorageKey = "theme"

// DarkMarker is the root marker present iff the dark theme is active.
const DarkMarker = "dark"

// Persisted values for StorageKey.
const (
	ValueDark  = "dark"
	ValueLight = "light"
)

// ErrPersistence wraps any failure reading or writing the persisted theme.
var ErrPersistence = errors.New("theme persistence unavailable")

// Storage is durable key/value storage for small preferences.
type Storage interface {
	// Get returns the stored value and whether it was present.
	Get(key string) (string, bool, error)
	// Set stores value under key.
	Set(key, value string) error
}

// Document is the root surface that global styling reads markers from.
type Document interface {
	SetMarker(name string, present bool)
}

// Listener is notified with the new flag after every toggle.
type Listener func(isDark bool)

type subscription struct {
	id int
	fn Listener
}

// Store holds the process-wide dark/light flag.
//
// A Store is owned by a single goroutine (the program's update loop) and is
// not safe for concurrent use.
type Store struct {
	storage Storage
	doc     Document

	isDark    bool
	listeners []subscription
	nextID    int
}

// NewStore creates a store backed by storage and reflecting onto doc.
// Either may be nil. The flag starts dark until Initialize is called.
func NewStore(storage Storage, doc Document) *Store {
	return &Store{
		storage: storage,
		doc:     doc,
		isDark:  true,
	}
}

// Initialize resolves the flag from storage. A stored "dark" selects dark,
// any other non-empty value selects light, and a missing or empty value or
// unreadable storage falls back to dark.
func (s *Store) Initialize() {
	s.isDark = true

	if s.storage != nil {
		value, ok, err := s.storage.Get(StorageKey)
		switch {
		case err != nil:
			log.Printf("theme: %v", fmt.Errorf("%w: read: %v", ErrPersistence, err))
		case ok && value != "":
			s.isDark = value == ValueDark
		}
	}

	s.applyMarker()
}

// IsDark reports whether the dark theme is active.
func (s *Store) IsDark() bool {
	return s.isDark
}

// Toggle flips the theme, persists it, updates the document marker and
// notifies subscribers before returning.
func (s *Store) Toggle() {
	s.isDark = !s.isDark

	s.persist()
	s.applyMarker()

	// Copy so listeners may unsubscribe while being notified.
	listeners := make([]subscription, len(s.listeners))
	copy(listeners, s.listeners)
	for _, l := range listeners {
		l.fn(s.isDark)
	}
}

// Subscribe registers fn to run after every Toggle. The returned function
// removes it; calling it more than once is harmless.
func (s *Store) Subscribe(fn Listener) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) persist() {
	if s.storage == nil {
		return
	}
	if err := s.storage.Set(StorageKey, Name(s.isDark)); err != nil {
		log.Printf("theme: %v", fmt.Errorf("%w: write: %v", ErrPersistence, err))
	}
}

func (s *Store) applyMarker() {
	if s.doc != nil {
		s.doc.SetMarker(DarkMarker, s.isDark)
	}
}

// Name returns the persisted name for a theme flag.
func Name(isDark bool) string {
	if isDark {
		return ValueDark
	}
	return ValueLight
}

// ParseName converts "dark" or "light" back to a flag.
func ParseName(name string) (bool, error) {
	switch name {
	case ValueDark:
		return true, nil
	case ValueLight:
		return false, nil
	default:
		return false, fmt.Errorf("unknown theme %q (want %q or %q)", name, ValueDark, ValueLight)
	}
}
