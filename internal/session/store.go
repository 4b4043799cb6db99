package session

import (
	"errors"
	"strings"
	"sync"
)

var ErrUnknownColor = errors.New("unknown label color")

// Color is the label border and price color.
type Color string

const (
	ColorOrange Color = "#E47C00"
	ColorBlack  Color = "#000000"

	DefaultColor = ColorOrange
)

var colorNames = map[string]Color{
	"orange":  ColorOrange,
	"naranja": ColorOrange,
	"black":   ColorBlack,
	"negro":   ColorBlack,
}

// ParseColor accepts a color name or its hex value.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[s]; ok {
		return c, nil
	}

	for _, c := range colorNames {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}

	return "", ErrUnknownColor
}

// Name returns the English name of the color.
func (c Color) Name() string {
	switch c {
	case ColorOrange:
		return "orange"
	case ColorBlack:
		return "black"
	default:
		return string(c)
	}
}

// Store keeps one session per chat for the lifetime of the process.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Get returns the chat's session, creating it on first use.
func (st *Store) Get(chatID int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[chatID]
	if !ok {
		s = New()
		st.sessions[chatID] = s
	}

	return s
}

// Drop forgets the chat's session.
func (st *Store) Drop(chatID int64) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, chatID)
}
