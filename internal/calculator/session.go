package calculator

import (
	"sync"

	"github.com/google/uuid"

	"go-chi-calculator/internal/engine"
	"go-chi-calculator/internal/keypad"
)

// Session is the calculator the HTTP front end drives. All commands are
// serialized so concurrent requests see whole keystrokes.
type Session struct {
	id     string
	locale keypad.Locale

	mu   sync.Mutex
	calc *engine.Calculator
}

// NewSession returns a fresh session with a random id.
func NewSession(locale keypad.Locale) *Session {
	return &Session{
		id:     uuid.NewString(),
		locale: locale,
		calc:   engine.New(),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Locale() keypad.Locale {
	return s.locale
}

// Do runs fn against the calculator and returns the state it leaves behind.
func (s *Session) Do(fn func(c *engine.Calculator)) engine.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.calc)
	return s.calc.State()
}

// Snapshot returns the current state without changing it.
func (s *Session) Snapshot() engine.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calc.State()
}
