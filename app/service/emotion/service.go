package emotion

import (
	"math"
	"sync"

	"august/app/service/intent"
	"august/app/service/sentiment"

	"github.com/samber/do"
)

const (
	minLevel = 1
	maxLevel = 10
)

// State is one user's running emotional estimate. Levels stay within [1, 10].
type State struct {
	CurrentMood  sentiment.Category `json:"current_mood"`
	StressLevel  float64            `json:"stress_level"`
	AnxietyLevel float64            `json:"anxiety_level"`
}

func defaultState() State {
	return State{
		CurrentMood:  sentiment.Neutral,
		StressLevel:  5,
		AnxietyLevel: 5,
	}
}

type userEntry struct {
	mu    sync.Mutex
	state State
}

// Service keeps per-username emotional state for the process lifetime.
// Each user has its own lock, so turns for different users never contend.
type Service struct {
	mu    sync.RWMutex
	users map[string]*userEntry
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		users: make(map[string]*userEntry),
	}, nil
}

func (s *Service) entry(username string) *userEntry {
	s.mu.RLock()
	e := s.users[username]
	s.mu.RUnlock()

	if e != nil {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e = s.users[username]; e == nil {
		e = &userEntry{state: defaultState()}
		s.users[username] = e
	}

	return e
}

// Update applies one turn's intent and sentiment to the user's state and
// returns the resulting snapshot.
func (s *Service) Update(username string, it intent.Intent, category sentiment.Category) State {
	e := s.entry(username)

	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case it == intent.Stress:
		e.state.StressLevel = math.Min(maxLevel, e.state.StressLevel+1)
	case it == intent.Anxiety:
		e.state.AnxietyLevel = math.Min(maxLevel, e.state.AnxietyLevel+1)
	case it == intent.Mood && category == sentiment.Positive:
		e.state.StressLevel = math.Max(minLevel, e.state.StressLevel-0.5)
		e.state.AnxietyLevel = math.Max(minLevel, e.state.AnxietyLevel-0.5)
	}

	e.state.CurrentMood = category

	return e.state
}

// Get returns the user's current state, or the default for unseen users.
func (s *Service) Get(username string) State {
	s.mu.RLock()
	e := s.users[username]
	s.mu.RUnlock()

	if e == nil {
		return defaultState()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}
