package composer

import (
	"math/rand"
	"slices"
	"strings"
	"sync"
	"time"

	"august/app/service/emotion"
	"august/app/service/intent"
	"august/app/service/sentiment"

	"github.com/samber/do"
)

const (
	followUpCount   = 2
	suggestionCount = 2
	helpResourceCap = 2
)

// Request carries everything one turn's composition depends on.
type Request struct {
	Intent    intent.Intent
	Sentiment sentiment.Category
	Message   string
	State     emotion.State
	// SurveyContext is accepted as a personalization hook; recognized numeric
	// survey fields may be absent and are currently not consulted.
	SurveyContext map[string]float64
	History       []string
}

// Bundle is the structured response for a single turn.
type Bundle struct {
	Message             string   `json:"message"`
	Suggestions         []string `json:"suggestions"`
	Resources           []string `json:"resources"`
	FollowUp            []string `json:"follow_up"`
	EmotionalValidation string   `json:"emotional_validation"`
	ActionItems         []string `json:"action_items"`
}

type composeRule func(s *Service, req Request, b *Bundle)

// composeRules maps each intent to its composition branch; unknown intents
// fall back to the general rule.
var composeRules = map[intent.Intent]composeRule{
	intent.Crisis:         composeCrisis,
	intent.CasualGreeting: composeCasualGreeting,
	intent.Mood:           composeMood,
	intent.Stress:         composeCoping,
	intent.Anxiety:        composeCoping,
	intent.Depression:     composeCoping,
	intent.Sleep:          composeCoping,
	intent.Headache:       composeHeadache,
	intent.Help:           composeHelp,
	intent.General:        composeGeneral,
}

type Service struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(_ *do.Injector) (*Service, error) {
	return NewSeeded(time.Now().UnixNano()), nil
}

// NewSeeded builds a composer with a fixed seed for reproducible selection.
func NewSeeded(seed int64) *Service {
	return &Service{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Compose assembles the response bundle for one classified turn.
func (s *Service) Compose(req Request) Bundle {
	var b Bundle

	rule, ok := composeRules[req.Intent]
	if !ok {
		rule = composeGeneral
	}
	rule(s, req, &b)

	if req.Sentiment == sentiment.Negative ||
		req.Intent == intent.Stress || req.Intent == intent.Anxiety || req.Intent == intent.Depression {
		line := s.pick(encouragementMessages)
		b.EmotionalValidation = strings.TrimSpace(b.EmotionalValidation + " " + line)
	}

	if b.Message == "" {
		b.Message = fallbackMessage
	}

	return b
}

func composeCrisis(s *Service, _ Request, b *Bundle) {
	b.Message = s.pick(crisisMessages)
	b.Resources = slices.Clone(crisisResources)
	b.ActionItems = slices.Clone(crisisActionItems)
}

func composeCasualGreeting(s *Service, _ Request, b *Bundle) {
	b.Message = s.pick(casualGreetingMessages)
	b.FollowUp = s.sample(followUpQuestions, followUpCount)
}

func composeMood(s *Service, req Request, b *Bundle) {
	switch req.Sentiment {
	case sentiment.Positive:
		b.Message = s.pick(moodGreatMessages)
		b.EmotionalValidation = "I love hearing about your positive experiences!"
	case sentiment.Negative:
		b.Message = s.pick(moodBadMessages)
		b.EmotionalValidation = "I can sense this is really difficult for you right now."
	default:
		b.Message = s.pick(moodNeutralMessages)
		b.EmotionalValidation = "Thank you for sharing how you're feeling with me."
	}

	b.FollowUp = s.sample(followUpQuestions, followUpCount)
}

func composeCoping(s *Service, req Request, b *Bundle) {
	b.Message = s.pick(copingMessages[req.Intent])
	b.EmotionalValidation = copingValidations[req.Intent]

	techniques := s.sampleTechniques(copingTechniques[req.Intent], suggestionCount)
	for _, technique := range techniques {
		b.Suggestions = append(b.Suggestions, technique.Name+": "+technique.Description)
	}
}

func composeHeadache(s *Service, _ Request, b *Bundle) {
	b.Message = s.pick(headacheMessages)
	b.EmotionalValidation = "I understand how uncomfortable and distracting headaches can be."
	b.FollowUp = slices.Clone(headacheFollowUps)
}

func composeHelp(s *Service, _ Request, b *Bundle) {
	b.Message = helpMessage
	b.Resources = append(b.Resources, professionalHelpResources[:helpResourceCap]...)
	b.Resources = append(b.Resources, selfHelpResources[:helpResourceCap]...)
	b.FollowUp = slices.Clone(helpFollowUps)
}

func composeGeneral(s *Service, req Request, b *Bundle) {
	lower := strings.ToLower(req.Message)

	for _, entry := range faqEntries {
		if strings.Contains(lower, entry.Question) {
			b.Message = entry.Answer
			return
		}
	}

	b.Message = s.pick(greetingMessages)
	b.FollowUp = s.sample(followUpQuestions, followUpCount)
}

// pick returns a uniformly random element, or "" for an empty pool.
func (s *Service) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	if len(pool) == 1 {
		return pool[0]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return pool[s.rng.Intn(len(pool))]
}

// sample picks n distinct elements; whole pool when it is smaller than n.
func (s *Service) sample(pool []string, n int) []string {
	if len(pool) <= n {
		return slices.Clone(pool)
	}

	s.mu.Lock()
	perm := s.rng.Perm(len(pool))
	s.mu.Unlock()

	result := make([]string, 0, n)
	for _, idx := range perm[:n] {
		result = append(result, pool[idx])
	}

	return result
}

func (s *Service) sampleTechniques(pool []Technique, n int) []Technique {
	if len(pool) <= n {
		return slices.Clone(pool)
	}

	s.mu.Lock()
	perm := s.rng.Perm(len(pool))
	s.mu.Unlock()

	result := make([]Technique, 0, n)
	for _, idx := range perm[:n] {
		result = append(result, pool[idx])
	}

	return result
}
