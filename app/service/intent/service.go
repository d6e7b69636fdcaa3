package intent

import (
	"strings"

	"github.com/elliotchance/pie/v2"
	"github.com/samber/do"
)

const (
	historyWindow = 3
	contextBoost  = 0.5
)

type Service struct{}

func New(_ *do.Injector) (*Service, error) {
	return &Service{}, nil
}

// Classify assigns exactly one intent to a user message. Checks run in strict
// priority order and short-circuit on the first match: exact bare greeting,
// crisis keyword, headache keyword, weighted category scoring with context
// boost, explicit help phrase, general fallback. The result depends only on
// the message, the supplied history and the fixed keyword tables.
func (s *Service) Classify(text string, history []string) Intent {
	normalized := strings.ToLower(strings.TrimSpace(text))

	if pie.Contains(bareGreetings, normalized) {
		return CasualGreeting
	}

	if containsAny(normalized, crisisKeywords) {
		return Crisis
	}

	if containsAny(normalized, headacheKeywords) {
		return Headache
	}

	scores := make(map[Intent]float64)

	for category, keywords := range scoredKeywords {
		for _, keyword := range keywords {
			if strings.Contains(normalized, keyword) {
				scores[category]++
			}
		}
	}

	recent := history
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}

	for _, past := range recent {
		pastLower := strings.ToLower(past)

		for _, category := range stickyIntents {
			for _, keyword := range scoredKeywords[category] {
				if strings.Contains(pastLower, keyword) {
					scores[category] += contextBoost
				}
			}
		}
	}

	best := General
	bestScore := 0.0

	for _, category := range scoredOrder {
		if scores[category] > bestScore {
			best = category
			bestScore = scores[category]
		}
	}

	if bestScore > 0 {
		return best
	}

	if containsAny(normalized, helpPhrases) {
		return Help
	}

	return General
}

func containsAny(text string, keywords []string) bool {
	return pie.Any(keywords, func(keyword string) bool {
		return strings.Contains(text, keyword)
	})
}
