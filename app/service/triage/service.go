package triage

import (
	"context"
	"log/slog"
	"time"

	"august/app/service/composer"
	"august/app/service/emotion"
	"august/app/service/history"
	"august/app/service/intent"
	"august/app/service/sentiment"

	"github.com/samber/do"
)

const (
	highStressLevel  = 7
	highAnxietyLevel = 7

	highStressReminder  = "Remember to be gentle with yourself during high-stress periods."
	highAnxietyReminder = "Take things one moment at a time - you're doing better than you think."
)

// Request is one inbound conversation turn.
type Request struct {
	Username      string
	Message       string
	History       []string
	SurveyContext map[string]float64
}

type Service struct {
	sentimentSvc *sentiment.Service
	intentSvc    *intent.Service
	emotionSvc   *emotion.Service
	composerSvc  *composer.Service
	historySvc   *history.Service
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		sentimentSvc: do.MustInvoke[*sentiment.Service](di),
		intentSvc:    do.MustInvoke[*intent.Service](di),
		emotionSvc:   do.MustInvoke[*emotion.Service](di),
		composerSvc:  do.MustInvoke[*composer.Service](di),
		historySvc:   do.MustInvoke[*history.Service](di),
	}, nil
}

// ProcessMessage runs one full turn: score sentiment, classify intent, update
// the user's emotional state, compose the response and persist the turn.
// Anonymous turns (empty username) skip state tracking and persistence.
func (s *Service) ProcessMessage(_ context.Context, req Request) composer.Bundle {
	start := time.Now()

	category, scores := s.sentimentSvc.Score(req.Message)
	it := s.intentSvc.Classify(req.Message, req.History)

	var state emotion.State
	if req.Username != "" {
		state = s.emotionSvc.Update(req.Username, it, category)
	}

	bundle := s.composerSvc.Compose(composer.Request{
		Intent:        it,
		Sentiment:     category,
		Message:       req.Message,
		State:         state,
		SurveyContext: req.SurveyContext,
		History:       req.History,
	})

	if req.Username != "" {
		if state.StressLevel > highStressLevel {
			bundle.Suggestions = append(bundle.Suggestions, highStressReminder)
		}
		if state.AnxietyLevel > highAnxietyLevel {
			bundle.Suggestions = append(bundle.Suggestions, highAnxietyReminder)
		}

		turn := history.Turn{
			Timestamp:      time.Now().UTC(),
			UserMessage:    req.Message,
			BotResponse:    bundle.Message,
			Intent:         it,
			Sentiment:      category,
			EmotionalState: state,
		}

		// The response still goes out when persistence fails; losing one log
		// entry must not block a (possibly crisis) reply.
		if err := s.historySvc.Append(req.Username, turn); err != nil {
			slog.Error("Failed to persist conversation turn",
				"username", req.Username,
				"error", err,
				"telegram", true,
			)
		}
	}

	slog.Info("Processed message",
		"username", req.Username,
		"intent", it,
		"sentiment", category,
		"compound", scores.Compound,
		"duration", time.Since(start),
	)

	return bundle
}
