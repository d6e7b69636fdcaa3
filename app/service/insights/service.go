package insights

import (
	"time"

	"august/app/service/emotion"
	"august/app/service/history"
	"august/app/service/intent"
	"august/app/service/sentiment"

	"github.com/elliotchance/pie/v2"
	"github.com/samber/do"
)

const (
	recentWindow     = 30 * 24 * time.Hour
	stateHistorySize = 10
)

// Summary aggregates one user's stored conversation log.
type Summary struct {
	TotalConversations    int                        `json:"total_conversations"`
	MostCommonIntent      intent.Intent              `json:"most_common_intent"`
	IntentDistribution    map[intent.Intent]int      `json:"intent_distribution"`
	OverallSentiment      sentiment.Category         `json:"overall_sentiment"`
	SentimentDistribution map[sentiment.Category]int `json:"sentiment_distribution"`
	RecentTrends          map[intent.Intent]int      `json:"recent_trends"`
	EmotionalStateHistory []emotion.State            `json:"emotional_state_history"`
}

type Service struct {
	historySvc *history.Service
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		historySvc: do.MustInvoke[*history.Service](di),
	}, nil
}

// Summarize derives aggregate statistics from the user's stored log.
// Returns nil when no log exists or it is empty.
func (s *Service) Summarize(username string) *Summary {
	turns := s.historySvc.Load(username)
	if len(turns) == 0 {
		return nil
	}

	intentCounts := make(map[intent.Intent]int)
	sentimentCounts := make(map[sentiment.Category]int)

	for _, turn := range turns {
		intentCounts[turn.Intent]++
		sentimentCounts[turn.Sentiment]++
	}

	cutoff := time.Now().Add(-recentWindow)
	recent := pie.Filter(turns, func(turn history.Turn) bool {
		return turn.Timestamp.After(cutoff)
	})

	recentTrends := make(map[intent.Intent]int)
	for _, turn := range recent {
		recentTrends[turn.Intent]++
	}

	stateTurns := turns
	if len(stateTurns) > stateHistorySize {
		stateTurns = stateTurns[len(stateTurns)-stateHistorySize:]
	}

	return &Summary{
		TotalConversations:    len(turns),
		MostCommonIntent:      dominantIntent(turns, intentCounts),
		IntentDistribution:    intentCounts,
		OverallSentiment:      dominantSentiment(turns, sentimentCounts),
		SentimentDistribution: sentimentCounts,
		RecentTrends:          recentTrends,
		EmotionalStateHistory: pie.Map(stateTurns, func(turn history.Turn) emotion.State {
			return turn.EmotionalState
		}),
	}
}

// dominantIntent breaks count ties by first appearance in the log.
func dominantIntent(turns []history.Turn, counts map[intent.Intent]int) intent.Intent {
	best := intent.General
	bestCount := 0

	for _, turn := range turns {
		if counts[turn.Intent] > bestCount {
			best = turn.Intent
			bestCount = counts[turn.Intent]
		}
	}

	return best
}

func dominantSentiment(turns []history.Turn, counts map[sentiment.Category]int) sentiment.Category {
	best := sentiment.Neutral
	bestCount := 0

	for _, turn := range turns {
		if counts[turn.Sentiment] > bestCount {
			best = turn.Sentiment
			bestCount = counts[turn.Sentiment]
		}
	}

	return best
}
