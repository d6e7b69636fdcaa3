package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
	"github.com/samber/do"
)

// Compound polarity thresholds used to bucket a score into a category.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

type Category string

const (
	Positive Category = "positive"
	Negative Category = "negative"
	Neutral  Category = "neutral"
)

// Scores holds the raw polarity breakdown of a single text.
// Compound is normalized to [-1, 1].
type Scores struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

type Service struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}, nil
}

// Score maps text to a sentiment category plus the raw lexicon scores.
// Empty or whitespace-only input is always neutral.
func (s *Service) Score(text string) (Category, Scores) {
	if strings.TrimSpace(text) == "" {
		return Neutral, Scores{Neutral: 1}
	}

	polarity := s.analyzer.PolarityScores(text)

	scores := Scores{
		Negative: polarity.Negative,
		Neutral:  polarity.Neutral,
		Positive: polarity.Positive,
		Compound: polarity.Compound,
	}

	switch {
	case scores.Compound >= positiveThreshold:
		return Positive, scores
	case scores.Compound <= negativeThreshold:
		return Negative, scores
	default:
		return Neutral, scores
	}
}
