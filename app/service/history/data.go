package history

import (
	"time"

	"august/app/service/emotion"
	"august/app/service/intent"
	"august/app/service/sentiment"
)

// Turn is one persisted conversation record. Immutable once written.
type Turn struct {
	Timestamp      time.Time          `json:"timestamp"`
	UserMessage    string             `json:"user_message"`
	BotResponse    string             `json:"bot_response"`
	Intent         intent.Intent      `json:"intent"`
	Sentiment      sentiment.Category `json:"sentiment"`
	EmotionalState emotion.State      `json:"emotional_state"`
}
