package emotion

import (
	"sync"
	"testing"

	"august/app/service/intent"
	"august/app/service/sentiment"

	"github.com/samber/do"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	svc, err := New(do.New())
	if err != nil {
		t.Fatalf("New err: %v", err)
	}

	return svc
}

func TestGetUnseenUserReturnsDefault(t *testing.T) {
	svc := newTestService(t)

	state := svc.Get("nobody")
	if state.CurrentMood != sentiment.Neutral {
		t.Fatalf("mood = %s, want neutral", state.CurrentMood)
	}
	if state.StressLevel != 5 || state.AnxietyLevel != 5 {
		t.Fatalf("levels = %f/%f, want 5/5", state.StressLevel, state.AnxietyLevel)
	}
}

func TestUpdateStressAndAnxiety(t *testing.T) {
	svc := newTestService(t)

	state := svc.Update("alice", intent.Stress, sentiment.Negative)
	if state.StressLevel != 6 {
		t.Fatalf("stress = %f, want 6", state.StressLevel)
	}
	if state.CurrentMood != sentiment.Negative {
		t.Fatalf("mood = %s, want negative", state.CurrentMood)
	}

	state = svc.Update("alice", intent.Anxiety, sentiment.Neutral)
	if state.AnxietyLevel != 6 {
		t.Fatalf("anxiety = %f, want 6", state.AnxietyLevel)
	}
	if state.CurrentMood != sentiment.Neutral {
		t.Fatalf("mood = %s, want neutral", state.CurrentMood)
	}
}

func TestUpdatePositiveMoodLowersLevels(t *testing.T) {
	svc := newTestService(t)

	state := svc.Update("bob", intent.Mood, sentiment.Positive)
	if state.StressLevel != 4.5 || state.AnxietyLevel != 4.5 {
		t.Fatalf("levels = %f/%f, want 4.5/4.5", state.StressLevel, state.AnxietyLevel)
	}
}

func TestUpdateOtherIntentsLeaveLevelsAlone(t *testing.T) {
	svc := newTestService(t)

	for _, it := range []intent.Intent{intent.General, intent.Sleep, intent.Crisis, intent.Headache} {
		svc.Update("carol", it, sentiment.Negative)
	}

	state := svc.Get("carol")
	if state.StressLevel != 5 || state.AnxietyLevel != 5 {
		t.Fatalf("levels = %f/%f, want untouched 5/5", state.StressLevel, state.AnxietyLevel)
	}
	if state.CurrentMood != sentiment.Negative {
		t.Fatalf("mood = %s, want negative", state.CurrentMood)
	}
}

func TestUpdateClampsWithinBounds(t *testing.T) {
	svc := newTestService(t)

	for i := 0; i < 30; i++ {
		state := svc.Update("dave", intent.Stress, sentiment.Negative)
		if state.StressLevel < 1 || state.StressLevel > 10 {
			t.Fatalf("stress out of bounds: %f", state.StressLevel)
		}
	}
	if state := svc.Get("dave"); state.StressLevel != 10 {
		t.Fatalf("stress = %f, want capped at 10", state.StressLevel)
	}

	for i := 0; i < 30; i++ {
		state := svc.Update("dave", intent.Mood, sentiment.Positive)
		if state.StressLevel < 1 || state.AnxietyLevel < 1 {
			t.Fatalf("levels below floor: %f/%f", state.StressLevel, state.AnxietyLevel)
		}
	}
	if state := svc.Get("dave"); state.StressLevel != 1 || state.AnxietyLevel != 1 {
		t.Fatalf("levels = %f/%f, want floored at 1/1", state.StressLevel, state.AnxietyLevel)
	}
}

func TestConcurrentUpdatesForDistinctUsers(t *testing.T) {
	svc := newTestService(t)

	var wg sync.WaitGroup
	users := []string{"u1", "u2", "u3", "u4"}

	for _, username := range users {
		wg.Add(1)
		go func(username string) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				svc.Update(username, intent.Stress, sentiment.Negative)
			}
		}(username)
	}
	wg.Wait()

	for _, username := range users {
		if state := svc.Get(username); state.StressLevel != 10 {
			t.Fatalf("user %s stress = %f, want 10", username, state.StressLevel)
		}
	}
}
