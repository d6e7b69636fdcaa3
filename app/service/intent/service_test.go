package intent

import (
	"testing"

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

func TestClassifyBareGreeting(t *testing.T) {
	svc := newTestService(t)

	for _, text := range []string{"hi", "Hello", "HEY THERE", "  hi there  "} {
		if got := svc.Classify(text, nil); got != CasualGreeting {
			t.Fatalf("Classify(%q) = %s, want casual_greeting", text, got)
		}
	}
}

func TestClassifyGreetingIsExactMatchOnly(t *testing.T) {
	svc := newTestService(t)

	if got := svc.Classify("hi everyone, I wanted to ask something", nil); got == CasualGreeting {
		t.Fatal("substring greeting must not classify as casual_greeting")
	}
}

func TestClassifyCrisisKeywords(t *testing.T) {
	svc := newTestService(t)

	texts := []string{
		"I want to kill myself",
		"sometimes I think about suicide",
		"I just want to end it all",
		"I can't take it anymore",
		"hi, I want to end it all",
	}

	for _, text := range texts {
		if got := svc.Classify(text, nil); got != Crisis {
			t.Fatalf("Classify(%q) = %s, want crisis", text, got)
		}
	}
}

func TestClassifyCrisisOverridesOtherSignals(t *testing.T) {
	svc := newTestService(t)

	// Stress and sleep keywords present, crisis still wins.
	text := "I'm stressed, exhausted and I feel like it's not worth living"
	history := []string{"I'm stressed about exams", "so much pressure"}

	if got := svc.Classify(text, history); got != Crisis {
		t.Fatalf("Classify = %s, want crisis", got)
	}
}

func TestClassifyCrisisIgnoresNegation(t *testing.T) {
	svc := newTestService(t)

	if got := svc.Classify("I don't want to kill myself", nil); got != Crisis {
		t.Fatalf("Classify = %s, want crisis (conservative substring match)", got)
	}
}

func TestClassifyHeadache(t *testing.T) {
	svc := newTestService(t)

	for _, text := range []string{"I have a terrible headache", "my head hurts all day", "another migraine"} {
		if got := svc.Classify(text, nil); got != Headache {
			t.Fatalf("Classify(%q) = %s, want headache", text, got)
		}
	}
}

func TestClassifyScoredCategories(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		text string
		want Intent
	}{
		{"I'm so stressed with deadlines and workload", Stress},
		{"I'm anxious and worried about everything", Anxiety},
		{"I feel hopeless and worthless and lonely", Depression},
		{"insomnia again, restless nights and nightmares", Sleep},
		{"my mood is off, I feel upset", Mood},
	}

	for _, tc := range cases {
		if got := svc.Classify(tc.text, nil); got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestClassifyContextBoost(t *testing.T) {
	svc := newTestService(t)

	// One anxiety keyword vs one stress keyword: the recurring stress topic in
	// history is sticky and may tip the balance either way, but the result must
	// stay within the two contenders.
	text := "I've been so anxious about exams and can't sleep"
	history := []string{"I'm stressed about exams"}

	got := svc.Classify(text, history)
	if got != Anxiety && got != Stress && got != Sleep {
		t.Fatalf("Classify = %s, want one of anxiety/stress/sleep", got)
	}

	// A topic repeated across several prior turns dominates a single fresh keyword.
	history = []string{"so stressed", "the pressure is constant", "workload is crushing me"}
	if got := svc.Classify("I'm worried but mostly it's the stress again", history); got != Stress {
		t.Fatalf("Classify = %s, want stress after repeated history", got)
	}
}

func TestClassifyHistoryWindow(t *testing.T) {
	svc := newTestService(t)

	// Only the last 3 history entries count; older stress mentions are ignored.
	history := []string{"stressed", "stressed", "nice day", "great weather", "all good"}

	if got := svc.Classify("I'm worried", history); got != Anxiety {
		t.Fatalf("Classify = %s, want anxiety (old history outside window)", got)
	}
}

func TestClassifyHelpPhrase(t *testing.T) {
	svc := newTestService(t)

	if got := svc.Classify("I'm looking for support with my wellbeing", nil); got != Help {
		t.Fatalf("Classify = %s, want help", got)
	}
}

func TestClassifyGeneralFallback(t *testing.T) {
	svc := newTestService(t)

	for _, text := range []string{"what is mindfulness", "the bus was late today", ""} {
		if got := svc.Classify(text, nil); got != General {
			t.Fatalf("Classify(%q) = %s, want general", text, got)
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	svc := newTestService(t)

	text := "I'm sad and tired and worried"
	history := []string{"feeling down", "so worried"}

	first := svc.Classify(text, history)
	for i := 0; i < 20; i++ {
		if got := svc.Classify(text, history); got != first {
			t.Fatalf("classification changed between runs: %s vs %s", first, got)
		}
	}
}
