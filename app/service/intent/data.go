package intent

type Intent string

const (
	CasualGreeting Intent = "casual_greeting"
	Crisis         Intent = "crisis"
	Headache       Intent = "headache"
	Mood           Intent = "mood"
	Stress         Intent = "stress"
	Anxiety        Intent = "anxiety"
	Depression     Intent = "depression"
	Sleep          Intent = "sleep"
	Help           Intent = "help"
	General        Intent = "general"
)

// bareGreetings are matched against the whole normalized message, not as substrings.
var bareGreetings = []string{
	"hi", "hello", "hey", "hi there", "hello there", "hey there",
}

// crisisKeywords short-circuit every other check. Substring matching is intentionally
// naive ("die" matches "diet") to err toward escalation.
var crisisKeywords = []string{
	"suicide", "kill myself", "end it all", "not worth living", "harm myself",
	"die", "crisis", "emergency", "help me", "can't take it anymore",
	"want to die", "life not worth living",
}

var headacheKeywords = []string{
	"headache", "head pain", "migraine", "head hurt", "head hurts",
}

var scoredKeywords = map[Intent][]string{
	Mood: {
		"feel", "feeling", "mood", "emotion", "happy", "sad", "angry",
		"excited", "down", "upset",
	},
	Stress: {
		"stress", "stressed", "overwhelmed", "pressure", "workload",
		"deadlines", "busy", "tired",
	},
	Anxiety: {
		"anxious", "anxiety", "worried", "worrying", "panic", "nervous",
		"scared", "fear",
	},
	Depression: {
		"depressed", "depression", "sad", "hopeless", "empty", "worthless",
		"lonely", "isolated",
	},
	Sleep: {
		"sleep", "insomnia", "tired", "exhausted", "fatigue", "restless",
		"nightmares",
	},
}

// scoredOrder fixes tie-breaking between equally scored categories.
var scoredOrder = []Intent{Mood, Stress, Anxiety, Depression, Sleep}

// stickyIntents get a context boost when their keywords recur in recent history.
var stickyIntents = []Intent{Stress, Anxiety, Depression}

var helpPhrases = []string{
	"need help", "need some help", "looking for help", "can you help",
	"could you help", "where can i get help", "need support", "looking for support",
}
