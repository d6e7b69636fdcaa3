package composer

import "august/app/service/intent"

// fallbackMessage guarantees every bundle carries a non-empty message.
const fallbackMessage = "I'm here to support you. Could you tell me more about how you're feeling or what you'd like to discuss?"

const helpMessage = "I'm here to support you in whatever way I can. What specific type of help are you looking for?"

var greetingMessages = []string{
	"Hi there! I'm August, your mental health companion. How are you doing today?",
	"Hello! I'm here to support you. What's on your mind?",
	"Hey! I'm August, ready to listen and help. How can I support you today?",
}

var casualGreetingMessages = []string{
	"Hi!",
	"Hello!",
	"Hey there!",
	"Hi! How's it going?",
}

var moodGreatMessages = []string{
	"That's fantastic! I'm really happy to hear that. What's making you feel so good?",
	"Wonderful! Your positive energy is contagious. What's been the highlight of your day?",
	"That's awesome! Let's celebrate this good feeling. What's contributing to your great mood?",
}

var moodNeutralMessages = []string{
	"I appreciate you sharing that. Sometimes 'okay' is exactly where we need to be. What's been on your mind?",
	"Thanks for being honest about feeling neutral. How has your day been treating you?",
	"I understand - not every day is amazing, and that's okay. Would you like to talk about anything specific?",
}

var moodBadMessages = []string{
	"I'm really sorry you're feeling this way. I'm here for you. Would you like to talk about what's going on?",
	"I can hear that you're struggling, and I want you to know I'm here to listen without any judgment.",
	"Thank you for trusting me with how you're feeling. What's been the most difficult part lately?",
}

var stressMessages = []string{
	"I can sense how overwhelming this stress feels. Let's work through this together. What's causing you the most stress right now?",
	"Stress can be really challenging. You're taking an important step by acknowledging it. What's been weighing on you?",
	"I understand how debilitating stress can feel. Let's identify what's contributing to this and find some relief strategies.",
}

var anxietyMessages = []string{
	"I hear the anxiety in your words, and I'm right here with you. Let's explore some techniques to help ease this feeling.",
	"Anxiety can feel so overwhelming, but you're not alone in this. What's been triggering these feelings lately?",
	"Thank you for sharing about your anxiety. Let's work on some grounding techniques to help you feel more centered.",
}

var depressionMessages = []string{
	"I want you to know that I see your courage in reaching out during this difficult time. What's been the hardest part for you?",
	"Your feelings are completely valid, and I'm here to support you through this. Would you like to talk about what's been weighing on you?",
	"Depression can make everything feel so heavy. I'm here to listen and help you find some light in the darkness.",
}

var sleepMessages = []string{
	"Sleep challenges can really impact our mental health. Let's explore what's affecting your sleep and develop a plan to improve it.",
	"I understand how frustrating poor sleep can be. What's been interfering with your rest lately?",
	"Quality sleep is so important for mental wellness. Let's identify what's disrupting your sleep patterns.",
}

var headacheMessages = []string{
	"I'm sorry to hear you're experiencing head pain. Headaches can be really debilitating. Are you feeling stressed or anxious lately? Sometimes tension and stress can contribute to headaches.",
	"Head pain can be challenging to deal with. I notice you mentioned having a headache - could stress or lack of sleep be playing a role? Let's explore what might be causing this.",
	"I can sense this headache is causing you discomfort. Sometimes headaches are related to stress, tension, or other factors. Would you like to talk about what might be contributing to this?",
}

var crisisMessages = []string{
	"I hear the depth of your pain, and I'm deeply concerned about your safety. Please reach out to a crisis professional immediately - you don't have to face this alone.",
	"Your wellbeing is the most important thing right now. Please contact emergency services (911) or the National Suicide Prevention Lifeline (988) immediately. I'm here, but professionals can provide the immediate help you need.",
	"I can sense this is an extremely difficult time for you. Please seek immediate professional help - call 988 for the Suicide Prevention Lifeline or 911 for emergency services. You're not alone, and there are people ready to help you through this crisis.",
}

var encouragementMessages = []string{
	"You're showing incredible strength by taking care of your mental health. Every step you take matters.",
	"Your dedication to your wellbeing is inspiring. Remember that progress isn't always linear, but every effort counts.",
	"I admire your courage in prioritizing your mental health. You're building resilience with each positive choice.",
}

var followUpQuestions = []string{
	"How has your energy level been lately?",
	"What's been the most challenging part of your day?",
	"What activities usually help lift your mood?",
	"How are you sleeping these days?",
	"What's one thing that's been worrying you?",
	"How connected do you feel to the people around you?",
	"What's bringing you a sense of purpose right now?",
	"How do you typically cope with difficult emotions?",
	"What's been going well for you recently?",
	"Is there anything specific you'd like support with today?",
}

var headacheFollowUps = []string{
	"Are you feeling stressed or anxious lately? Sometimes tension contributes to headaches.",
	"Have you been getting enough sleep? Poor sleep can often trigger headaches.",
	"Are you staying hydrated? Dehydration is a common headache trigger.",
}

var helpFollowUps = []string{
	"Are you looking for immediate coping strategies or longer-term support?",
	"What's been the most challenging aspect of your mental health lately?",
}

var crisisActionItems = []string{
	"Contact crisis services immediately",
	"Tell a trusted person how you're feeling",
}

// Technique is a single structured coping strategy entry.
type Technique struct {
	Name        string
	Description string
	Duration    string
	Frequency   string
}

var copingTechniques = map[intent.Intent][]Technique{
	intent.Stress: {
		{
			Name:        "5-4-3-2-1 Grounding",
			Description: "Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, 1 you can taste. This brings you back to the present moment.",
			Duration:    "2-3 minutes",
			Frequency:   "As needed during high stress",
		},
		{
			Name:        "4-7-8 Breathing",
			Description: "Inhale for 4 counts, hold for 7, exhale for 8. This activates your parasympathetic nervous system for quick stress relief.",
			Duration:    "1-2 minutes",
			Frequency:   "3-5 times when feeling stressed",
		},
		{
			Name:        "Progressive Muscle Relaxation",
			Description: "Tense and release each muscle group from toes to head. This releases physical tension that accompanies stress.",
			Duration:    "10-15 minutes",
			Frequency:   "Daily, especially before bed",
		},
		{
			Name:        "Gratitude Journaling",
			Description: "Write down 3 specific things you're grateful for each day. This shifts focus from stressors to positive aspects.",
			Duration:    "5 minutes",
			Frequency:   "Daily, preferably in the morning",
		},
	},
	intent.Anxiety: {
		{
			Name:        "Cognitive Reframing",
			Description: "Challenge anxious thoughts by asking: \"What's the evidence for this worry? What's the evidence against it? What's a more balanced thought?\"",
			Duration:    "5-10 minutes",
			Frequency:   "When anxious thoughts arise",
		},
		{
			Name:        "Mindfulness Meditation",
			Description: "Focus on your breath or present sensations without judgment. Apps like Headspace can guide you through this.",
			Duration:    "5-20 minutes",
			Frequency:   "Daily practice builds resilience",
		},
		{
			Name:        "Grounding Objects",
			Description: "Keep a small object (stone, keychain) in your pocket. When anxious, focus all attention on its texture, weight, and temperature.",
			Duration:    "1-2 minutes",
			Frequency:   "As needed for immediate relief",
		},
		{
			Name:        "Positive Affirmations",
			Description: "Repeat phrases like \"I am safe,\" \"I am capable,\" \"This feeling will pass,\" and \"I have handled difficult situations before.\"",
			Duration:    "2-3 minutes",
			Frequency:   "Multiple times daily",
		},
	},
	intent.Depression: {
		{
			Name:        "Behavioral Activation",
			Description: "Break tasks into tiny steps and celebrate each completion. Even getting out of bed is a victory worth acknowledging.",
			Duration:    "Varies",
			Frequency:   "Daily small steps",
		},
		{
			Name:        "Social Connection",
			Description: "Reach out to one person daily, even if just to say \"hello.\" Connection combats isolation that often accompanies depression.",
			Duration:    "5-15 minutes",
			Frequency:   "Daily social contact",
		},
		{
			Name:        "Sunlight Exposure",
			Description: "Spend 10-15 minutes in natural sunlight daily. This helps regulate mood through vitamin D and circadian rhythm support.",
			Duration:    "10-15 minutes",
			Frequency:   "Daily, preferably morning",
		},
		{
			Name:        "Self-Compassion Practice",
			Description: "Speak to yourself as you would to a dear friend. Acknowledge that it's okay to struggle and that you're worthy of kindness.",
			Duration:    "3-5 minutes",
			Frequency:   "Multiple times daily",
		},
	},
	intent.Sleep: {
		{
			Name:        "Sleep Hygiene Routine",
			Description: "Create a consistent pre-bed routine: dim lights, avoid screens 1 hour before bed, keep bedroom cool and dark.",
			Duration:    "30-60 minutes before bed",
			Frequency:   "Every night",
		},
		{
			Name:        "Stimulus Control",
			Description: "Use bed only for sleep and intimacy. If you can't sleep after 20 minutes, get up and do a quiet activity until drowsy.",
			Duration:    "As needed",
			Frequency:   "When sleep issues occur",
		},
		{
			Name:        "Cognitive Behavioral Techniques",
			Description: "Challenge racing thoughts by writing them down before bed and scheduling \"worry time\" earlier in the day.",
			Duration:    "10-15 minutes before bed",
			Frequency:   "Nightly as needed",
		},
		{
			Name:        "Relaxation Response",
			Description: "Practice deep breathing or gentle yoga poses before bed to signal to your body that it's time to rest.",
			Duration:    "5-10 minutes",
			Frequency:   "Every night before bed",
		},
	},
}

var copingValidations = map[intent.Intent]string{
	intent.Stress:     "I understand how overwhelming stress can feel.",
	intent.Anxiety:    "Anxiety can be incredibly challenging, and I want you to know you're not alone.",
	intent.Depression: "Your feelings are valid, and reaching out shows incredible strength.",
	intent.Sleep:      "Sleep challenges are common and treatable.",
}

var copingMessages = map[intent.Intent][]string{
	intent.Stress:     stressMessages,
	intent.Anxiety:    anxietyMessages,
	intent.Depression: depressionMessages,
	intent.Sleep:      sleepMessages,
}

var crisisResources = []string{
	"🚨 National Suicide Prevention Lifeline: Call or text 988 (24/7) - Trained counselors ready to help",
	"🚨 Crisis Text Line: Text HOME to 741741 - Text-based crisis support available 24/7",
	"🚨 Emergency Services: Call 911 - For immediate danger or medical emergencies",
	"🏫 Campus Counseling Center: Most schools offer free, confidential mental health services to students",
}

var professionalHelpResources = []string{
	"🩺 Psychology Today (psychologytoday.com): Find licensed therapists in your area with detailed profiles",
	"💻 BetterHelp (betterhelp.com): Licensed online therapy with flexible scheduling",
	"💬 Talkspace (talkspace.com): Text and video therapy with licensed professionals",
	"🎓 Your School's Counseling Center: Free and confidential services for students",
	"🏥 Community Mental Health Centers: Low-cost or sliding-scale fee services based on income",
}

var selfHelpResources = []string{
	"🧘 Headspace or Calm: Guided meditation and mindfulness exercises",
	"📊 Mood Tracking: Daylio, Moodpath, or eMoods apps for tracking patterns",
	"📚 CBT Workbooks: 'Feeling Good' by David Burns or 'Mind Over Mood'",
	"🌱 7 Cups: Free emotional support and trained listeners available 24/7",
	"💪 Sanvello: CBT-based anxiety and depression management with coping tools",
	"🎵 Music Therapy: Curated playlists for different moods and relaxation",
}

type faqEntry struct {
	Question string
	Answer   string
}

// faqEntries are probed in order with substring matching against the raw message.
var faqEntries = []faqEntry{
	{"how are you", "I'm doing well, thank you for asking! I'm here and ready to support you. How are you feeling today?"},
	{"what can you do", "I can help you with mental health support, coping strategies, crisis intervention, and general wellbeing guidance. I'm here to listen and provide evidence-based support."},
	{"tell me about yourself", "I'm August, an AI mental health companion created to provide empathetic, intelligent support for mental wellness. I'm designed to understand emotions, provide coping strategies, and connect you with helpful resources."},
	{"what is mental health", "Mental health includes our emotional, psychological, and social wellbeing. It affects how we think, feel, and act, and it's important at every stage of life. Good mental health helps us cope with stress, relate to others, and make healthy choices."},
	{"how to reduce stress", "There are many effective ways to reduce stress: regular exercise, mindfulness practices, maintaining social connections, getting enough sleep, and setting healthy boundaries. Would you like specific techniques for stress management?"},
	{"what is anxiety", "Anxiety is your body's natural response to stress, but when it becomes excessive or persistent, it can interfere with daily life. It's characterized by feelings of worry, nervousness, or fear that are difficult to control."},
	{"how to help depression", "Supporting someone with depression involves listening without judgment, encouraging professional help, being patient, and helping with small daily tasks. If you're experiencing depression, reaching out for professional support is often the most helpful step."},
	{"what is mindfulness", "Mindfulness is the practice of maintaining a moment-by-moment awareness of our thoughts, feelings, bodily sensations, and surrounding environment with acceptance and without judgment. It helps reduce stress and improve mental clarity."},
	{"how to sleep better", "Good sleep hygiene includes maintaining a consistent sleep schedule, creating a relaxing bedtime routine, avoiding screens before bed, keeping your bedroom cool and dark, and avoiding caffeine late in the day. Would you like more specific sleep strategies?"},
}
