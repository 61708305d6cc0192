package responder

import (
	"math/rand"
	"strings"
	"time"
)

// category is an ordered keyword group with its pool of canned replies.
// The first category with any keyword appearing as a substring of the
// lowercased input wins; there is no scoring or combination.
type category struct {
	name      string
	keywords  []string
	responses []string
}

// categories are evaluated in this exact order. Reordering changes which
// reply an input with keywords from several groups receives.
var categories = []category{
	{
		name:     "greeting",
		keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"},
		responses: []string{
			"Hello! 👋 How can I help you today?",
			"Hi there! 😊 What can I assist you with?",
			"Hey! Great to see you here. What's on your mind?",
			"Hello! I'm here and ready to help with whatever you need!",
		},
	},
	{
		name:     "help",
		keywords: []string{"help", "assist", "support", "what can you do"},
		responses: []string{
			"I'm here to help! 🤖 I can answer questions, provide explanations, help with problem-solving, engage in conversations, and much more. What specific topic would you like assistance with?",
		},
	},
	{
		name:     "joke",
		keywords: []string{"joke", "funny", "laugh", "humor"},
		responses: []string{
			"Why don't scientists trust atoms? Because they make up everything! 😄",
			"I told my wife she was drawing her eyebrows too high. She looked surprised! 😂",
			"Why don't programmers like nature? It has too many bugs! 🐛",
			"What do you call a bear with no teeth? A gummy bear! 🐻",
		},
	},
	{
		name:     "weather",
		keywords: []string{"weather", "temperature", "rain", "sunny", "cloudy"},
		responses: []string{
			"I don't have access to real-time weather data, but I'd recommend checking your local weather service or a weather app for current conditions! ☀️🌧️ Is there anything else I can help you with?",
		},
	},
	{
		name:     "food",
		keywords: []string{"cook", "recipe", "food", "eat", "hungry", "meal"},
		responses: []string{
			"I'd love to help with cooking! 👨‍🍳 While I can't see your specific question in detail, I can help with recipes, cooking techniques, ingredient substitutions, and meal planning. What specific dish or cooking question do you have?",
		},
	},
	{
		name:     "time",
		keywords: []string{"time", "date", "today", "now", "current"},
		responses: []string{
			"I don't have access to real-time information, but you can check the current time and date on your device! ⏰ Is there anything else I can help you with?",
		},
	},
	{
		name:     "technology",
		keywords: []string{"computer", "technology", "software", "programming", "code"},
		responses: []string{
			"I love talking about technology! 💻 I can help with programming concepts, software recommendations, troubleshooting, and general tech questions. What specific tech topic interests you?",
		},
	},
	{
		name:     "gratitude",
		keywords: []string{"thank", "thanks", "appreciate", "grateful"},
		responses: []string{
			"You're very welcome! 😊 Happy to help anytime!",
			"My pleasure! That's what I'm here for! 🤗",
			"You're welcome! Feel free to ask if you need anything else!",
			"Glad I could help! Don't hesitate to reach out again! 👍",
		},
	},
	{
		name:     "farewell",
		keywords: []string{"bye", "goodbye", "see you", "farewell", "later"},
		responses: []string{
			"Goodbye! 👋 Take care and come back anytime!",
			"See you later! 😊 It was great chatting with you!",
			"Farewell! Hope to talk with you again soon! 🌟",
			"Bye! Have a wonderful day ahead! ☀️",
		},
	},
}

// defaultResponses are used when no category keyword matches, including
// for empty input.
var defaultResponses = []string{
	"That's interesting! 🤔 Could you tell me more about what you're looking for?",
	"I'd be happy to help! Can you provide a bit more context about your question?",
	"Great question! 💭 Let me think about that... Could you elaborate on what specifically you'd like to know?",
	"I'm here to assist! 🤖 What particular aspect of this topic would you like to explore?",
	"Thanks for sharing that with me! What would you like to know or discuss about it?",
	"Interesting topic! 🌟 Is there a specific question you have or something particular you'd like help with?",
}

// Responder maps an input string to one canned reply. It reads and writes
// no state; replies are picked uniformly at random within the matched pool.
type Responder struct {
	intn func(n int) int
}

// New returns a Responder backed by a time-seeded source. Output is
// intentionally nondeterministic; callers needing reproducible picks use
// NewWithIntn.
func New() *Responder {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Responder{intn: r.Intn}
}

// NewWithIntn injects the random pick function. intn must return a value
// in [0, n).
func NewWithIntn(intn func(n int) int) *Responder {
	return &Responder{intn: intn}
}

// Generate returns a reply for input. It never fails and never returns an
// empty string: inputs matching no category fall through to the default
// pool. Matching lowercases the input and nothing else.
func (r *Responder) Generate(input string) string {
	msg := strings.ToLower(input)
	for _, cat := range categories {
		for _, kw := range cat.keywords {
			if strings.Contains(msg, kw) {
				return r.pick(cat.responses)
			}
		}
	}
	return r.pick(defaultResponses)
}

func (r *Responder) pick(pool []string) string {
	if len(pool) == 1 {
		return pool[0]
	}
	return pool[r.intn(len(pool))]
}

// DefaultResponses exposes a copy of the fallback pool so callers (and
// tests) can recognize a default reply.
func DefaultResponses() []string {
	return append([]string(nil), defaultResponses...)
}

// ResponsesFor returns a copy of the reply pool for a category name, or
// nil if the category does not exist.
func ResponsesFor(name string) []string {
	for _, cat := range categories {
		if cat.name == name {
			return append([]string(nil), cat.responses...)
		}
	}
	return nil
}
