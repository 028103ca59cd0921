package content

import (
	"math/rand/v2"
)

type Kind string

const (
	KindJoke   Kind = "joke"
	KindTrivia Kind = "trivia"
)

// Fallback content, used when AI generation is disabled or fails. Never
// mutated after process start.
var fallbackJokes = []string{
	"Why do programmers prefer dark mode? Because light attracts bugs! 🐛",
	"How many programmers does it take to change a light bulb? None. That's a hardware problem. 💡",
	"Why do Java developers wear glasses? Because they don't C#! 👓",
	"A SQL query goes into a bar, walks up to two tables and asks... 'Can I join you?' 🍺",
	"Why did the developer go broke? Because he used up all his cache! 💸",
	"What's a programmer's favorite hangout place? Foo Bar! 🍻",
	"Why do programmers hate nature? It has too many bugs! 🌿",
	"How do you comfort a JavaScript bug? You console it! 🐞",
	"Why don't programmers like nature? Too many bugs! 🦟",
	"What do you call a programming language that never crashes? A myth! 💫",
}

var fallbackTrivia = []string{
	"The first computer bug was an actual bug - a moth trapped in a Harvard Mark II computer in 1947!",
	"The term 'debugging' was coined by Admiral Grace Hopper when she found that moth!",
	"JavaScript was created in just 10 days by Brendan Eich in 1995.",
	"The first 1GB hard drive cost $40,000 and weighed over 500 pounds (1980).",
	"Python is named after Monty Python's Flying Circus, not the snake! 🐍",
	"The original name for Java was 'Oak', but it was changed due to trademark issues.",
	"Linux powers 96.3% of the top 1 million web servers in the world! 🐧",
	"The @ symbol was chosen for email addresses because it was the only preposition available on the keyboard.",
	"The first computer virus was created in 1986 and was called 'Brain'.",
	"The term 'cookie' in web development comes from 'magic cookie', a packet of data in Unix systems.",
}

// Library holds the static fallback jokes and trivia facts.
type Library struct {
	jokes  []string
	trivia []string
	rand   *rand.Rand
}

type Option func(*Library)

func WithRand(r *rand.Rand) Option {
	return func(l *Library) {
		l.rand = r
	}
}

func NewLibrary(opts ...Option) *Library {
	l := &Library{
		jokes:  fallbackJokes,
		trivia: fallbackTrivia,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// PickFallback returns a uniformly random entry of the given kind.
func (l *Library) PickFallback(kind Kind) string {
	items := l.jokes
	if kind == KindTrivia {
		items = l.trivia
	}

	if l.rand != nil {
		return items[l.rand.IntN(len(items))]
	}
	return items[rand.IntN(len(items))]
}

func (l *Library) Jokes() []string {
	out := make([]string, len(l.jokes))
	copy(out, l.jokes)
	return out
}

func (l *Library) Trivia() []string {
	out := make([]string, len(l.trivia))
	copy(out, l.trivia)
	return out
}
