package tweetsent

import "fmt"

// Category names a lexicon word list.
type Category string

const (
	PositiveCategory Category = "positive"
	NegativeCategory Category = "negative"
	NeutralCategory  Category = "neutral"
)

// Classification holds per-category token match counts for one text.
type Classification struct {
	Positive int // Tokens matching a positive word.
	Neutral  int // Tokens matching a neutral word.
	Negative int // Tokens matching a negative word.
}

// Total returns the number of tokens that matched any category.
func (c Classification) Total() int {
	return c.Positive + c.Neutral + c.Negative
}

// Score weighs each category count and sums the result.
func (c Classification) Score(w Weights) int {
	return c.Positive*w.Positive + c.Neutral*w.Neutral + c.Negative*w.Negative
}

// Weights assigns a signed weight to each category.
type Weights struct {
	Positive int
	Neutral  int
	Negative int
}

// DefaultWeights counts positive matches up, negative matches down and
// ignores neutral matches.
var DefaultWeights = Weights{Positive: 1, Neutral: 0, Negative: -1}

// Sentiment is the polarity implied by a score's sign.
type Sentiment int

const (
	Negative Sentiment = -1
	Neutral  Sentiment = 0
	Positive Sentiment = 1
)

// String returns the name of the sentiment.
func (s Sentiment) String() string {
	switch s {
	case Negative:
		return "Negative"
	case Neutral:
		return "Neutral"
	case Positive:
		return "Positive"
	default:
		return fmt.Sprintf("Sentiment(%d)", int(s))
	}
}

// SentimentOf maps a score to its polarity.
func SentimentOf(score int) Sentiment {
	switch {
	case score > 0:
		return Positive
	case score < 0:
		return Negative
	default:
		return Neutral
	}
}

// Result is the outcome of scoring one tweet.
type Result struct {
	Line           int     // 1-based position in the input.
	Text           string  // The tweet as read.
	Normalized     string  // The sanitized tweet that was scored.
	Score          int     // Positive minus negative matches.
	Quality        float64 // Lexicon-wide matches divided by lexicon size.
	Classification Classification
}

// Sentiment returns the polarity of the result's score.
func (r Result) Sentiment() Sentiment {
	return SentimentOf(r.Score)
}

// String returns a debug representation of the result.
func (r Result) String() string {
	return fmt.Sprintf("%s(score=%d, quality=%.4f, pos=%d, neu=%d, neg=%d)",
		r.Sentiment(), r.Score, r.Quality,
		r.Classification.Positive, r.Classification.Neutral, r.Classification.Negative)
}

// Language is an ISO 639-1 code used to pick a stop word list.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
	German  Language = "de"
)
