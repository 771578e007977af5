package tweetsent

import "strings"

// ScoreAndQuality scores an already sanitized tweet against the given word
// lists.
//
// The score is the number of positive matches minus the number of negative
// matches; neutral matches never move it. The quality index is the total
// number of tokens matching any word in all, divided by len(all). It is not
// capped at 1: a tweet repeating lexicon words can exceed it.
//
// Every argument is validated before anything is computed: tweet must be
// non-empty and the four lists non-empty and alphabetic.
func ScoreAndQuality(tweet string, positive, negative, neutral, all []string) (int, float64, error) {
	err := validate(
		nonEmptyText("tweet", tweet),
		wordList(string(PositiveCategory), positive),
		wordList(string(NegativeCategory), negative),
		wordList(string(NeutralCategory), neutral),
		wordList("all", all),
	)
	if err != nil {
		return 0, 0, err
	}

	c, quality := measure(strings.Fields(tweet), positive, negative, neutral, all)
	return c.Score(DefaultWeights), quality, nil
}

// Score sanitizes tweet and scores it against the lexicon. It fails with
// ErrTypeKind on invalid UTF-8 or a nil lexicon, and with ErrEmptyCategory
// when nothing is left after sanitizing or the lexicon has an empty
// category.
func (l *Lexicon) Score(tweet string) (Result, error) {
	if err := l.usable(); err != nil {
		return Result{}, err
	}
	if err := ValidateText(tweet); err != nil {
		return Result{}, err
	}
	normalized := Sanitize(tweet)
	if err := validate(nonEmptyText("tweet", normalized)); err != nil {
		return Result{}, err
	}

	c, quality := measure(strings.Fields(normalized), l.positive, l.negative, l.neutral, l.all)
	return Result{
		Text:           tweet,
		Normalized:     normalized,
		Score:          c.Score(DefaultWeights),
		Quality:        quality,
		Classification: c,
	}, nil
}

// measure computes the classification and the quality index of a tokenized
// tweet. The lists must already be validated.
func measure(tokens, positive, negative, neutral, all []string) (Classification, float64) {
	counts := countVector(tokens, all)
	c := classify(tokens, positive, neutral, negative)
	quality := float64(sumCounts(counts)) / float64(len(all))
	return c, quality
}
