package tweetsent

import "strings"

// Classify counts how many whitespace tokens of text match a word in each
// category. A token counts once per matching word, so with a valid lexicon
// it adds at most one to at most one category.
//
// All three lists must be non-empty and alphabetic, and text must not be
// empty.
func Classify(positive, neutral, negative []string, text string) (Classification, error) {
	err := validate(
		wordList(string(PositiveCategory), positive),
		wordList(string(NeutralCategory), neutral),
		wordList(string(NegativeCategory), negative),
		nonEmptyText("text", text),
	)
	if err != nil {
		return Classification{}, err
	}
	return classify(strings.Fields(text), positive, neutral, negative), nil
}

func classify(tokens, positive, neutral, negative []string) Classification {
	var c Classification
	for _, token := range tokens {
		c.Positive += occurrences(positive, token)
		c.Neutral += occurrences(neutral, token)
		c.Negative += occurrences(negative, token)
	}
	return c
}

// occurrences returns how many times token appears in words.
func occurrences(words []string, token string) int {
	n := 0
	for _, w := range words {
		if w == token {
			n++
		}
	}
	return n
}
