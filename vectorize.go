package tweetsent

import "strings"

// CountVector counts, for each reference word, how many whitespace tokens of
// text are exactly equal to it. The result is aligned with words: result[i]
// is the count for words[i].
//
// words must be non-empty and every word alphabetic. text may be empty.
func CountVector(text string, words []string) ([]int, error) {
	if err := validate(wordList("words", words)); err != nil {
		return nil, err
	}
	return countVector(strings.Fields(text), words), nil
}

// countVector assumes words has already been validated.
func countVector(tokens, words []string) []int {
	counts := make([]int, len(words))
	for _, token := range tokens {
		for i, w := range words {
			if w == token {
				counts[i]++
			}
		}
	}
	return counts
}

// sumCounts returns the total of a count vector.
func sumCounts(counts []int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}
