// Package tweetsent scores short texts against a three-category word
// lexicon.
//
// Text is first reduced by Sanitize to lowercase ASCII tokens separated by
// single spaces. Each token is then matched exactly against the positive,
// negative and neutral words of a Lexicon. The score of a text is its number
// of positive matches minus its number of negative matches, and its quality
// index is the number of tokens matching any lexicon word divided by the
// lexicon size.
//
// A Lexicon is immutable once built, so a single value can be shared by any
// number of goroutines. ScoreBatch relies on that to score independent
// tweets concurrently.
package tweetsent
