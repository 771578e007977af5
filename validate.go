package tweetsent

import (
	"unicode"
	"unicode/utf8"
)

// A check is a single validation predicate. It returns nil when the rule
// holds and a *ValidationError otherwise.
type check func() error

// validate runs checks in order and returns the first failure.
func validate(checks ...check) error {
	for _, c := range checks {
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}

// nonEmptyWords fails when the word list has no elements.
func nonEmptyWords(collection string, words []string) check {
	return func() error {
		if len(words) == 0 {
			return newValidationError(ErrEmptyCategory, collection, "word list must not be empty")
		}
		return nil
	}
}

// alphabeticWords fails on the first word that is not made only of letters.
func alphabeticWords(collection string, words []string) check {
	return func() error {
		for i, w := range words {
			if !isAlpha(w) {
				return newValidationError(ErrInvalidWord, collection,
					"word %d (%q) must contain only alphabetic characters", i, w)
			}
		}
		return nil
	}
}

// nonEmptyText fails on the empty string.
func nonEmptyText(collection, text string) check {
	return func() error {
		if text == "" {
			return newValidationError(ErrEmptyCategory, collection, "text must not be empty")
		}
		return nil
	}
}

// textual fails when text is not valid UTF-8.
func textual(collection, text string) check {
	return func() error {
		if !utf8.ValidString(text) {
			return newValidationError(ErrTypeKind, collection, "text must be valid UTF-8")
		}
		return nil
	}
}

// wordList bundles the checks every reference word list must pass.
func wordList(collection string, words []string) check {
	return func() error {
		return validate(nonEmptyWords(collection, words), alphabeticWords(collection, words))
	}
}

// ValidateText reports whether text is usable as a tweet. Only UTF-8 text is
// accepted; anything else is an ErrTypeKind.
func ValidateText(text string) error {
	return validate(textual("tweet", text))
}

// isAlpha reports whether w is non-empty and consists only of letters.
func isAlpha(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
