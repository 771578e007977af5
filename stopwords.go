package tweetsent

import (
	"fmt"
	"strings"

	"github.com/bbalet/stopwords"
)

// LintFinding flags a lexicon word worth a second look.
type LintFinding struct {
	Word     string
	Category Category
	Reason   string
}

// String returns a human readable description of the finding.
func (f LintFinding) String() string {
	return fmt.Sprintf("%s word %q: %s", f.Category, f.Word, f.Reason)
}

// StopWords reports lexicon words that are stop words in lang. Stop words
// are so frequent that they tend to dominate the score and the quality
// index. An empty lang or a nil lexicon disables the check.
func StopWords(lex *Lexicon, lang Language) []LintFinding {
	if lang == "" || lex == nil {
		return nil
	}
	var findings []LintFinding
	for _, list := range lex.lists() {
		for _, w := range list.words {
			if isStopWord(w, lang) {
				findings = append(findings, LintFinding{
					Word:     w,
					Category: list.category,
					Reason:   fmt.Sprintf("is a stop word in %q", string(lang)),
				})
			}
		}
	}
	return findings
}

// isStopWord tests a single word against the stop word list of lang. The
// stopwords library does not export its lists, so a word is a stop word when
// cleaning removes it.
func isStopWord(word string, lang Language) bool {
	cleaned := stopwords.CleanString(word, string(lang), false)
	return strings.TrimSpace(cleaned) == ""
}
