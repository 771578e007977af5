package tweetsent

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/kaptinlin/jsonschema"
)

// lexiconSchema is the only accepted shape for a lexicon payload.
const lexiconSchema = `{
	"type": "object",
	"properties": {
		"positive": {"type": "array", "items": {"type": "string"}},
		"negative": {"type": "array", "items": {"type": "string"}},
		"neutral": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["positive", "negative", "neutral"],
	"additionalProperties": false
}`

var compiledLexiconSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.NewCompiler().Compile([]byte(lexiconSchema))
})

// Lexicon holds the sanitized positive, negative and neutral word lists.
// A Lexicon is immutable and safe for concurrent use.
type Lexicon struct {
	positive []string
	negative []string
	neutral  []string
	all      []string
}

// lexiconPayload is the JSON structure of a lexicon file.
type lexiconPayload struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
	Neutral  []string `json:"neutral"`
}

// NewLexicon sanitizes the three word lists and validates them. Each list
// must be non-empty, no sanitized word may appear twice across all lists,
// and every sanitized word must be alphabetic.
func NewLexicon(positive, negative, neutral []string) (*Lexicon, error) {
	err := validate(
		nonEmptyWords(string(PositiveCategory), positive),
		nonEmptyWords(string(NegativeCategory), negative),
		nonEmptyWords(string(NeutralCategory), neutral),
	)
	if err != nil {
		return nil, err
	}

	lex := &Lexicon{
		positive: sanitizeWords(positive),
		negative: sanitizeWords(negative),
		neutral:  sanitizeWords(neutral),
	}
	lex.all = slices.Concat(lex.positive, lex.negative, lex.neutral)

	err = validate(
		uniqueWords(lex),
		alphabeticWords(string(PositiveCategory), lex.positive),
		alphabeticWords(string(NegativeCategory), lex.negative),
		alphabeticWords(string(NeutralCategory), lex.neutral),
	)
	if err != nil {
		return nil, err
	}
	return lex, nil
}

// ParseLexicon decodes a JSON lexicon payload. The payload must be an object
// with exactly the keys "positive", "negative" and "neutral", each an array
// of strings.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return nil, newValidationError(ErrSchema, "", "payload is not valid JSON: %v", err)
	}

	schema, err := compiledLexiconSchema()
	if err != nil {
		return nil, fmt.Errorf("compiling lexicon schema: %w", err)
	}
	if result := schema.Validate(instance); !result.IsValid() {
		return nil, newValidationError(ErrSchema, "", "%s", describeSchemaErrors(result))
	}

	var payload lexiconPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, newValidationError(ErrSchema, "", "decoding payload: %v", err)
	}
	return NewLexicon(payload.Positive, payload.Negative, payload.Neutral)
}

// LoadLexicon reads a JSON lexicon payload from r.
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon: %w", err)
	}
	return ParseLexicon(data)
}

// LoadLexiconFile reads a lexicon from a .json file.
func LoadLexiconFile(path string) (*Lexicon, error) {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return nil, fmt.Errorf("lexicon file %s: must have a .json extension", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon file: %w", err)
	}
	lex, err := ParseLexicon(data)
	if err != nil {
		return nil, fmt.Errorf("lexicon file %s: %w", path, err)
	}
	return lex, nil
}

// Positive returns a copy of the positive words.
func (l *Lexicon) Positive() []string { return slices.Clone(l.positive) }

// Negative returns a copy of the negative words.
func (l *Lexicon) Negative() []string { return slices.Clone(l.negative) }

// Neutral returns a copy of the neutral words.
func (l *Lexicon) Neutral() []string { return slices.Clone(l.neutral) }

// All returns positive, negative and neutral words concatenated in that
// order.
func (l *Lexicon) All() []string { return slices.Clone(l.all) }

// Len returns the total number of words.
func (l *Lexicon) Len() int { return len(l.all) }

// Words returns the word list of a category.
func (l *Lexicon) Words(c Category) []string {
	switch c {
	case PositiveCategory:
		return l.Positive()
	case NegativeCategory:
		return l.Negative()
	case NeutralCategory:
		return l.Neutral()
	default:
		return nil
	}
}

// usable fails on a nil Lexicon and on one not built by NewLexicon.
func (l *Lexicon) usable() error {
	if l == nil {
		return newValidationError(ErrTypeKind, "lexicon", "lexicon must not be nil")
	}
	return validate(
		nonEmptyWords(string(PositiveCategory), l.positive),
		nonEmptyWords(string(NegativeCategory), l.negative),
		nonEmptyWords(string(NeutralCategory), l.neutral),
	)
}

type categoryWords struct {
	category Category
	words    []string
}

func (l *Lexicon) lists() []categoryWords {
	return []categoryWords{
		{PositiveCategory, l.positive},
		{NegativeCategory, l.negative},
		{NeutralCategory, l.neutral},
	}
}

func sanitizeWords(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = Sanitize(w)
	}
	return out
}

// uniqueWords fails on the first sanitized word seen twice, within or
// across categories.
func uniqueWords(l *Lexicon) check {
	return func() error {
		seen := make(map[string]Category, len(l.all))
		for _, list := range l.lists() {
			for _, w := range list.words {
				if first, dup := seen[w]; dup {
					return newValidationError(ErrDuplicateWord, string(list.category),
						"word %q already appears in %s", w, first)
				}
				seen[w] = list.category
			}
		}
		return nil
	}
}

func describeSchemaErrors(result *jsonschema.EvaluationResult) string {
	if len(result.Errors) == 0 {
		return "payload does not match the lexicon schema"
	}
	keys := make([]string, 0, len(result.Errors))
	for k := range result.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %v", k, result.Errors[k]))
	}
	return strings.Join(msgs, "; ")
}
