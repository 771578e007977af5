package tweetsent

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseLexicon(t *testing.T) {
	lex, err := ParseLexicon([]byte(`{
		"positive": ["Bueno", "Feliz"],
		"negative": ["malo", "Triste!"],
		"neutral": ["Día"]
	}`))
	if err != nil {
		t.Fatalf("ParseLexicon: %v", err)
	}

	if got, want := lex.Positive(), []string{"bueno", "feliz"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Positive = %v, want %v", got, want)
	}
	if got, want := lex.Negative(), []string{"malo", "triste"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Negative = %v, want %v", got, want)
	}
	if got, want := lex.Neutral(), []string{"dia"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Neutral = %v, want %v", got, want)
	}
	if got, want := lex.All(), []string{"bueno", "feliz", "malo", "triste", "dia"}; !reflect.DeepEqual(got, want) {
		t.Errorf("All = %v, want %v", got, want)
	}
	if lex.Len() != 5 {
		t.Errorf("Len = %d, want 5", lex.Len())
	}
	if got := lex.Words(NeutralCategory); !reflect.DeepEqual(got, []string{"dia"}) {
		t.Errorf("Words(neutral) = %v", got)
	}
	if got := lex.Words(Category("other")); got != nil {
		t.Errorf("Words(other) = %v, want nil", got)
	}
}

func TestParseLexiconErrors(t *testing.T) {
	tests := []struct {
		payload string
		kind    error
		desc    string
	}{
		{`{"positive":["bueno"],"negative":["malo"],"neutral":["dia"],"extra":[]}`, ErrSchema, "Extra key"},
		{`{"positive":["bueno"],"negative":["malo"]}`, ErrSchema, "Missing key"},
		{`{"positive":["bueno"],"negative":["malo"],"neutral":[1]}`, ErrSchema, "Non-string word"},
		{`{"positive":"bueno","negative":["malo"],"neutral":["dia"]}`, ErrSchema, "Category not an array"},
		{`{"positive":null,"negative":["malo"],"neutral":["dia"]}`, ErrSchema, "Null category"},
		{`[["bueno"],["malo"],["dia"]]`, ErrSchema, "Top level array"},
		{`{"positive":["bueno"]`, ErrSchema, "Truncated JSON"},
		{`{"positive":[],"negative":["malo"],"neutral":["dia"]}`, ErrEmptyCategory, "Empty positive"},
		{`{"positive":["bueno"],"negative":["malo"],"neutral":[]}`, ErrEmptyCategory, "Empty neutral"},
		{`{"positive":["Café"],"negative":["cafe"],"neutral":["dia"]}`, ErrDuplicateWord, "Duplicate across categories after sanitizing"},
		{`{"positive":["bueno","BUENO"],"negative":["malo"],"neutral":["dia"]}`, ErrDuplicateWord, "Duplicate within a category"},
		{`{"positive":["abc123"],"negative":["malo"],"neutral":["dia"]}`, ErrInvalidWord, "Digits in word"},
		{`{"positive":["bueno"],"negative":["muy malo"],"neutral":["dia"]}`, ErrInvalidWord, "Two words"},
		{`{"positive":["bueno"],"negative":["malo"],"neutral":["!!!"]}`, ErrInvalidWord, "Word sanitized to nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			lex, err := ParseLexicon([]byte(tt.payload))
			if err == nil {
				t.Fatalf("Expected %v, got lexicon %v", tt.kind, lex.All())
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("Expected error kind %v\nGot: %v", tt.kind, err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("Expected a *ValidationError, got %T", err)
			}
		})
	}
}

func TestDuplicateWordNamesCategories(t *testing.T) {
	_, err := NewLexicon([]string{"Café"}, []string{"cafe"}, []string{"dia"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %v", err)
	}
	if verr.Collection != "negative" {
		t.Errorf("Collection = %q, want negative", verr.Collection)
	}
	if !strings.Contains(verr.Message, `"cafe"`) || !strings.Contains(verr.Message, "positive") {
		t.Errorf("Message should name the word and the first category: %q", verr.Message)
	}
}

func TestLexiconAccessorsCopy(t *testing.T) {
	lex, err := NewLexicon([]string{"bueno"}, []string{"malo"}, []string{"dia"})
	if err != nil {
		t.Fatalf("NewLexicon: %v", err)
	}
	pos := lex.Positive()
	pos[0] = "changed"
	all := lex.All()
	all[2] = "changed"

	if lex.Positive()[0] != "bueno" || lex.All()[2] != "dia" {
		t.Error("mutating a returned slice changed the lexicon")
	}
}

func TestNewLexiconDoesNotMutateInput(t *testing.T) {
	positive := []string{"Bueno"}
	if _, err := NewLexicon(positive, []string{"malo"}, []string{"dia"}); err != nil {
		t.Fatalf("NewLexicon: %v", err)
	}
	if positive[0] != "Bueno" {
		t.Errorf("input slice modified: %v", positive)
	}
}

func TestLoadLexiconFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.json")
	payload := `{"positive":["bueno"],"negative":["malo"],"neutral":["dia"]}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadLexiconFile(path)
	if err != nil {
		t.Fatalf("LoadLexiconFile: %v", err)
	}
	if lex.Len() != 3 {
		t.Errorf("Len = %d, want 3", lex.Len())
	}

	lex, err = LoadLexicon(strings.NewReader(payload))
	if err != nil || lex.Len() != 3 {
		t.Errorf("LoadLexicon = %v, %v", lex, err)
	}
}

func TestLoadLexiconFileErrors(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(txt, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLexiconFile(txt); err == nil || !strings.Contains(err.Error(), ".json") {
		t.Errorf("Expected extension error, got %v", err)
	}

	if _, err := LoadLexiconFile(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"positive":[],"negative":["a"],"neutral":["b"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadLexiconFile(bad)
	if !errors.Is(err, ErrEmptyCategory) {
		t.Errorf("Expected ErrEmptyCategory, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), bad) {
		t.Errorf("Expected error to mention the file, got %v", err)
	}
}
