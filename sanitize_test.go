package tweetsent

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		desc     string
	}{
		{"hoy es un buen dia, pero el clima esta malo malo", "hoy es un buen dia pero el clima esta malo malo", "Punctuation removed"},
		{"  Hola Mundo  ", "hola mundo", "Trimmed and lowercased"},
		{"Café", "cafe", "Accent folded"},
		{"¡Qué día tan bonito!", "que dia tan bonito", "Spanish punctuation and accents"},
		{"Ñandú", "nandu", "Tilde folded"},
		{"ﬁne", "fine", "Compatibility ligature decomposed"},
		{"Ｆｕｌｌ ｗｉｄｔｈ", "full width", "Fullwidth letters decomposed"},
		{"Straße", "strae", "Letters without an ASCII base are dropped"},
		{"日本語", "", "Non-Latin script dropped entirely"},
		{"don't", "don t", "Apostrophe separates"},
		{"1,000 likes", "1000 likes", "Digit group comma joined"},
		{"a,b", "a b", "Comma between letters separates"},
		{"#hashtag @user http://t.co/x", "hashtag user http t co x", "Symbols separate"},
		{"tab\tand\nnewline", "tab and newline", "Whitespace collapsed"},
		{"rock &amp; roll", "rock roll", "Named reference decoded"},
		{"caf&eacute;", "cafe", "Accented named reference folded"},
		{"Caf&Eacute;", "cafe", "Uppercase named reference"},
		{"caf&#233;", "cafe", "Decimal reference folded"},
		{"caf&#xE9;", "cafe", "Hex reference folded"},
		{"&lt;3 &gt;&gt;", "3", "Escaped angle brackets separate"},
		{"don&#39;t", "dont", "Referenced apostrophe dropped"},
		{"1&#44;000", "1000", "Referenced digit group comma joined"},
		{"&ampx; &bogus; & amp", "ampx bogus amp", "Unknown or unterminated references kept"},
		{"--- !!! ???", "", "No alphanumeric content"},
		{"", "", "Empty text"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := Sanitize(tt.input)
			if got != tt.expected {
				t.Errorf("Sanitize(%q)\nExpected: %q\nGot: %q", tt.input, tt.expected, got)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"hoy es un buen dia, pero el clima esta malo malo",
		"¡¡Qué DÍA!! 1,000,000 de gracias :)",
		"Ｆｕｌｌ ｗｉｄｔｈ ﬁne",
		"\xff\xfe broken utf8",
		"   ",
		"rock &amp;amp; roll caf&#233; &#xE9;",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestSanitizeAlphabet(t *testing.T) {
	got := Sanitize("Ça va? ¿Y tú? Ünïcödé — “quotes” & emoji 😀 ok")
	for _, r := range got {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != ' ' {
			t.Fatalf("unexpected rune %q in %q", r, got)
		}
	}
	if strings.Contains(got, "  ") || strings.HasPrefix(got, " ") || strings.HasSuffix(got, " ") {
		t.Errorf("bad spacing in %q", got)
	}
	if got != "ca va y tu unicode quotes emoji ok" {
		t.Errorf("Sanitize = %q", got)
	}
}
