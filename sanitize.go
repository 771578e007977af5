package tweetsent

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Sanitize reduces text to a canonical token string: lowercase ASCII letters
// and digits separated by single spaces. Accented characters keep their base
// letter ("Café" -> "cafe"), characters with no ASCII base are dropped, and
// every run of anything else becomes a single separator. HTML character
// references such as "&amp;" or "&#233;" are decoded before splitting.
//
// Sanitize is total and idempotent. It returns "" when text has no
// alphanumeric content.
func Sanitize(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ToLower(text)
	text = foldASCII(text)
	return slugWords(text)
}

// foldASCII applies NFKD and removes everything outside 7-bit ASCII, which
// takes the combining marks with it.
func foldASCII(s string) string {
	// transform.Chain keeps internal buffers, so it is built per call.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	out, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return out
}

// charRef matches a named, decimal or hexadecimal character reference.
// The terminating semicolon is required.
var charRef = regexp.MustCompile(`&(?:[a-zA-Z][a-zA-Z0-9]*|#[0-9]+|#[xX][0-9a-fA-F]+);`)

// slugWords decodes character references, glues digit groups written as
// "1,000", and joins the remaining alphanumeric runs with single spaces.
//
// Apostrophes typed as such separate words; an apostrophe produced by a
// reference ("don&#39;t") is dropped.
func slugWords(s string) string {
	s = strings.ReplaceAll(s, "'", " ")
	s = decodeCharRefs(s)
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ToLower(norm.NFKD.String(s))
	s = joinDigitGroups(s)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !isASCIIAlnum(r)
	})
	return strings.Join(fields, " ")
}

// decodeCharRefs replaces every character reference in s. Unknown names are
// left as written.
func decodeCharRefs(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return charRef.ReplaceAllStringFunc(s, func(ref string) string {
		out := html.UnescapeString(ref)
		// A name that only starts with a known entity ("&ampx;") decodes
		// partially and keeps its semicolon.
		if strings.HasSuffix(out, ";") {
			return ref
		}
		return out
	})
}

// joinDigitGroups drops commas that sit between two digits.
func joinDigitGroups(s string) string {
	if !strings.Contains(s, ",") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ',' && i > 0 && i+1 < len(s) && isDigit(s[i-1]) && isDigit(s[i+1]) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
