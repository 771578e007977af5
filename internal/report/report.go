// Package report reads tweet files and writes scored results as CSV or as
// an aligned table.
package report

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/tsawler/tweetsent"
)

// Header is the first CSV row.
var Header = []string{"Tweet", "Score", "Quality Index"}

// TextMode selects what goes in the Tweet column.
type TextMode string

const (
	Normalized TextMode = "normalized"
	Original   TextMode = "original"
)

// maxLineBytes bounds a single tweet line.
const maxLineBytes = 1 << 20

// ReadTweetsFile reads one tweet per line from a .txt file.
func ReadTweetsFile(path string) ([]string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".txt") {
		return nil, fmt.Errorf("tweets file %s: must have a .txt extension", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tweets file: %w", err)
	}
	defer f.Close()

	tweets, err := ReadTweets(f)
	if err != nil {
		return nil, fmt.Errorf("tweets file %s: %w", path, err)
	}
	return tweets, nil
}

// ReadTweets reads one tweet per line. Line endings are stripped; every line
// must be valid UTF-8.
func ReadTweets(r io.Reader) ([]string, error) {
	var tweets []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimRight(scanner.Text(), "\r")
		if err := tweetsent.ValidateText(text); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		tweets = append(tweets, text)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading tweets: %w", err)
	}
	return tweets, nil
}

// WriteCSV writes the header and one row per result.
func WriteCSV(w io.Writer, results []tweetsent.Result, mode TextMode) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range results {
		if err := cw.Write(row(r, mode)); err != nil {
			return fmt.Errorf("writing csv row for line %d: %w", r.Line, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// WriteCSVFile creates (or truncates) path and writes the results to it.
func WriteCSVFile(path string, results []tweetsent.Result, mode TextMode) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating results file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing results file: %w", cerr)
		}
	}()
	return WriteCSV(f, results, mode)
}

// WriteTable prints results as an aligned, human readable table.
func WriteTable(w io.Writer, results []tweetsent.Result, mode TextMode) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\t"+strings.Join(Header, "\t")+"\tSentiment")
	for _, r := range results {
		cols := row(r, mode)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.Line, cols[0], cols[1], cols[2], r.Sentiment())
	}
	return tw.Flush()
}

func row(r tweetsent.Result, mode TextMode) []string {
	text := r.Normalized
	if mode == Original {
		text = r.Text
	}
	return []string{
		text,
		strconv.Itoa(r.Score),
		FormatQuality(r.Quality),
	}
}

// FormatQuality writes q with as many digits as needed to round-trip and at
// least one decimal place, so whole values read as "1.0" rather than "1".
func FormatQuality(q float64) string {
	s := strconv.FormatFloat(q, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
