// Command tweetsent scores every line of a tweets file against a word
// lexicon and writes the results as CSV.
//
// Usage:
//
//	tweetsent [-config tweetsent.yaml] [-i input] [-o output] [-y] [-v]
//
// The input directory must hold tweets.txt and words.json; results are
// written to results.csv in the output directory.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/tsawler/tweetsent"
	"github.com/tsawler/tweetsent/internal/config"
	"github.com/tsawler/tweetsent/internal/logger"
	"github.com/tsawler/tweetsent/internal/metrics"
	"github.com/tsawler/tweetsent/internal/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options are the command line flags.
type options struct {
	configPath string
	input      string
	output     string
	yes        bool
	verbose    bool
	workers    int
	onError    string
	language   string
}

func parseFlags(args []string, stderr io.Writer) (*options, map[string]bool, error) {
	fs := flag.NewFlagSet("tweetsent", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Scores the sentiment of a set of tweets against a word lexicon.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage: tweetsent [flags]")
		fs.PrintDefaults()
	}

	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&opts.input, "input", "", "input directory (holds tweets.txt and words.json)")
	fs.StringVar(&opts.input, "i", "", "shorthand for -input")
	fs.StringVar(&opts.output, "output", "", "output directory (results.csv is written here)")
	fs.StringVar(&opts.output, "o", "", "shorthand for -output")
	fs.BoolVar(&opts.yes, "yes", false, "do not ask for confirmation")
	fs.BoolVar(&opts.yes, "y", false, "shorthand for -yes")
	fs.BoolVar(&opts.verbose, "verbose", false, "print progress and the result table")
	fs.BoolVar(&opts.verbose, "v", false, "shorthand for -verbose")
	fs.IntVar(&opts.workers, "workers", 0, "concurrent scorers (0 means one per CPU)")
	fs.StringVar(&opts.onError, "on-error", "", "what to do with a tweet that cannot be scored: abort or skip")
	fs.StringVar(&opts.language, "lang", "", "warn about lexicon words that are stop words in this language (e.g. es)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return opts, set, nil
}

// applyFlags overrides config values with flags given on the command line.
func applyFlags(cfg *config.Config, opts *options, set map[string]bool) {
	if set["input"] || set["i"] {
		cfg.Input.Dir = opts.input
	}
	if set["output"] || set["o"] {
		cfg.Output.Dir = opts.output
	}
	if set["workers"] {
		cfg.Scoring.Workers = opts.workers
	}
	if set["on-error"] {
		cfg.Scoring.OnError = opts.onError
	}
	if set["lang"] {
		cfg.Scoring.Language = opts.language
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, set, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}
	applyFlags(cfg, opts, set)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return 1
	}

	logger.Setup(stderr, cfg.Logging.Level, cfg.Logging.Format)
	log := logger.WithComponent("cli")

	if err := checkPaths(cfg); err != nil {
		log.Error("input check failed", "error", err)
		return 1
	}

	if opts.verbose {
		fmt.Fprintln(stdout, "Starting sentiment analysis...")
		fmt.Fprintln(stdout)
	}

	if !opts.yes {
		ok, err := confirm(stdin, stdout, cfg)
		if err != nil {
			log.Error("reading confirmation", "error", err)
			return 1
		}
		if !ok {
			fmt.Fprintln(stdout, "Aborting...")
			return 0
		}
	}

	if err := score(ctx, cfg, stdout, log, opts.verbose); err != nil {
		log.Error("scoring failed", "error", err)
		return 1
	}
	return 0
}

func score(ctx context.Context, cfg *config.Config, stdout io.Writer, log *slog.Logger, verbose bool) error {
	start := time.Now()
	m := metrics.New()

	tweets, err := report.ReadTweetsFile(cfg.Input.TweetsPath())
	if err != nil {
		return err
	}
	lex, err := tweetsent.LoadLexiconFile(cfg.Input.LexiconPath())
	if err != nil {
		return err
	}
	m.ObserveLexicon(lex)
	log.Info("inputs loaded", "tweets", len(tweets), "lexicon_words", lex.Len())

	for _, finding := range tweetsent.StopWords(lex, tweetsent.Language(cfg.Scoring.Language)) {
		log.Warn("lexicon lint", "category", finding.Category, "word", finding.Word, "reason", finding.Reason)
	}

	policy, err := tweetsent.ParseErrorPolicy(cfg.Scoring.OnError)
	if err != nil {
		return err
	}
	batch, err := tweetsent.ScoreBatch(ctx, lex, tweets,
		tweetsent.WithWorkers(cfg.Scoring.Workers),
		tweetsent.WithErrorPolicy(policy),
		tweetsent.WithLogger(logger.WithComponent("batch")),
		tweetsent.WithObserver(m),
	)
	if err != nil {
		return err
	}

	mode := report.TextMode(cfg.Output.Text)
	if verbose {
		fmt.Fprintln(stdout, "Results:")
		if err := report.WriteTable(stdout, batch.Results, mode); err != nil {
			return fmt.Errorf("printing results: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	outPath := cfg.Output.Path()
	if err := report.WriteCSVFile(outPath, batch.Results, mode); err != nil {
		return err
	}
	log.Info("batch summary", "summary", tweetsent.Summarize(batch).String())

	if cfg.Metrics.Textfile != "" {
		m.ObserveRun(start, time.Now())
		if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			log.Warn("writing metrics textfile", "path", cfg.Metrics.Textfile, "error", err)
		}
	}

	if verbose {
		abs, err := filepath.Abs(outPath)
		if err != nil {
			abs = outPath
		}
		fmt.Fprintln(stdout, "Output file:", abs)
	}
	return nil
}

// checkPaths verifies the input files exist and the output directory is
// writable before anything is read.
func checkPaths(cfg *config.Config) error {
	if err := isDir(cfg.Input.Dir); err != nil {
		return fmt.Errorf("input directory: %w", err)
	}
	if err := isFile(cfg.Input.TweetsPath()); err != nil {
		return fmt.Errorf("tweets file: %w", err)
	}
	if err := isFile(cfg.Input.LexiconPath()); err != nil {
		return fmt.Errorf("lexicon file: %w", err)
	}
	if err := isDir(cfg.Output.Dir); err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	probe, err := os.CreateTemp(cfg.Output.Dir, ".tweetsent-*")
	if err != nil {
		return fmt.Errorf("output directory %s is not writable: %w", cfg.Output.Dir, err)
	}
	if err := probe.Close(); err != nil {
		os.Remove(probe.Name())
		return fmt.Errorf("output directory %s: closing write check file: %w", cfg.Output.Dir, err)
	}
	return os.Remove(probe.Name())
}

func isDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

func isFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}
	return nil
}

// confirm shows the directories in use and asks whether to continue. An
// empty answer means yes.
func confirm(stdin io.Reader, stdout io.Writer, cfg *config.Config) (bool, error) {
	in, _ := filepath.Abs(cfg.Input.Dir)
	out, _ := filepath.Abs(cfg.Output.Dir)
	fmt.Fprintln(stdout, "Input directory:", in)
	fmt.Fprintln(stdout, "Output directory:", out)
	fmt.Fprint(stdout, "Continue? [Y/n] ")

	answer, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		fmt.Fprintln(stdout)
		return true, nil
	default:
		return false, nil
	}
}
