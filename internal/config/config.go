// Package config loads tweetsent settings from a YAML file, an optional
// dotenv file and TS_* environment variables, in that order of precedence
// from lowest to highest.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/tweetsent"
)

// Config is the top-level configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Scoring ScoringConfig `yaml:"scoring"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// InputConfig locates the tweets and the lexicon.
type InputConfig struct {
	Dir     string `yaml:"dir"`
	Tweets  string `yaml:"tweets"`
	Lexicon string `yaml:"lexicon"`
}

// TweetsPath returns the full path of the tweets file.
func (c InputConfig) TweetsPath() string {
	return filepath.Join(c.Dir, c.Tweets)
}

// LexiconPath returns the full path of the lexicon file.
func (c InputConfig) LexiconPath() string {
	return filepath.Join(c.Dir, c.Lexicon)
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	Dir  string `yaml:"dir"`
	File string `yaml:"file"`
	// Text selects the Tweet column: "normalized" or "original".
	Text string `yaml:"text"`
}

// Path returns the full path of the results file.
func (c OutputConfig) Path() string {
	return filepath.Join(c.Dir, c.File)
}

// ScoringConfig controls batch scoring.
type ScoringConfig struct {
	Workers int    `yaml:"workers"`
	OnError string `yaml:"onError"`
	// Language enables the stop word lint of the lexicon ("" disables it).
	Language string `yaml:"language"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus textfile written after a run.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Load reads a YAML config file (if path is not empty), then the dotenv file
// named by TS_ENV_FILE or ".env" (if present), then applies TS_*
// environment overrides. Missing values keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := loadEnvFile(); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Default returns the configuration used when nothing overrides it:
// input/tweets.txt and input/words.json in, output/results.csv out.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Dir:     "input",
			Tweets:  "tweets.txt",
			Lexicon: "words.json",
		},
		Output: OutputConfig{
			Dir:  "output",
			File: "results.csv",
			Text: "normalized",
		},
		Scoring: ScoringConfig{
			Workers: 0,
			OnError: string(tweetsent.AbortOnError),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	var errs []error
	if c.Input.Tweets == "" {
		errs = append(errs, errors.New("input.tweets must not be empty"))
	}
	if c.Input.Lexicon == "" {
		errs = append(errs, errors.New("input.lexicon must not be empty"))
	}
	if c.Output.File == "" {
		errs = append(errs, errors.New("output.file must not be empty"))
	}
	switch c.Output.Text {
	case "normalized", "original":
	default:
		errs = append(errs, fmt.Errorf("output.text must be \"normalized\" or \"original\", got %q", c.Output.Text))
	}
	if _, err := tweetsent.ParseErrorPolicy(c.Scoring.OnError); err != nil {
		errs = append(errs, fmt.Errorf("scoring.onError: %w", err))
	}
	if c.Scoring.Workers < 0 {
		errs = append(errs, fmt.Errorf("scoring.workers must not be negative, got %d", c.Scoring.Workers))
	}
	return errors.Join(errs...)
}

// loadEnvFile loads TS_ENV_FILE, or ".env" when unset. A missing file is not
// an error. Variables already set in the environment win.
func loadEnvFile() error {
	path := os.Getenv("TS_ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides reads TS_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TS_INPUT_DIR"); v != "" {
		cfg.Input.Dir = v
	}
	if v := os.Getenv("TS_INPUT_TWEETS"); v != "" {
		cfg.Input.Tweets = v
	}
	if v := os.Getenv("TS_INPUT_LEXICON"); v != "" {
		cfg.Input.Lexicon = v
	}
	if v := os.Getenv("TS_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("TS_OUTPUT_FILE"); v != "" {
		cfg.Output.File = v
	}
	if v := os.Getenv("TS_OUTPUT_TEXT"); v != "" {
		cfg.Output.Text = strings.ToLower(v)
	}
	if v := os.Getenv("TS_SCORING_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scoring.Workers = n
		}
	}
	if v := os.Getenv("TS_SCORING_ON_ERROR"); v != "" {
		cfg.Scoring.OnError = strings.ToLower(v)
	}
	if v := os.Getenv("TS_SCORING_LANGUAGE"); v != "" {
		cfg.Scoring.Language = v
	}
	if v := os.Getenv("TS_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TS_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("TS_METRICS_TEXTFILE"); v != "" {
		cfg.Metrics.Textfile = v
	}
}
