// Package metrics defines the Prometheus collectors for a scoring run and
// writes them in the node exporter textfile format.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tsawler/tweetsent"
)

// Metrics holds the collectors of one scoring run. It implements
// tweetsent.BatchObserver.
type Metrics struct {
	Registry *prometheus.Registry

	TweetsTotal      *prometheus.CounterVec
	FailuresTotal    *prometheus.CounterVec
	Quality          prometheus.Histogram
	LexiconWords     *prometheus.GaugeVec
	RunDuration      prometheus.Gauge
	LastRunTimestamp prometheus.Gauge
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		TweetsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tweetsent_tweets_scored_total",
				Help: "Tweets scored, by sentiment of the score.",
			},
			[]string{"sentiment"},
		),
		FailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tweetsent_tweets_failed_total",
				Help: "Tweets that could not be scored, by error kind.",
			},
			[]string{"kind"},
		),
		Quality: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tweetsent_quality_index",
				Help:    "Quality index of scored tweets.",
				Buckets: []float64{0, 0.05, 0.1, 0.25, 0.5, 0.75, 1, 1.5, 2},
			},
		),
		LexiconWords: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tweetsent_lexicon_words",
				Help: "Words in the lexicon, by category.",
			},
			[]string{"category"},
		),
		RunDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tweetsent_run_duration_seconds",
				Help: "Wall time of the last scoring run.",
			},
		),
		LastRunTimestamp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tweetsent_last_run_timestamp_seconds",
				Help: "Unix time the last scoring run finished.",
			},
		),
	}
	m.Registry.MustRegister(
		m.TweetsTotal,
		m.FailuresTotal,
		m.Quality,
		m.LexiconWords,
		m.RunDuration,
		m.LastRunTimestamp,
	)
	return m
}

// Scored records a scored tweet.
func (m *Metrics) Scored(r tweetsent.Result) {
	m.TweetsTotal.WithLabelValues(r.Sentiment().String()).Inc()
	m.Quality.Observe(r.Quality)
}

// Failed records a tweet that could not be scored.
func (m *Metrics) Failed(f tweetsent.Failure) {
	m.FailuresTotal.WithLabelValues(ErrorKind(f.Err)).Inc()
}

// ObserveLexicon records the size of each lexicon category.
func (m *Metrics) ObserveLexicon(lex *tweetsent.Lexicon) {
	for _, c := range []tweetsent.Category{tweetsent.PositiveCategory, tweetsent.NegativeCategory, tweetsent.NeutralCategory} {
		m.LexiconWords.WithLabelValues(string(c)).Set(float64(len(lex.Words(c))))
	}
}

// ObserveRun records how long a run took and when it ended.
func (m *Metrics) ObserveRun(start, end time.Time) {
	m.RunDuration.Set(end.Sub(start).Seconds())
	m.LastRunTimestamp.Set(float64(end.Unix()))
}

// WriteTextfile writes every collector to path for the node exporter
// textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

// ErrorKind maps an error to a short label value.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, tweetsent.ErrTypeKind):
		return "type"
	case errors.Is(err, tweetsent.ErrSchema):
		return "schema"
	case errors.Is(err, tweetsent.ErrEmptyCategory):
		return "empty"
	case errors.Is(err, tweetsent.ErrInvalidWord):
		return "invalid_word"
	case errors.Is(err, tweetsent.ErrDuplicateWord):
		return "duplicate_word"
	default:
		return "other"
	}
}
