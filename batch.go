package tweetsent

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ErrorPolicy decides what a batch does with a tweet that fails to score.
type ErrorPolicy string

const (
	// AbortOnError stops the batch at the first failing tweet.
	AbortOnError ErrorPolicy = "abort"
	// SkipOnError drops failing tweets and keeps going.
	SkipOnError ErrorPolicy = "skip"
)

// ParseErrorPolicy converts a configuration string into an ErrorPolicy.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch p := ErrorPolicy(s); p {
	case AbortOnError, SkipOnError:
		return p, nil
	case "":
		return AbortOnError, nil
	default:
		return "", fmt.Errorf("unknown error policy %q (want %q or %q)", s, AbortOnError, SkipOnError)
	}
}

// BatchObserver is notified once per tweet after a batch completes, in input
// order.
type BatchObserver interface {
	Scored(r Result)
	Failed(f Failure)
}

// A BatchOpt represents a setting that changes how ScoreBatch runs.
//
// For example, it might score on two goroutines and skip bad lines:
//
//	batch, err := tweetsent.ScoreBatch(ctx, lex, tweets,
//		tweetsent.WithWorkers(2), tweetsent.WithErrorPolicy(tweetsent.SkipOnError))
type BatchOpt func(opts *batchOpts)

type batchOpts struct {
	workers  int
	onError  ErrorPolicy
	logger   *slog.Logger
	observer BatchObserver
}

// WithWorkers sets the number of concurrent scorers. Values <= 0 mean
// runtime.NumCPU().
func WithWorkers(n int) BatchOpt {
	return func(opts *batchOpts) {
		opts.workers = n
	}
}

// WithErrorPolicy sets what happens to tweets that fail to score.
func WithErrorPolicy(p ErrorPolicy) BatchOpt {
	return func(opts *batchOpts) {
		opts.onError = p
	}
}

// WithLogger sets the logger used for skipped tweets and the batch report.
func WithLogger(l *slog.Logger) BatchOpt {
	return func(opts *batchOpts) {
		opts.logger = l
	}
}

// WithObserver registers an observer for per-tweet outcomes.
func WithObserver(o BatchObserver) BatchOpt {
	return func(opts *batchOpts) {
		opts.observer = o
	}
}

// Failure records a tweet that could not be scored.
type Failure struct {
	Line int
	Text string
	Err  error
}

// Batch is the outcome of ScoreBatch.
type Batch struct {
	Results  []Result  // Scored tweets in input order.
	Failures []Failure // Skipped tweets in input order.
}

// ScoreBatch scores every tweet against lex. Tweets are independent, so they
// are spread over a bounded set of goroutines; results keep the input order.
//
// With AbortOnError the failure on the lowest line stops the batch and is
// returned. With SkipOnError failures are collected in Batch.Failures.
func ScoreBatch(ctx context.Context, lex *Lexicon, tweets []string, opts ...BatchOpt) (*Batch, error) {
	if err := lex.usable(); err != nil {
		return nil, err
	}
	base := batchOpts{
		workers: runtime.NumCPU(),
		onError: AbortOnError,
		logger:  slog.Default(),
	}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	workers := base.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	policy := base.onError
	if policy == "" {
		policy = AbortOnError
	}
	log := base.logger
	if log == nil {
		log = slog.Default()
	}

	results := make([]Result, len(tweets))
	errs := make([]error, len(tweets))

	// firstFail is the lowest failing index under AbortOnError. Tweets
	// after it are not scored; tweets before it always are, so the
	// reported line does not depend on scheduling.
	var firstFail atomic.Int64
	firstFail.Store(int64(len(tweets)))
	pastFailure := func(i int) bool {
		return policy == AbortOnError && int64(i) > firstFail.Load()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, tweet := range tweets {
		if gctx.Err() != nil || pastFailure(i) {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if pastFailure(i) {
				return nil
			}
			r, err := lex.Score(tweet)
			if err != nil {
				errs[i] = fmt.Errorf("line %d: %w", i+1, err)
				if policy == AbortOnError {
					storeMin(&firstFail, int64(i))
				}
				return nil
			}
			r.Line = i + 1
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n := firstFail.Load(); n < int64(len(tweets)) {
		return nil, errs[n]
	}

	batch := &Batch{Results: make([]Result, 0, len(tweets))}
	for i := range tweets {
		if errs[i] != nil {
			f := Failure{Line: i + 1, Text: tweets[i], Err: errs[i]}
			batch.Failures = append(batch.Failures, f)
			log.Warn("skipping tweet", "line", f.Line, "error", f.Err)
			if base.observer != nil {
				base.observer.Failed(f)
			}
			continue
		}
		batch.Results = append(batch.Results, results[i])
		if base.observer != nil {
			base.observer.Scored(results[i])
		}
	}

	log.Debug("batch scored",
		"tweets", len(tweets),
		"scored", len(batch.Results),
		"skipped", len(batch.Failures),
		"workers", workers,
	)
	return batch, nil
}

// storeMin lowers v to n if n is smaller.
func storeMin(v *atomic.Int64, n int64) {
	for {
		cur := v.Load()
		if n >= cur || v.CompareAndSwap(cur, n) {
			return
		}
	}
}
