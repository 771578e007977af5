package tweetsent

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the results of a batch.
type Summary struct {
	Count   int
	Skipped int

	MeanScore   float64
	StdDevScore float64
	MinScore    float64
	MaxScore    float64

	MeanQuality   float64
	StdDevQuality float64
	MaxQuality    float64

	Positive int // Results with a score above zero.
	Neutral  int // Results with a score of zero.
	Negative int // Results with a score below zero.
}

// Summarize computes descriptive statistics over a batch. Standard
// deviations are sample deviations and are zero for fewer than two results.
func Summarize(b *Batch) Summary {
	s := Summary{
		Count:   len(b.Results),
		Skipped: len(b.Failures),
	}
	if s.Count == 0 {
		return s
	}

	scores := make([]float64, s.Count)
	qualities := make([]float64, s.Count)
	for i, r := range b.Results {
		scores[i] = float64(r.Score)
		qualities[i] = r.Quality
		switch r.Sentiment() {
		case Positive:
			s.Positive++
		case Negative:
			s.Negative++
		default:
			s.Neutral++
		}
	}

	s.MeanScore = stat.Mean(scores, nil)
	s.MeanQuality = stat.Mean(qualities, nil)
	if s.Count > 1 {
		s.StdDevScore = stat.StdDev(scores, nil)
		s.StdDevQuality = stat.StdDev(qualities, nil)
	}
	s.MinScore = floats.Min(scores)
	s.MaxScore = floats.Max(scores)
	s.MaxQuality = floats.Max(qualities)
	return s
}

// String returns a one-line report of the summary.
func (s Summary) String() string {
	return fmt.Sprintf("%d scored, %d skipped: score mean=%.3f sd=%.3f [%g, %g], quality mean=%.3f sd=%.3f max=%.3f, %d positive / %d neutral / %d negative",
		s.Count, s.Skipped,
		s.MeanScore, s.StdDevScore, s.MinScore, s.MaxScore,
		s.MeanQuality, s.StdDevQuality, s.MaxQuality,
		s.Positive, s.Neutral, s.Negative)
}
