package stats

import "math"

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// ScoreStats keeps running statistics over the scores of finished hands.
type ScoreStats struct {
	hands int
	total int
	best  int

	// Welford's algorithm
	mean float64
	m2   float64
}

func (s *ScoreStats) Push(score int) {
	s.hands++
	s.total += score
	if s.hands == 1 || score > s.best {
		s.best = score
	}
	val := float64(score)
	delta := val - s.mean
	s.mean += delta / float64(s.hands)
	s.m2 += delta * (val - s.mean)
}

func (s *ScoreStats) Hands() int {
	return s.hands
}

func (s *ScoreStats) Total() int {
	return s.total
}

func (s *ScoreStats) Best() int {
	return s.best
}

func (s *ScoreStats) Mean() float64 {
	if s.hands == 0 {
		return 0.0
	}
	return s.mean
}

// Variance is the sample variance; it is 0 until two hands are in.
func (s *ScoreStats) Variance() float64 {
	if s.hands <= 1 {
		return 0.0
	}
	return s.m2 / float64(s.hands-1)
}

func (s *ScoreStats) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *ScoreStats) StandardError() float64 {
	if s.hands == 0 {
		return 0.0
	}
	return math.Sqrt(s.Variance() / float64(s.hands))
}

// ConfidenceHalfWidth returns the half-width of the confidence interval
// around the mean, for a confidence level given in percent.
func (s *ScoreStats) ConfidenceHalfWidth(confidence float64) float64 {
	return ZVal(confidence) * s.StandardError()
}
