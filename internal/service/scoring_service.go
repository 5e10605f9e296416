package service

import (
	"errors"
	"fmt"

	"leadership-assessment-backend/internal/model"
)

var ErrUnknownValue = errors.New("response value has no weight")

// DefaultWeights maps a 1-5 Likert answer to its signed contribution.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		"1": -2.0,
		"2": -1.0,
		"3": 0.0,
		"4": 1.0,
		"5": 2.0,
	}
}

type Scorer struct {
	weights map[string]float64
}

func NewScorer(weights map[string]float64) *Scorer {
	if len(weights) == 0 {
		weights = DefaultWeights()
	}
	w := make(map[string]float64, len(weights))
	for k, v := range weights {
		w[k] = v
	}
	return &Scorer{weights: w}
}

func (s *Scorer) weight(value string) (float64, bool) {
	w, ok := s.weights[value]
	return w, ok
}

// Score sums weights per style. The summary lists styles in the order they
// first occur in the submission; an empty submission yields an empty summary.
func (s *Scorer) Score(sub model.Submission) (model.ScoreSummary, error) {
	summary := model.ScoreSummary{}
	position := make(map[string]int)
	for _, r := range sub.Responses {
		w, ok := s.weight(r.Value)
		if !ok {
			return nil, fmt.Errorf("%w: %q for style %q", ErrUnknownValue, r.Value, r.Style)
		}
		idx, seen := position[r.Style]
		if !seen {
			idx = len(summary)
			position[r.Style] = idx
			summary = append(summary, model.StyleScore{Style: r.Style})
		}
		summary[idx].Score += w
	}
	return summary, nil
}
