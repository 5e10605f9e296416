package service

import "leadership-assessment-backend/internal/model"

// BuildAssessment flattens the per-style samples and shuffles them across
// styles. Indexes are assigned after the shuffle, so they follow display order.
func BuildAssessment(set model.QuestionSet, shuffle Shuffler) model.Assessment {
	if shuffle == nil {
		shuffle = DefaultShuffler
	}
	items := make([]model.AssessmentItem, 0, set.Total())
	for _, style := range set.Styles {
		for _, text := range set.Questions[style] {
			items = append(items, model.AssessmentItem{Style: style, Text: text})
		}
	}
	shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	for i := range items {
		items[i].Index = i
	}
	return model.Assessment{Items: items}
}
