package model

type Question struct {
	Style string `json:"style"`
	Text  string `json:"text"`
}

// QuestionSet holds the sampled questions per style. Styles keeps the order in
// which each style first appeared in the spreadsheet.
type QuestionSet struct {
	Styles    []string            `json:"styles"`
	Questions map[string][]string `json:"questions"`
}

func (s QuestionSet) Total() int {
	n := 0
	for _, style := range s.Styles {
		n += len(s.Questions[style])
	}
	return n
}

type AssessmentItem struct {
	Index int    `json:"index"`
	Style string `json:"style"`
	Text  string `json:"text"`
}

type Assessment struct {
	Items []AssessmentItem `json:"items"`
}

type Response struct {
	Index int    `json:"index"`
	Style string `json:"style" binding:"required"`
	Value string `json:"value" binding:"required,oneof=1 2 3 4 5"`
}

type Submission struct {
	Responses []Response `json:"responses" binding:"dive"`
}

type StyleScore struct {
	Style string  `json:"style"`
	Score float64 `json:"score"`
}

// ScoreSummary lists per-style totals in the order styles were first seen.
type ScoreSummary []StyleScore

func (s ScoreSummary) Map() map[string]float64 {
	m := make(map[string]float64, len(s))
	for _, sc := range s {
		m[sc.Style] = sc.Score
	}
	return m
}

type ScoreResponse struct {
	Scores ScoreSummary `json:"scores"`
	Chart  string       `json:"chart"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
