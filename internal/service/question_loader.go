package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"leadership-assessment-backend/internal/model"
	"leadership-assessment-backend/internal/repository"

	"go.uber.org/zap"
)

const DefaultQuestionsPerStyle = 5

// Shuffler has the signature of rand.Shuffle.
type Shuffler func(n int, swap func(i, j int))

// DefaultShuffler draws from the unseeded, goroutine-safe global source, so
// every assessment differs.
var DefaultShuffler Shuffler = rand.Shuffle

type SheetFetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

type LoaderConfig struct {
	// Source identifies the remote document; it is the cache key.
	Source            string
	Sheet             repository.SheetOptions
	QuestionsPerStyle int
	Shuffle           Shuffler
}

type QuestionLoader struct {
	fetcher SheetFetcher
	cache   *repository.QuestionCache
	cfg     LoaderConfig
	logger  *zap.Logger
}

func NewQuestionLoader(fetcher SheetFetcher, cache *repository.QuestionCache, cfg LoaderConfig, logger *zap.Logger) *QuestionLoader {
	if cfg.QuestionsPerStyle <= 0 {
		cfg.QuestionsPerStyle = DefaultQuestionsPerStyle
	}
	if cfg.Shuffle == nil {
		cfg.Shuffle = DefaultShuffler
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionLoader{
		fetcher: fetcher,
		cache:   cache,
		cfg:     cfg,
		logger:  logger.Named("loader"),
	}
}

// Load fetches the questionnaire and samples up to QuestionsPerStyle questions
// for every style found in it.
func (l *QuestionLoader) Load(ctx context.Context) (model.QuestionSet, error) {
	questions, err := l.questions(ctx)
	if err != nil {
		return model.QuestionSet{}, err
	}

	set := SampleQuestions(GroupByStyle(questions), l.cfg.QuestionsPerStyle, l.cfg.Shuffle)
	l.logger.Info("question set sampled",
		zap.Int("styles", len(set.Styles)),
		zap.Int("questions", set.Total()))
	return set, nil
}

func (l *QuestionLoader) questions(ctx context.Context) ([]model.Question, error) {
	if cached, ok := l.cache.Get(l.cfg.Source); ok {
		l.logger.Debug("questionnaire served from cache", zap.Int("questions", len(cached)))
		return cached, nil
	}

	data, err := l.fetcher.Fetch(ctx)
	if err != nil {
		l.logger.Debug("loading questionnaire failed", zap.Error(err))
		return nil, fmt.Errorf("load questions: %w", err)
	}
	questions, err := repository.ParseQuestionSheet(data, l.cfg.Sheet)
	if err != nil {
		l.logger.Debug("parsing questionnaire failed", zap.Error(err))
		return nil, fmt.Errorf("load questions: %w", err)
	}
	l.cache.Save(l.cfg.Source, questions)
	return questions, nil
}

// GroupByStyle keeps styles in order of first appearance.
func GroupByStyle(questions []model.Question) model.QuestionSet {
	set := model.QuestionSet{Questions: make(map[string][]string)}
	for _, q := range questions {
		if _, seen := set.Questions[q.Style]; !seen {
			set.Styles = append(set.Styles, q.Style)
		}
		set.Questions[q.Style] = append(set.Questions[q.Style], q.Text)
	}
	return set
}

// SampleQuestions draws min(perStyle, available) questions per style without
// replacement. The input set is not modified.
func SampleQuestions(all model.QuestionSet, perStyle int, shuffle Shuffler) model.QuestionSet {
	sampled := model.QuestionSet{
		Styles:    append([]string(nil), all.Styles...),
		Questions: make(map[string][]string, len(all.Styles)),
	}
	for _, style := range all.Styles {
		pool := append([]string(nil), all.Questions[style]...)
		shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		sampled.Questions[style] = pool[:min(perStyle, len(pool))]
	}
	return sampled
}
