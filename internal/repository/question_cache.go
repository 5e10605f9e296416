package repository

import (
	"sync"
	"time"

	"leadership-assessment-backend/internal/model"

	"go.uber.org/zap"
)

type cacheEntry struct {
	questions []model.Question
	expiresAt time.Time
}

// QuestionCache keeps parsed questionnaires for a limited time, keyed by source URL.
// A zero TTL disables it: Get always misses and Save is a no-op.
type QuestionCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cacheEntry
	now     func() time.Time
	logger  *zap.Logger
}

func NewQuestionCache(ttl time.Duration, logger *zap.Logger) *QuestionCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
		logger:  logger.Named("question_cache"),
	}
}

func (c *QuestionCache) Enabled() bool {
	return c != nil && c.ttl > 0
}

func (c *QuestionCache) Get(key string) ([]model.Question, bool) {
	if !c.Enabled() {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, found := c.entries[key]
	if !found || !c.now().Before(entry.expiresAt) {
		return nil, false
	}
	return entry.questions, true
}

func (c *QuestionCache) Save(key string, questions []model.Question) {
	if !c.Enabled() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make([]model.Question, len(questions))
	copy(stored, questions)
	c.entries[key] = cacheEntry{questions: stored, expiresAt: c.now().Add(c.ttl)}
	c.logger.Debug("questionnaire cached",
		zap.String("key", key),
		zap.Int("questions", len(stored)),
		zap.Duration("ttl", c.ttl))
}
