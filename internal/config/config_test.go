package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, found, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.False(t, found)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, DefaultSourceURL, cfg.Source.URL)
	assert.Equal(t, "Style", cfg.Source.StyleColumn)
	assert.Equal(t, "Questions", cfg.Source.QuestionColumn)
	assert.Equal(t, 30, cfg.Source.TimeoutSeconds)
	assert.Equal(t, time.Duration(0), cfg.Source.CacheTTL())
	assert.Equal(t, 5, cfg.Assessment.QuestionsPerStyle)
	assert.Equal(t, map[string]float64{"1": -2, "2": -1, "3": 0, "4": 1, "5": 2}, cfg.Scoring.Weights)
	assert.Equal(t, "Assessment Summary by Leadership Style", cfg.Chart.Title)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
server:
  port: ":9090"
source:
  url: "http://sheets.internal/leadership.xlsx"
  cache_ttl_seconds: 120
assessment:
  questions_per_style: 3
cors:
  allowed_origins: ["http://localhost:5173"]
`), 0o644))

	t.Setenv("SURVEY_APP_LOG_LEVEL", "debug")
	t.Setenv("SURVEY_APP_SOURCE_TIMEOUT_SECONDS", "5")

	cfg, found, err := Load(viper.New(), file)
	require.NoError(t, err)
	assert.True(t, found)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "http://sheets.internal/leadership.xlsx", cfg.Source.URL)
	assert.Equal(t, 2*time.Minute, cfg.Source.CacheTTL())
	assert.Equal(t, 3, cfg.Assessment.QuestionsPerStyle)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Source.TimeoutSeconds)
}

func TestLoad_SearchesConfigDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte("server:\n  port: \":7070\"\n"), 0o644))
	t.Chdir(dir)

	cfg, found, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, ":7070", cfg.Server.Port)
}

func TestLoad_BrokenFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("server: [unterminated"), 0o644))

	_, _, err := Load(viper.New(), file)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Source:     SourceConfig{URL: "http://x"},
			Assessment: AssessmentConfig{QuestionsPerStyle: 5},
			Scoring:    ScoringConfig{Weights: map[string]float64{"1": 1}},
		}
	}

	cfg := base()
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Source.URL = ""
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Assessment.QuestionsPerStyle = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Source.CacheTTLSeconds = -1
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Scoring.Weights = nil
	assert.Error(t, cfg.Validate())
}
