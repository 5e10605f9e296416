package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "SURVEY_APP"

	DefaultSourceURL = "https://raw.githubusercontent.com/campojo/leadership_style_questions/main/Chris%20Leadership.xlsx"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Source     SourceConfig     `mapstructure:"source"`
	Assessment AssessmentConfig `mapstructure:"assessment"`
	Scoring    ScoringConfig    `mapstructure:"scoring"`
	Chart      ChartConfig      `mapstructure:"chart"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type SourceConfig struct {
	URL             string `mapstructure:"url"`
	Sheet           string `mapstructure:"sheet"`
	StyleColumn     string `mapstructure:"style_column"`
	QuestionColumn  string `mapstructure:"question_column"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
}

func (s SourceConfig) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLSeconds) * time.Second
}

type AssessmentConfig struct {
	QuestionsPerStyle int `mapstructure:"questions_per_style"`
}

type ScoringConfig struct {
	Weights map[string]float64 `mapstructure:"weights"`
}

type ChartConfig struct {
	Title  string `mapstructure:"title"`
	XLabel string `mapstructure:"x_label"`
	YLabel string `mapstructure:"y_label"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":8080")
	v.SetDefault("source.url", DefaultSourceURL)
	v.SetDefault("source.sheet", "")
	v.SetDefault("source.style_column", "Style")
	v.SetDefault("source.question_column", "Questions")
	v.SetDefault("source.timeout_seconds", 30)
	v.SetDefault("source.cache_ttl_seconds", 0)
	v.SetDefault("assessment.questions_per_style", 5)
	for value, weight := range map[string]float64{"1": -2.0, "2": -1.0, "3": 0.0, "4": 1.0, "5": 2.0} {
		v.SetDefault("scoring.weights."+value, weight)
	}
	v.SetDefault("chart.title", "Assessment Summary by Leadership Style")
	v.SetDefault("chart.x_label", "Leadership Style")
	v.SetDefault("chart.y_label", "Score")
	v.SetDefault("chart.width", 1000)
	v.SetDefault("chart.height", 600)
	v.SetDefault("cors.allowed_origins", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads config.yaml from ./config or the working directory (or the
// explicit file, when given) and overlays SURVEY_APP_* environment variables.
// A missing config file is not an error; found reports whether one was read.
func Load(v *viper.Viper, file string) (cfg *Config, found bool, err error) {
	SetDefaults(v)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	found = true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, false, fmt.Errorf("read config file: %w", err)
		}
		found = false
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, found, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, found, err
	}
	return cfg, found, nil
}

func (c *Config) Validate() error {
	if c.Source.URL == "" {
		return errors.New("config: source.url must be set")
	}
	if c.Assessment.QuestionsPerStyle <= 0 {
		return fmt.Errorf("config: assessment.questions_per_style must be positive, got %d", c.Assessment.QuestionsPerStyle)
	}
	if c.Source.TimeoutSeconds < 0 || c.Source.CacheTTLSeconds < 0 {
		return errors.New("config: source timeouts must not be negative")
	}
	if len(c.Scoring.Weights) == 0 {
		return errors.New("config: scoring.weights must not be empty")
	}
	return nil
}
