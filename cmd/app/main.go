package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"leadership-assessment-backend/internal/api"
	"leadership-assessment-backend/internal/client"
	"leadership-assessment-backend/internal/config"
	"leadership-assessment-backend/internal/repository"
	"leadership-assessment-backend/internal/router"
	"leadership-assessment-backend/internal/service"
	"leadership-assessment-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configFile string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "survey",
	Short: "Leadership style assessment web service",
	Long: `Serves a randomized leadership style assessment built from a remote
questionnaire spreadsheet and scores submitted answers per style.

Run without a subcommand to start the web server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var found bool
		var err error
		cfg, found, err = config.Load(viper.GetViper(), configFile)
		if err != nil {
			return err
		}
		logger, err = utils.NewLogger(cfg.Log.Level, cfg.Log.Development)
		if err != nil {
			return err
		}
		if !found {
			logger.Warn("config.yaml not found, using defaults and environment variables")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the assessment web server",
	RunE:  runServe,
}

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Fetch the questionnaire once and print a sampled question set as JSON",
	RunE:  runQuestions,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./config/config.yaml or ./config.yaml)")
	serveCmd.Flags().String("port", "", "listen address, e.g. :8080 (overrides server.port)")
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	rootCmd.AddCommand(serveCmd, questionsCmd)
}

func newLoader() *service.QuestionLoader {
	sheetClient := client.NewSheetClient(cfg.Source.URL, cfg.Source.TimeoutSeconds, logger)
	cache := repository.NewQuestionCache(cfg.Source.CacheTTL(), logger)
	return service.NewQuestionLoader(sheetClient, cache, service.LoaderConfig{
		Source: cfg.Source.URL,
		Sheet: repository.SheetOptions{
			Sheet:          cfg.Source.Sheet,
			StyleColumn:    cfg.Source.StyleColumn,
			QuestionColumn: cfg.Source.QuestionColumn,
		},
		QuestionsPerStyle: cfg.Assessment.QuestionsPerStyle,
	}, logger)
}

func runServe(cmd *cobra.Command, args []string) error {
	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	scorer := service.NewScorer(cfg.Scoring.Weights)
	charts := service.NewChartRenderer(service.ChartConfig{
		Title:  cfg.Chart.Title,
		XLabel: cfg.Chart.XLabel,
		YLabel: cfg.Chart.YLabel,
		Width:  cfg.Chart.Width,
		Height: cfg.Chart.Height,
	}, logger)
	handler := api.NewAssessmentHandler(newLoader(), scorer, charts, nil, logger)

	r := router.SetupRouter(handler, cfg.CORS.AllowedOrigins, logger)

	port := cfg.Server.Port
	logger.Info("server starting",
		zap.String("addr", port),
		zap.String("source", cfg.Source.URL),
		zap.Duration("cache_ttl", cfg.Source.CacheTTL()))
	if err := r.Run(port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func runQuestions(cmd *cobra.Command, args []string) error {
	set, err := newLoader().Load(context.Background())
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(set)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
