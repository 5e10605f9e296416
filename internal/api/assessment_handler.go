package api

import (
	"context"
	"errors"
	"html/template"
	"net/http"

	"leadership-assessment-backend/internal/client"
	"leadership-assessment-backend/internal/model"
	"leadership-assessment-backend/internal/repository"
	"leadership-assessment-backend/internal/service"
	"leadership-assessment-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const loadErrorMessage = "Error loading questions from the remote source."

type QuestionLoader interface {
	Load(ctx context.Context) (model.QuestionSet, error)
}

type ScaleOption struct {
	Value string
	Label string
}

var likertScale = []ScaleOption{
	{Value: "1", Label: "Strongly Disagree"},
	{Value: "2", Label: "Disagree"},
	{Value: "3", Label: "Neutral"},
	{Value: "4", Label: "Agree"},
	{Value: "5", Label: "Strongly Agree"},
}

type AssessmentHandler struct {
	loader  QuestionLoader
	scorer  *service.Scorer
	charts  *service.ChartRenderer
	shuffle service.Shuffler
	logger  *zap.Logger
}

func NewAssessmentHandler(loader QuestionLoader, scorer *service.Scorer, charts *service.ChartRenderer, shuffle service.Shuffler, logger *zap.Logger) *AssessmentHandler {
	if shuffle == nil {
		shuffle = service.DefaultShuffler
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentHandler{
		loader:  loader,
		scorer:  scorer,
		charts:  charts,
		shuffle: shuffle,
		logger:  logger.Named("handler"),
	}
}

func (h *AssessmentHandler) loadAssessment(c *gin.Context) (model.Assessment, bool) {
	set, err := h.loader.Load(c.Request.Context())
	if err != nil {
		h.logger.Error("question loading failed",
			zap.String("request_id", c.GetString(utils.RequestIDKey)),
			zap.Bool("bad_status", errors.Is(err, client.ErrUnexpectedStatus)),
			zap.Bool("bad_sheet", errors.Is(err, repository.ErrMissingColumn)),
			zap.Error(err))
		return model.Assessment{}, false
	}
	return service.BuildAssessment(set, h.shuffle), true
}

// HomeHandler renders the assessment form. A loader failure produces a
// plain-text error and no form.
func (h *AssessmentHandler) HomeHandler(c *gin.Context) {
	assessment, ok := h.loadAssessment(c)
	if !ok {
		c.String(http.StatusBadGateway, loadErrorMessage)
		return
	}
	c.HTML(http.StatusOK, "assessment.html", gin.H{
		"Questions": assessment.Items,
		"Scale":     likertScale,
	})
}

func (h *AssessmentHandler) SubmitHandler(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "could not read form: %s", err.Error())
		return
	}
	sub, err := DecodeSubmission(c.Request.PostForm)
	if err != nil {
		c.String(http.StatusBadRequest, "%s", err.Error())
		return
	}

	result, status, err := h.score(sub)
	if err != nil {
		c.String(status, "%s", err.Error())
		return
	}
	c.HTML(http.StatusOK, "results.html", gin.H{
		"Scores": result.Scores,
		"Chart":  template.URL("data:image/png;base64," + result.Chart),
	})
}

func (h *AssessmentHandler) AssessmentJSONHandler(c *gin.Context) {
	assessment, ok := h.loadAssessment(c)
	if !ok {
		c.JSON(http.StatusBadGateway, model.ErrorResponse{Error: loadErrorMessage})
		return
	}
	c.JSON(http.StatusOK, assessment)
}

func (h *AssessmentHandler) ScoreJSONHandler(c *gin.Context) {
	var sub model.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid submission", Details: err.Error()})
		return
	}
	result, status, err := h.score(sub)
	if err != nil {
		c.JSON(status, model.ErrorResponse{Error: "scoring failed", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AssessmentHandler) score(sub model.Submission) (model.ScoreResponse, int, error) {
	summary, err := h.scorer.Score(sub)
	if err != nil {
		if errors.Is(err, service.ErrUnknownValue) {
			return model.ScoreResponse{}, http.StatusBadRequest, err
		}
		return model.ScoreResponse{}, http.StatusInternalServerError, err
	}
	chart, err := h.charts.Render(summary)
	if err != nil {
		h.logger.Error("chart rendering failed", zap.Error(err))
		return model.ScoreResponse{}, http.StatusInternalServerError, err
	}
	h.logger.Info("submission scored",
		zap.Int("responses", len(sub.Responses)),
		zap.Int("styles", len(summary)))
	return model.ScoreResponse{Scores: summary, Chart: chart}, http.StatusOK, nil
}
