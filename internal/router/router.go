package router

import (
	"embed"
	"html/template"

	"leadership-assessment-backend/internal/api"
	"leadership-assessment-backend/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

func SetupRouter(handler *api.AssessmentHandler, allowedOrigins []string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))
	r.SetHTMLTemplate(Templates())

	if len(allowedOrigins) > 0 {
		config := cors.DefaultConfig()
		config.AllowOrigins = allowedOrigins
		config.AllowHeaders = append(config.AllowHeaders, utils.RequestIDHeader, "Content-Type")
		config.ExposeHeaders = append(config.ExposeHeaders, utils.RequestIDHeader)
		r.Use(cors.New(config))
	}

	r.GET("/", handler.HomeHandler)
	r.POST("/submit", handler.SubmitHandler)

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/assessment", handler.AssessmentJSONHandler)
		apiV1.POST("/score", handler.ScoreJSONHandler)
		apiV1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "UP"})
		})
	}

	return r
}
