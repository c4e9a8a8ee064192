package api

import (
	"net/http"

	"goplots/adapters/excel"
	"goplots/domain/chart"
	"goplots/internal"
	"goplots/internal/config"
	"goplots/internal/errors"
	"goplots/models"

	"github.com/gin-gonic/gin"
)

// Server is the chart rendering HTTP API.
type Server struct {
	router   *gin.Engine
	cfg      *config.Config
	logger   *internal.Logger
	limiter  *Limiter
	encoder  *chart.Encoder
	workbook *excel.WorkbookReader
	docs     *docs
}

// NewServer builds the router and registers every route.
func NewServer(cfg *config.Config, logger *internal.Logger) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:   gin.New(),
		cfg:      cfg,
		logger:   logger.WithComponent("API"),
		limiter:  NewLimiter(cfg.Render.Concurrency),
		encoder:  chart.NewEncoder(logger),
		workbook: excel.NewWorkbookReader(logger),
		docs:     newDocs(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Logger())
	s.router.Use(gin.CustomRecovery(s.recoverPanic))
	s.router.Use(RequestID())
	s.router.Use(BodyLimit(s.cfg.Server.MaxBodyBytes))
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	s.router.POST("/render", s.handleRender)
	s.router.POST("/render-csv", s.handleRenderCSV)
	s.router.POST("/render-xlsx", s.handleRenderXLSX)

	plot := s.router.Group("/plot")
	{
		plot.POST("/summary", plotHandler(s, chart.KindSummary, func() *models.SummaryStats { return new(models.SummaryStats) }, chart.Summary))
		plot.POST("/distribution", plotHandler(s, chart.KindHistogram, func() *models.DistributionHistogram { return new(models.DistributionHistogram) }, chart.Histogram))
		plot.POST("/ecdf", plotHandler(s, chart.KindECDF, func() *models.EmpiricalCDF { return new(models.EmpiricalCDF) }, chart.ECDF))
		plot.POST("/qq", plotHandler(s, chart.KindQQ, func() *models.QQData { return new(models.QQData) }, chart.QQ))
		plot.POST("/corr-heatmap", plotHandler(s, chart.KindHeatmap, func() *models.CorrelationMatrix { return new(models.CorrelationMatrix) }, chart.Heatmap))
		plot.POST("/series", plotHandler(s, chart.KindSeries, func() *models.SeriesWithOutliers { return new(models.SeriesWithOutliers) }, chart.Series))
	}

	if s.cfg.Server.Debug {
		s.router.GET("/openapi.json", s.handleOpenAPI)
		s.router.GET("/docs", s.handleDocs)
	}
}

func (s *Server) recoverPanic(c *gin.Context, recovered interface{}) {
	s.logger.Error("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
	s.respondError(c, errors.InternalError("panic while handling request"))
}

// respondError writes {"detail": ...} with the status mapped from err.
// Internal failures are logged and never leak their cause.
func (s *Server) respondError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("%s %s [%s]: %v", c.Request.Method, c.Request.URL.Path, c.GetString(requestIDKey), err)
	} else {
		s.logger.Debug("%s %s rejected: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"detail": errors.PublicMessage(err)})
}
