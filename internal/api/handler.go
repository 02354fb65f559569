package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Skufu/climatehealth/internal/analysis"
	"github.com/Skufu/climatehealth/internal/metrics"
	"github.com/Skufu/climatehealth/internal/validation"
)

const (
	homeMessage     = "ClimateHealth AI API Running Successfully"
	noAnalysisYet   = "No analysis performed yet."
	validationError = "validation_failed"
)

// Handler serves the prediction, prescription and dashboard endpoints.
type Handler struct {
	svc       *analysis.Service
	validator *validation.Validator
	log       *zap.Logger
}

func NewHandler(svc *analysis.Service, validator *validation.Validator, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, validator: validator, log: log}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.home)
	r.GET("/models", h.models)

	r.POST("/predict-health", h.predictHealth)
	r.POST("/predict-carbon", h.predictCarbon)
	r.POST("/predict-surge", h.predictSurge)
	r.POST("/final-prescription", h.finalPrescription)
	r.POST("/analyze", h.analyze)
	r.GET("/dashboard", h.dashboard)
}

func (h *Handler) home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": homeMessage})
}

func (h *Handler) models(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": h.svc.Models()})
}

func (h *Handler) predictHealth(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	in, err := h.validator.DecodeHealth(body)
	if err != nil {
		h.respond(c, "predict-health", nil, err)
		return
	}
	out, err := h.svc.PredictHealth(in)
	h.respond(c, "predict-health", out, err)
}

func (h *Handler) predictCarbon(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	in, err := h.validator.DecodeCarbon(body)
	if err != nil {
		h.respond(c, "predict-carbon", nil, err)
		return
	}
	out, err := h.svc.PredictCarbon(in)
	h.respond(c, "predict-carbon", out, err)
}

func (h *Handler) predictSurge(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	in, err := h.validator.DecodeSurge(body)
	if err != nil {
		h.respond(c, "predict-surge", nil, err)
		return
	}
	out, err := h.svc.PredictSurge(in)
	h.respond(c, "predict-surge", out, err)
}

type prescriptionQuery struct {
	HealthScore         *float64 `form:"health_score" binding:"required"`
	CarbonEmission      *float64 `form:"carbon_emission" binding:"required"`
	OverloadProbability *float64 `form:"overload_probability" binding:"required"`
}

func (h *Handler) finalPrescription(c *gin.Context) {
	var q prescriptionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.respond(c, "final-prescription", nil, &validation.Error{Details: []string{err.Error()}})
		return
	}
	plan := h.svc.Prescribe(*q.HealthScore, *q.CarbonEmission, *q.OverloadProbability)
	h.respond(c, "final-prescription", plan, nil)
}

func (h *Handler) analyze(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	var req analysis.Request
	if err := h.validator.DecodeAnalyze(body, &req); err != nil {
		h.respond(c, "analyze", nil, err)
		return
	}
	out, err := h.svc.Analyze(req)
	h.respond(c, "analyze", out, err)
}

func (h *Handler) dashboard(c *gin.Context) {
	latest, ok := h.svc.Latest()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"message": noAnalysisYet})
		return
	}
	c.JSON(http.StatusOK, latest)
}

func (h *Handler) readBody(c *gin.Context) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read request body"})
		return nil, false
	}
	return body, true
}

// respond is the single place where operation errors become payloads.
// Validation failures get 422; every other error is reported as
// {"error": msg} with a 200 status.
func (h *Handler) respond(c *gin.Context, endpoint string, out any, err error) {
	if err == nil {
		metrics.RequestsTotal.WithLabelValues(endpoint, metrics.OutcomeOK).Inc()
		c.JSON(http.StatusOK, out)
		return
	}

	var ve *validation.Error
	if errors.As(err, &ve) {
		metrics.RequestsTotal.WithLabelValues(endpoint, metrics.OutcomeValidationError).Inc()
		h.log.Debug("request rejected", zap.String("endpoint", endpoint), zap.Strings("details", ve.Details))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validationError, "details": ve.Details})
		return
	}

	metrics.RequestsTotal.WithLabelValues(endpoint, metrics.OutcomePredictionError).Inc()
	h.log.Warn("prediction failed",
		zap.String("endpoint", endpoint),
		zap.String("request_id", c.GetString(requestIDHeader)),
		zap.Error(err),
	)
	c.JSON(http.StatusOK, gin.H{"error": err.Error()})
}
