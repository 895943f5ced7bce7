package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"psymetric/internal/domain"
	"psymetric/internal/itembank"
	"psymetric/internal/scoring"
	"psymetric/internal/service"
)

// AssessmentHandler expone el motor de scoring por HTTP.
type AssessmentHandler struct {
	logger  *zap.Logger
	assess  *service.AssessmentService
	userSrv *service.UserService
}

func NewAssessmentHandler(logger *zap.Logger, assess *service.AssessmentService, userSrv *service.UserService) *AssessmentHandler {
	return &AssessmentHandler{
		logger:  logger,
		assess:  assess,
		userSrv: userSrv,
	}
}

// ScoreInstrument maneja POST /assessments/:instrument/score.
func (h *AssessmentHandler) ScoreInstrument(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing claims"})
		return
	}

	var req struct {
		Responses domain.ResponseSet `json:"responses" binding:"required"`
		Policy    string             `json:"policy"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid score request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	policy, err := scoring.ParsePolicy(req.Policy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	instrument := domain.Instrument(c.Param("instrument"))
	result, err := h.assess.ScoreInstrument(claims.UserID, instrument, req.Responses, policy)
	if err != nil {
		h.writeScoringError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"instrument": instrument, "result": result})
}

// CreateReport maneja POST /reports: puntúa los instrumentos presentes y
// persiste el reporte armado.
func (h *AssessmentHandler) CreateReport(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing claims"})
		return
	}

	var req struct {
		Trait  domain.ResponseSet `json:"trait"`
		Type   domain.ResponseSet `json:"type"`
		Style  domain.ResponseSet `json:"style"`
		Policy string             `json:"policy"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid report request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	policy, err := scoring.ParsePolicy(req.Policy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := domain.User{ID: claims.UserID, Email: claims.Email, DisplayName: claims.DisplayName}
	report, err := h.assess.CreateReport(c.Request.Context(), user, service.ReportInput{
		Trait:  req.Trait,
		Type:   req.Type,
		Style:  req.Style,
		Policy: policy,
	})
	if err != nil {
		h.writeScoringError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"report": report})
}

// GetReport maneja GET /reports/:id.
func (h *AssessmentHandler) GetReport(c *gin.Context) {
	report, err := h.assess.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		h.logger.Error("get report failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

// ListReports maneja GET /reports.
func (h *AssessmentHandler) ListReports(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing claims"})
		return
	}

	reports, err := h.assess.ListReports(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("list reports failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list reports"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// FindSimilar maneja GET /reports/:id/similar?k=N.
func (h *AssessmentHandler) FindSimilar(c *gin.Context) {
	k, _ := strconv.Atoi(c.DefaultQuery("k", "5"))

	hits, err := h.assess.FindSimilar(c.Request.Context(), c.Param("id"), k)
	if err != nil {
		h.logger.Error("similar search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search similar reports"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"similar": hits})
}

// writeScoringError traduce errores del motor a códigos HTTP. Los errores de
// validación de respuestas llevan su detalle; lo demás es 500.
func (h *AssessmentHandler) writeScoringError(c *gin.Context, err error) {
	var (
		unknownItem *scoring.UnknownItemError
		outOfRange  *scoring.OutOfRangeError
		incomplete  *scoring.IncompleteResponseError
	)
	switch {
	case errors.Is(err, service.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many submissions"})
	case errors.Is(err, itembank.ErrUnknownInstrument):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown instrument"})
	case errors.As(err, &unknownItem):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": unknownItem.Error(), "item_id": unknownItem.ItemID})
	case errors.As(err, &outOfRange):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": outOfRange.Error(), "item_id": outOfRange.ItemID})
	case errors.As(err, &incomplete):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "incomplete response set", "missing_item_ids": incomplete.MissingItemIDs})
	default:
		h.logger.Error("scoring failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "scoring failed"})
	}
}
