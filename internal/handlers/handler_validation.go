package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ruralbooks/entrycheck/internal/core/ports/services"
	"github.com/ruralbooks/entrycheck/internal/dto"
	"github.com/ruralbooks/entrycheck/internal/middleware"
)

// validationHandler handles HTTP requests for entry validation.
type validationHandler struct {
	checkerService portssvc.CheckerSvcFacade
}

func newValidationHandler(checkerService portssvc.CheckerSvcFacade) *validationHandler {
	return &validationHandler{checkerService: checkerService}
}

// registerValidationRoutes registers the entry validation routes.
func registerValidationRoutes(group *gin.RouterGroup, checkerService portssvc.CheckerSvcFacade) {
	h := newValidationHandler(checkerService)
	entries := group.Group("/entries")
	entries.POST("/validate", h.validateEntry)
}

// validateEntry godoc
// @Summary Validate a proposed journal entry
// @Description Recomputes balances and tax splits, checks accounts, dates and type consistency, and returns a severity-tiered verdict. Content defects in the entry are reported as issues in the verdict, not as HTTP errors.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.ValidateEntryRequest true "Proposed entry"
// @Success 200 {object} dto.ValidationReportResponse "Validation report"
// @Failure 400 {object} map[string]string "Malformed request body"
// @Router /entries/validate [post]
func (h *validationHandler) validateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.ValidateEntryRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for validateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	asOf := time.Now()
	if req.AsOf != "" {
		parsed, err := time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid as_of date"})
			return
		}
		asOf = parsed
	}

	report := h.checkerService.ValidateEntry(c.Request.Context(), req.ToJournalEntry(), asOf)

	c.JSON(http.StatusOK, dto.ToValidationReportResponse(report))
}
