package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	portssvc "github.com/ruralbooks/entrycheck/internal/core/ports/services"
	"github.com/ruralbooks/entrycheck/internal/dto"
	"github.com/ruralbooks/entrycheck/internal/middleware"
)

// gstHandler handles HTTP requests for GST computations.
type gstHandler struct {
	checkerService portssvc.CheckerSvcFacade
}

func newGSTHandler(checkerService portssvc.CheckerSvcFacade) *gstHandler {
	return &gstHandler{checkerService: checkerService}
}

// registerGSTRoutes registers the GST computation routes.
func registerGSTRoutes(group *gin.RouterGroup, checkerService portssvc.CheckerSvcFacade) {
	h := newGSTHandler(checkerService)
	gst := group.Group("/gst")
	gst.POST("/breakdown", h.breakdown)
}

// breakdown godoc
// @Summary Split a tax-inclusive amount into base, CGST and SGST
// @Description Computes the force-balanced 18% split: the SGST leg absorbs the rounding residual so the components always sum to the input exactly.
// @Tags gst
// @Accept  json
// @Produce  json
// @Param   request body dto.GSTBreakdownRequest true "Gross amount"
// @Success 200 {object} dto.GSTBreakdownResponse
// @Failure 400 {object} map[string]string "Missing or non-positive amount"
// @Router /gst/breakdown [post]
func (h *gstHandler) breakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.GSTBreakdownRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for GST breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a positive decimal string"})
		return
	}

	// binding's currencyamount validation guarantees this parses
	gross, _ := decimal.NewFromString(req.Amount)

	breakdown := h.checkerService.GSTBreakdown(gross)
	c.JSON(http.StatusOK, dto.ToGSTBreakdownResponse(breakdown))
}
