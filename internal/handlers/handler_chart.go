package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ruralbooks/entrycheck/internal/apperrors"
	"github.com/ruralbooks/entrycheck/internal/core/domain"
	portssvc "github.com/ruralbooks/entrycheck/internal/core/ports/services"
	"github.com/ruralbooks/entrycheck/internal/dto"
	"github.com/ruralbooks/entrycheck/internal/middleware"
)

// chartHandler handles HTTP requests for the chart of accounts.
type chartHandler struct {
	chartService portssvc.ChartSvcFacade
}

func newChartHandler(chartService portssvc.ChartSvcFacade) *chartHandler {
	return &chartHandler{chartService: chartService}
}

// registerChartRoutes registers the chart-of-accounts routes.
func registerChartRoutes(group *gin.RouterGroup, chartService portssvc.ChartSvcFacade) {
	h := newChartHandler(chartService)
	accounts := group.Group("/accounts")
	accounts.GET("", h.listAccounts)
	accounts.GET("/:code", h.getAccount)
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Description Returns the fixed chart of accounts, deprecated aliases included.
// @Tags accounts
// @Produce  json
// @Success 200 {array} dto.AccountResponse
// @Router /accounts [get]
func (h *chartHandler) listAccounts(c *gin.Context) {
	accounts := h.chartService.ListAccounts(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// getAccount godoc
// @Summary Resolve one account code
// @Description Returns the account for a code, following alias canonicalization for deprecated codes.
// @Tags accounts
// @Produce  json
// @Param   code path string true "Account code"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Unknown account code"
// @Router /accounts/{code} [get]
func (h *chartHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := domain.AccountCode(c.Param("code"))

	account, err := h.chartService.GetAccount(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		logger.Error("Failed to resolve account", slog.String("code", string(code)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve account"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
