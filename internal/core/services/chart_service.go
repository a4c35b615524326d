package services

import (
	"context"

	"github.com/ruralbooks/entrycheck/internal/core/domain"
	portsreg "github.com/ruralbooks/entrycheck/internal/core/ports/registries"
	portssvc "github.com/ruralbooks/entrycheck/internal/core/ports/services"
)

// chartService exposes the chart of accounts to the transport layer.
type chartService struct {
	chart portsreg.ChartRegistry
}

// NewChartService creates a new chart service backed by the given registry.
func NewChartService(chart portsreg.ChartRegistry) portssvc.ChartSvcFacade {
	return &chartService{chart: chart}
}

var _ portssvc.ChartSvcFacade = (*chartService)(nil)

// ListAccounts implements portssvc.ChartSvcFacade.
func (s *chartService) ListAccounts(_ context.Context) []domain.Account {
	return s.chart.List()
}

// GetAccount implements portssvc.ChartSvcFacade. Deprecated codes resolve to
// their canonical account.
func (s *chartService) GetAccount(_ context.Context, code domain.AccountCode) (domain.Account, error) {
	return s.chart.Resolve(code)
}
