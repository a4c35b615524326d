package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ruralbooks/entrycheck/internal/core/domain"
	portsreg "github.com/ruralbooks/entrycheck/internal/core/ports/registries"
	portssvc "github.com/ruralbooks/entrycheck/internal/core/ports/services"
	"github.com/ruralbooks/entrycheck/internal/middleware"
	"github.com/ruralbooks/entrycheck/internal/utils/accounting"
)

// checkResult is the outcome of one validator. A check that does not apply to
// the entry's transaction type reports applicable=false and contributes
// neither issues nor a pass note.
type checkResult struct {
	name       string
	applicable bool
	issues     []domain.Issue
	passNote   string
}

func (r checkResult) passed() bool {
	return r.applicable && len(r.issues) == 0
}

// checkerService runs every validator against an entry and aggregates the
// findings into a single report. It holds no mutable state; arbitrarily many
// entries may be validated concurrently.
type checkerService struct {
	chart portsreg.ChartRegistry
}

// NewCheckerService creates the validation engine backed by the given chart.
func NewCheckerService(chart portsreg.ChartRegistry) portssvc.CheckerSvcFacade {
	return &checkerService{chart: chart}
}

var _ portssvc.CheckerSvcFacade = (*checkerService)(nil)

// ValidateEntry implements portssvc.CheckerSvcFacade.
//
// Checks run unconditionally and in a fixed order so that issue ordering is
// reproducible; no check's execution depends on another having passed.
func (s *checkerService) ValidateEntry(ctx context.Context, entry domain.JournalEntry, asOf time.Time) domain.ValidationReport {
	logger := middleware.GetLoggerFromCtx(ctx)

	canonical := s.canonicalize(entry)

	results := []checkResult{
		s.checkCompleteness(canonical),
		s.checkLineValidity(canonical),
		s.checkAccountValidity(canonical),
		s.checkBalance(canonical),
		s.checkInvoiceGST(canonical),
		s.checkGSTPaymentSplit(canonical),
		s.checkTDSRate(canonical),
		s.checkTemporal(canonical, asOf),
		s.checkConsistency(canonical),
		s.checkConfidence(canonical),
		s.classifyProducerWarnings(canonical),
	}

	report := s.aggregate(results)

	logger.Info("Entry validated",
		slog.String("report_id", report.ReportID),
		slog.String("transaction_type", string(entry.TransactionType)),
		slog.String("status", string(report.Status)),
		slog.String("recommendation", string(report.Recommendation)),
		slog.Int("errors", len(report.Errors)),
		slog.Int("warnings", report.Warnings.Count()),
	)

	return report
}

// GSTBreakdown implements portssvc.CheckerSvcFacade.
func (s *checkerService) GSTBreakdown(gross decimal.Decimal) accounting.GSTBreakdown {
	return accounting.SplitInclusiveGST(accounting.RoundCurrency(gross))
}

// canonicalize returns a copy of the entry with deprecated account codes
// resolved to their current equivalent. Alias resolution happens once here, at
// the input boundary; unknown codes pass through untouched so the account
// validity check can report them.
func (s *checkerService) canonicalize(entry domain.JournalEntry) domain.JournalEntry {
	lines := make([]domain.LedgerLine, len(entry.Lines))
	copy(lines, entry.Lines)
	for i, line := range lines {
		acc, err := s.chart.Resolve(line.AccountCode)
		if err != nil {
			continue
		}
		lines[i].AccountCode = acc.Code
	}
	entry.Lines = lines
	return entry
}

// aggregate merges check results into the final report: status, partitioned
// issues, pass notes, recommendation and a one-sentence summary.
func (s *checkerService) aggregate(results []checkResult) domain.ValidationReport {
	report := domain.ValidationReport{
		ReportID:     uuid.NewString(),
		Errors:       []domain.Issue{},
		Warnings:     domain.WarningSet{High: []domain.Issue{}, Medium: []domain.Issue{}, Low: []domain.Issue{}},
		ChecksPassed: []string{},
		ValidatedAt:  time.Now().UTC(),
	}

	for _, result := range results {
		if result.passed() {
			report.ChecksPassed = append(report.ChecksPassed, result.passNote)
			continue
		}
		for _, issue := range result.issues {
			switch issue.Severity {
			case domain.SeverityError:
				report.Errors = append(report.Errors, issue)
			case domain.SeverityWarningHigh:
				report.Warnings.High = append(report.Warnings.High, issue)
			case domain.SeverityWarningMedium:
				report.Warnings.Medium = append(report.Warnings.Medium, issue)
			case domain.SeverityWarningLow:
				report.Warnings.Low = append(report.Warnings.Low, issue)
			}
		}
	}

	hasIssues := len(report.Errors) > 0 || report.Warnings.Count() > 0
	if hasIssues {
		report.Status = domain.StatusFlagged
	} else {
		report.Status = domain.StatusApproved
	}

	switch {
	case len(report.Errors) > 0:
		report.Recommendation = domain.RecommendDoNotPost
	case len(report.Warnings.High) > 0 || len(report.Warnings.Medium) > 0:
		report.Recommendation = domain.RecommendReviewThenPost
	default:
		report.Recommendation = domain.RecommendPost
	}

	report.Summary = s.summarize(report)
	return report
}

// summarize produces one sentence reflecting the dominant finding: the first
// error, else the highest-severity warning, else a generic all-clear.
func (s *checkerService) summarize(report domain.ValidationReport) string {
	switch {
	case len(report.Errors) > 0:
		return report.Errors[0].Message
	case len(report.Warnings.High) > 0:
		return report.Warnings.High[0].Message
	case len(report.Warnings.Medium) > 0:
		return report.Warnings.Medium[0].Message
	case len(report.Warnings.Low) > 0:
		return report.Warnings.Low[0].Message
	default:
		return "All validations passed."
	}
}
