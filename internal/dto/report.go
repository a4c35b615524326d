package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ruralbooks/entrycheck/internal/core/domain"
	"github.com/ruralbooks/entrycheck/internal/utils/accounting"
)

// IssueResponse is a single finding; severity is implied by the bucket it
// appears in.
type IssueResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WarningsResponse partitions advisory findings by tier.
type WarningsResponse struct {
	High   []IssueResponse `json:"high"`
	Medium []IssueResponse `json:"medium"`
	Low    []IssueResponse `json:"low"`
}

// ValidationReportResponse is the engine's verdict on one entry.
type ValidationReportResponse struct {
	ReportID       string           `json:"report_id"`
	Status         string           `json:"status"`
	Errors         []IssueResponse  `json:"errors"`
	Warnings       WarningsResponse `json:"warnings"`
	ChecksPassed   []string         `json:"checks_passed"`
	Summary        string           `json:"summary"`
	Recommendation string           `json:"recommendation"`
	ValidatedAt    time.Time        `json:"validated_at"`
}

// ToValidationReportResponse converts a domain report to its wire shape.
func ToValidationReportResponse(report domain.ValidationReport) ValidationReportResponse {
	return ValidationReportResponse{
		ReportID:       report.ReportID,
		Status:         string(report.Status),
		Errors:         toIssueResponses(report.Errors),
		Warnings: WarningsResponse{
			High:   toIssueResponses(report.Warnings.High),
			Medium: toIssueResponses(report.Warnings.Medium),
			Low:    toIssueResponses(report.Warnings.Low),
		},
		ChecksPassed:   report.ChecksPassed,
		Summary:        report.Summary,
		Recommendation: string(report.Recommendation),
		ValidatedAt:    report.ValidatedAt,
	}
}

func toIssueResponses(issues []domain.Issue) []IssueResponse {
	responses := make([]IssueResponse, len(issues))
	for i, issue := range issues {
		responses[i] = IssueResponse{Code: issue.Code, Message: issue.Message}
	}
	return responses
}

// GSTBreakdownResponse is a force-balanced base/CGST/SGST split.
type GSTBreakdownResponse struct {
	Total decimal.Decimal `json:"total"`
	Base  decimal.Decimal `json:"base"`
	CGST  decimal.Decimal `json:"cgst"`
	SGST  decimal.Decimal `json:"sgst"`
}

// ToGSTBreakdownResponse converts a breakdown to its wire shape.
func ToGSTBreakdownResponse(b accounting.GSTBreakdown) GSTBreakdownResponse {
	return GSTBreakdownResponse{Total: b.Total, Base: b.Base, CGST: b.CGST, SGST: b.SGST}
}
