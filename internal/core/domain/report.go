package domain

import "time"

// ReportStatus is the overall verdict of a validation run.
type ReportStatus string

const (
	StatusApproved ReportStatus = "approved"
	StatusFlagged  ReportStatus = "flagged"
)

// Recommendation tells the downstream consumer how to gate posting.
type Recommendation string

const (
	RecommendPost           Recommendation = "post"
	RecommendReviewThenPost Recommendation = "review_then_post"
	RecommendDoNotPost      Recommendation = "do_not_post"
)

// WarningSet partitions advisory issues by tier.
type WarningSet struct {
	High   []Issue `json:"high"`
	Medium []Issue `json:"medium"`
	Low    []Issue `json:"low"`
}

// Count returns the total number of warnings across all tiers.
func (w WarningSet) Count() int {
	return len(w.High) + len(w.Medium) + len(w.Low)
}

// ValidationReport is the engine's only output. It is produced fresh per
// validation call and never mutated afterwards.
type ValidationReport struct {
	ReportID       string         `json:"report_id"`
	Status         ReportStatus   `json:"status"`
	Errors         []Issue        `json:"errors"`
	Warnings       WarningSet     `json:"warnings"`
	ChecksPassed   []string       `json:"checks_passed"`
	Summary        string         `json:"summary"`
	Recommendation Recommendation `json:"recommendation"`
	ValidatedAt    time.Time      `json:"validated_at"`
}

// HasErrors reports whether any posting-blocking issue was found.
func (r ValidationReport) HasErrors() bool {
	return len(r.Errors) > 0
}
