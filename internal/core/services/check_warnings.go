package services

import (
	"fmt"
	"strings"

	"github.com/ruralbooks/entrycheck/internal/core/domain"
)

// Keyword groups for reclassifying free-text producer warnings. Groups are
// checked in order and the first match wins, so a warning containing both
// "assumed" and "verify" lands in the high tier.
var warningKeywordGroups = []struct {
	severity domain.Severity
	label    string
	keywords []string
}{
	{domain.SeverityWarningHigh, "HIGH", []string{"assumed", "unclear", "ambiguous", "unusual", "high", "low"}},
	{domain.SeverityWarningMedium, "MEDIUM", []string{"mapped to", "default", "verify", "confirm"}},
	{domain.SeverityWarningLow, "LOW", []string{"rounding", "minor"}},
}

// classifyProducerWarnings re-emits each producer-supplied warning with a
// resolved severity tier, keeping the original text verbatim.
func (s *checkerService) classifyProducerWarnings(entry domain.JournalEntry) checkResult {
	result := checkResult{
		name:     "producer warnings",
		passNote: "Producer warnings: none reported",
	}

	if len(entry.Warnings) == 0 {
		return result
	}
	result.applicable = true

	for _, warning := range entry.Warnings {
		severity, label := classifyWarning(warning)
		result.issues = append(result.issues, domain.Issue{
			Severity: severity,
			Code:     domain.CodeProducerWarning,
			Message:  fmt.Sprintf("[%s] %s", label, warning),
		})
	}

	return result
}

func classifyWarning(text string) (domain.Severity, string) {
	lowered := strings.ToLower(text)
	for _, group := range warningKeywordGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(lowered, keyword) {
				return group.severity, group.label
			}
		}
	}
	return domain.SeverityWarningMedium, "MEDIUM"
}
