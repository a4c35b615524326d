package services

import (
	"fmt"
	"time"

	"github.com/ruralbooks/entrycheck/internal/core/domain"
)

const (
	dateLayout       = "2006-01-02"
	backdateSoftDays = 30
	backdateHardDays = 90
)

// checkTemporal validates the entry date against the supplied as-of date. The
// clock is injected by the caller; the engine never reads wall time to decide.
func (s *checkerService) checkTemporal(entry domain.JournalEntry, asOf time.Time) checkResult {
	result := checkResult{
		name:       "date",
		applicable: true,
		passNote:   "Date: within the allowed posting window",
	}

	if entry.TransactionDate == "" {
		// Completeness reports the missing field; nothing to parse here.
		result.applicable = false
		return result
	}

	entryDate, err := time.Parse(dateLayout, entry.TransactionDate)
	if err != nil {
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     domain.CodeInvalidDate,
			Message:  fmt.Sprintf("Transaction date %q is not a valid YYYY-MM-DD date.", entry.TransactionDate),
		})
		return result
	}

	today := truncateToDay(asOf)
	ageDays := int(today.Sub(entryDate).Hours() / 24)

	switch {
	case entryDate.After(today):
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     domain.CodeFutureDate,
			Message:  fmt.Sprintf("Transaction date %s is in the future.", entry.TransactionDate),
		})
	case ageDays > backdateHardDays:
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     domain.CodeStaleDate,
			Message:  fmt.Sprintf("Transaction date %s is %d days old; entries older than %d days need special approval.", entry.TransactionDate, ageDays, backdateHardDays),
		})
	case ageDays > backdateSoftDays:
		result.issues = append(result.issues, domain.Issue{
			Severity: domain.SeverityWarningMedium,
			Code:     domain.CodeBackdated,
			Message:  fmt.Sprintf("Transaction date %s is %d days old; verify the backdating is intended.", entry.TransactionDate, ageDays),
		})
	}

	return result
}

// truncateToDay drops the time-of-day component, keeping calendar arithmetic
// stable regardless of when in the day validation runs.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
