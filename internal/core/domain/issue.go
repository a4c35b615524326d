package domain

// Severity tiers a validation issue. Errors block posting; warnings are advisory.
type Severity string

const (
	SeverityError         Severity = "error"
	SeverityWarningHigh   Severity = "warning_high"
	SeverityWarningMedium Severity = "warning_medium"
	SeverityWarningLow    Severity = "warning_low"
)

// IsWarning reports whether the severity is one of the advisory tiers.
func (s Severity) IsWarning() bool {
	return s == SeverityWarningHigh || s == SeverityWarningMedium || s == SeverityWarningLow
}

// Issue codes, one per distinct defect class. Stable identifiers for downstream
// consumers; the message carries the human-readable detail.
const (
	CodeMissingField       = "MISSING_FIELD"
	CodeInvalidType        = "INVALID_TRANSACTION_TYPE"
	CodeEmptyNarration     = "EMPTY_NARRATION"
	CodeTooFewLines        = "TOO_FEW_LINES"
	CodeInvalidLine        = "INVALID_LINE"
	CodeUnknownAccount     = "UNKNOWN_ACCOUNT"
	CodeUnbalanced         = "UNBALANCED_ENTRY"
	CodeGSTMismatch        = "GST_MISMATCH"
	CodeGSTAsymmetry       = "GST_ASYMMETRY"
	CodeGSTPaymentSplit    = "GST_PAYMENT_SPLIT"
	CodeTDSRate            = "TDS_RATE"
	CodeInvalidDate        = "INVALID_DATE"
	CodeFutureDate         = "FUTURE_DATE"
	CodeStaleDate          = "STALE_DATE"
	CodeBackdated          = "BACKDATED"
	CodeTypeMismatch       = "TYPE_ACCOUNT_MISMATCH"
	CodeProhibitedAccount  = "PROHIBITED_ACCOUNT"
	CodeLowConfidence      = "LOW_CONFIDENCE"
	CodeModerateConfidence = "MODERATE_CONFIDENCE"
	CodeOverconfidence     = "OVERCONFIDENCE"
	CodeProducerWarning    = "PRODUCER_WARNING"
)

// Issue is a single finding produced by one validator.
type Issue struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
}
