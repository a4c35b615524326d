package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/ruralbooks/entrycheck/internal/core/domain"
	"github.com/ruralbooks/entrycheck/internal/core/services"
	"github.com/ruralbooks/entrycheck/internal/dto"
	"github.com/ruralbooks/entrycheck/internal/registries/static"
)

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// Commands holds every CLI subcommand.
type Commands struct {
	Validate ValidateCmd `cmd:"" help:"Validate a journal entry JSON file and print the verdict."`
	Accounts AccountsCmd `cmd:"" help:"Print the chart of accounts."`
	GST      GSTCmd      `cmd:"" help:"Split a tax-inclusive amount into base, CGST and SGST."`
}

// ValidateCmd runs the validation engine against an entry file.
type ValidateCmd struct {
	File []byte `help:"Journal entry JSON filename." arg:"" type:"filecontent"`
	AsOf string `help:"Validate as of this date (YYYY-MM-DD); defaults to today." default:""`
	JSON bool   `help:"Emit the raw report JSON instead of the rendered verdict."`
}

func (cmd *ValidateCmd) Run(ctx *kong.Context) error {
	req := dto.ValidateEntryRequest{}
	if err := json.Unmarshal(cmd.File, &req); err != nil {
		return fmt.Errorf("parsing entry file: %w", err)
	}

	asOf := time.Now()
	if cmd.AsOf != "" {
		parsed, err := time.Parse("2006-01-02", cmd.AsOf)
		if err != nil {
			return fmt.Errorf("invalid --as-of date %q: %w", cmd.AsOf, err)
		}
		asOf = parsed
	}

	checker := services.NewCheckerService(static.NewChartRegistry())
	report := checker.ValidateEntry(context.Background(), req.ToJournalEntry(), asOf)

	if cmd.JSON {
		encoded, err := json.MarshalIndent(dto.ToValidationReportResponse(report), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
	} else {
		renderReport(report)
	}

	if report.Recommendation == domain.RecommendDoNotPost {
		os.Exit(1)
	}
	return nil
}

func renderReport(report domain.ValidationReport) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("Status: %s    Recommendation: %s", report.Status, report.Recommendation)))
	fmt.Println(report.Summary)
	fmt.Println()

	renderIssues("Errors", report.Errors, errorStyle)
	renderIssues("High warnings", report.Warnings.High, highStyle)
	renderIssues("Medium warnings", report.Warnings.Medium, mediumStyle)
	renderIssues("Low warnings", report.Warnings.Low, lowStyle)

	if len(report.ChecksPassed) > 0 {
		fmt.Println(headerStyle.Render("Checks passed"))
		for _, note := range report.ChecksPassed {
			fmt.Println(passStyle.Render("  ✓ " + note))
		}
	}
}

func renderIssues(title string, issues []domain.Issue, style lipgloss.Style) {
	if len(issues) == 0 {
		return
	}
	fmt.Println(headerStyle.Render(title))
	for _, issue := range issues {
		fmt.Println(style.Render(fmt.Sprintf("  • [%s] %s", issue.Code, issue.Message)))
	}
	fmt.Println()
}

// AccountsCmd prints the chart of accounts.
type AccountsCmd struct{}

func (cmd *AccountsCmd) Run(ctx *kong.Context) error {
	chart := static.NewChartRegistry()
	for _, acc := range chart.List() {
		line := fmt.Sprintf("%-8s  %-40s  %-9s  %s", acc.Code, acc.Name, acc.AccountType, acc.Subtype)
		if acc.IsDeprecated() {
			line = lowStyle.Render(line + "  (deprecated, use " + string(acc.AliasOf) + ")")
		}
		fmt.Println(line)
	}
	return nil
}

// GSTCmd prints the force-balanced GST split of a gross amount.
type GSTCmd struct {
	Amount string `help:"Tax-inclusive gross amount." arg:""`
}

func (cmd *GSTCmd) Run(ctx *kong.Context) error {
	gross, err := decimal.NewFromString(cmd.Amount)
	if err != nil || !gross.IsPositive() {
		return fmt.Errorf("amount must be a positive decimal, got %q", cmd.Amount)
	}

	checker := services.NewCheckerService(static.NewChartRegistry())
	breakdown := checker.GSTBreakdown(gross)

	fmt.Printf("Total: %s\n", breakdown.Total.StringFixed(2))
	fmt.Printf("Base:  %s\n", breakdown.Base.StringFixed(2))
	fmt.Printf("CGST:  %s\n", breakdown.CGST.StringFixed(2))
	fmt.Printf("SGST:  %s\n", breakdown.SGST.StringFixed(2))
	return nil
}
