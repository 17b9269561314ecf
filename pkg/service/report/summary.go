package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gsip/pkg/domain/types"
	"github.com/secmon-lab/gsip/pkg/usecase"
)

var (
	criticalColor = color.New(color.FgRed, color.Bold)
	moderateColor = color.New(color.FgYellow)
	healthyColor  = color.New(color.FgGreen)
	neutralColor  = color.New(color.FgHiBlack)
)

func severityColor(s types.Severity) *color.Color {
	switch {
	case s.IsCritical():
		return criticalColor
	case strings.EqualFold(string(s), string(types.SeverityModerate)):
		return moderateColor
	case strings.EqualFold(string(s), string(types.SeverityNoGap)):
		return healthyColor
	default:
		return neutralColor
	}
}

// WriteSummary renders the org-wide analysis for a terminal: per-unit
// risk ranking, top priority skills, quick wins, and compliance risks.
func WriteSummary(ctx context.Context, w io.Writer, uc *usecase.UseCases, limit int) error {
	units, err := uc.UnitRisks(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to rank units")
	}

	fmt.Fprintln(w, "Department risk ranking")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  DEPARTMENT\tRISK\tSEVERITY\tSKILL GAPS")
	for _, ru := range units {
		sev := ru.Unit.GapSeverity
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%d critical / %d moderate\n",
			ru.Unit.DisplayLabel(),
			FormatScore(ru.RiskScore),
			severityColor(sev).Sprint(sev),
			ru.Unit.CriticalGapCount,
			ru.Unit.ModerateGapCount,
		)
	}
	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to flush unit table")
	}

	top, err := uc.TopPriority(ctx, limit)
	if err != nil {
		return goerr.Wrap(err, "failed to rank skills")
	}
	fmt.Fprintf(w, "\nTop %d priority skills\n", len(top))
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  SKILL\tFAMILY\tRISK\tSEVERITY\tTHEME")
	for _, rs := range top {
		sev := rs.Skill.GapSeverity()
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n",
			rs.Skill.Name,
			rs.Skill.Family,
			FormatRisk(rs.RiskScore),
			severityColor(sev).Sprint(sev),
			rs.Skill.Theme,
		)
	}
	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to flush skill table")
	}

	wins, err := uc.QuickWins(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to find quick wins")
	}
	fmt.Fprintf(w, "\nQuick wins (%d)\n", len(wins))
	for _, s := range wins {
		fmt.Fprintf(w, "  %s (impact %s)\n", s.Name, FormatScore(s.MeanImpact()))
	}

	risks, err := uc.ComplianceRisks(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to find compliance risks")
	}
	fmt.Fprintf(w, "\nCompliance risks (%d)\n", len(risks))
	for _, s := range risks {
		fmt.Fprintf(w, "  %s (%s)\n", s.Name, criticalColor.Sprint(s.Theme))
	}

	return nil
}
