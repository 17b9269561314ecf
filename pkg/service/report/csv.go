package report

import (
	"context"
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gsip/pkg/usecase"
)

// utf8BOM is prepended for compatibility with common spreadsheet tools
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvHeader is the fixed column set of the priority-action report
var csvHeader = []string{
	"Department",
	"Department Risk",
	"Skill",
	"Skill Family",
	"Risk Score",
	"Severity",
	"Recommended Action",
	"Contribution",
	"Target Maturity",
	"Linked Theme",
	"Priority",
	"Current Maturity",
	"Required Maturity",
	"Learning Pathway",
}

// pathwaySeparator joins pathway steps into a single cell
const pathwaySeparator = "; "

// FormatScore renders a [0,1] value as a whole percentage, e.g. 0.53
// becomes "53%". Rounding is half away from zero.
func FormatScore(v float64) string {
	return strconv.Itoa(int(math.Round(v*100))) + "%"
}

// FormatRisk renders a risk score with four significant digits
func FormatRisk(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// WriteCSV writes the org-wide priority-action report. The output starts
// with a UTF-8 byte-order mark; any field containing a comma, double
// quote, or newline is wrapped in double quotes with internal quotes
// doubled (the encoding/csv default).
func WriteCSV(ctx context.Context, w io.Writer, uc *usecase.UseCases) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return goerr.Wrap(err, "failed to write BOM")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return goerr.Wrap(err, "failed to write header")
	}

	units, err := uc.UnitRisks(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to rank units")
	}

	for _, ru := range units {
		actions, err := uc.PriorityActions(ctx, ru.Unit.ID)
		if err != nil {
			return goerr.Wrap(err, "failed to build priority actions", goerr.V("unit", ru.Unit.ID))
		}

		for _, a := range actions {
			record := []string{
				ru.Unit.DisplayLabel(),
				FormatScore(ru.RiskScore),
				a.Skill.Name,
				string(a.Skill.Family),
				FormatRisk(a.RiskScore),
				string(a.Skill.GapSeverity()),
				a.Action,
				a.Contribution,
				a.TargetMaturity,
				a.LinkedTheme,
				a.Priority,
				a.CurrentMaturity,
				a.RequiredMaturity,
				strings.Join(a.LearningPathway, pathwaySeparator),
			}
			if err := cw.Write(record); err != nil {
				return goerr.Wrap(err, "failed to write record", goerr.V("skill", a.Skill.Name))
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush report")
	}
	return nil
}
