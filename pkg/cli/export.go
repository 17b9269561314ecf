package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gsip/pkg/cli/config"
	"github.com/secmon-lab/gsip/pkg/service/report"
	"github.com/secmon-lab/gsip/pkg/usecase"
	"github.com/secmon-lab/gsip/pkg/utils/logging"
	"github.com/secmon-lab/gsip/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var (
		dataCfg    config.Data
		scoringCfg config.Scoring
		output     string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output path for the CSV report ('-' for stdout)",
			Category:    "Report",
			Value:       "-",
			Sources:     cli.EnvVars("GSIP_OUTPUT"),
			Destination: &output,
		},
	}
	flags = append(flags, dataCfg.Flags()...)
	flags = append(flags, scoringCfg.Flags()...)

	return &cli.Command{
		Name:  "export",
		Usage: "Score a snapshot and write the priority action report as CSV",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, knowledgeSvc, err := dataCfg.Configure(ctx)
			if err != nil {
				return err
			}

			scoring, err := scoringCfg.Configure()
			if err != nil {
				return err
			}

			opts := []usecase.Option{usecase.WithScoringConfig(scoring)}
			if knowledgeSvc != nil {
				opts = append(opts, usecase.WithKnowledge(knowledgeSvc))
			}
			uc := usecase.New(repo, opts...)

			w := os.Stdout
			if output != "-" && output != "" {
				f, err := os.Create(output)
				if err != nil {
					return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
				}
				defer safe.Close(ctx, f)
				w = f
			}

			if err := report.WriteCSV(ctx, w, uc); err != nil {
				return err
			}

			if w != os.Stdout {
				logging.From(ctx).Info("Wrote CSV report", "path", output)
			}
			return nil
		},
	}
}
