package cli

import (
	"context"
	"os"

	"github.com/secmon-lab/gsip/pkg/cli/config"
	"github.com/secmon-lab/gsip/pkg/service/report"
	"github.com/secmon-lab/gsip/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdAnalyze() *cli.Command {
	var (
		dataCfg    config.Data
		scoringCfg config.Scoring
		limit      int
	)

	flags := []cli.Flag{
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of priority skills to show per section",
			Category:    "Report",
			Value:       10,
			Sources:     cli.EnvVars("GSIP_LIMIT"),
			Destination: &limit,
		},
	}
	flags = append(flags, dataCfg.Flags()...)
	flags = append(flags, scoringCfg.Flags()...)

	return &cli.Command{
		Name:  "analyze",
		Usage: "Score a snapshot and print the organisation-wide risk summary",
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

			return report.WriteSummary(ctx, os.Stdout, uc, limit)
		},
	}
}
