package cli

import (
	"context"
	"fmt"

	"github.com/secmon-lab/gsip/pkg/cli/config"
	"github.com/secmon-lab/gsip/pkg/domain/types"
	"github.com/secmon-lab/gsip/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var (
		dataCfg    config.Data
		scoringCfg config.Scoring
	)

	flags := append(dataCfg.Flags(), scoringCfg.Flags()...)

	return &cli.Command{
		Name:  "validate",
		Usage: "Check snapshot files and scoring configuration for problems",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)
			issues := 0

			if _, err := scoringCfg.Configure(); err != nil {
				logger.Warn("Invalid scoring configuration", "error", err)
				issues++
			}

			snapshot, _, err := dataCfg.Load(ctx)
			if err != nil {
				return err
			}

			unitIDs := make(map[types.UnitID]bool, len(snapshot.Units))
			for i, unit := range snapshot.Units {
				if err := unit.Validate(); err != nil {
					logger.Warn("Invalid unit record", "index", i, "id", unit.ID, "error", err)
					issues++
					continue
				}
				if unitIDs[unit.ID] {
					logger.Warn("Duplicate unit ID", "index", i, "id", unit.ID)
					issues++
					continue
				}
				unitIDs[unit.ID] = true
			}

			for i, skill := range snapshot.Skills {
				if err := skill.Validate(); err != nil {
					logger.Warn("Invalid skill record", "index", i, "skill", skill.Name, "error", err)
					issues++
					continue
				}
				if !unitIDs[skill.UnitID] {
					logger.Warn("Skill references unknown unit", "index", i, "skill", skill.Name, "unit", skill.UnitID)
					issues++
				}
			}

			for i, edge := range snapshot.Edges {
				if err := edge.Validate(); err != nil {
					logger.Warn("Invalid edge record", "index", i, "id", edge.ID, "error", err)
					issues++
					continue
				}
				if !unitIDs[edge.Source] {
					logger.Warn("Edge references unknown source unit", "index", i, "id", edge.ID, "unit", edge.Source)
					issues++
				}
				if !unitIDs[edge.Target] {
					logger.Warn("Edge references unknown target unit", "index", i, "id", edge.ID, "unit", edge.Target)
					issues++
				}
			}

			if issues > 0 {
				return fmt.Errorf("found %d issue(s) in snapshot data", issues)
			}

			logger.Info("Snapshot data is valid",
				"units", len(snapshot.Units),
				"skills", len(snapshot.Skills),
				"edges", len(snapshot.Edges),
			)
			return nil
		},
	}
}
