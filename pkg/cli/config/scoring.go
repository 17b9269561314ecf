package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/secmon-lab/gsip/pkg/domain/model/config"
	"github.com/urfave/cli/v3"
)

// Scoring holds CLI flags for risk scoring configuration
type Scoring struct {
	filePath string
}

// scoringFile mirrors the TOML layout. All sections are optional;
// omitted values keep their defaults.
type scoringFile struct {
	Weights struct {
		Gap      *float64 `toml:"gap"`
		Impact   *float64 `toml:"impact"`
		Priority *float64 `toml:"priority"`
	} `toml:"weights"`
	PriorityTiers struct {
		Critical *float64 `toml:"critical"`
		High     *float64 `toml:"high"`
		Medium   *float64 `toml:"medium"`
		Fallback *float64 `toml:"fallback"`
	} `toml:"priority_tiers"`
	QuickWin struct {
		ImpactThreshold *float64 `toml:"impact_threshold"`
	} `toml:"quick_win"`
	Compliance struct {
		ThemeKeywords []string `toml:"theme_keywords"`
	} `toml:"compliance"`
}

// Flags returns CLI flags for scoring configuration
func (x *Scoring) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "scoring",
			Usage:       "Path to a TOML file overriding the default scoring weights",
			Category:    "Scoring",
			Sources:     cli.EnvVars("GSIP_SCORING"),
			Destination: &x.filePath,
		},
	}
}

// Configure loads the scoring configuration, applying any file overrides
// on top of the defaults, and validates the result
func (x *Scoring) Configure() (*domainConfig.ScoringConfig, error) {
	cfg := domainConfig.DefaultScoringConfig()

	if x.filePath != "" {
		data, err := os.ReadFile(x.filePath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read scoring config", goerr.V("path", x.filePath))
		}

		var file scoringFile
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, goerr.Wrap(err, "failed to parse scoring config", goerr.V("path", x.filePath))
		}

		applyOverride(&cfg.Weights.Gap, file.Weights.Gap)
		applyOverride(&cfg.Weights.Impact, file.Weights.Impact)
		applyOverride(&cfg.Weights.Priority, file.Weights.Priority)
		applyOverride(&cfg.Priority.Critical, file.PriorityTiers.Critical)
		applyOverride(&cfg.Priority.High, file.PriorityTiers.High)
		applyOverride(&cfg.Priority.Medium, file.PriorityTiers.Medium)
		applyOverride(&cfg.Priority.Fallback, file.PriorityTiers.Fallback)
		applyOverride(&cfg.QuickWinImpactThreshold, file.QuickWin.ImpactThreshold)
		if len(file.Compliance.ThemeKeywords) > 0 {
			cfg.ComplianceThemeKeywords = file.Compliance.ThemeKeywords
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid scoring config", goerr.V("path", x.filePath))
	}
	return cfg, nil
}

func applyOverride(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
