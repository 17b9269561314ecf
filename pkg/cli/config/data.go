package config

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gsip/pkg/domain/interfaces"
	"github.com/secmon-lab/gsip/pkg/domain/model"
	"github.com/secmon-lab/gsip/pkg/repository/memory"
	"github.com/secmon-lab/gsip/pkg/service/knowledge"
	"github.com/secmon-lab/gsip/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Data holds CLI flags for the snapshot input files. The engine has no
// storage of its own: each run loads one immutable snapshot from disk.
type Data struct {
	unitsPath     string
	skillsPath    string
	edgesPath     string
	knowledgePath string
}

// Flags returns CLI flags for snapshot data configuration
func (x *Data) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "units",
			Usage:       "Path to the organisational unit records (JSON array)",
			Category:    "Data",
			Required:    true,
			Sources:     cli.EnvVars("GSIP_UNITS"),
			Destination: &x.unitsPath,
		},
		&cli.StringFlag{
			Name:        "skills",
			Usage:       "Path to the skill assessment records (JSON array)",
			Category:    "Data",
			Required:    true,
			Sources:     cli.EnvVars("GSIP_SKILLS"),
			Destination: &x.skillsPath,
		},
		&cli.StringFlag{
			Name:        "edges",
			Usage:       "Path to the unit relationship records (JSON array, optional)",
			Category:    "Data",
			Sources:     cli.EnvVars("GSIP_EDGES"),
			Destination: &x.edgesPath,
		},
		&cli.StringFlag{
			Name:        "knowledge",
			Usage:       "Path to the knowledge resource document (JSON, optional)",
			Category:    "Data",
			Sources:     cli.EnvVars("GSIP_KNOWLEDGE"),
			Destination: &x.knowledgePath,
		},
	}
}

// Load reads the snapshot and knowledge resource from disk. The
// knowledge service is nil when no knowledge file is given.
func (x *Data) Load(ctx context.Context) (*model.Snapshot, *knowledge.Service, error) {
	snapshot := &model.Snapshot{
		Version: model.NewSnapshotVersion(),
	}

	if err := readJSONFile(x.unitsPath, &snapshot.Units); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to load units")
	}
	if err := readJSONFile(x.skillsPath, &snapshot.Skills); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to load skills")
	}
	if x.edgesPath != "" {
		if err := readJSONFile(x.edgesPath, &snapshot.Edges); err != nil {
			return nil, nil, goerr.Wrap(err, "failed to load edges")
		}
	}

	var svc *knowledge.Service
	if x.knowledgePath != "" {
		data, err := os.ReadFile(x.knowledgePath)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to read knowledge resource", goerr.V("path", x.knowledgePath))
		}
		src, err := knowledge.ParseSource(data)
		if err != nil {
			return nil, nil, err
		}
		svc = knowledge.New(src)
	}

	logging.From(ctx).Info("Loaded snapshot",
		"version", snapshot.Version,
		"units", len(snapshot.Units),
		"skills", len(snapshot.Skills),
		"edges", len(snapshot.Edges),
		"knowledge", svc != nil,
	)

	return snapshot, svc, nil
}

// Configure loads the snapshot and wraps it in the in-memory repository
func (x *Data) Configure(ctx context.Context) (interfaces.Repository, *knowledge.Service, error) {
	snapshot, svc, err := x.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return memory.New(snapshot), svc, nil
}

func readJSONFile(path string, into any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read file", goerr.V("path", path))
	}
	if err := json.Unmarshal(data, into); err != nil {
		return goerr.Wrap(err, "failed to parse JSON", goerr.V("path", path))
	}
	return nil
}
