package fightsongs

import (
	"context"
	"fmt"

	"github.com/mwiater/fightsongs/internal/aggregate"
	"github.com/mwiater/fightsongs/internal/appconfig"
	"github.com/mwiater/fightsongs/internal/charts"
	"github.com/mwiater/fightsongs/internal/dataset"
	"github.com/mwiater/fightsongs/internal/logging"
)

// loaded is everything derived once from the dataset.
type loaded struct {
	Dataset     dataset.Dataset
	Aggregates  aggregate.Aggregates
	Descriptors []charts.Descriptor
}

// loadDescriptors reads the configured CSV, logs flagged cells and builds
// the chart sequence.
func loadDescriptors(ctx context.Context, cfg *appconfig.Config) (loaded, error) {
	path := cfg.DataFilePath()
	ds, err := dataset.Load(ctx, path, dataset.Options{StrictNumbers: cfg.StrictNumbers})
	if err != nil {
		return loaded{}, err
	}

	issues := make([]fmt.Stringer, len(ds.Issues))
	for i, issue := range ds.Issues {
		issues[i] = issue
	}
	logging.LogIssues(path, issues)
	logging.LogEvent("[DATA] loaded %d rows from %s (dropped=%d flagged=%d)", len(ds.Rows), path, ds.Dropped, len(ds.Issues))

	agg := aggregate.Build(ds.Rows)
	descs, err := charts.Build(ds.Rows, agg)
	if err != nil {
		return loaded{}, fmt.Errorf("build charts from %s: %w", path, err)
	}
	return loaded{Dataset: ds, Aggregates: agg, Descriptors: descs}, nil
}
