// ABOUTME: Startup loader for the pipeline artifact and feature snapshot
// ABOUTME: Loads both files concurrently; any failure prevents serving

package services

import (
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/pricewise/laptop-price-api/models"
)

// LoadArtifacts loads the fitted pipeline and the feature reference
// snapshot. Both loads must succeed before the server starts; a missing or
// corrupt artifact is unrecoverable.
func LoadArtifacts(pipelinePath, featuresPath string) (*Pipeline, *models.FeatureOptions, error) {
	var (
		pipeline *Pipeline
		options  *models.FeatureOptions
	)

	var g errgroup.Group
	g.Go(func() error {
		p, err := LoadPipeline(pipelinePath)
		if err != nil {
			return err
		}
		pipeline = p
		slog.Info("Pipeline artifact loaded", "path", pipelinePath, "version", p.Version)
		return nil
	})
	g.Go(func() error {
		opts, err := LoadFeatureOptions(featuresPath)
		if err != nil {
			return err
		}
		options = opts
		slog.Info("Feature snapshot loaded", "path", featuresPath, "companies", len(opts.Companies))
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return pipeline, options, nil
}
