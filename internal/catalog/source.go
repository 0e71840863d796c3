package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"groeipaden_app/internal/models"
)

var (
	// ErrEmptyDataset is returned when a dataset decodes but holds no routes
	ErrEmptyDataset = errors.New("dataset contains no routes")
	// ErrUnsupportedFormat is returned for dataset files that are neither JSON nor YAML
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// Source produces the raw route list a Catalog is built from
type Source interface {
	Load(ctx context.Context) ([]models.Route, error)
	Name() string
}

// Load reads src once and builds a Catalog from it. Load never fails: a
// missing or malformed dataset is logged and an empty catalog is returned.
func Load(ctx context.Context, src Source, logger *zap.Logger) *Catalog {
	routes, err := src.Load(ctx)
	if err != nil {
		logger.Error("failed to load routes dataset, serving an empty catalog",
			zap.String("source", src.Name()), zap.Error(err))
		return Empty()
	}

	c, issues := New(routes)
	for _, issue := range issues {
		logger.Warn("dataset issue",
			zap.String("route", issue.RouteID),
			zap.String("step", issue.StepID),
			zap.String("problem", issue.Message))
	}

	logger.Info("routes dataset loaded",
		zap.String("source", src.Name()),
		zap.Int("routes", c.Len()),
		zap.Int("issues", len(issues)))
	return c
}
