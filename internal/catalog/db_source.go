package catalog

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"groeipaden_app/internal/models"
)

// DBSource reads routes from the career_* tables
type DBSource struct {
	DB *gorm.DB
}

func (s DBSource) Name() string { return "database" }

func (s DBSource) Load(ctx context.Context) ([]models.Route, error) {
	var records []models.RouteRecord
	err := s.DB.WithContext(ctx).
		Preload("Steps.Trainings").
		Order("position").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("query routes: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	routes := make([]models.Route, 0, len(records))
	for _, rec := range records {
		routes = append(routes, rec.ToRoute())
	}
	return routes, nil
}

// Seed replaces the stored dataset with routes in a single transaction
func Seed(ctx context.Context, db *gorm.DB, routes []models.Route) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.TrainingRecord{}).Error; err != nil {
			return fmt.Errorf("clear trainings: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.StepRecord{}).Error; err != nil {
			return fmt.Errorf("clear steps: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.RouteRecord{}).Error; err != nil {
			return fmt.Errorf("clear routes: %w", err)
		}

		for i, r := range routes {
			rec := models.NewRouteRecord(r, i)
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("insert route %q: %w", r.ID, err)
			}
		}
		return nil
	})
}
