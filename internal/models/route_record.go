package models

import (
	"sort"
	"time"
)

// RouteRecord is the database row for a Route
type RouteRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Key      string `gorm:"type:varchar(32);uniqueIndex" json:"key"`
	Position int    `json:"position"`
	Name     string `gorm:"type:varchar(255)" json:"name"`
	Summary  string `gorm:"type:text" json:"summary"`
	Icon     string `gorm:"type:varchar(32)" json:"icon"`
	Color    string `gorm:"type:varchar(16)" json:"color"`

	// Relationships
	Steps []StepRecord `gorm:"foreignKey:RouteRecordID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`
}

// TableName pins the table name
func (RouteRecord) TableName() string {
	return "career_routes"
}

// StepRecord is the database row for a Step
type StepRecord struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	RouteRecordID uint      `gorm:"index" json:"route_id"`

	Key          string   `gorm:"type:varchar(64)" json:"key"`
	Position     int      `json:"position"`
	Title        string   `gorm:"type:varchar(255)" json:"title"`
	Level        string   `gorm:"type:varchar(255)" json:"level"`
	Description  string   `gorm:"type:text" json:"description"`
	Requirements []string `gorm:"serializer:json" json:"requirements"`
	Notes        string   `gorm:"type:text" json:"notes"`
	NextStepKey  *string  `gorm:"type:varchar(64)" json:"next_step_key"`
	AltNext      []string `gorm:"serializer:json" json:"alt_next"`

	// Relationships
	Trainings []TrainingRecord `gorm:"foreignKey:StepRecordID;constraint:OnDelete:CASCADE" json:"trainings,omitempty"`
}

// TableName pins the table name
func (StepRecord) TableName() string {
	return "career_steps"
}

// TrainingRecord is the database row for a Training
type TrainingRecord struct {
	ID           uint `gorm:"primarykey" json:"id"`
	StepRecordID uint `gorm:"index" json:"step_id"`

	Position int    `json:"position"`
	Label    string `gorm:"type:varchar(255)" json:"label"`
	Provider string `gorm:"type:varchar(255)" json:"provider"`
	Link     string `gorm:"type:text" json:"link"`
}

// TableName pins the table name
func (TrainingRecord) TableName() string {
	return "career_trainings"
}

// NewRouteRecord converts a Route into its database shape, keeping step order in Position
func NewRouteRecord(r Route, position int) RouteRecord {
	rec := RouteRecord{
		Key:      string(r.ID),
		Position: position,
		Name:     r.Name,
		Summary:  r.Summary,
		Color:    r.Meta.Color,
	}
	if r.Meta.Icon != IconNone {
		rec.Icon = r.Meta.Icon.String()
	}

	for i, s := range r.Steps {
		step := StepRecord{
			Key:          s.ID,
			Position:     i,
			Title:        s.Title,
			Level:        s.Level,
			Description:  s.Description,
			Requirements: s.Requirements,
			Notes:        s.Notes,
			AltNext:      s.AltNext,
		}
		if !s.IsTerminal() {
			next := s.NextStepID
			step.NextStepKey = &next
		}
		for j, t := range s.RecommendedTraining {
			step.Trainings = append(step.Trainings, TrainingRecord{
				Position: j,
				Label:    t.Label,
				Provider: t.Provider,
				Link:     t.Link,
			})
		}
		rec.Steps = append(rec.Steps, step)
	}
	return rec
}

// ToRoute converts the record back into a Route, ordering steps and trainings by Position
func (rec RouteRecord) ToRoute() Route {
	icon, _ := ParseIcon(rec.Icon)
	route := Route{
		ID:      RouteID(rec.Key),
		Name:    rec.Name,
		Summary: rec.Summary,
		Meta:    RouteMeta{Icon: icon, Color: rec.Color},
	}

	steps := append([]StepRecord(nil), rec.Steps...)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Position < steps[j].Position })

	for _, s := range steps {
		step := Step{
			ID:           s.Key,
			Title:        s.Title,
			Level:        s.Level,
			Description:  s.Description,
			Requirements: s.Requirements,
			Notes:        s.Notes,
			AltNext:      s.AltNext,
		}
		if s.NextStepKey != nil {
			step.NextStepID = *s.NextStepKey
		}

		trainings := append([]TrainingRecord(nil), s.Trainings...)
		sort.SliceStable(trainings, func(i, j int) bool { return trainings[i].Position < trainings[j].Position })
		for _, t := range trainings {
			step.RecommendedTraining = append(step.RecommendedTraining, Training{
				Label:    t.Label,
				Provider: t.Provider,
				Link:     t.Link,
			})
		}
		route.Steps = append(route.Steps, step)
	}
	return route
}
