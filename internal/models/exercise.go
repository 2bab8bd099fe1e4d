package models

import (
	"time"

	"github.com/muscleflow/muscleflow/internal/types"
)

// Exercise holds an exercise plus its recommended sets, reps and weight.
type Exercise struct {
	ID                uint64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string      `gorm:"size:255;not null" json:"name"`
	TargetMuscleGroup string      `gorm:"size:255;not null" json:"target_muscle_group"`
	Equipment         string      `gorm:"size:255" json:"equipment"`
	Level             types.Level `gorm:"size:32;not null" json:"level"`
	URL               string      `gorm:"size:512" json:"url"`
	Sets              int         `gorm:"not null" json:"sets"`
	Reps              int         `gorm:"not null" json:"reps"`
	Weight            float64     `gorm:"not null" json:"weight"`
	CreatedAt         time.Time   `json:"-"`
	UpdatedAt         time.Time   `json:"-"`
}

// TableName overrides the table name for Exercise
func (Exercise) TableName() string {
	return "exercises"
}
