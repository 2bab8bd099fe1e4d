package models

import (
	"time"

	"gorm.io/datatypes"
)

// ExecutedDailyTraining is the log of one day of training actually performed.
type ExecutedDailyTraining struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement"`
	UserID        uint64         `gorm:"not null;index"`
	TrainingDate  datatypes.Date `gorm:"not null"`
	TotalDuration int            `gorm:"not null"` // minutes
	Notes         *string        `gorm:"size:1024"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Exercises []ExecutedExercise `gorm:"foreignKey:DailyTrainingID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for ExecutedDailyTraining
func (ExecutedDailyTraining) TableName() string {
	return "executed_daily_trainings"
}

// ExecutedExercise is one exercise performed within an executed daily training.
type ExecutedExercise struct {
	ID              uint64  `gorm:"primaryKey;autoIncrement"`
	DailyTrainingID uint64  `gorm:"not null;index"`
	ExerciseID      uint64  `gorm:"not null;index"`
	SetsDone        int     `gorm:"not null"`
	RepsDone        int     `gorm:"not null"`
	WeightUsed      float64 `gorm:"not null"`
}

// TableName overrides the table name for ExecutedExercise
func (ExecutedExercise) TableName() string {
	return "executed_exercises"
}
