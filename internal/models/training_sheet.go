package models

import (
	"time"

	"github.com/muscleflow/muscleflow/internal/types"
)

// TrainingSheetWeek is the root of the weekly training plan aggregate. Its days
// are created and replaced together with it, never partially.
type TrainingSheetWeek struct {
	ID          uint64      `gorm:"primaryKey;autoIncrement"`
	Name        string      `gorm:"size:100;not null"`
	Description string      `gorm:"size:1024"`
	Level       types.Level `gorm:"size:32;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Days  []TrainingSheetDay `gorm:"foreignKey:TrainingSheetWeekID;constraint:OnDelete:CASCADE"`
	Users []User             `gorm:"many2many:training_sheet_week_user_links;joinForeignKey:training_sheet_week_id;joinReferences:user_id"`
}

// TableName overrides the table name for TrainingSheetWeek
func (TrainingSheetWeek) TableName() string {
	return "training_sheet_weeks"
}

// TrainingSheetDay is one scheduled day within a training sheet week.
type TrainingSheetDay struct {
	ID                  uint64          `gorm:"primaryKey;autoIncrement"`
	FocusArea           string          `gorm:"size:255"`
	TrainingSheetWeekID uint64          `gorm:"not null;index"`
	DayOfWeek           types.DayOfWeek `gorm:"size:16;not null"`

	Exercises []Exercise `gorm:"many2many:training_sheet_day_exercise_links;joinForeignKey:training_sheet_day_id;joinReferences:exercise_id"`
}

// TableName overrides the table name for TrainingSheetDay
func (TrainingSheetDay) TableName() string {
	return "training_sheet_days"
}

// TrainingSheetDayExerciseLink joins a day to its exercises. The exercise_order
// column is the 1-based position of the exercise within the day's list; the
// column is not named "order" because that is reserved in every supported
// dialect.
type TrainingSheetDayExerciseLink struct {
	TrainingSheetDayID uint64 `gorm:"primaryKey;autoIncrement:false"`
	ExerciseID         uint64 `gorm:"primaryKey;autoIncrement:false"`
	Order              int    `gorm:"column:exercise_order;not null;default:0"`
}

// TableName overrides the table name for TrainingSheetDayExerciseLink
func (TrainingSheetDayExerciseLink) TableName() string {
	return "training_sheet_day_exercise_links"
}

// TrainingSheetWeekUserLink assigns a training sheet week to a user.
type TrainingSheetWeekUserLink struct {
	TrainingSheetWeekID uint64 `gorm:"primaryKey;autoIncrement:false"`
	UserID              uint64 `gorm:"primaryKey;autoIncrement:false"`
}

// TableName overrides the table name for TrainingSheetWeekUserLink
func (TrainingSheetWeekUserLink) TableName() string {
	return "training_sheet_week_user_links"
}
