package models

import (
	"time"

	"gorm.io/datatypes"
)

// User represents a registered gym member
type User struct {
	ID               uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Objective        string         `gorm:"size:255" json:"objective"`
	RegistrationDate datatypes.Date `gorm:"not null" json:"-"`
	CreatedAt        time.Time      `json:"-"`
	UpdatedAt        time.Time      `json:"-"`

	PhysicalRecords    []PhysicalRecord    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	TrainingSheetWeeks []TrainingSheetWeek `gorm:"many2many:training_sheet_week_user_links;joinForeignKey:user_id;joinReferences:training_sheet_week_id" json:"-"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// PhysicalRecord represents a body measurement snapshot for a user
type PhysicalRecord struct {
	ID                   uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID               uint64         `gorm:"not null;index" json:"user_id"`
	Weight               float64        `gorm:"not null" json:"weight"`
	Height               float64        `gorm:"not null" json:"height"`
	BodyFatPercentage    *float64       `json:"body_fat_percentage,omitempty"`
	MuscleMassPercentage *float64       `json:"muscle_mass_percentage,omitempty"`
	RecordedAt           datatypes.Date `gorm:"not null" json:"-"`
	CreatedAt            time.Time      `json:"-"`
	UpdatedAt            time.Time      `json:"-"`
}

// TableName overrides the table name for PhysicalRecord
func (PhysicalRecord) TableName() string {
	return "physical_records"
}
