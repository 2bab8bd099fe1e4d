package services

import (
	"errors"
	"time"

	"github.com/muscleflow/muscleflow/internal/models"
	"github.com/muscleflow/muscleflow/internal/pagination"
	"github.com/muscleflow/muscleflow/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PhysicalRecordRequest creates or updates a body measurement snapshot.
type PhysicalRecordRequest struct {
	UserID               uint64   `json:"user_id"`
	Weight               float64  `json:"weight"`
	Height               float64  `json:"height"`
	BodyFatPercentage    *float64 `json:"body_fat_percentage,omitempty"`
	MuscleMassPercentage *float64 `json:"muscle_mass_percentage,omitempty"`
}

// PhysicalRecordResponse is a snapshot as clients consume it.
type PhysicalRecordResponse struct {
	ID                   uint64   `json:"id"`
	UserID               uint64   `json:"user_id"`
	Weight               float64  `json:"weight"`
	Height               float64  `json:"height"`
	BodyFatPercentage    *float64 `json:"body_fat_percentage,omitempty"`
	MuscleMassPercentage *float64 `json:"muscle_mass_percentage,omitempty"`
	RecordedAt           string   `json:"recorded_at"`
}

// GetPhysicalRecord returns one record by id.
func GetPhysicalRecord(db *gorm.DB, id uint64) (*PhysicalRecordResponse, error) {
	var record models.PhysicalRecord
	if err := db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.NotFoundError{Resource: "physical record", ID: id}
		}
		return nil, err
	}
	return buildRecordResponse(&record), nil
}

// ListPhysicalRecords returns a page of records.
func ListPhysicalRecords(db *gorm.DB, p pagination.Params) (*pagination.Page[PhysicalRecordResponse], error) {
	return pageRecords(db.Model(&models.PhysicalRecord{}), p)
}

// ListUserPhysicalRecords returns a page of the user's records.
func ListUserPhysicalRecords(db *gorm.DB, userID uint64, p pagination.Params) (*pagination.Page[PhysicalRecordResponse], error) {
	ok, err := UserExists(db, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &types.NotFoundError{Resource: "user", ID: userID}
	}
	return pageRecords(db.Model(&models.PhysicalRecord{}).Where("user_id = ?", userID), p)
}

// CountPhysicalRecords returns the total number of records.
func CountPhysicalRecords(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.PhysicalRecord{}).Count(&count).Error
	return count, err
}

// CreatePhysicalRecord inserts a record after verifying the user exists. The
// recorded_at date is set server-side to the current day.
func CreatePhysicalRecord(db *gorm.DB, req *PhysicalRecordRequest) (uint64, error) {
	var recordID uint64
	err := db.Transaction(func(tx *gorm.DB) error {
		ok, err := UserExists(tx, req.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return &types.NotFoundError{Resource: "user", ID: req.UserID}
		}

		record := models.PhysicalRecord{
			UserID:               req.UserID,
			Weight:               req.Weight,
			Height:               req.Height,
			BodyFatPercentage:    req.BodyFatPercentage,
			MuscleMassPercentage: req.MuscleMassPercentage,
			RecordedAt:           datatypes.Date(time.Now()),
		}
		if err := tx.Create(&record).Error; err != nil {
			return wrapWriteError("create physical record", err)
		}
		recordID = record.ID
		return nil
	})
	return recordID, err
}

// UpdatePhysicalRecord overwrites the record's measurements. The recorded_at
// date and owning user are immutable.
func UpdatePhysicalRecord(db *gorm.DB, id uint64, req *PhysicalRecordRequest) error {
	var record models.PhysicalRecord
	if err := db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.NotFoundError{Resource: "physical record", ID: id}
		}
		return err
	}

	updates := map[string]interface{}{
		"weight":                 req.Weight,
		"height":                 req.Height,
		"body_fat_percentage":    req.BodyFatPercentage,
		"muscle_mass_percentage": req.MuscleMassPercentage,
	}
	return wrapWriteError("update physical record", db.Model(&record).Updates(updates).Error)
}

// DeletePhysicalRecord removes one record.
func DeletePhysicalRecord(db *gorm.DB, id uint64) error {
	result := db.Delete(&models.PhysicalRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &types.NotFoundError{Resource: "physical record", ID: id}
	}
	return nil
}

func pageRecords(query *gorm.DB, p pagination.Params) (*pagination.Page[PhysicalRecordResponse], error) {
	page, err := pagination.Find[models.PhysicalRecord](query, p)
	if err != nil {
		return nil, err
	}

	responses := make([]PhysicalRecordResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, *buildRecordResponse(&page.Items[i]))
	}
	return pagination.Wrap(responses, page.Total, p), nil
}

func buildRecordResponse(record *models.PhysicalRecord) *PhysicalRecordResponse {
	return &PhysicalRecordResponse{
		ID:                   record.ID,
		UserID:               record.UserID,
		Weight:               record.Weight,
		Height:               record.Height,
		BodyFatPercentage:    record.BodyFatPercentage,
		MuscleMassPercentage: record.MuscleMassPercentage,
		RecordedAt:           types.FormatDate(record.RecordedAt),
	}
}
