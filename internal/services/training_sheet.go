package services

import (
	"errors"
	"strings"

	"github.com/muscleflow/muscleflow/internal/models"
	"github.com/muscleflow/muscleflow/internal/pagination"
	"github.com/muscleflow/muscleflow/internal/types"
	"gorm.io/gorm"
)

// TrainingSheetDayRequest is one day inside a week create/replace request.
type TrainingSheetDayRequest struct {
	FocusArea   string                 `json:"focus_area"`
	DayOfWeek   types.DayOfWeek        `json:"day_of_week"`
	ExerciseIDs types.FlexList[uint64] `json:"exercises_ids"`
}

// TrainingSheetWeekRequest creates or fully replaces a week aggregate.
type TrainingSheetWeekRequest struct {
	Name        string                                  `json:"name"`
	Description string                                  `json:"description"`
	Level       types.Level                             `json:"level"`
	Days        types.FlexList[TrainingSheetDayRequest] `json:"training_sheet_days"`
}

// TrainingSheetDayResponse carries a day with its exercise IDs in stored order.
type TrainingSheetDayResponse struct {
	FocusArea   string          `json:"focus_area"`
	DayOfWeek   types.DayOfWeek `json:"day_of_week"`
	ExerciseIDs []uint64        `json:"exercises_ids"`
}

// TrainingSheetWeekResponse is the week aggregate as clients consume it.
type TrainingSheetWeekResponse struct {
	ID          uint64                     `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Level       types.Level                `json:"level"`
	Days        []TrainingSheetDayResponse `json:"training_sheet_days"`
}

// TrainingSheetFilter narrows week listings.
type TrainingSheetFilter struct {
	Level    types.Level
	Keywords string
}

// TrainingSheetUsage ranks a week by how many users it is assigned to.
type TrainingSheetUsage struct {
	TrainingSheetWeek TrainingSheetWeekResponse `json:"training_sheet_week"`
	Count             int64                     `json:"count"`
}

// GetTrainingSheetWeek assembles the week aggregate: the week row, its days in
// storage order, and each day's exercise IDs ordered by their link position.
func GetTrainingSheetWeek(db *gorm.DB, id uint64) (*TrainingSheetWeekResponse, error) {
	var week models.TrainingSheetWeek
	if err := db.First(&week, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.NotFoundError{Resource: "training sheet", ID: id}
		}
		return nil, err
	}
	return buildWeekResponse(db, &week)
}

// ListTrainingSheetWeeks returns a page of week aggregates.
func ListTrainingSheetWeeks(db *gorm.DB, p pagination.Params) (*pagination.Page[TrainingSheetWeekResponse], error) {
	return pageWeeks(db.Model(&models.TrainingSheetWeek{}), db, p)
}

// FilterTrainingSheetWeeks returns a page of week aggregates matching the
// filter. Keyword search is a case-insensitive contains over name and
// description.
func FilterTrainingSheetWeeks(db *gorm.DB, f TrainingSheetFilter, p pagination.Params) (*pagination.Page[TrainingSheetWeekResponse], error) {
	query := db.Model(&models.TrainingSheetWeek{})
	if f.Level != "" {
		query = query.Where("level = ?", f.Level)
	}
	if f.Keywords != "" {
		kw := "%" + strings.ToLower(f.Keywords) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", kw, kw)
	}
	return pageWeeks(query, db, p)
}

// CountTrainingSheetWeeks returns the total number of weeks.
func CountTrainingSheetWeeks(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.TrainingSheetWeek{}).Count(&count).Error
	return count, err
}

// CreateTrainingSheetWeek validates every referenced exercise ID, then inserts
// the week, its days in request order, and a link row per exercise whose
// position is the exercise's 1-based index within its day. A missing reference
// aborts with no writes.
func CreateTrainingSheetWeek(db *gorm.DB, req *TrainingSheetWeekRequest) (uint64, error) {
	var weekID uint64

	err := db.Transaction(func(tx *gorm.DB) error {
		missing, err := MissingExerciseIDs(tx, collectExerciseIDs(req.Days.Slice()))
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return &types.UnresolvedReferenceError{Resource: "exercise", IDs: missing}
		}

		week := models.TrainingSheetWeek{
			Name:        req.Name,
			Description: req.Description,
			Level:       req.Level,
		}
		if err := tx.Create(&week).Error; err != nil {
			return wrapWriteError("create training sheet week", err)
		}

		if err := insertWeekDays(tx, week.ID, req.Days.Slice()); err != nil {
			return err
		}

		weekID = week.ID
		return nil
	})

	return weekID, err
}

// ReplaceTrainingSheetWeek is a full overwrite: the week scalars are updated,
// every existing day and its link rows are deleted, and the day list is
// recreated from the request. There is no partial-day update.
func ReplaceTrainingSheetWeek(db *gorm.DB, id uint64, req *TrainingSheetWeekRequest) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var week models.TrainingSheetWeek
		if err := tx.First(&week, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &types.NotFoundError{Resource: "training sheet", ID: id}
			}
			return err
		}

		missing, err := MissingExerciseIDs(tx, collectExerciseIDs(req.Days.Slice()))
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return &types.UnresolvedReferenceError{Resource: "exercise", IDs: missing}
		}

		updates := map[string]interface{}{
			"name":        req.Name,
			"description": req.Description,
			"level":       req.Level,
		}
		if err := tx.Model(&week).Updates(updates).Error; err != nil {
			return wrapWriteError("update training sheet week", err)
		}

		if err := deleteWeekDays(tx, id); err != nil {
			return err
		}

		return insertWeekDays(tx, id, req.Days.Slice())
	})
}

// DeleteTrainingSheetWeek removes the week, its days, their exercise links and
// its user assignments, children first. Referenced Exercise rows are untouched.
func DeleteTrainingSheetWeek(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var week models.TrainingSheetWeek
		if err := tx.First(&week, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &types.NotFoundError{Resource: "training sheet", ID: id}
			}
			return err
		}

		if err := deleteWeekDays(tx, id); err != nil {
			return err
		}
		if err := tx.Where("training_sheet_week_id = ?", id).
			Delete(&models.TrainingSheetWeekUserLink{}).Error; err != nil {
			return err
		}
		return tx.Delete(&week).Error
	})
}

// AssignUserToWeek links a training sheet week to a user. Assigning an already
// assigned pair is a no-op.
func AssignUserToWeek(db *gorm.DB, weekID, userID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := requireWeek(tx, weekID); err != nil {
			return err
		}
		ok, err := UserExists(tx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return &types.NotFoundError{Resource: "user", ID: userID}
		}

		var count int64
		if err := tx.Model(&models.TrainingSheetWeekUserLink{}).
			Where("training_sheet_week_id = ? AND user_id = ?", weekID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		link := models.TrainingSheetWeekUserLink{TrainingSheetWeekID: weekID, UserID: userID}
		return wrapWriteError("assign training sheet week", tx.Create(&link).Error)
	})
}

// UnassignUserFromWeek removes a week/user assignment.
func UnassignUserFromWeek(db *gorm.DB, weekID, userID uint64) error {
	result := db.Where("training_sheet_week_id = ? AND user_id = ?", weekID, userID).
		Delete(&models.TrainingSheetWeekUserLink{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &types.NotFoundError{Resource: "training sheet assignment"}
	}
	return nil
}

// ListUserTrainingSheets returns the week aggregates assigned to a user.
func ListUserTrainingSheets(db *gorm.DB, userID uint64) ([]TrainingSheetWeekResponse, error) {
	ok, err := UserExists(db, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &types.NotFoundError{Resource: "user", ID: userID}
	}

	var weeks []models.TrainingSheetWeek
	err = db.
		Joins("JOIN training_sheet_week_user_links l ON l.training_sheet_week_id = training_sheet_weeks.id").
		Where("l.user_id = ?", userID).
		Find(&weeks).Error
	if err != nil {
		return nil, err
	}

	responses := make([]TrainingSheetWeekResponse, 0, len(weeks))
	for i := range weeks {
		resp, err := buildWeekResponse(db, &weeks[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// MostUsedTrainingSheets ranks weeks by assigned user count, descending.
func MostUsedTrainingSheets(db *gorm.DB, limit int) ([]TrainingSheetUsage, error) {
	if limit < 1 {
		limit = 10
	}

	var rows []struct {
		TrainingSheetWeekID uint64
		AssignmentCount     int64
	}
	err := db.Model(&models.TrainingSheetWeekUserLink{}).
		Select("training_sheet_week_id, COUNT(*) AS assignment_count").
		Group("training_sheet_week_id").
		Order("assignment_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	usages := make([]TrainingSheetUsage, 0, len(rows))
	for _, row := range rows {
		resp, err := GetTrainingSheetWeek(db, row.TrainingSheetWeekID)
		if err != nil {
			return nil, err
		}
		usages = append(usages, TrainingSheetUsage{TrainingSheetWeek: *resp, Count: row.AssignmentCount})
	}
	return usages, nil
}

// pageWeeks pages over a filtered week query and projects each row into the
// aggregate response shape.
func pageWeeks(query, db *gorm.DB, p pagination.Params) (*pagination.Page[TrainingSheetWeekResponse], error) {
	page, err := pagination.Find[models.TrainingSheetWeek](query, p)
	if err != nil {
		return nil, err
	}

	responses := make([]TrainingSheetWeekResponse, 0, len(page.Items))
	for i := range page.Items {
		resp, err := buildWeekResponse(db, &page.Items[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return pagination.Wrap(responses, page.Total, p), nil
}

func buildWeekResponse(db *gorm.DB, week *models.TrainingSheetWeek) (*TrainingSheetWeekResponse, error) {
	var days []models.TrainingSheetDay
	if err := db.Where("training_sheet_week_id = ?", week.ID).Find(&days).Error; err != nil {
		return nil, err
	}

	dayResponses := make([]TrainingSheetDayResponse, 0, len(days))
	for _, day := range days {
		var exerciseIDs []uint64
		err := db.Model(&models.TrainingSheetDayExerciseLink{}).
			Where("training_sheet_day_id = ?", day.ID).
			Order("exercise_order ASC").
			Pluck("exercise_id", &exerciseIDs).Error
		if err != nil {
			return nil, err
		}
		if exerciseIDs == nil {
			exerciseIDs = make([]uint64, 0)
		}

		dayResponses = append(dayResponses, TrainingSheetDayResponse{
			FocusArea:   day.FocusArea,
			DayOfWeek:   day.DayOfWeek,
			ExerciseIDs: exerciseIDs,
		})
	}

	return &TrainingSheetWeekResponse{
		ID:          week.ID,
		Name:        week.Name,
		Description: week.Description,
		Level:       week.Level,
		Days:        dayResponses,
	}, nil
}

// insertWeekDays inserts day rows in request order, then one link row per
// exercise with its 1-based position within the day.
func insertWeekDays(tx *gorm.DB, weekID uint64, days []TrainingSheetDayRequest) error {
	for _, dayReq := range days {
		day := models.TrainingSheetDay{
			FocusArea:           dayReq.FocusArea,
			TrainingSheetWeekID: weekID,
			DayOfWeek:           dayReq.DayOfWeek,
		}
		if err := tx.Create(&day).Error; err != nil {
			return wrapWriteError("create training sheet day", err)
		}

		for i, exID := range dayReq.ExerciseIDs.Slice() {
			link := models.TrainingSheetDayExerciseLink{
				TrainingSheetDayID: day.ID,
				ExerciseID:         exID,
				Order:              i + 1,
			}
			if err := tx.Create(&link).Error; err != nil {
				return wrapWriteError("create day exercise link", err)
			}
		}
	}
	return nil
}

// deleteWeekDays removes the week's day rows and their exercise links,
// links first.
func deleteWeekDays(tx *gorm.DB, weekID uint64) error {
	dayIDs := tx.Model(&models.TrainingSheetDay{}).
		Select("id").
		Where("training_sheet_week_id = ?", weekID)
	if err := tx.Where("training_sheet_day_id IN (?)", dayIDs).
		Delete(&models.TrainingSheetDayExerciseLink{}).Error; err != nil {
		return err
	}
	return tx.Where("training_sheet_week_id = ?", weekID).
		Delete(&models.TrainingSheetDay{}).Error
}

func requireWeek(tx *gorm.DB, id uint64) error {
	var count int64
	if err := tx.Model(&models.TrainingSheetWeek{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &types.NotFoundError{Resource: "training sheet", ID: id}
	}
	return nil
}

func collectExerciseIDs(days []TrainingSheetDayRequest) []uint64 {
	var ids []uint64
	for _, day := range days {
		ids = append(ids, day.ExerciseIDs.Slice()...)
	}
	return ids
}
