package services

import (
	"errors"
	"fmt"

	"github.com/muscleflow/muscleflow/internal/models"
	"github.com/muscleflow/muscleflow/internal/pagination"
	"github.com/muscleflow/muscleflow/internal/types"
	"gorm.io/gorm"
)

// ExecutedExerciseRequest is one exercise performed within a daily training.
// The exercise ID accepts both a JSON number and a numeric string.
type ExecutedExerciseRequest struct {
	IDExercise types.FlexUint64 `json:"id_exercise"`
	SetsDone   int              `json:"sets_done"`
	RepsDone   int              `json:"reps_done"`
	WeightUsed float64          `json:"weight_used"`
}

// ExecutedDailyTrainingRequest creates or fully replaces a daily training log.
type ExecutedDailyTrainingRequest struct {
	UserID        uint64                                  `json:"user_id"`
	TrainingDate  string                                  `json:"training_date"`
	TotalDuration int                                     `json:"total_duration"`
	Notes         *string                                 `json:"notes,omitempty"`
	Exercises     types.FlexList[ExecutedExerciseRequest] `json:"executed_exercises"`
}

// ExecutedExerciseResponse mirrors the stored executed exercise row.
type ExecutedExerciseResponse struct {
	ID         uint64  `json:"id"`
	IDExercise uint64  `json:"id_exercise"`
	SetsDone   int     `json:"sets_done"`
	RepsDone   int     `json:"reps_done"`
	WeightUsed float64 `json:"weight_used"`
}

// ExecutedDailyTrainingResponse is the daily training aggregate.
type ExecutedDailyTrainingResponse struct {
	ID            uint64                     `json:"id"`
	UserID        uint64                     `json:"user_id"`
	TrainingDate  string                     `json:"training_date"`
	TotalDuration int                        `json:"total_duration"`
	Notes         *string                    `json:"notes,omitempty"`
	Exercises     []ExecutedExerciseResponse `json:"executed_exercises"`
}

// DailyTrainingFilter narrows daily training listings.
type DailyTrainingFilter struct {
	UserID       uint64
	TrainingDate string
}

// ExerciseExecutionCount ranks an exercise by how often it appears in executed
// daily trainings.
type ExerciseExecutionCount struct {
	Exercise models.Exercise `json:"exercise"`
	Count    int64           `json:"count"`
}

// GetExecutedDailyTraining returns the training with its executed exercises.
func GetExecutedDailyTraining(db *gorm.DB, id uint64) (*ExecutedDailyTrainingResponse, error) {
	var training models.ExecutedDailyTraining
	if err := db.Preload("Exercises").First(&training, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.NotFoundError{Resource: "daily training", ID: id}
		}
		return nil, err
	}
	return buildTrainingResponse(&training), nil
}

// ListExecutedDailyTrainings returns a page of daily training aggregates.
func ListExecutedDailyTrainings(db *gorm.DB, p pagination.Params) (*pagination.Page[ExecutedDailyTrainingResponse], error) {
	return pageTrainings(db.Model(&models.ExecutedDailyTraining{}), p)
}

// FilterExecutedDailyTrainings returns a page of trainings matching the filter.
// The date filter is an exact match on the strict YYYY-MM-DD form.
func FilterExecutedDailyTrainings(db *gorm.DB, f DailyTrainingFilter, p pagination.Params) (*pagination.Page[ExecutedDailyTrainingResponse], error) {
	query := db.Model(&models.ExecutedDailyTraining{})
	if f.UserID != 0 {
		query = query.Where("user_id = ?", f.UserID)
	}
	if f.TrainingDate != "" {
		date, err := types.ParseDate("training_date", f.TrainingDate)
		if err != nil {
			return nil, err
		}
		query = query.Where("training_date = ?", date)
	}
	return pageTrainings(query, p)
}

// CountExecutedDailyTrainings returns the total number of daily trainings.
func CountExecutedDailyTrainings(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.ExecutedDailyTraining{}).Count(&count).Error
	return count, err
}

// CreateExecutedDailyTraining validates the user and every referenced exercise,
// then inserts the training with its executed exercises in one transaction.
func CreateExecutedDailyTraining(db *gorm.DB, req *ExecutedDailyTrainingRequest) (uint64, error) {
	date, err := types.ParseDate("training_date", req.TrainingDate)
	if err != nil {
		return 0, err
	}
	if err := validateExecutedExercises(req.Exercises.Slice()); err != nil {
		return 0, err
	}

	var trainingID uint64
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := requireTrainingReferences(tx, req); err != nil {
			return err
		}

		training := models.ExecutedDailyTraining{
			UserID:        req.UserID,
			TrainingDate:  date,
			TotalDuration: req.TotalDuration,
			Notes:         req.Notes,
		}
		if err := tx.Create(&training).Error; err != nil {
			return wrapWriteError("create daily training", err)
		}

		if err := insertExecutedExercises(tx, training.ID, req.Exercises.Slice()); err != nil {
			return err
		}

		trainingID = training.ID
		return nil
	})

	return trainingID, err
}

// ReplaceExecutedDailyTraining is a full overwrite: the training scalars are
// updated and the executed exercise list is deleted and recreated from the
// request.
func ReplaceExecutedDailyTraining(db *gorm.DB, id uint64, req *ExecutedDailyTrainingRequest) error {
	date, err := types.ParseDate("training_date", req.TrainingDate)
	if err != nil {
		return err
	}
	if err := validateExecutedExercises(req.Exercises.Slice()); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var training models.ExecutedDailyTraining
		if err := tx.First(&training, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &types.NotFoundError{Resource: "daily training", ID: id}
			}
			return err
		}

		if err := requireTrainingReferences(tx, req); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"user_id":        req.UserID,
			"training_date":  date,
			"total_duration": req.TotalDuration,
			"notes":          req.Notes,
		}
		if err := tx.Model(&training).Updates(updates).Error; err != nil {
			return wrapWriteError("update daily training", err)
		}

		if err := tx.Where("daily_training_id = ?", id).
			Delete(&models.ExecutedExercise{}).Error; err != nil {
			return err
		}
		return insertExecutedExercises(tx, id, req.Exercises.Slice())
	})
}

// DeleteExecutedDailyTraining removes the training and its executed exercises,
// children first.
func DeleteExecutedDailyTraining(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var training models.ExecutedDailyTraining
		if err := tx.First(&training, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &types.NotFoundError{Resource: "daily training", ID: id}
			}
			return err
		}

		if err := tx.Where("daily_training_id = ?", id).
			Delete(&models.ExecutedExercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&training).Error
	})
}

// TopExecutedExercises ranks exercises by how many executed exercise rows
// reference them, descending.
func TopExecutedExercises(db *gorm.DB, limit int) ([]ExerciseExecutionCount, error) {
	if limit < 1 {
		limit = 10
	}

	var rows []struct {
		ExerciseID     uint64
		ExecutionCount int64
	}
	err := db.Model(&models.ExecutedExercise{}).
		Select("exercise_id, COUNT(*) AS execution_count").
		Group("exercise_id").
		Order("execution_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make([]ExerciseExecutionCount, 0, len(rows))
	for _, row := range rows {
		var exercise models.Exercise
		if err := db.First(&exercise, row.ExerciseID).Error; err != nil {
			return nil, err
		}
		counts = append(counts, ExerciseExecutionCount{Exercise: exercise, Count: row.ExecutionCount})
	}
	return counts, nil
}

func pageTrainings(query *gorm.DB, p pagination.Params) (*pagination.Page[ExecutedDailyTrainingResponse], error) {
	page, err := pagination.Find[models.ExecutedDailyTraining](query.Preload("Exercises"), p)
	if err != nil {
		return nil, err
	}

	responses := make([]ExecutedDailyTrainingResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, *buildTrainingResponse(&page.Items[i]))
	}
	return pagination.Wrap(responses, page.Total, p), nil
}

func buildTrainingResponse(training *models.ExecutedDailyTraining) *ExecutedDailyTrainingResponse {
	exercises := make([]ExecutedExerciseResponse, 0, len(training.Exercises))
	for _, ex := range training.Exercises {
		exercises = append(exercises, ExecutedExerciseResponse{
			ID:         ex.ID,
			IDExercise: ex.ExerciseID,
			SetsDone:   ex.SetsDone,
			RepsDone:   ex.RepsDone,
			WeightUsed: ex.WeightUsed,
		})
	}
	return &ExecutedDailyTrainingResponse{
		ID:            training.ID,
		UserID:        training.UserID,
		TrainingDate:  types.FormatDate(training.TrainingDate),
		TotalDuration: training.TotalDuration,
		Notes:         training.Notes,
		Exercises:     exercises,
	}
}

// validateExecutedExercises enforces sets_done >= 1, reps_done >= 1 and
// weight_used >= 0 before anything touches storage.
func validateExecutedExercises(exercises []ExecutedExerciseRequest) error {
	for _, ex := range exercises {
		if ex.SetsDone < 1 {
			return &types.InvalidFormatError{
				Field:    "sets_done",
				Value:    fmt.Sprintf("%d", ex.SetsDone),
				Expected: "integer >= 1",
			}
		}
		if ex.RepsDone < 1 {
			return &types.InvalidFormatError{
				Field:    "reps_done",
				Value:    fmt.Sprintf("%d", ex.RepsDone),
				Expected: "integer >= 1",
			}
		}
		if ex.WeightUsed < 0 {
			return &types.InvalidFormatError{
				Field:    "weight_used",
				Value:    fmt.Sprintf("%g", ex.WeightUsed),
				Expected: "number >= 0",
			}
		}
	}
	return nil
}

func requireTrainingReferences(tx *gorm.DB, req *ExecutedDailyTrainingRequest) error {
	ok, err := UserExists(tx, req.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return &types.NotFoundError{Resource: "user", ID: req.UserID}
	}

	ids := make([]uint64, 0, len(req.Exercises))
	for _, ex := range req.Exercises.Slice() {
		ids = append(ids, ex.IDExercise.Uint64())
	}
	missing, err := MissingExerciseIDs(tx, ids)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return &types.UnresolvedReferenceError{Resource: "exercise", IDs: missing}
	}
	return nil
}

func insertExecutedExercises(tx *gorm.DB, trainingID uint64, exercises []ExecutedExerciseRequest) error {
	for _, ex := range exercises {
		row := models.ExecutedExercise{
			DailyTrainingID: trainingID,
			ExerciseID:      ex.IDExercise.Uint64(),
			SetsDone:        ex.SetsDone,
			RepsDone:        ex.RepsDone,
			WeightUsed:      ex.WeightUsed,
		}
		if err := tx.Create(&row).Error; err != nil {
			return wrapWriteError("create executed exercise", err)
		}
	}
	return nil
}
