package services

import (
	"errors"
	"strings"

	"github.com/muscleflow/muscleflow/internal/models"
	"github.com/muscleflow/muscleflow/internal/pagination"
	"github.com/muscleflow/muscleflow/internal/types"
	"gorm.io/gorm"
)

// ExerciseRequest creates or updates an exercise.
type ExerciseRequest struct {
	Name              string      `json:"name"`
	TargetMuscleGroup string      `json:"target_muscle_group"`
	Equipment         string      `json:"equipment"`
	Level             types.Level `json:"level"`
	URL               string      `json:"url"`
	Sets              int         `json:"sets"`
	Reps              int         `json:"reps"`
	Weight            float64     `json:"weight"`
}

// ExerciseFilter narrows exercise listings.
type ExerciseFilter struct {
	MuscleGroup string
	Equipment   string
	Level       types.Level
	Keywords    string
}

// GetExercise returns one exercise by id.
func GetExercise(db *gorm.DB, id uint64) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := db.First(&exercise, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.NotFoundError{Resource: "exercise", ID: id}
		}
		return nil, err
	}
	return &exercise, nil
}

// ListExercises returns a page of exercises.
func ListExercises(db *gorm.DB, p pagination.Params) (*pagination.Page[models.Exercise], error) {
	return pagination.Find[models.Exercise](db.Model(&models.Exercise{}), p)
}

// FilterExercises returns a page of exercises matching the filter. Muscle group
// and equipment are case-insensitive equality matches, keywords a
// case-insensitive contains over the name.
func FilterExercises(db *gorm.DB, f ExerciseFilter, p pagination.Params) (*pagination.Page[models.Exercise], error) {
	query := db.Model(&models.Exercise{})
	if f.MuscleGroup != "" {
		query = query.Where("LOWER(target_muscle_group) = LOWER(?)", f.MuscleGroup)
	}
	if f.Equipment != "" {
		query = query.Where("LOWER(equipment) = LOWER(?)", f.Equipment)
	}
	if f.Level != "" {
		query = query.Where("level = ?", f.Level)
	}
	if f.Keywords != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Keywords)+"%")
	}
	return pagination.Find[models.Exercise](query, p)
}

// CountExercises returns the total number of exercises.
func CountExercises(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Exercise{}).Count(&count).Error
	return count, err
}

// CreateExercise inserts an exercise.
func CreateExercise(db *gorm.DB, req *ExerciseRequest) (uint64, error) {
	exercise := models.Exercise{
		Name:              req.Name,
		TargetMuscleGroup: req.TargetMuscleGroup,
		Equipment:         req.Equipment,
		Level:             req.Level,
		URL:               req.URL,
		Sets:              req.Sets,
		Reps:              req.Reps,
		Weight:            req.Weight,
	}
	if err := db.Create(&exercise).Error; err != nil {
		return 0, wrapWriteError("create exercise", err)
	}
	return exercise.ID, nil
}

// UpdateExercise overwrites the exercise's fields.
func UpdateExercise(db *gorm.DB, id uint64, req *ExerciseRequest) error {
	var exercise models.Exercise
	if err := db.First(&exercise, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.NotFoundError{Resource: "exercise", ID: id}
		}
		return err
	}

	updates := map[string]interface{}{
		"name":                req.Name,
		"target_muscle_group": req.TargetMuscleGroup,
		"equipment":           req.Equipment,
		"level":               req.Level,
		"url":                 req.URL,
		"sets":                req.Sets,
		"reps":                req.Reps,
		"weight":              req.Weight,
	}
	return wrapWriteError("update exercise", db.Model(&exercise).Updates(updates).Error)
}

// DeleteExercise removes an exercise. An exercise still referenced by a
// training sheet day or an executed training cannot be deleted.
func DeleteExercise(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var exercise models.Exercise
		if err := tx.First(&exercise, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &types.NotFoundError{Resource: "exercise", ID: id}
			}
			return err
		}

		var linkCount int64
		if err := tx.Model(&models.TrainingSheetDayExerciseLink{}).
			Where("exercise_id = ?", id).Count(&linkCount).Error; err != nil {
			return err
		}
		if linkCount > 0 {
			return &types.ReferentialIntegrityError{
				Op:  "delete exercise",
				Err: errors.New("exercise is referenced by a training sheet day"),
			}
		}

		var execCount int64
		if err := tx.Model(&models.ExecutedExercise{}).
			Where("exercise_id = ?", id).Count(&execCount).Error; err != nil {
			return err
		}
		if execCount > 0 {
			return &types.ReferentialIntegrityError{
				Op:  "delete exercise",
				Err: errors.New("exercise is referenced by an executed training"),
			}
		}

		return tx.Delete(&exercise).Error
	})
}
