package services

import (
	"errors"
	"strings"
	"time"

	"github.com/muscleflow/muscleflow/internal/models"
	"github.com/muscleflow/muscleflow/internal/pagination"
	"github.com/muscleflow/muscleflow/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserRequest creates or updates a user.
type UserRequest struct {
	Name      string `json:"name"`
	Objective string `json:"objective"`
}

// UserResponse is a user as clients consume it.
type UserResponse struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	Objective        string `json:"objective"`
	RegistrationDate string `json:"registration_date"`
}

// UserFilter narrows user listings.
type UserFilter struct {
	Objective string
	Keywords  string
}

// GetUser returns one user by id.
func GetUser(db *gorm.DB, id uint64) (*UserResponse, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.NotFoundError{Resource: "user", ID: id}
		}
		return nil, err
	}
	return buildUserResponse(&user), nil
}

// ListUsers returns a page of users.
func ListUsers(db *gorm.DB, p pagination.Params) (*pagination.Page[UserResponse], error) {
	return pageUsers(db.Model(&models.User{}), p)
}

// FilterUsers returns a page of users matching the filter. Objective is a
// case-insensitive equality match, keywords a case-insensitive contains over
// name and objective.
func FilterUsers(db *gorm.DB, f UserFilter, p pagination.Params) (*pagination.Page[UserResponse], error) {
	query := db.Model(&models.User{})
	if f.Objective != "" {
		query = query.Where("LOWER(objective) = LOWER(?)", f.Objective)
	}
	if f.Keywords != "" {
		kw := "%" + strings.ToLower(f.Keywords) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(objective) LIKE ?", kw, kw)
	}
	return pageUsers(query, p)
}

// CountUsers returns the total number of users.
func CountUsers(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// CreateUser inserts a user. The registration date is set server-side to the
// current day.
func CreateUser(db *gorm.DB, req *UserRequest) (uint64, error) {
	user := models.User{
		Name:             req.Name,
		Objective:        req.Objective,
		RegistrationDate: datatypes.Date(time.Now()),
	}
	if err := db.Create(&user).Error; err != nil {
		return 0, wrapWriteError("create user", err)
	}
	return user.ID, nil
}

// UpdateUser overwrites the user's mutable fields. The registration date is
// immutable.
func UpdateUser(db *gorm.DB, id uint64, req *UserRequest) error {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.NotFoundError{Resource: "user", ID: id}
		}
		return err
	}

	updates := map[string]interface{}{
		"name":      req.Name,
		"objective": req.Objective,
	}
	return wrapWriteError("update user", db.Model(&user).Updates(updates).Error)
}

// DeleteUser removes the user and everything hanging off it: executed
// exercises, daily trainings, physical records and training sheet assignments.
// Training sheet weeks themselves are shared and stay.
func DeleteUser(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &types.NotFoundError{Resource: "user", ID: id}
			}
			return err
		}

		trainingIDs := tx.Model(&models.ExecutedDailyTraining{}).
			Select("id").
			Where("user_id = ?", id)
		if err := tx.Where("daily_training_id IN (?)", trainingIDs).
			Delete(&models.ExecutedExercise{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).
			Delete(&models.ExecutedDailyTraining{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).
			Delete(&models.PhysicalRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).
			Delete(&models.TrainingSheetWeekUserLink{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

func pageUsers(query *gorm.DB, p pagination.Params) (*pagination.Page[UserResponse], error) {
	page, err := pagination.Find[models.User](query, p)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, *buildUserResponse(&page.Items[i]))
	}
	return pagination.Wrap(responses, page.Total, p), nil
}

func buildUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:               user.ID,
		Name:             user.Name,
		Objective:        user.Objective,
		RegistrationDate: types.FormatDate(user.RegistrationDate),
	}
}
