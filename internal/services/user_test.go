package services_test

import (
	"errors"
	"testing"

	"github.com/muscleflow/muscleflow/internal/models"
	"github.com/muscleflow/muscleflow/internal/pagination"
	"github.com/muscleflow/muscleflow/internal/services"
	"github.com/muscleflow/muscleflow/internal/types"
)

func TestCreateAndUpdateUser(t *testing.T) {
	db := setupTestDB(t)

	id, err := services.CreateUser(db, &services.UserRequest{Name: "Alice", Objective: "strength"})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	user, err := services.GetUser(db, id)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if user.Name != "Alice" || user.Objective != "strength" {
		t.Errorf("User round trip mismatch: %+v", user)
	}
	if user.RegistrationDate == "" {
		t.Error("Expected registration_date to be set server-side")
	}

	if err := services.UpdateUser(db, id, &services.UserRequest{Name: "Alice B", Objective: "endurance"}); err != nil {
		t.Fatalf("Failed to update user: %v", err)
	}
	user, err = services.GetUser(db, id)
	if err != nil {
		t.Fatalf("Failed to get user after update: %v", err)
	}
	if user.Name != "Alice B" || user.Objective != "endurance" {
		t.Errorf("Update not applied: %+v", user)
	}
}

func TestGetUserNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.GetUser(db, 42)
	var notFound *types.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected NotFoundError, got %T: %v", err, err)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db, "Bob")
	createTestExercise(t, db, 1)

	if _, err := services.CreatePhysicalRecord(db, &services.PhysicalRecordRequest{
		UserID: userID, Weight: 80, Height: 1.8,
	}); err != nil {
		t.Fatalf("Failed to create physical record: %v", err)
	}
	if _, err := services.CreateExecutedDailyTraining(db, trainingRequest(userID,
		services.ExecutedExerciseRequest{IDExercise: 1, SetsDone: 3, RepsDone: 10, WeightUsed: 20},
	)); err != nil {
		t.Fatalf("Failed to create daily training: %v", err)
	}
	weekID, err := services.CreateTrainingSheetWeek(db, weekRequest(services.TrainingSheetDayRequest{
		FocusArea: "Chest", DayOfWeek: types.Monday, ExerciseIDs: types.FlexList[uint64]{1},
	}))
	if err != nil {
		t.Fatalf("Failed to create training sheet: %v", err)
	}
	if err := services.AssignUserToWeek(db, weekID, userID); err != nil {
		t.Fatalf("Failed to assign training sheet: %v", err)
	}

	if err := services.DeleteUser(db, userID); err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}

	var records, trainings, executed, links, weeks, exercises int64
	db.Model(&models.PhysicalRecord{}).Count(&records)
	db.Model(&models.ExecutedDailyTraining{}).Count(&trainings)
	db.Model(&models.ExecutedExercise{}).Count(&executed)
	db.Model(&models.TrainingSheetWeekUserLink{}).Count(&links)
	db.Model(&models.TrainingSheetWeek{}).Count(&weeks)
	db.Model(&models.Exercise{}).Count(&exercises)

	if records != 0 || trainings != 0 || executed != 0 || links != 0 {
		t.Errorf("User data survived delete: records=%d trainings=%d executed=%d links=%d",
			records, trainings, executed, links)
	}
	if weeks != 1 || exercises != 1 {
		t.Errorf("Shared data should survive: weeks=%d exercises=%d", weeks, exercises)
	}
}

func TestFilterUsersObjectiveCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)

	for _, u := range []services.UserRequest{
		{Name: "Alice", Objective: "Weight Loss"},
		{Name: "Bob", Objective: "weight loss"},
		{Name: "Carol", Objective: "strength"},
	} {
		req := u
		if _, err := services.CreateUser(db, &req); err != nil {
			t.Fatalf("Failed to create user %s: %v", u.Name, err)
		}
	}

	page, err := services.FilterUsers(db,
		services.UserFilter{Objective: "WEIGHT LOSS"},
		pagination.Normalize(1, 10))
	if err != nil {
		t.Fatalf("Failed to filter users: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("Expected 2 users, got %d", page.Total)
	}
}

func TestCreatePhysicalRecordMissingUser(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.CreatePhysicalRecord(db, &services.PhysicalRecordRequest{
		UserID: 99, Weight: 75, Height: 1.7,
	})
	var notFound *types.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected NotFoundError, got %T: %v", err, err)
	}

	var records int64
	db.Model(&models.PhysicalRecord{}).Count(&records)
	if records != 0 {
		t.Errorf("Expected no records written, got %d", records)
	}
}

func TestPhysicalRecordLifecycle(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db, "Dana")

	bodyFat := 18.5
	id, err := services.CreatePhysicalRecord(db, &services.PhysicalRecordRequest{
		UserID: userID, Weight: 82, Height: 1.85, BodyFatPercentage: &bodyFat,
	})
	if err != nil {
		t.Fatalf("Failed to create record: %v", err)
	}

	record, err := services.GetPhysicalRecord(db, id)
	if err != nil {
		t.Fatalf("Failed to get record: %v", err)
	}
	if record.Weight != 82 || record.BodyFatPercentage == nil || *record.BodyFatPercentage != 18.5 {
		t.Errorf("Record round trip mismatch: %+v", record)
	}
	if record.RecordedAt == "" {
		t.Error("Expected recorded_at to be set server-side")
	}

	if err := services.UpdatePhysicalRecord(db, id, &services.PhysicalRecordRequest{
		UserID: userID, Weight: 80, Height: 1.85,
	}); err != nil {
		t.Fatalf("Failed to update record: %v", err)
	}
	record, _ = services.GetPhysicalRecord(db, id)
	if record.Weight != 80 || record.BodyFatPercentage != nil {
		t.Errorf("Update not applied: %+v", record)
	}

	page, err := services.ListUserPhysicalRecords(db, userID, pagination.Normalize(1, 10))
	if err != nil {
		t.Fatalf("Failed to list user records: %v", err)
	}
	if page.Total != 1 {
		t.Errorf("Expected 1 record, got %d", page.Total)
	}

	if err := services.DeletePhysicalRecord(db, id); err != nil {
		t.Fatalf("Failed to delete record: %v", err)
	}
	if err := services.DeletePhysicalRecord(db, id); err == nil {
		t.Error("Expected NotFoundError on second delete")
	}
}

func TestDeleteExerciseStillReferenced(t *testing.T) {
	db := setupTestDB(t)
	createTestExercise(t, db, 1)

	if _, err := services.CreateTrainingSheetWeek(db, weekRequest(services.TrainingSheetDayRequest{
		FocusArea: "Chest", DayOfWeek: types.Monday, ExerciseIDs: types.FlexList[uint64]{1},
	})); err != nil {
		t.Fatalf("Failed to create training sheet: %v", err)
	}

	err := services.DeleteExercise(db, 1)
	var refErr *types.ReferentialIntegrityError
	if !errors.As(err, &refErr) {
		t.Fatalf("Expected ReferentialIntegrityError, got %T: %v", err, err)
	}

	var exercises int64
	db.Model(&models.Exercise{}).Count(&exercises)
	if exercises != 1 {
		t.Errorf("Exercise should survive failed delete, got %d rows", exercises)
	}
}

func TestFilterExercisesEquipmentCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	createTestExercise(t, db, 1) // Equipment: "Dumbbell"

	page, err := services.FilterExercises(db,
		services.ExerciseFilter{Equipment: "dumbbell"},
		pagination.Normalize(1, 10))
	if err != nil {
		t.Fatalf("Failed to filter exercises: %v", err)
	}
	if page.Total != 1 {
		t.Errorf("Expected 1 exercise, got %d", page.Total)
	}
}
