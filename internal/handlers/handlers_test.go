package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/muscleflow/muscleflow/internal/database"
	"github.com/muscleflow/muscleflow/internal/handlers"
	"github.com/muscleflow/muscleflow/internal/models"
	"github.com/muscleflow/muscleflow/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// setupApp wires every handler route the way cmd/server does
func setupApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	zlog := zap.NewNop()

	userHandler := &handlers.UserHandler{DB: db, Log: zlog}
	exerciseHandler := &handlers.ExerciseHandler{DB: db, Log: zlog}
	sheetHandler := &handlers.TrainingSheetHandler{DB: db, Log: zlog}
	trainingHandler := &handlers.DailyTrainingHandler{DB: db, Log: zlog}

	api := app.Group("/api")
	api.Get("/users/:id", userHandler.GetUser)
	api.Post("/users", userHandler.CreateUser)
	api.Get("/exercises/search", exerciseHandler.SearchExercises)
	api.Post("/exercises", exerciseHandler.CreateExercise)
	api.Get("/training_sheets/:id", sheetHandler.GetTrainingSheet)
	api.Post("/training_sheets", sheetHandler.CreateTrainingSheet)
	api.Post("/daily_trainings", trainingHandler.CreateDailyTraining)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (map[string]interface{}, int) {
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return result, resp.StatusCode
}

func seedExercise(t *testing.T, db *gorm.DB, id uint64, equipment string) {
	exercise := models.Exercise{
		ID:                id,
		Name:              "Bench Press",
		TargetMuscleGroup: "Chest",
		Equipment:         equipment,
		Level:             types.LevelBeginner,
		Sets:              3,
		Reps:              10,
	}
	if err := db.Create(&exercise).Error; err != nil {
		t.Fatalf("Failed to seed exercise: %v", err)
	}
}

// TestCreateTrainingSheetRoundTrip tests POST then GET of the week aggregate
func TestCreateTrainingSheetRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)
	for _, id := range []uint64{3, 7, 9} {
		seedExercise(t, db, id, "Barbell")
	}

	reqBody := map[string]interface{}{
		"name":        "PPL",
		"description": "push pull legs",
		"level":       "intermediate",
		"training_sheet_days": []map[string]interface{}{
			{"focus_area": "Chest", "day_of_week": "monday", "exercises_ids": []uint64{7, 3, 9}},
		},
	}
	result, status := postJSON(t, app, "/api/training_sheets", reqBody)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d: %v", status, result)
	}
	if result["ok"] != true || result["id"] == nil {
		t.Fatalf("Expected ok=true with id, got %v", result)
	}
	id := int(result["id"].(float64))

	req := httptest.NewRequest("GET", "/api/training_sheets/"+strconv.Itoa(id), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute GET: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var week map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&week); err != nil {
		t.Fatalf("Failed to decode week: %v", err)
	}
	days := week["training_sheet_days"].([]interface{})
	if len(days) != 1 {
		t.Fatalf("Expected 1 day, got %d", len(days))
	}
	ids := days[0].(map[string]interface{})["exercises_ids"].([]interface{})
	want := []float64{7, 3, 9}
	for i := range want {
		if ids[i].(float64) != want[i] {
			t.Errorf("Position %d: expected %v, got %v", i, want[i], ids[i])
		}
	}
}

// TestCreateTrainingSheetMissingIDs tests the 400 body for unresolved references
func TestCreateTrainingSheetMissingIDs(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)
	seedExercise(t, db, 7, "Barbell")

	reqBody := map[string]interface{}{
		"name":  "Broken",
		"level": "beginner",
		"training_sheet_days": []map[string]interface{}{
			{"focus_area": "Back", "day_of_week": "tuesday", "exercises_ids": []uint64{7, 9, 3}},
		},
	}
	result, status := postJSON(t, app, "/api/training_sheets", reqBody)
	if status != 400 {
		t.Fatalf("Expected status 400, got %d: %v", status, result)
	}
	missing, ok := result["missing_ids"].([]interface{})
	if !ok {
		t.Fatalf("Expected missing_ids in response, got %v", result)
	}
	if len(missing) != 2 || missing[0].(float64) != 3 || missing[1].(float64) != 9 {
		t.Errorf("Expected missing_ids [3 9], got %v", missing)
	}
}

// TestCreateTrainingSheetRejectsBadEnum tests enum validation at the boundary
func TestCreateTrainingSheetRejectsBadEnum(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	reqBody := map[string]interface{}{
		"name":  "Bad",
		"level": "expert",
	}
	result, status := postJSON(t, app, "/api/training_sheets", reqBody)
	if status != 400 {
		t.Fatalf("Expected status 400, got %d: %v", status, result)
	}
}

// TestGetUserNotFound tests the 404 response shape
func TestGetUserNotFound(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	req := httptest.NewRequest("GET", "/api/users/42", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

// TestGetUserBadID tests a non-numeric path id
func TestGetUserBadID(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	req := httptest.NewRequest("GET", "/api/users/abc", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

// TestSearchExercisesCaseInsensitive tests the equipment filter
func TestSearchExercisesCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)
	seedExercise(t, db, 1, "Dumbbell")

	req := httptest.NewRequest("GET", "/api/exercises/search?equipment=dumbbell", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var page map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		t.Fatalf("Failed to decode page: %v", err)
	}
	if page["total"].(float64) != 1 {
		t.Errorf("Expected total 1, got %v", page["total"])
	}
}

// TestCreateDailyTrainingFlexibleExerciseID tests string-or-number exercise IDs
func TestCreateDailyTrainingFlexibleExerciseID(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)
	seedExercise(t, db, 5, "Barbell")

	result, status := postJSON(t, app, "/api/users", map[string]interface{}{"name": "Alice"})
	if status != 200 {
		t.Fatalf("Failed to create user: %v", result)
	}
	userID := result["id"].(float64)

	reqBody := map[string]interface{}{
		"user_id":        userID,
		"training_date":  "2026-08-30",
		"total_duration": 45,
		"executed_exercises": []map[string]interface{}{
			{"id_exercise": "5", "sets_done": 3, "reps_done": 10, "weight_used": 50},
		},
	}
	result, status = postJSON(t, app, "/api/daily_trainings", reqBody)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d: %v", status, result)
	}
	if result["ok"] != true {
		t.Errorf("Expected ok=true, got %v", result)
	}
}
