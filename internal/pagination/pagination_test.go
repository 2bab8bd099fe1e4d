package pagination_test

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/muscleflow/muscleflow/internal/database"
	"github.com/muscleflow/muscleflow/internal/models"
	"github.com/muscleflow/muscleflow/internal/pagination"
	"github.com/muscleflow/muscleflow/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func seedExercises(t *testing.T, db *gorm.DB, n int) {
	for i := 1; i <= n; i++ {
		exercise := models.Exercise{
			Name:              fmt.Sprintf("Exercise %02d", i),
			TargetMuscleGroup: "Back",
			Level:             types.LevelBeginner,
			Sets:              3,
			Reps:              10,
		}
		if err := db.Create(&exercise).Error; err != nil {
			t.Fatalf("Failed to seed exercise %d: %v", i, err)
		}
	}
}

func TestFindPagesThroughRows(t *testing.T) {
	db := setupTestDB(t)
	seedExercises(t, db, 25)

	page, err := pagination.Find[models.Exercise](db.Model(&models.Exercise{}), pagination.Normalize(1, 10))
	if err != nil {
		t.Fatalf("Failed to fetch page 1: %v", err)
	}
	if page.Total != 25 || page.TotalPages != 3 || len(page.Items) != 10 {
		t.Errorf("Page 1: total=%d total_pages=%d items=%d", page.Total, page.TotalPages, len(page.Items))
	}

	page, err = pagination.Find[models.Exercise](db.Model(&models.Exercise{}), pagination.Normalize(3, 10))
	if err != nil {
		t.Fatalf("Failed to fetch page 3: %v", err)
	}
	if len(page.Items) != 5 {
		t.Errorf("Page 3: expected 5 items, got %d", len(page.Items))
	}
}

func TestFindPastTheEndIsEmptyWithTrueTotal(t *testing.T) {
	db := setupTestDB(t)
	seedExercises(t, db, 25)

	page, err := pagination.Find[models.Exercise](db.Model(&models.Exercise{}), pagination.Normalize(4, 10))
	if err != nil {
		t.Fatalf("Failed to fetch page 4: %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("Expected empty page, got %d items", len(page.Items))
	}
	if page.Total != 25 || page.TotalPages != 3 {
		t.Errorf("Expected total=25 total_pages=3, got total=%d total_pages=%d", page.Total, page.TotalPages)
	}
	if page.Items == nil {
		t.Error("Items should be an empty slice, not nil")
	}
}

func TestFindRespectsConditions(t *testing.T) {
	db := setupTestDB(t)
	seedExercises(t, db, 25)

	query := db.Model(&models.Exercise{}).Where("name LIKE ?", "Exercise 0%")
	page, err := pagination.Find[models.Exercise](query, pagination.Normalize(1, 5))
	if err != nil {
		t.Fatalf("Failed to fetch filtered page: %v", err)
	}
	if page.Total != 9 || page.TotalPages != 2 || len(page.Items) != 5 {
		t.Errorf("Filtered: total=%d total_pages=%d items=%d", page.Total, page.TotalPages, len(page.Items))
	}
}

func TestNormalizeFloorsAtMinimums(t *testing.T) {
	cases := []struct {
		page, perPage         int
		wantPage, wantPerPage int
	}{
		{0, 0, 1, 10},
		{-3, -1, 1, 10},
		{2, 50, 2, 50},
	}
	for _, c := range cases {
		p := pagination.Normalize(c.page, c.perPage)
		if p.Page != c.wantPage || p.PerPage != c.wantPerPage {
			t.Errorf("Normalize(%d, %d) = %+v, want page=%d per_page=%d",
				c.page, c.perPage, p, c.wantPage, c.wantPerPage)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}
	for _, c := range cases {
		if got := pagination.TotalPages(c.total, c.perPage); got != c.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", c.total, c.perPage, got, c.want)
		}
	}
}

func TestOffset(t *testing.T) {
	if off := pagination.Normalize(3, 10).Offset(); off != 20 {
		t.Errorf("Expected offset 20, got %d", off)
	}
	if off := pagination.Normalize(1, 10).Offset(); off != 0 {
		t.Errorf("Expected offset 0, got %d", off)
	}
}
