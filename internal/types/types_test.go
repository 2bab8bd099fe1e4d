package types_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/muscleflow/muscleflow/internal/types"
)

func TestLevelUnmarshalRejectsUnknown(t *testing.T) {
	var level types.Level
	err := json.Unmarshal([]byte(`"expert"`), &level)
	var invalid *types.InvalidFormatError
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected InvalidFormatError, got %T: %v", err, err)
	}

	if err := json.Unmarshal([]byte(`"advanced"`), &level); err != nil {
		t.Fatalf("Expected advanced to parse, got %v", err)
	}
	if level != types.LevelAdvanced {
		t.Errorf("Expected advanced, got %q", level)
	}
}

func TestDayOfWeekUnmarshalRejectsUnknown(t *testing.T) {
	var day types.DayOfWeek
	err := json.Unmarshal([]byte(`"funday"`), &day)
	var invalid *types.InvalidFormatError
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected InvalidFormatError, got %T: %v", err, err)
	}

	if err := json.Unmarshal([]byte(`"sunday"`), &day); err != nil {
		t.Fatalf("Expected sunday to parse, got %v", err)
	}
}

func TestParseDateStrictFormat(t *testing.T) {
	if _, err := types.ParseDate("training_date", "2026-08-30"); err != nil {
		t.Fatalf("Expected valid date to parse, got %v", err)
	}

	for _, bad := range []string{"30-08-2026", "2026/08/30", "2026-8-30", "yesterday", ""} {
		_, err := types.ParseDate("training_date", bad)
		var invalid *types.InvalidFormatError
		if !errors.As(err, &invalid) {
			t.Errorf("Expected InvalidFormatError for %q, got %T: %v", bad, err, err)
		}
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	date, err := types.ParseDate("recorded_at", "2026-01-05")
	if err != nil {
		t.Fatalf("Failed to parse date: %v", err)
	}
	if got := types.FormatDate(date); got != "2026-01-05" {
		t.Errorf("Expected 2026-01-05, got %q", got)
	}
}

func TestFlexListAcceptsSingleObjectOrArray(t *testing.T) {
	var list types.FlexList[uint64]
	if err := json.Unmarshal([]byte(`[1, 2, 3]`), &list); err != nil {
		t.Fatalf("Failed to unmarshal array: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("Expected 3 items, got %d", len(list))
	}

	list = nil
	if err := json.Unmarshal([]byte(`7`), &list); err != nil {
		t.Fatalf("Failed to unmarshal single item: %v", err)
	}
	if len(list) != 1 || list[0] != 7 {
		t.Errorf("Expected [7], got %v", list)
	}
}

func TestFlexUint64AcceptsNumberOrString(t *testing.T) {
	var id types.FlexUint64
	if err := json.Unmarshal([]byte(`42`), &id); err != nil {
		t.Fatalf("Failed to unmarshal number: %v", err)
	}
	if id.Uint64() != 42 {
		t.Errorf("Expected 42, got %d", id.Uint64())
	}

	if err := json.Unmarshal([]byte(`"99"`), &id); err != nil {
		t.Fatalf("Failed to unmarshal string: %v", err)
	}
	if id.Uint64() != 99 {
		t.Errorf("Expected 99, got %d", id.Uint64())
	}

	if err := json.Unmarshal([]byte(`"abc"`), &id); err == nil {
		t.Error("Expected error for non-numeric string")
	}
}

func TestUnresolvedReferenceErrorMessage(t *testing.T) {
	err := &types.UnresolvedReferenceError{Resource: "exercise", IDs: []uint64{9, 3}}
	if got := err.Error(); got != "exercises not found with IDs: [9, 3]" {
		t.Errorf("Unexpected message: %q", got)
	}
	ids := err.SortedIDs()
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 9 {
		t.Errorf("Expected sorted [3 9], got %v", ids)
	}
}
