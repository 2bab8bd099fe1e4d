package services

import (
	"sort"

	"github.com/muscleflow/muscleflow/internal/models"
	"gorm.io/gorm"
)

// MissingExerciseIDs returns the subset of ids that do not exist in storage,
// ascending. An empty result means every reference resolves. Runs before any
// mutating write so a bad reference aborts the operation with nothing written.
func MissingExerciseIDs(tx *gorm.DB, ids []uint64) ([]uint64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var existing []uint64
	if err := tx.Model(&models.Exercise{}).Where("id IN ?", ids).Pluck("id", &existing).Error; err != nil {
		return nil, err
	}

	found := make(map[uint64]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}

	seen := make(map[uint64]struct{}, len(ids))
	var missing []uint64
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing, nil
}

// UserExists reports whether a user row with the given id exists.
func UserExists(tx *gorm.DB, id uint64) (bool, error) {
	var count int64
	if err := tx.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
