package services

import (
	"errors"

	"github.com/muscleflow/muscleflow/internal/types"
	"gorm.io/gorm"
)

// wrapWriteError classifies storage-layer constraint violations. Application
// pre-checks should make these unreachable; when one fires anyway it signals a
// race or a validation gap and is surfaced as a server-side failure.
func wrapWriteError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &types.DuplicateKeyError{Op: op, Err: err}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &types.ReferentialIntegrityError{Op: op, Err: err}
	}
	return err
}
