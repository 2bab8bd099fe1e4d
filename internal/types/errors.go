package types

import (
	"fmt"
	"sort"
	"strings"
)

// NotFoundError reports that a requested entity does not exist.
type NotFoundError struct {
	Resource string
	ID       uint64
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

// UnresolvedReferenceError reports referenced IDs that do not exist in storage.
// The write is aborted before any mutation.
type UnresolvedReferenceError struct {
	Resource string
	IDs      []uint64
}

func (e *UnresolvedReferenceError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("%ss not found with IDs: [%s]", e.Resource, strings.Join(ids, ", "))
}

// SortedIDs returns the missing IDs in ascending order.
func (e *UnresolvedReferenceError) SortedIDs() []uint64 {
	ids := append([]uint64(nil), e.IDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// InvalidFormatError reports malformed input rejected prior to storage access.
type InvalidFormatError struct {
	Field    string
	Value    string
	Expected string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid %s %q, expected %s", e.Field, e.Value, e.Expected)
}

// ReferentialIntegrityError reports a foreign-key violation raised by the store
// despite the application-level pre-checks.
type ReferentialIntegrityError struct {
	Op  string
	Err error
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s: referential integrity violation: %v", e.Op, e.Err)
}

func (e *ReferentialIntegrityError) Unwrap() error { return e.Err }

// DuplicateKeyError reports a primary-key or uniqueness violation raised by the store.
type DuplicateKeyError struct {
	Op  string
	Err error
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: duplicate key: %v", e.Op, e.Err)
}

func (e *DuplicateKeyError) Unwrap() error { return e.Err }
