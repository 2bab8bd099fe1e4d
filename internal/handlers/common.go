package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/muscleflow/muscleflow/internal/pagination"
	"github.com/muscleflow/muscleflow/internal/types"
	"github.com/muscleflow/muscleflow/internal/utils"
)

// parsePagination reads page/per_page query parameters with defaults.
func parsePagination(c *fiber.Ctx) pagination.Params {
	return pagination.Normalize(
		c.QueryInt("page", pagination.DefaultPage),
		c.QueryInt("per_page", pagination.DefaultPerPage),
	)
}

// parseID parses a numeric path parameter.
func parseID(c *fiber.Ctx, name string) (uint64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &types.InvalidFormatError{Field: name, Value: raw, Expected: "positive integer"}
	}
	return id, nil
}

// respondServiceError maps the service error taxonomy to HTTP responses.
// Anything unclassified is a 500.
func respondServiceError(c *fiber.Ctx, err error, errorType string) error {
	var notFound *types.NotFoundError
	if errors.As(err, &notFound) {
		return utils.NotFoundResponse(c, notFound.Error())
	}

	var unresolved *types.UnresolvedReferenceError
	if errors.As(err, &unresolved) {
		return utils.MissingReferencesResponse(c, unresolved.Error(), unresolved.SortedIDs())
	}

	var invalid *types.InvalidFormatError
	if errors.As(err, &invalid) {
		return utils.ErrorResponse(c, invalid.Error(), fiber.StatusBadRequest, "validation")
	}

	var refIntegrity *types.ReferentialIntegrityError
	if errors.As(err, &refIntegrity) {
		return utils.ErrorResponse(c, refIntegrity.Error(), fiber.StatusConflict, "referential_integrity")
	}

	var duplicate *types.DuplicateKeyError
	if errors.As(err, &duplicate) {
		return utils.ErrorResponse(c, duplicate.Error(), fiber.StatusConflict, "duplicate_key")
	}

	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}

// respondBodyError maps a body-parse failure. Enum and date parse errors carry
// their own message; everything else is a generic invalid input.
func respondBodyError(c *fiber.Ctx, err error) error {
	var invalid *types.InvalidFormatError
	if errors.As(err, &invalid) {
		return utils.ErrorResponse(c, invalid.Error(), fiber.StatusBadRequest, "validation")
	}
	return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation")
}
