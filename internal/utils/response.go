package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// MissingReferencesResponse sends a 400 listing referenced IDs that do not
// exist. No write happened.
func MissingReferencesResponse(c *fiber.Ctx, message string, missingIDs []uint64) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":      fiber.StatusBadRequest,
		"message":     message,
		"ok":          false,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"url":         c.OriginalURL(),
		"type":        "unresolved_reference",
		"missing_ids": missingIDs,
	})
}

// MutationSuccessResponse sends a success response for mutations (POST/PUT/DELETE)
func MutationSuccessResponse(c *fiber.Ctx, message string, id uint64) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   message,
		"id":        id,
		"ok":        true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status     int      `json:"status"`
	Message    string   `json:"message"`
	Ok         bool     `json:"ok"`
	Timestamp  string   `json:"timestamp"`
	URL        string   `json:"url"`
	Type       string   `json:"type,omitempty"`
	MissingIDs []uint64 `json:"missing_ids,omitempty"`
}

// SuccessResponseStruct defines the schema for mutation success responses
type SuccessResponseStruct struct {
	Message   string `json:"message"`
	ID        uint64 `json:"id"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
}
