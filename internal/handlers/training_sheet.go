package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/muscleflow/muscleflow/internal/services"
	"github.com/muscleflow/muscleflow/internal/types"
	"github.com/muscleflow/muscleflow/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TrainingSheetHandler handles training sheet week routes
type TrainingSheetHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// GetTrainingSheet handles GET /api/training_sheets/:id
// @Summary Get a training sheet week
// @Description Returns the week with its days and each day's exercise IDs in stored order
// @Tags TrainingSheets
// @Produce json
// @Param id path int true "Training sheet week ID"
// @Success 200 {object} services.TrainingSheetWeekResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /training_sheets/{id} [get]
func (h *TrainingSheetHandler) GetTrainingSheet(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "getTrainingSheet")
	}

	week, err := services.GetTrainingSheetWeek(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "getTrainingSheet")
	}
	return c.Status(fiber.StatusOK).JSON(week)
}

// ListTrainingSheets handles GET /api/training_sheets
// @Summary List training sheet weeks
// @Tags TrainingSheets
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param per_page query int false "Items per page"
// @Success 200 {object} pagination.Page[services.TrainingSheetWeekResponse]
// @Router /training_sheets [get]
func (h *TrainingSheetHandler) ListTrainingSheets(c *fiber.Ctx) error {
	page, err := services.ListTrainingSheetWeeks(h.DB, parsePagination(c))
	if err != nil {
		return respondServiceError(c, err, "listTrainingSheets")
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// SearchTrainingSheets handles GET /api/training_sheets/search
// @Summary Search training sheet weeks
// @Description Filter by level and keyword over name and description
// @Tags TrainingSheets
// @Produce json
// @Param level query string false "beginner|intermediate|advanced"
// @Param keyword query string false "Keyword over name and description"
// @Success 200 {object} pagination.Page[services.TrainingSheetWeekResponse]
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /training_sheets/search [get]
func (h *TrainingSheetHandler) SearchTrainingSheets(c *fiber.Ctx) error {
	level := types.Level(c.Query("level"))
	if level != "" && !level.Valid() {
		return utils.ErrorResponse(c, "invalid level, expected beginner|intermediate|advanced", fiber.StatusBadRequest, "validation")
	}

	filter := services.TrainingSheetFilter{
		Level:    level,
		Keywords: c.Query("keyword"),
	}
	page, err := services.FilterTrainingSheetWeeks(h.DB, filter, parsePagination(c))
	if err != nil {
		return respondServiceError(c, err, "searchTrainingSheets")
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// CountTrainingSheets handles GET /api/training_sheets/count
// @Summary Count training sheet weeks
// @Tags TrainingSheets
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /training_sheets/count [get]
func (h *TrainingSheetHandler) CountTrainingSheets(c *fiber.Ctx) error {
	count, err := services.CountTrainingSheetWeeks(h.DB)
	if err != nil {
		return respondServiceError(c, err, "countTrainingSheets")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}

// CreateTrainingSheet handles POST /api/training_sheets
// @Summary Create a training sheet week
// @Description Creates the week aggregate. A missing exercise reference aborts with 400 and missing_ids; nothing is written.
// @Tags TrainingSheets
// @Accept json
// @Produce json
// @Param body body services.TrainingSheetWeekRequest true "Week aggregate"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /training_sheets [post]
func (h *TrainingSheetHandler) CreateTrainingSheet(c *fiber.Ctx) error {
	var req services.TrainingSheetWeekRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBodyError(c, err)
	}
	if req.Name == "" {
		return utils.ErrorResponse(c, "name is required", fiber.StatusBadRequest, "validation")
	}
	if !req.Level.Valid() {
		return utils.ErrorResponse(c, "invalid level, expected beginner|intermediate|advanced", fiber.StatusBadRequest, "validation")
	}

	id, err := services.CreateTrainingSheetWeek(h.DB, &req)
	if err != nil {
		return respondServiceError(c, err, "createTrainingSheet")
	}
	h.Log.Info("training sheet created", zap.Uint64("id", id), zap.String("name", req.Name))
	return utils.MutationSuccessResponse(c, "Training sheet created", id)
}

// ReplaceTrainingSheet handles PUT /api/training_sheets/:id
// @Summary Replace a training sheet week
// @Description Full overwrite: scalars updated, the day list deleted and recreated from the request
// @Tags TrainingSheets
// @Accept json
// @Produce json
// @Param id path int true "Training sheet week ID"
// @Param body body services.TrainingSheetWeekRequest true "Week aggregate"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /training_sheets/{id} [put]
func (h *TrainingSheetHandler) ReplaceTrainingSheet(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "replaceTrainingSheet")
	}

	var req services.TrainingSheetWeekRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBodyError(c, err)
	}
	if req.Name == "" {
		return utils.ErrorResponse(c, "name is required", fiber.StatusBadRequest, "validation")
	}
	if !req.Level.Valid() {
		return utils.ErrorResponse(c, "invalid level, expected beginner|intermediate|advanced", fiber.StatusBadRequest, "validation")
	}

	if err := services.ReplaceTrainingSheetWeek(h.DB, id, &req); err != nil {
		return respondServiceError(c, err, "replaceTrainingSheet")
	}
	h.Log.Info("training sheet replaced", zap.Uint64("id", id))
	return utils.MutationSuccessResponse(c, "Training sheet replaced", id)
}

// DeleteTrainingSheet handles DELETE /api/training_sheets/:id
// @Summary Delete a training sheet week
// @Description Removes the week, its days and link rows. Exercises stay.
// @Tags TrainingSheets
// @Produce json
// @Param id path int true "Training sheet week ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /training_sheets/{id} [delete]
func (h *TrainingSheetHandler) DeleteTrainingSheet(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "deleteTrainingSheet")
	}

	if err := services.DeleteTrainingSheetWeek(h.DB, id); err != nil {
		return respondServiceError(c, err, "deleteTrainingSheet")
	}
	h.Log.Info("training sheet deleted", zap.Uint64("id", id))
	return utils.MutationSuccessResponse(c, "Training sheet deleted", id)
}

// AssignUser handles POST /api/training_sheets/:id/users/:userID
// @Summary Assign a training sheet week to a user
// @Description Assigning an already assigned pair is a no-op
// @Tags TrainingSheets
// @Produce json
// @Param id path int true "Training sheet week ID"
// @Param userID path int true "User ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /training_sheets/{id}/users/{userID} [post]
func (h *TrainingSheetHandler) AssignUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "assignUser")
	}
	userID, err := parseID(c, "userID")
	if err != nil {
		return respondServiceError(c, err, "assignUser")
	}

	if err := services.AssignUserToWeek(h.DB, id, userID); err != nil {
		return respondServiceError(c, err, "assignUser")
	}
	return utils.MutationSuccessResponse(c, "Training sheet assigned", id)
}

// UnassignUser handles DELETE /api/training_sheets/:id/users/:userID
// @Summary Unassign a training sheet week from a user
// @Tags TrainingSheets
// @Produce json
// @Param id path int true "Training sheet week ID"
// @Param userID path int true "User ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /training_sheets/{id}/users/{userID} [delete]
func (h *TrainingSheetHandler) UnassignUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "unassignUser")
	}
	userID, err := parseID(c, "userID")
	if err != nil {
		return respondServiceError(c, err, "unassignUser")
	}

	if err := services.UnassignUserFromWeek(h.DB, id, userID); err != nil {
		return respondServiceError(c, err, "unassignUser")
	}
	return utils.MutationSuccessResponse(c, "Training sheet unassigned", id)
}
