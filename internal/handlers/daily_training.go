package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/muscleflow/muscleflow/internal/services"
	"github.com/muscleflow/muscleflow/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DailyTrainingHandler handles executed daily training routes
type DailyTrainingHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// GetDailyTraining handles GET /api/daily_trainings/:id
// @Summary Get an executed daily training
// @Tags DailyTrainings
// @Produce json
// @Param id path int true "Daily training ID"
// @Success 200 {object} services.ExecutedDailyTrainingResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /daily_trainings/{id} [get]
func (h *DailyTrainingHandler) GetDailyTraining(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "getDailyTraining")
	}

	training, err := services.GetExecutedDailyTraining(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "getDailyTraining")
	}
	return c.Status(fiber.StatusOK).JSON(training)
}

// ListDailyTrainings handles GET /api/daily_trainings
// @Summary List executed daily trainings
// @Tags DailyTrainings
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param per_page query int false "Items per page"
// @Success 200 {object} pagination.Page[services.ExecutedDailyTrainingResponse]
// @Router /daily_trainings [get]
func (h *DailyTrainingHandler) ListDailyTrainings(c *fiber.Ctx) error {
	page, err := services.ListExecutedDailyTrainings(h.DB, parsePagination(c))
	if err != nil {
		return respondServiceError(c, err, "listDailyTrainings")
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// SearchDailyTrainings handles GET /api/daily_trainings/search
// @Summary Search executed daily trainings
// @Description Filter by user and exact training date (YYYY-MM-DD)
// @Tags DailyTrainings
// @Produce json
// @Param user_id query int false "User ID"
// @Param training_date query string false "Training date (YYYY-MM-DD)"
// @Success 200 {object} pagination.Page[services.ExecutedDailyTrainingResponse]
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /daily_trainings/search [get]
func (h *DailyTrainingHandler) SearchDailyTrainings(c *fiber.Ctx) error {
	filter := services.DailyTrainingFilter{
		UserID:       uint64(c.QueryInt("user_id", 0)),
		TrainingDate: c.Query("training_date"),
	}
	page, err := services.FilterExecutedDailyTrainings(h.DB, filter, parsePagination(c))
	if err != nil {
		return respondServiceError(c, err, "searchDailyTrainings")
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// CountDailyTrainings handles GET /api/daily_trainings/count
// @Summary Count executed daily trainings
// @Tags DailyTrainings
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /daily_trainings/count [get]
func (h *DailyTrainingHandler) CountDailyTrainings(c *fiber.Ctx) error {
	count, err := services.CountExecutedDailyTrainings(h.DB)
	if err != nil {
		return respondServiceError(c, err, "countDailyTrainings")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}

// CreateDailyTraining handles POST /api/daily_trainings
// @Summary Create an executed daily training
// @Description Validates the user and every referenced exercise before anything is written
// @Tags DailyTrainings
// @Accept json
// @Produce json
// @Param body body services.ExecutedDailyTrainingRequest true "Daily training"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /daily_trainings [post]
func (h *DailyTrainingHandler) CreateDailyTraining(c *fiber.Ctx) error {
	var req services.ExecutedDailyTrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBodyError(c, err)
	}
	if req.UserID == 0 {
		return utils.ErrorResponse(c, "user_id is required", fiber.StatusBadRequest, "validation")
	}

	id, err := services.CreateExecutedDailyTraining(h.DB, &req)
	if err != nil {
		return respondServiceError(c, err, "createDailyTraining")
	}
	h.Log.Info("daily training created", zap.Uint64("id", id), zap.Uint64("user_id", req.UserID))
	return utils.MutationSuccessResponse(c, "Daily training created", id)
}

// ReplaceDailyTraining handles PUT /api/daily_trainings/:id
// @Summary Replace an executed daily training
// @Description Full overwrite: scalars updated, the executed exercise list deleted and recreated
// @Tags DailyTrainings
// @Accept json
// @Produce json
// @Param id path int true "Daily training ID"
// @Param body body services.ExecutedDailyTrainingRequest true "Daily training"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /daily_trainings/{id} [put]
func (h *DailyTrainingHandler) ReplaceDailyTraining(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "replaceDailyTraining")
	}

	var req services.ExecutedDailyTrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBodyError(c, err)
	}
	if req.UserID == 0 {
		return utils.ErrorResponse(c, "user_id is required", fiber.StatusBadRequest, "validation")
	}

	if err := services.ReplaceExecutedDailyTraining(h.DB, id, &req); err != nil {
		return respondServiceError(c, err, "replaceDailyTraining")
	}
	return utils.MutationSuccessResponse(c, "Daily training replaced", id)
}

// DeleteDailyTraining handles DELETE /api/daily_trainings/:id
// @Summary Delete an executed daily training
// @Tags DailyTrainings
// @Produce json
// @Param id path int true "Daily training ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /daily_trainings/{id} [delete]
func (h *DailyTrainingHandler) DeleteDailyTraining(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "deleteDailyTraining")
	}

	if err := services.DeleteExecutedDailyTraining(h.DB, id); err != nil {
		return respondServiceError(c, err, "deleteDailyTraining")
	}
	return utils.MutationSuccessResponse(c, "Daily training deleted", id)
}
