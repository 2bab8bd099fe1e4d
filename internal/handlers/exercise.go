package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/muscleflow/muscleflow/internal/services"
	"github.com/muscleflow/muscleflow/internal/types"
	"github.com/muscleflow/muscleflow/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ExerciseHandler handles exercise routes
type ExerciseHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// GetExercise handles GET /api/exercises/:id
// @Summary Get an exercise
// @Tags Exercises
// @Produce json
// @Param id path int true "Exercise ID"
// @Success 200 {object} models.Exercise
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "getExercise")
	}

	exercise, err := services.GetExercise(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "getExercise")
	}
	return c.Status(fiber.StatusOK).JSON(exercise)
}

// ListExercises handles GET /api/exercises
// @Summary List exercises
// @Tags Exercises
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param per_page query int false "Items per page"
// @Success 200 {object} pagination.Page[models.Exercise]
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *fiber.Ctx) error {
	page, err := services.ListExercises(h.DB, parsePagination(c))
	if err != nil {
		return respondServiceError(c, err, "listExercises")
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// SearchExercises handles GET /api/exercises/search
// @Summary Search exercises
// @Description Filter by muscle group, equipment (case-insensitive equality), level and keyword
// @Tags Exercises
// @Produce json
// @Param muscle_group query string false "Target muscle group"
// @Param equipment query string false "Equipment"
// @Param level query string false "beginner|intermediate|advanced"
// @Param keyword query string false "Keyword over the name"
// @Success 200 {object} pagination.Page[models.Exercise]
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /exercises/search [get]
func (h *ExerciseHandler) SearchExercises(c *fiber.Ctx) error {
	level := types.Level(c.Query("level"))
	if level != "" && !level.Valid() {
		return utils.ErrorResponse(c, "invalid level, expected beginner|intermediate|advanced", fiber.StatusBadRequest, "validation")
	}

	filter := services.ExerciseFilter{
		MuscleGroup: c.Query("muscle_group"),
		Equipment:   c.Query("equipment"),
		Level:       level,
		Keywords:    c.Query("keyword"),
	}
	page, err := services.FilterExercises(h.DB, filter, parsePagination(c))
	if err != nil {
		return respondServiceError(c, err, "searchExercises")
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// CountExercises handles GET /api/exercises/count
// @Summary Count exercises
// @Tags Exercises
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /exercises/count [get]
func (h *ExerciseHandler) CountExercises(c *fiber.Ctx) error {
	count, err := services.CountExercises(h.DB)
	if err != nil {
		return respondServiceError(c, err, "countExercises")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}

// CreateExercise handles POST /api/exercises
// @Summary Create an exercise
// @Tags Exercises
// @Accept json
// @Produce json
// @Param body body services.ExerciseRequest true "Exercise"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *fiber.Ctx) error {
	var req services.ExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBodyError(c, err)
	}
	if req.Name == "" || req.TargetMuscleGroup == "" {
		return utils.ErrorResponse(c, "name and target_muscle_group are required", fiber.StatusBadRequest, "validation")
	}
	if !req.Level.Valid() {
		return utils.ErrorResponse(c, "invalid level, expected beginner|intermediate|advanced", fiber.StatusBadRequest, "validation")
	}

	id, err := services.CreateExercise(h.DB, &req)
	if err != nil {
		return respondServiceError(c, err, "createExercise")
	}
	h.Log.Info("exercise created", zap.Uint64("id", id), zap.String("name", req.Name))
	return utils.MutationSuccessResponse(c, "Exercise created", id)
}

// UpdateExercise handles PUT /api/exercises/:id
// @Summary Update an exercise
// @Tags Exercises
// @Accept json
// @Produce json
// @Param id path int true "Exercise ID"
// @Param body body services.ExerciseRequest true "Exercise"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /exercises/{id} [put]
func (h *ExerciseHandler) UpdateExercise(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "updateExercise")
	}

	var req services.ExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBodyError(c, err)
	}
	if !req.Level.Valid() {
		return utils.ErrorResponse(c, "invalid level, expected beginner|intermediate|advanced", fiber.StatusBadRequest, "validation")
	}

	if err := services.UpdateExercise(h.DB, id, &req); err != nil {
		return respondServiceError(c, err, "updateExercise")
	}
	return utils.MutationSuccessResponse(c, "Exercise updated", id)
}

// DeleteExercise handles DELETE /api/exercises/:id
// @Summary Delete an exercise
// @Description Fails with 409 when the exercise is still referenced by a training sheet day or an executed training
// @Tags Exercises
// @Produce json
// @Param id path int true "Exercise ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /exercises/{id} [delete]
func (h *ExerciseHandler) DeleteExercise(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "deleteExercise")
	}

	if err := services.DeleteExercise(h.DB, id); err != nil {
		return respondServiceError(c, err, "deleteExercise")
	}
	h.Log.Info("exercise deleted", zap.Uint64("id", id))
	return utils.MutationSuccessResponse(c, "Exercise deleted", id)
}
