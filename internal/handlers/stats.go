package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/muscleflow/muscleflow/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StatsHandler handles aggregate statistics routes
type StatsHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// MostUsedTrainingSheets handles GET /api/stats/training_sheets/most_used
// @Summary Training sheet weeks ranked by assigned user count
// @Tags Stats
// @Produce json
// @Param limit query int false "Maximum rows (default 10)"
// @Success 200 {array} services.TrainingSheetUsage
// @Router /stats/training_sheets/most_used [get]
func (h *StatsHandler) MostUsedTrainingSheets(c *fiber.Ctx) error {
	usages, err := services.MostUsedTrainingSheets(h.DB, c.QueryInt("limit", 10))
	if err != nil {
		return respondServiceError(c, err, "mostUsedTrainingSheets")
	}
	return c.Status(fiber.StatusOK).JSON(usages)
}

// TopExecutedExercises handles GET /api/stats/exercises/top_executed
// @Summary Exercises ranked by execution count
// @Tags Stats
// @Produce json
// @Param limit query int false "Maximum rows (default 10)"
// @Success 200 {array} services.ExerciseExecutionCount
// @Router /stats/exercises/top_executed [get]
func (h *StatsHandler) TopExecutedExercises(c *fiber.Ctx) error {
	counts, err := services.TopExecutedExercises(h.DB, c.QueryInt("limit", 10))
	if err != nil {
		return respondServiceError(c, err, "topExecutedExercises")
	}
	return c.Status(fiber.StatusOK).JSON(counts)
}
