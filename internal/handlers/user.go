package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/muscleflow/muscleflow/internal/services"
	"github.com/muscleflow/muscleflow/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserHandler handles user routes
type UserHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// GetUser handles GET /api/users/:id
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} services.UserResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "getUser")
	}

	user, err := services.GetUser(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "getUser")
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// ListUsers handles GET /api/users
// @Summary List users
// @Tags Users
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param per_page query int false "Items per page"
// @Success 200 {object} pagination.Page[services.UserResponse]
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	page, err := services.ListUsers(h.DB, parsePagination(c))
	if err != nil {
		return respondServiceError(c, err, "listUsers")
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// SearchUsers handles GET /api/users/search
// @Summary Search users
// @Description Filter users by objective (case-insensitive equality) and keyword
// @Tags Users
// @Produce json
// @Param objective query string false "Objective filter"
// @Param keyword query string false "Keyword over name and objective"
// @Success 200 {object} pagination.Page[services.UserResponse]
// @Router /users/search [get]
func (h *UserHandler) SearchUsers(c *fiber.Ctx) error {
	filter := services.UserFilter{
		Objective: c.Query("objective"),
		Keywords:  c.Query("keyword"),
	}
	page, err := services.FilterUsers(h.DB, filter, parsePagination(c))
	if err != nil {
		return respondServiceError(c, err, "searchUsers")
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// CountUsers handles GET /api/users/count
// @Summary Count users
// @Tags Users
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /users/count [get]
func (h *UserHandler) CountUsers(c *fiber.Ctx) error {
	count, err := services.CountUsers(h.DB)
	if err != nil {
		return respondServiceError(c, err, "countUsers")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}

// CreateUser handles POST /api/users
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param body body services.UserRequest true "User"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req services.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBodyError(c, err)
	}
	if req.Name == "" {
		return utils.ErrorResponse(c, "name is required", fiber.StatusBadRequest, "validation")
	}

	id, err := services.CreateUser(h.DB, &req)
	if err != nil {
		return respondServiceError(c, err, "createUser")
	}
	h.Log.Info("user created", zap.Uint64("id", id))
	return utils.MutationSuccessResponse(c, "User created", id)
}

// UpdateUser handles PUT /api/users/:id
// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param body body services.UserRequest true "User"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "updateUser")
	}

	var req services.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBodyError(c, err)
	}
	if req.Name == "" {
		return utils.ErrorResponse(c, "name is required", fiber.StatusBadRequest, "validation")
	}

	if err := services.UpdateUser(h.DB, id, &req); err != nil {
		return respondServiceError(c, err, "updateUser")
	}
	return utils.MutationSuccessResponse(c, "User updated", id)
}

// DeleteUser handles DELETE /api/users/:id
// @Summary Delete a user
// @Description Deletes the user together with their physical records, daily trainings and training sheet assignments
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "deleteUser")
	}

	if err := services.DeleteUser(h.DB, id); err != nil {
		return respondServiceError(c, err, "deleteUser")
	}
	h.Log.Info("user deleted", zap.Uint64("id", id))
	return utils.MutationSuccessResponse(c, "User deleted", id)
}

// ListUserTrainingSheets handles GET /api/users/:id/training_sheets
// @Summary List the training sheet weeks assigned to a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} services.TrainingSheetWeekResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id}/training_sheets [get]
func (h *UserHandler) ListUserTrainingSheets(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "listUserTrainingSheets")
	}

	sheets, err := services.ListUserTrainingSheets(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "listUserTrainingSheets")
	}
	return c.Status(fiber.StatusOK).JSON(sheets)
}
