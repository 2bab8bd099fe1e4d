package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/muscleflow/muscleflow/internal/services"
	"github.com/muscleflow/muscleflow/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PhysicalRecordHandler handles physical record routes
type PhysicalRecordHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// GetPhysicalRecord handles GET /api/physical_records/:id
// @Summary Get a physical record
// @Tags PhysicalRecords
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} services.PhysicalRecordResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /physical_records/{id} [get]
func (h *PhysicalRecordHandler) GetPhysicalRecord(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "getPhysicalRecord")
	}

	record, err := services.GetPhysicalRecord(h.DB, id)
	if err != nil {
		return respondServiceError(c, err, "getPhysicalRecord")
	}
	return c.Status(fiber.StatusOK).JSON(record)
}

// ListPhysicalRecords handles GET /api/physical_records
// @Summary List physical records
// @Tags PhysicalRecords
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param per_page query int false "Items per page"
// @Success 200 {object} pagination.Page[services.PhysicalRecordResponse]
// @Router /physical_records [get]
func (h *PhysicalRecordHandler) ListPhysicalRecords(c *fiber.Ctx) error {
	page, err := services.ListPhysicalRecords(h.DB, parsePagination(c))
	if err != nil {
		return respondServiceError(c, err, "listPhysicalRecords")
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// ListUserPhysicalRecords handles GET /api/physical_records/user/:userID
// @Summary List a user's physical records
// @Tags PhysicalRecords
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} pagination.Page[services.PhysicalRecordResponse]
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /physical_records/user/{userID} [get]
func (h *PhysicalRecordHandler) ListUserPhysicalRecords(c *fiber.Ctx) error {
	userID, err := parseID(c, "userID")
	if err != nil {
		return respondServiceError(c, err, "listUserPhysicalRecords")
	}

	page, err := services.ListUserPhysicalRecords(h.DB, userID, parsePagination(c))
	if err != nil {
		return respondServiceError(c, err, "listUserPhysicalRecords")
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// CountPhysicalRecords handles GET /api/physical_records/count
// @Summary Count physical records
// @Tags PhysicalRecords
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /physical_records/count [get]
func (h *PhysicalRecordHandler) CountPhysicalRecords(c *fiber.Ctx) error {
	count, err := services.CountPhysicalRecords(h.DB)
	if err != nil {
		return respondServiceError(c, err, "countPhysicalRecords")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}

// CreatePhysicalRecord handles POST /api/physical_records
// @Summary Create a physical record
// @Description The recorded_at date is set server-side to the current day
// @Tags PhysicalRecords
// @Accept json
// @Produce json
// @Param body body services.PhysicalRecordRequest true "Record"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /physical_records [post]
func (h *PhysicalRecordHandler) CreatePhysicalRecord(c *fiber.Ctx) error {
	var req services.PhysicalRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBodyError(c, err)
	}
	if req.UserID == 0 {
		return utils.ErrorResponse(c, "user_id is required", fiber.StatusBadRequest, "validation")
	}

	id, err := services.CreatePhysicalRecord(h.DB, &req)
	if err != nil {
		return respondServiceError(c, err, "createPhysicalRecord")
	}
	h.Log.Info("physical record created", zap.Uint64("id", id), zap.Uint64("user_id", req.UserID))
	return utils.MutationSuccessResponse(c, "Physical record created", id)
}

// UpdatePhysicalRecord handles PUT /api/physical_records/:id
// @Summary Update a physical record
// @Tags PhysicalRecords
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param body body services.PhysicalRecordRequest true "Record"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /physical_records/{id} [put]
func (h *PhysicalRecordHandler) UpdatePhysicalRecord(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "updatePhysicalRecord")
	}

	var req services.PhysicalRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBodyError(c, err)
	}

	if err := services.UpdatePhysicalRecord(h.DB, id, &req); err != nil {
		return respondServiceError(c, err, "updatePhysicalRecord")
	}
	return utils.MutationSuccessResponse(c, "Physical record updated", id)
}

// DeletePhysicalRecord handles DELETE /api/physical_records/:id
// @Summary Delete a physical record
// @Tags PhysicalRecords
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /physical_records/{id} [delete]
func (h *PhysicalRecordHandler) DeletePhysicalRecord(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondServiceError(c, err, "deletePhysicalRecord")
	}

	if err := services.DeletePhysicalRecord(h.DB, id); err != nil {
		return respondServiceError(c, err, "deletePhysicalRecord")
	}
	return utils.MutationSuccessResponse(c, "Physical record deleted", id)
}
