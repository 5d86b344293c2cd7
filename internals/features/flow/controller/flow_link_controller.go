package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "acaraku_backend/internals/features/events/model"
	"acaraku_backend/internals/features/flow/dto"
	"acaraku_backend/internals/features/flow/model"
	helper "acaraku_backend/internals/helpers"
)

type FlowLinkController struct {
	DB *gorm.DB
}

func NewFlowLinkController(db *gorm.DB) *FlowLinkController {
	return &FlowLinkController{DB: db}
}

// ✅ POST /api/a/flow-services
func (ctrl *FlowLinkController) CreateFlowService(c *fiber.Ctx) error {
	var req dto.FlowServiceRequest
	if err := helper.ValidateRequest(c, &req); err != nil {
		return err
	}

	flowService := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(flowService).Error; err != nil {
		log.Printf("[ERROR] create flow service: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan layanan flow")
	}
	return helper.JsonCreated(c, "Layanan flow berhasil dibuat", dto.ToFlowServiceResponse(flowService))
}

// 🟢 GET /api/a/flow-services
func (ctrl *FlowLinkController) GetFlowServices(c *fiber.Ctx) error {
	var services []model.FlowServiceModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("flow_service_code ASC").
		Find(&services).Error; err != nil {
		log.Printf("[ERROR] get flow services: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil layanan flow")
	}
	return helper.JsonOK(c, "Daftar layanan flow", dto.ToFlowServiceResponseList(services))
}

// ✅ POST /api/a/flow-services/:id/link — tautkan event ke layanan
func (ctrl *FlowLinkController) LinkEvent(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID layanan tidak valid")
	}

	var req dto.FlowLinkRequest
	if err := helper.ValidateRequest(c, &req); err != nil {
		return err
	}

	var flowService model.FlowServiceModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&flowService, "flow_service_id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Layanan flow tidak ditemukan")
		}
		log.Printf("[ERROR] link event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menautkan event")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&eventModel.EventModel{}).
		Where("event_id = ?", req.EventID).
		Update("event_flow_service_id", flowService.FlowServiceID)
	if res.Error != nil {
		log.Printf("[ERROR] link event: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menautkan event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Event berhasil ditautkan ke layanan flow", fiber.Map{
		"event_id":        req.EventID,
		"flow_service_id": flowService.FlowServiceID,
	})
}

// ❌ DELETE /api/a/flow-services/links/:event_id — lepaskan tautan
func (ctrl *FlowLinkController) UnlinkEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID event tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&eventModel.EventModel{}).
		Where("event_id = ?", eventID).
		Update("event_flow_service_id", nil)
	if res.Error != nil {
		log.Printf("[ERROR] unlink event: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal melepas tautan event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Tautan event berhasil dilepas", fiber.Map{"event_id": eventID})
}
