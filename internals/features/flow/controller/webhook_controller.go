package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/flow/dto"
	"acaraku_backend/internals/features/flow/service"
	helper "acaraku_backend/internals/helpers"
)

type WebhookController struct {
	Coordinator *service.SyncCoordinator
}

func NewWebhookController(db *gorm.DB) *WebhookController {
	return &WebhookController{Coordinator: service.NewSyncCoordinator(db)}
}

// 🔄 POST /api/webhooks/flow/notify
// Dipanggil sistem flow tiap daftar lagu layanan berubah. Respons selalu
// menyertakan hasil sinkronisasi; flow tidak peduli detail, tapi berguna
// buat debugging.
func (ctrl *WebhookController) Notify(c *fiber.Ctx) error {
	var req dto.FlowNotifyRequest
	if err := helper.ValidateRequest(c, &req); err != nil {
		return err
	}

	result, err := ctrl.Coordinator.HandleNotification(c.UserContext(), req.ServiceCode)
	if err != nil {
		log.Printf("[ERROR] webhook flow %s: %v", req.ServiceCode, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Sinkronisasi gagal")
	}
	return helper.JsonOK(c, "Notifikasi flow diproses", result)
}
