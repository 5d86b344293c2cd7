package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/flow/controller"
	"acaraku_backend/internals/middlewares"
)

// FlowWebhookRoutes: endpoint server-to-server, diverifikasi shared secret
// (bukan JWT user) + rate limit tersendiri.
func FlowWebhookRoutes(api fiber.Router, db *gorm.DB) {
	webhookCtrl := controller.NewWebhookController(db)
	flow := api.Group("/flow",
		middlewares.FlowWebhookRateLimiter(),
		middlewares.VerifyFlowSecret(),
	)
	flow.Post("/notify", webhookCtrl.Notify)
}
