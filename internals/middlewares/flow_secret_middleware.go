package middlewares

import (
	"crypto/subtle"
	"log"

	"github.com/gofiber/fiber/v2"

	"acaraku_backend/internals/configs"
)

// VerifyFlowSecret memeriksa shared-secret header dari sistem flow.
// Webhook hanya boleh sampai ke controller kalau sudah lolos di sini.
func VerifyFlowSecret() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := configs.FlowWebhookSecret
		if secret == "" {
			log.Println("[ERROR] FLOW_WEBHOOK_SECRET belum diset, tolak semua webhook")
			return fiber.NewError(fiber.StatusServiceUnavailable, "Webhook belum dikonfigurasi")
		}
		sig := c.Get("X-Flow-Signature")
		if sig == "" || subtle.ConstantTimeCompare([]byte(sig), []byte(secret)) != 1 {
			log.Println("[WARNING] Signature webhook flow tidak cocok")
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid webhook signature")
		}
		return c.Next()
	}
}
