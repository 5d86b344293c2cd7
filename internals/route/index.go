package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRoute "acaraku_backend/internals/features/events/route"
	flowRoute "acaraku_backend/internals/features/flow/route"
	setlistRoute "acaraku_backend/internals/features/setlists/route"
	songRoute "acaraku_backend/internals/features/songs/route"
	authMiddleware "acaraku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa login (konsumsi setlist via share code/token)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	setlistRoute.SetlistPublicRoutes(public, db)

	// WEBHOOK → server-to-server, shared secret (bukan JWT)
	log.Println("[INFO] Setting up WEBHOOK group...")
	webhooks := app.Group("/api/webhooks")
	flowRoute.FlowWebhookRoutes(webhooks, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())
	eventRoute.EventUserRoutes(private, db)
	songRoute.SongUserRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())
	eventRoute.EventAdminRoutes(admin, db)
	songRoute.SongAdminRoutes(admin, db)
	flowRoute.FlowAdminRoutes(admin, db)

	log.Println("[INFO] All routes registered ✅")
}
