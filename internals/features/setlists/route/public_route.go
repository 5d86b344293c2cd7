package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/setlists/controller"
)

func SetlistPublicRoutes(api fiber.Router, db *gorm.DB) {
	setlistCtrl := controller.NewSetlistController(db)
	setlists := api.Group("/setlists")
	setlists.Get("/token/:share_token", setlistCtrl.GetByShareToken)
	setlists.Get("/:share_code", setlistCtrl.GetByShareCode)
}
