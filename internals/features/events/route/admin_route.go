package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/constants"
	"acaraku_backend/internals/features/events/controller"
	authMiddleware "acaraku_backend/internals/middlewares/auth"
)

// Login wajib + role admin/panitia/owner
func EventAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola event"),
			constants.AdminAndAbove,
		),
	)

	eventCtrl := controller.NewEventController(db)
	events := admin.Group("/events")
	events.Post("/", eventCtrl.CreateEvent)
	events.Patch("/:id", eventCtrl.UpdateEvent)
	events.Delete("/:id", eventCtrl.DeleteEvent)
	events.Patch("/:id/schedule/:index", eventCtrl.PatchSongSegment)
	events.Put("/:id/schedule/:index/content", eventCtrl.PutPrayerSegment)
	events.Post("/:id/setlist/regenerate", eventCtrl.RegenerateSetlist)
}
