package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/events/controller"
)

func EventUserRoutes(api fiber.Router, db *gorm.DB) {
	eventCtrl := controller.NewEventController(db)
	events := api.Group("/events")
	events.Get("/", eventCtrl.GetEvents)
	events.Get("/:id", eventCtrl.GetEventByID)
}
