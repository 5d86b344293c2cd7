package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/constants"
	"acaraku_backend/internals/features/flow/controller"
	authMiddleware "acaraku_backend/internals/middlewares/auth"
)

func FlowAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola layanan flow"),
			constants.AdminAndAbove,
		),
	)

	linkCtrl := controller.NewFlowLinkController(db)
	services := admin.Group("/flow-services")
	services.Post("/", linkCtrl.CreateFlowService)
	services.Get("/", linkCtrl.GetFlowServices)
	services.Post("/:id/link", linkCtrl.LinkEvent)
	services.Delete("/links/:event_id", linkCtrl.UnlinkEvent)
}
