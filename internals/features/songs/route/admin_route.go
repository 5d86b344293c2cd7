package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/constants"
	"acaraku_backend/internals/features/songs/controller"
	authMiddleware "acaraku_backend/internals/middlewares/auth"
)

func SongAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola katalog lagu"),
			constants.AdminAndAbove,
		),
	)

	songCtrl := controller.NewSongController(db)
	songs := admin.Group("/songs")
	songs.Post("/", songCtrl.CreateSong)
	songs.Post("/resolve", songCtrl.ResolveRefs)

	admin.Post("/song-legacy-bridge", songCtrl.CreateLegacyBridge)
}
