package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/songs/controller"
)

func SongUserRoutes(api fiber.Router, db *gorm.DB) {
	songCtrl := controller.NewSongController(db)
	songs := api.Group("/songs")
	songs.Get("/", songCtrl.GetSongs)
	songs.Get("/:id", songCtrl.GetSongByID)
}
