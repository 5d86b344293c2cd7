package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/setlists/dto"
	"acaraku_backend/internals/features/setlists/model"
	helper "acaraku_backend/internals/helpers"
)

type SetlistController struct {
	DB *gorm.DB
}

func NewSetlistController(db *gorm.DB) *SetlistController {
	return &SetlistController{DB: db}
}

// 🟢 GET /api/public/setlists/:share_code
func (ctrl *SetlistController) GetByShareCode(c *fiber.Ctx) error {
	code := c.Params("share_code")
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Share code tidak boleh kosong")
	}
	return ctrl.respondSetlist(c, "setlist_share_code = ?", code)
}

// 🟢 GET /api/public/setlists/token/:share_token — link unlisted
func (ctrl *SetlistController) GetByShareToken(c *fiber.Ctx) error {
	token := c.Params("share_token")
	if token == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Share token tidak boleh kosong")
	}
	return ctrl.respondSetlist(c, "setlist_share_token = ?", token)
}

func (ctrl *SetlistController) respondSetlist(c *fiber.Ctx, cond string, arg string) error {
	var sl model.SetlistModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&sl, cond, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Setlist tidak ditemukan")
		}
		log.Printf("[ERROR] get setlist: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil setlist")
	}

	items, err := model.ParseSetlistItems(sl.SetlistItems)
	if err != nil {
		log.Printf("[ERROR] parse setlist items: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca setlist")
	}

	// inline semua deck presentasi dalam satu query
	var deckIDs []uuid.UUID
	for _, item := range items {
		if item.Type == model.SetlistItemTypePresentation && item.SlideDeckID != nil {
			deckIDs = append(deckIDs, *item.SlideDeckID)
		}
	}
	decks := make(map[uuid.UUID]model.SlideDeckModel, len(deckIDs))
	if len(deckIDs) > 0 {
		var rows []model.SlideDeckModel
		if err := ctrl.DB.WithContext(c.UserContext()).
			Where("slide_deck_id IN ?", deckIDs).
			Find(&rows).Error; err != nil {
			log.Printf("[ERROR] get slide decks: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil slide deck")
		}
		for _, row := range rows {
			decks[row.SlideDeckID] = row
		}
	}

	resp, err := dto.ToSetlistPublicResponse(&sl, items, decks)
	if err != nil {
		log.Printf("[ERROR] setlist response: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca setlist")
	}
	return helper.JsonOK(c, "Setlist", resp)
}
