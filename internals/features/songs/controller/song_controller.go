package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/songs/dto"
	"acaraku_backend/internals/features/songs/model"
	"acaraku_backend/internals/features/songs/service"
	helper "acaraku_backend/internals/helpers"
)

type SongController struct {
	DB *gorm.DB
}

func NewSongController(db *gorm.DB) *SongController {
	return &SongController{DB: db}
}

// 🟢 POST /api/a/songs
func (ctrl *SongController) CreateSong(c *fiber.Ctx) error {
	var req dto.SongRequest
	if err := helper.ValidateRequest(c, &req); err != nil {
		return err
	}

	song := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(song).Error; err != nil {
		log.Printf("[ERROR] create song: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan lagu")
	}
	return helper.JsonCreated(c, "Lagu berhasil dibuat", dto.ToSongResponse(song))
}

// 🟢 GET /api/u/songs?page=&per_page=&q=
func (ctrl *SongController) GetSongs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.Query("per_page", "20"))
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	offset := (page - 1) * perPage

	query := ctrl.DB.WithContext(c.UserContext()).Model(&model.SongModel{})
	if q := c.Query("q"); q != "" {
		query = query.Where("song_title ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count songs: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung lagu")
	}

	var songs []model.SongModel
	if err := query.
		Order("song_title ASC").
		Limit(perPage).Offset(offset).
		Find(&songs).Error; err != nil {
		log.Printf("[ERROR] get songs: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lagu")
	}

	pagination := helper.BuildPaginationFromPage(total, page, perPage)
	return helper.JsonList(c, "Daftar lagu", dto.ToSongResponseList(songs), &pagination)
}

// 🟢 GET /api/u/songs/:id
func (ctrl *SongController) GetSongByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Song ID tidak valid")
	}
	var song model.SongModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&song, "song_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lagu tidak ditemukan")
		}
		log.Printf("[ERROR] get song: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lagu")
	}
	return helper.JsonOK(c, "Detail lagu", dto.ToSongResponse(&song))
}

// 🟢 POST /api/a/song-legacy-bridge — daftarkan mapping ID lama
func (ctrl *SongController) CreateLegacyBridge(c *fiber.Ctx) error {
	var req dto.SongLegacyBridgeRequest
	if err := helper.ValidateRequest(c, &req); err != nil {
		return err
	}

	bridge := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(bridge).Error; err != nil {
		log.Printf("[ERROR] create legacy bridge: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan mapping")
	}
	return helper.JsonCreated(c, "Mapping ID lama berhasil dibuat", bridge)
}

// 🟢 POST /api/a/songs/resolve — tooling admin: cek batch referensi flow
func (ctrl *SongController) ResolveRefs(c *fiber.Ctx) error {
	var req dto.ResolveRefsRequest
	if err := helper.ValidateRequest(c, &req); err != nil {
		return err
	}

	resolved, err := service.ResolveRefs(ctrl.DB.WithContext(c.UserContext()), req.Refs)
	if err != nil {
		log.Printf("[ERROR] resolve refs: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal resolve referensi")
	}

	// referensi yang gagal resolve → null, bukan error
	out := make(map[string]*uuid.UUID, len(req.Refs))
	for _, ref := range req.Refs {
		if id, ok := resolved[ref]; ok {
			v := id
			out[ref] = &v
		} else {
			out[ref] = nil
		}
	}
	return helper.JsonOK(c, "Hasil resolve", out)
}
