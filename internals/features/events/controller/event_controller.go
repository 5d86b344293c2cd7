package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/events/dto"
	"acaraku_backend/internals/features/events/model"
	setlistService "acaraku_backend/internals/features/setlists/service"
	helper "acaraku_backend/internals/helpers"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// 🟢 POST /api/a/events
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := helper.ValidateRequest(c, &req); err != nil {
		return err
	}

	event, err := req.ToModel()
	if err != nil {
		log.Printf("[ERROR] build event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyiapkan event")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(event).Error; err != nil {
		log.Printf("[ERROR] create event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan event")
	}

	resp, err := dto.ToEventResponse(event)
	if err != nil {
		log.Printf("[ERROR] event response: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca event")
	}
	return helper.JsonCreated(c, "Event berhasil dibuat", resp)
}

// 🟢 GET /api/u/events?page=&per_page=
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
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

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.EventModel{}).
		Count(&total).Error; err != nil {
		log.Printf("[ERROR] count events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung event")
	}

	var events []model.EventModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("event_created_at DESC").
		Limit(perPage).Offset(offset).
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] get events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	out, err := dto.ToEventResponseList(events)
	if err != nil {
		log.Printf("[ERROR] event responses: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca event")
	}

	pagination := helper.BuildPaginationFromPage(total, page, perPage)
	return helper.JsonList(c, "Daftar event", out, &pagination)
}

// 🟢 GET /api/u/events/:id
func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	event, fiberErr := ctrl.findEvent(c)
	if fiberErr != nil {
		return fiberErr
	}
	resp, err := dto.ToEventResponse(event)
	if err != nil {
		log.Printf("[ERROR] event response: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca event")
	}
	return helper.JsonOK(c, "Detail event", resp)
}

// 🟢 PATCH /api/a/events/:id
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	event, fiberErr := ctrl.findEvent(c)
	if fiberErr != nil {
		return fiberErr
	}

	var req dto.EventUpdateRequest
	if err := helper.ValidateRequest(c, &req); err != nil {
		return err
	}
	req.ApplyToModel(event)

	if err := ctrl.DB.WithContext(c.UserContext()).Save(event).Error; err != nil {
		log.Printf("[ERROR] update event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan event")
	}

	resp, err := dto.ToEventResponse(event)
	if err != nil {
		log.Printf("[ERROR] event response: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca event")
	}
	return helper.JsonUpdated(c, "Event berhasil diupdate", resp)
}

// 🟢 DELETE /api/a/events/:id (soft delete)
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	event, fiberErr := ctrl.findEvent(c)
	if fiberErr != nil {
		return fiberErr
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(event).Error; err != nil {
		log.Printf("[ERROR] delete event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus event")
	}
	return helper.JsonDeleted(c, "Event berhasil dihapus", fiber.Map{"event_id": event.EventID})
}

// 🟢 PATCH /api/a/events/:id/schedule/:index — edit field user pada segmen lagu
func (ctrl *EventController) PatchSongSegment(c *fiber.Ctx) error {
	event, fiberErr := ctrl.findEvent(c)
	if fiberErr != nil {
		return fiberErr
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Index segmen tidak valid")
	}

	var req dto.SongSegmentPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	segments, err := model.ParseSchedule(event.EventSchedule)
	if err != nil {
		log.Printf("[ERROR] parse schedule: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca susunan acara")
	}
	if index < 0 || index >= len(segments) {
		return helper.JsonError(c, fiber.StatusNotFound, "Segmen tidak ditemukan")
	}
	seg := &segments[index]
	if seg.Type != model.SegmentTypeSong || seg.Song == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Segmen ini bukan lagu")
	}

	if req.Leader != nil {
		seg.Song.Leader = *req.Leader
	}
	if req.Speaker != nil {
		seg.Song.Speaker = *req.Speaker
	}
	if req.Topic != nil {
		seg.Song.Topic = *req.Topic
	}
	if req.Notes != nil {
		seg.Song.Notes = *req.Notes
	}
	if req.Highlight != nil {
		seg.Song.Highlight = *req.Highlight
	}

	doc, err := model.MarshalSchedule(segments)
	if err != nil {
		log.Printf("[ERROR] marshal schedule: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan susunan acara")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.EventModel{}).
		Where("event_id = ?", event.EventID).
		Update("event_schedule", doc).Error; err != nil {
		log.Printf("[ERROR] update schedule: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan susunan acara")
	}

	return helper.JsonUpdated(c, "Segmen lagu berhasil diupdate", segments[index])
}

// 🟢 PUT /api/a/events/:id/schedule/:index/content — ganti isi segmen berpoin
func (ctrl *EventController) PutPrayerSegment(c *fiber.Ctx) error {
	event, fiberErr := ctrl.findEvent(c)
	if fiberErr != nil {
		return fiberErr
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Index segmen tidak valid")
	}

	var req dto.PrayerSegmentPutRequest
	if err := helper.ValidateRequest(c, &req); err != nil {
		return err
	}

	segments, err := model.ParseSchedule(event.EventSchedule)
	if err != nil {
		log.Printf("[ERROR] parse schedule: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca susunan acara")
	}
	if index < 0 || index >= len(segments) {
		return helper.JsonError(c, fiber.StatusNotFound, "Segmen tidak ditemukan")
	}
	seg := &segments[index]
	if seg.Prayer == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Segmen ini bukan konten berpoin")
	}

	seg.Prayer.Title = req.Title
	seg.Prayer.TitleTranslation = req.TitleTranslation
	seg.Prayer.Bilingual = req.Bilingual
	seg.Prayer.Points = req.Points

	doc, err := model.MarshalSchedule(segments)
	if err != nil {
		log.Printf("[ERROR] marshal schedule: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan susunan acara")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.EventModel{}).
		Where("event_id = ?", event.EventID).
		Update("event_schedule", doc).Error; err != nil {
		log.Printf("[ERROR] update schedule: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan susunan acara")
	}

	return helper.JsonUpdated(c, "Segmen konten berhasil diupdate", segments[index])
}

// 🟢 POST /api/a/events/:id/setlist/regenerate — aksi manual
// Beda dengan jalur webhook: error di sini disurfakan jelas ke pemanggil.
func (ctrl *EventController) RegenerateSetlist(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	result, err := setlistService.GenerateSetlist(c.UserContext(), ctrl.DB, eventID)
	if err != nil {
		switch {
		case errors.Is(err, setlistService.ErrEventNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		case errors.Is(err, setlistService.ErrNothingToGenerate):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Tidak ada item yang bisa digenerate dari susunan acara")
		case errors.Is(err, helper.ErrShareCodeExhausted):
			log.Printf("[ERROR] regenerate setlist: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Alokasi kode share gagal, ruang kode jenuh")
		default:
			log.Printf("[ERROR] regenerate setlist: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal generate setlist")
		}
	}

	return helper.JsonOK(c, "Setlist berhasil digenerate", result)
}

// findEvent: ambil event dari path param :id (validasi UUID di sini).
func (ctrl *EventController) findEvent(c *fiber.Ctx) (*model.EventModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}
	var event model.EventModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		log.Printf("[ERROR] get event: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	return &event, nil
}
