package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"acaraku_backend/internals/features/events/model"
)

//
// ========= Request DTO =========
//

// 🔹 Request untuk membuat event
type EventRequest struct {
	EventTitle         string     `json:"event_title" validate:"required,max=255"`
	EventDescription   string     `json:"event_description"`
	EventLocation      string     `json:"event_location" validate:"max=255"`
	EventDate          *time.Time `json:"event_date"`
	EventFlowServiceID *uuid.UUID `json:"event_flow_service_id"`
}

// Request untuk partial update (PATCH) — gunakan pointer
type EventUpdateRequest struct {
	EventTitle         *string    `json:"event_title" validate:"omitempty,max=255"`
	EventDescription   *string    `json:"event_description"`
	EventLocation      *string    `json:"event_location" validate:"omitempty,max=255"`
	EventDate          *time.Time `json:"event_date"`
	EventFlowServiceID *uuid.UUID `json:"event_flow_service_id"`
}

// Patch field editan user pada satu segmen lagu (last-writer-wins per segmen).
type SongSegmentPatchRequest struct {
	Leader    *string `json:"leader"`
	Speaker   *string `json:"speaker"`
	Topic     *string `json:"topic"`
	Notes     *string `json:"notes"`
	Highlight *bool   `json:"highlight"`
}

// Ganti isi segmen berpoin (doa/pengumuman/dzikir) secara utuh.
type PrayerSegmentPutRequest struct {
	Title            string              `json:"title" validate:"required,max=255"`
	TitleTranslation string              `json:"title_translation"`
	Bilingual        bool                `json:"bilingual"`
	Points           []model.PrayerPoint `json:"points"`
}

//
// ========= Response DTO =========
//

type EventResponse struct {
	EventID            uuid.UUID               `json:"event_id"`
	EventTitle         string                  `json:"event_title"`
	EventSlug          string                  `json:"event_slug"`
	EventDescription   string                  `json:"event_description"`
	EventLocation      string                  `json:"event_location"`
	EventDate          *time.Time              `json:"event_date"`
	EventFlowServiceID *uuid.UUID              `json:"event_flow_service_id"`
	EventSetlistID     *uuid.UUID              `json:"event_setlist_id"`
	EventSchedule      []model.ScheduleSegment `json:"event_schedule"`
	EventCreatedAt     string                  `json:"event_created_at"`
	EventUpdatedAt     string                  `json:"event_updated_at"`
}

//
// ========= Helpers & Converters =========
//

// 🔄 Fungsi bantu generate slug dari judul
func GenerateSlug(title string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(title), " ", "-"))
}

// 🔄 Request → Model (Create). Jadwal awal: pembuka + penutup saja.
func (r *EventRequest) ToModel() (*model.EventModel, error) {
	schedule, err := model.MarshalSchedule([]model.ScheduleSegment{
		{Type: model.SegmentTypeOpening},
		{Type: model.SegmentTypeClosing},
	})
	if err != nil {
		return nil, err
	}
	return &model.EventModel{
		EventTitle:         r.EventTitle,
		EventSlug:          GenerateSlug(r.EventTitle),
		EventDescription:   r.EventDescription,
		EventLocation:      r.EventLocation,
		EventDate:          r.EventDate,
		EventFlowServiceID: r.EventFlowServiceID,
		EventSchedule:      schedule,
	}, nil
}

// 🔧 Terapkan PATCH ke Model (Partial Update)
func (r *EventUpdateRequest) ApplyToModel(m *model.EventModel) {
	if r.EventTitle != nil {
		m.EventTitle = *r.EventTitle
		m.EventSlug = GenerateSlug(*r.EventTitle)
	}
	if r.EventDescription != nil {
		m.EventDescription = *r.EventDescription
	}
	if r.EventLocation != nil {
		m.EventLocation = *r.EventLocation
	}
	if r.EventDate != nil {
		m.EventDate = r.EventDate
	}
	if r.EventFlowServiceID != nil {
		m.EventFlowServiceID = r.EventFlowServiceID
	}
}

// 🔄 Model → Response
func ToEventResponse(m *model.EventModel) (*EventResponse, error) {
	const timeFmt = "2006-01-02 15:04:05"
	segments, err := model.ParseSchedule(m.EventSchedule)
	if err != nil {
		return nil, err
	}
	return &EventResponse{
		EventID:            m.EventID,
		EventTitle:         m.EventTitle,
		EventSlug:          m.EventSlug,
		EventDescription:   m.EventDescription,
		EventLocation:      m.EventLocation,
		EventDate:          m.EventDate,
		EventFlowServiceID: m.EventFlowServiceID,
		EventSetlistID:     m.EventSetlistID,
		EventSchedule:      segments,
		EventCreatedAt:     m.EventCreatedAt.Format(timeFmt),
		EventUpdatedAt:     m.EventUpdatedAt.Format(timeFmt),
	}, nil
}

// 🔄 List Model → List Response
func ToEventResponseList(models []model.EventModel) ([]EventResponse, error) {
	out := make([]EventResponse, 0, len(models))
	for i := range models {
		resp, err := ToEventResponse(&models[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}
