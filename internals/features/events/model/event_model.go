package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventModel struct {
	EventID          uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventTitle       string    `gorm:"column:event_title;type:varchar(255);not null"                  json:"event_title"`
	EventSlug        string    `gorm:"column:event_slug;type:varchar(100);not null"                   json:"event_slug"`
	EventDescription string    `gorm:"column:event_description;type:text"                             json:"event_description"`
	EventLocation    string    `gorm:"column:event_location;type:varchar(255)"                        json:"event_location"`
	EventDate        *time.Time `gorm:"column:event_date;type:timestamptz"                            json:"event_date"`

	// Susunan acara: dokumen JSONB berisi daftar segmen terurut.
	// Elemen pertama & terakhir adalah segmen pembuka/penutup yang tidak
	// pernah disentuh proses merge.
	EventSchedule datatypes.JSON `gorm:"column:event_schedule;type:jsonb" json:"event_schedule"`

	// Link ke layanan flow eksternal (nullable; satu flow bisa dipakai banyak event)
	EventFlowServiceID *uuid.UUID `gorm:"column:event_flow_service_id;type:uuid;index:idx_events_flow_service_id" json:"event_flow_service_id"`

	// Link ke setlist hasil generate (nullable; diisi saat generate pertama)
	EventSetlistID *uuid.UUID `gorm:"column:event_setlist_id;type:uuid" json:"event_setlist_id"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;type:timestamptz;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;type:timestamptz;index"          json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}
