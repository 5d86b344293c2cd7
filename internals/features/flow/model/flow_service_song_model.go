package model

import (
	"github.com/google/uuid"
)

const FlowEntryTypeSong = "song"

// FlowServiceSongModel: isi layanan flow, storage milik katalog eksternal —
// aplikasi ini HANYA membaca (adapter read-only di service/catalog.go).
// Title/Key/Tempo nullable: katalog bisa belum me-resolve lagunya.
type FlowServiceSongModel struct {
	FlowServiceSongID        uuid.UUID `gorm:"column:flow_service_song_id;type:uuid;default:gen_random_uuid();primaryKey" json:"flow_service_song_id"`
	FlowServiceSongServiceID uuid.UUID `gorm:"column:flow_service_song_service_id;type:uuid;not null;index:idx_flow_service_songs_service_id" json:"flow_service_song_service_id"`
	FlowServiceSongPosition  int       `gorm:"column:flow_service_song_position;not null" json:"flow_service_song_position"`
	FlowServiceSongType      string    `gorm:"column:flow_service_song_type;type:varchar(16);not null" json:"flow_service_song_type"`
	FlowServiceSongRef       string    `gorm:"column:flow_service_song_ref;type:varchar(64);not null" json:"flow_service_song_ref"`
	FlowServiceSongTitle     *string   `gorm:"column:flow_service_song_title;type:varchar(255)" json:"flow_service_song_title"`
	FlowServiceSongKey       *string   `gorm:"column:flow_service_song_key;type:varchar(8)" json:"flow_service_song_key"`
	FlowServiceSongTempo     *int      `gorm:"column:flow_service_song_tempo" json:"flow_service_song_tempo"`
	FlowServiceSongTranspose int       `gorm:"column:flow_service_song_transpose" json:"flow_service_song_transpose"`
}

func (FlowServiceSongModel) TableName() string {
	return "flow_service_songs"
}
