package model

import (
	"time"

	"github.com/google/uuid"
)

// Jembatan ID lama → ID kanonik. Lookup hanya satu arah (lama → kanonik);
// beberapa ID lama boleh menunjuk lagu kanonik yang sama.
type SongLegacyBridgeModel struct {
	SongLegacyID          int       `gorm:"column:song_legacy_id;primaryKey"                                   json:"song_legacy_id"`
	SongLegacyCanonicalID uuid.UUID `gorm:"column:song_legacy_canonical_id;type:uuid;not null;index:idx_song_legacy_canonical_id" json:"song_legacy_canonical_id"`
	SongLegacyCreatedAt   time.Time `gorm:"column:song_legacy_created_at;type:timestamptz;autoCreateTime"      json:"song_legacy_created_at"`
}

func (SongLegacyBridgeModel) TableName() string {
	return "song_legacy_bridge"
}
