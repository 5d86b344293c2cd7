package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type SongModel struct {
	SongID         uuid.UUID      `gorm:"column:song_id;type:uuid;default:gen_random_uuid();primaryKey" json:"song_id"`
	SongTitle      string         `gorm:"column:song_title;type:varchar(255);not null"                  json:"song_title"`
	SongAuthor     string         `gorm:"column:song_author;type:varchar(255)"                          json:"song_author"`
	SongDefaultKey string         `gorm:"column:song_default_key;type:varchar(8)"                       json:"song_default_key"`
	SongTempo      int            `gorm:"column:song_tempo"                                             json:"song_tempo"`
	SongTags       pq.StringArray `gorm:"column:song_tags;type:text[]"                                  json:"song_tags"`
	SongCreatedAt  time.Time      `gorm:"column:song_created_at;type:timestamptz;autoCreateTime"        json:"song_created_at"`
	SongUpdatedAt  time.Time      `gorm:"column:song_updated_at;type:timestamptz;autoUpdateTime"        json:"song_updated_at"`
	SongDeletedAt  gorm.DeletedAt `gorm:"column:song_deleted_at;type:timestamptz;index"                 json:"song_deleted_at,omitempty"`
}

func (SongModel) TableName() string {
	return "songs"
}
