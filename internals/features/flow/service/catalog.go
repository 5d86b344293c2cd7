package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	eventService "acaraku_backend/internals/features/events/service"
	"acaraku_backend/internals/features/flow/model"
)

// SongCatalog: port read-only ke storage katalog flow. Core tidak berasumsi
// teknologi storage-nya; adapter GORM di bawah kebetulan membaca tabel yang
// sama karena katalog di-deploy satu database.
type SongCatalog interface {
	ListServiceSongs(ctx context.Context, serviceID uuid.UUID) ([]eventService.ExternalSongEntry, error)
}

type GormSongCatalog struct {
	DB *gorm.DB
}

func NewGormSongCatalog(db *gorm.DB) *GormSongCatalog {
	return &GormSongCatalog{DB: db}
}

// ListServiceSongs membaca lagu sebuah layanan, terurut posisi. Entri selain
// tipe song disaring di sini — merger tidak perlu tahu.
func (c *GormSongCatalog) ListServiceSongs(ctx context.Context, serviceID uuid.UUID) ([]eventService.ExternalSongEntry, error) {
	var rows []model.FlowServiceSongModel
	if err := c.DB.WithContext(ctx).
		Where("flow_service_song_service_id = ? AND flow_service_song_type = ?", serviceID, model.FlowEntryTypeSong).
		Order("flow_service_song_position ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]eventService.ExternalSongEntry, 0, len(rows))
	for _, row := range rows {
		entry := eventService.ExternalSongEntry{
			Ref:       row.FlowServiceSongRef,
			Transpose: row.FlowServiceSongTranspose,
		}
		if row.FlowServiceSongTitle != nil {
			entry.Title = *row.FlowServiceSongTitle
		}
		if row.FlowServiceSongKey != nil {
			entry.Key = *row.FlowServiceSongKey
		}
		if row.FlowServiceSongTempo != nil {
			entry.Tempo = *row.FlowServiceSongTempo
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
