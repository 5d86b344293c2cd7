package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"acaraku_backend/internals/features/songs/model"
)

// 🔹 Request untuk membuat lagu
type SongRequest struct {
	SongTitle      string   `json:"song_title" validate:"required,max=255"`
	SongAuthor     string   `json:"song_author" validate:"max=255"`
	SongDefaultKey string   `json:"song_default_key" validate:"max=8"`
	SongTempo      int      `json:"song_tempo" validate:"gte=0,lte=300"`
	SongTags       []string `json:"song_tags"`
}

// 🔹 Request untuk mendaftarkan mapping ID katalog lama → lagu kanonik
type SongLegacyBridgeRequest struct {
	SongLegacyID          int       `json:"song_legacy_id" validate:"required,gt=0"`
	SongLegacyCanonicalID uuid.UUID `json:"song_legacy_canonical_id" validate:"required"`
}

// 🔹 Request resolve batch referensi mentah
type ResolveRefsRequest struct {
	Refs []string `json:"refs" validate:"required,min=1,max=200"`
}

// 🔹 Response lagu
type SongResponse struct {
	SongID         uuid.UUID `json:"song_id"`
	SongTitle      string    `json:"song_title"`
	SongAuthor     string    `json:"song_author"`
	SongDefaultKey string    `json:"song_default_key"`
	SongTempo      int       `json:"song_tempo"`
	SongTags       []string  `json:"song_tags"`
	SongCreatedAt  string    `json:"song_created_at"`
}

// 🔄 Konversi dari request → model
func (r *SongRequest) ToModel() *model.SongModel {
	return &model.SongModel{
		SongTitle:      r.SongTitle,
		SongAuthor:     r.SongAuthor,
		SongDefaultKey: r.SongDefaultKey,
		SongTempo:      r.SongTempo,
		SongTags:       pq.StringArray(r.SongTags),
	}
}

func (r *SongLegacyBridgeRequest) ToModel() *model.SongLegacyBridgeModel {
	return &model.SongLegacyBridgeModel{
		SongLegacyID:          r.SongLegacyID,
		SongLegacyCanonicalID: r.SongLegacyCanonicalID,
	}
}

// 🔄 Konversi dari model → response
func ToSongResponse(m *model.SongModel) *SongResponse {
	return &SongResponse{
		SongID:         m.SongID,
		SongTitle:      m.SongTitle,
		SongAuthor:     m.SongAuthor,
		SongDefaultKey: m.SongDefaultKey,
		SongTempo:      m.SongTempo,
		SongTags:       []string(m.SongTags),
		SongCreatedAt:  m.SongCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// 🔄 Konversi list model → list response
func ToSongResponseList(models []model.SongModel) []SongResponse {
	out := make([]SongResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToSongResponse(&models[i]))
	}
	return out
}
