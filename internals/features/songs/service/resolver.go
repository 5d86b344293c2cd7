package service

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"acaraku_backend/internals/features/songs/model"
)

// ClassifyRef memilah referensi lagu mentah dari sistem flow:
// UUID kanonik (dinormalisasi lowercase) atau ID integer katalog lama.
// Referensi yang bukan keduanya dianggap tidak dikenal, bukan error.
func ClassifyRef(raw string) (canonical *uuid.UUID, legacy *int) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	if id, err := uuid.Parse(trimmed); err == nil {
		return &id, nil
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return nil, &n
	}
	return nil, nil
}

// ResolveRefs me-resolve sekumpulan referensi sekaligus (satu pass sync =
// satu batch, bukan satu-satu): ID lama di-lookup lewat tabel jembatan dalam
// satu query, lalu semua kandidat dicek masih ada di tabel songs.
// Referensi yang gagal resolve tidak muncul di hasil. Read-only.
func ResolveRefs(db *gorm.DB, refs []string) (map[string]uuid.UUID, error) {
	out := make(map[string]uuid.UUID, len(refs))
	if len(refs) == 0 {
		return out, nil
	}

	candidates := make(map[string]uuid.UUID, len(refs)) // ref → kandidat kanonik
	var legacyIDs []int
	legacyByRef := make(map[string]int)
	for _, ref := range refs {
		canonical, legacy := ClassifyRef(ref)
		switch {
		case canonical != nil:
			candidates[ref] = *canonical
		case legacy != nil:
			legacyIDs = append(legacyIDs, *legacy)
			legacyByRef[ref] = *legacy
		}
	}

	if len(legacyIDs) > 0 {
		var rows []model.SongLegacyBridgeModel
		if err := db.Where("song_legacy_id IN ?", legacyIDs).Find(&rows).Error; err != nil {
			return nil, err
		}
		bridged := make(map[int]uuid.UUID, len(rows))
		for _, row := range rows {
			bridged[row.SongLegacyID] = row.SongLegacyCanonicalID
		}
		for ref, legacyID := range legacyByRef {
			if canonical, ok := bridged[legacyID]; ok {
				candidates[ref] = canonical
			}
		}
	}

	if len(candidates) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	for _, id := range candidates {
		ids = append(ids, id)
	}
	var existing []uuid.UUID
	if err := db.Model(&model.SongModel{}).
		Where("song_id IN ?", ids).
		Pluck("song_id", &existing).Error; err != nil {
		return nil, err
	}
	alive := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		alive[id] = struct{}{}
	}

	for ref, id := range candidates {
		if _, ok := alive[id]; ok {
			out[ref] = id
		}
	}
	return out, nil
}

// ResolveRef: varian tunggal; nil kalau referensi tidak bisa di-resolve.
func ResolveRef(db *gorm.DB, ref string) (*uuid.UUID, error) {
	resolved, err := ResolveRefs(db, []string{ref})
	if err != nil {
		return nil, err
	}
	if id, ok := resolved[ref]; ok {
		return &id, nil
	}
	return nil, nil
}
