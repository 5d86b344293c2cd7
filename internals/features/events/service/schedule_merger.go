package service

import (
	"acaraku_backend/internals/features/events/model"
)

// ExternalSongEntry: satu lagu dari katalog flow, sudah terurut dan
// ter-resolve (judul/nada bisa kosong kalau katalog belum me-resolve lagunya).
type ExternalSongEntry struct {
	Ref       string
	Title     string
	Key       string
	Tempo     int
	Transpose int
}

type anchoredSegment struct {
	segment model.ScheduleSegment
	anchor  int // jumlah segmen lagu sebelum segmen ini di jadwal lama
}

// MergeSchedule menggabungkan jadwal lokal dengan daftar lagu flow:
//   - segmen pembuka (indeks 0) dan penutup (indeks terakhir) tidak disentuh;
//   - segmen lagu diganti seluruhnya mengikuti urutan flow; field editan user
//     (leader, speaker, topic, notes, highlight) dibawa dari segmen lama yang
//     flow_ref-nya sama;
//   - segmen non-lagu disisipkan kembali di min(anchor, jumlah lagu baru)
//     ditambah offset sisipan sebelumnya, jadi urutan relatifnya terjaga.
//
// Fungsi ini murni: tidak menyentuh store, deterministik dari input.
func MergeSchedule(current []model.ScheduleSegment, external []ExternalSongEntry) []model.ScheduleSegment {
	if len(current) < 2 {
		// tidak ada pembuka+penutup → tidak ada yang bisa di-merge
		return current
	}

	opening := current[0]
	closing := current[len(current)-1]
	middle := current[1 : len(current)-1]

	edits := make(map[string]model.SongSegment)
	var nonSongs []anchoredSegment
	songCount := 0
	for _, seg := range middle {
		if seg.Type == model.SegmentTypeSong && seg.Song != nil {
			if seg.Song.FlowRef != "" {
				edits[seg.Song.FlowRef] = *seg.Song
			}
			songCount++
			continue
		}
		nonSongs = append(nonSongs, anchoredSegment{segment: seg, anchor: songCount})
	}

	merged := make([]model.ScheduleSegment, 0, len(external)+len(nonSongs))
	for _, entry := range external {
		song := model.SongSegment{
			Title:   entry.Title,
			Key:     TransposeKey(entry.Key, entry.Transpose),
			Tempo:   entry.Tempo,
			FlowRef: entry.Ref,
		}
		if old, ok := edits[entry.Ref]; ok {
			song.Leader = old.Leader
			song.Speaker = old.Speaker
			song.Topic = old.Topic
			song.Notes = old.Notes
			song.Highlight = old.Highlight
		}
		merged = append(merged, model.ScheduleSegment{Type: model.SegmentTypeSong, Song: &song})
	}

	for i, ns := range nonSongs {
		pos := ns.anchor
		if pos > len(external) {
			pos = len(external) // clamp: anchor melewati jumlah lagu baru → tepat sebelum penutup
		}
		pos += i
		merged = append(merged, model.ScheduleSegment{})
		copy(merged[pos+1:], merged[pos:])
		merged[pos] = ns.segment
	}

	out := make([]model.ScheduleSegment, 0, len(merged)+2)
	out = append(out, opening)
	out = append(out, merged...)
	out = append(out, closing)
	return out
}
