package model

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// Tipe segmen yang dipahami pipeline. Tipe lain tetap lewat apa adanya
// (round-trip lewat Raw) supaya dokumen milik fitur lain tidak rusak.
const (
	SegmentTypeSong         = "song"
	SegmentTypePrayer       = "prayer"
	SegmentTypeAnnouncement = "announcement"
	SegmentTypeDhikr        = "dhikr"
	SegmentTypeOpening      = "opening"
	SegmentTypeClosing      = "closing"
)

// SongSegment: segmen lagu. Title/Key/Tempo milik sistem flow (ditimpa saat
// merge); Leader/Speaker/Topic/Notes/Highlight milik editor lokal (dibawa
// serta saat merge).
type SongSegment struct {
	Title     string `json:"title"`
	Key       string `json:"key,omitempty"`
	Tempo     int    `json:"tempo,omitempty"`
	FlowRef   string `json:"flow_ref,omitempty"`
	Leader    string `json:"leader,omitempty"`
	Speaker   string `json:"speaker,omitempty"`
	Topic     string `json:"topic,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Highlight bool   `json:"highlight,omitempty"`
}

// PrayerPoint: satu poin konten (subjudul + uraian + rujukan ayat),
// lengkap dengan terjemahan yang sudah disuplai editor.
type PrayerPoint struct {
	Subtitle                 string `json:"subtitle"`
	SubtitleTranslation      string `json:"subtitle_translation,omitempty"`
	Description              string `json:"description,omitempty"`
	DescriptionTranslation   string `json:"description_translation,omitempty"`
	ScriptureRef             string `json:"scripture_ref,omitempty"`
	ScriptureRefTranslation  string `json:"scripture_ref_translation,omitempty"`
	ScriptureText            string `json:"scripture_text,omitempty"`
	ScriptureTextTranslation string `json:"scripture_text_translation,omitempty"`
}

// PrayerSegment: segmen konten berpoin (doa, pengumuman, dzikir).
type PrayerSegment struct {
	Title            string        `json:"title"`
	TitleTranslation string        `json:"title_translation,omitempty"`
	Bilingual        bool          `json:"bilingual,omitempty"`
	Points           []PrayerPoint `json:"points,omitempty"`
}

// ScheduleSegment: satu entri susunan acara, tagged union per segment_type.
// Tepat satu dari Song/Prayer terisi untuk tipe yang dikenal; tipe lain
// disimpan utuh di Raw.
type ScheduleSegment struct {
	Type   string
	Song   *SongSegment
	Prayer *PrayerSegment
	Raw    json.RawMessage
}

// HasPoints: segmen berpoin yang layak dijadikan slide deck.
func (s ScheduleSegment) HasPoints() bool {
	return s.Prayer != nil && len(s.Prayer.Points) > 0
}

type segmentEnvelope struct {
	Type string `json:"segment_type"`
}

type songEnvelope struct {
	Type string `json:"segment_type"`
	*SongSegment
}

type prayerEnvelope struct {
	Type string `json:"segment_type"`
	*PrayerSegment
}

func (s ScheduleSegment) MarshalJSON() ([]byte, error) {
	switch {
	case s.Song != nil:
		return json.Marshal(songEnvelope{Type: s.Type, SongSegment: s.Song})
	case s.Prayer != nil:
		return json.Marshal(prayerEnvelope{Type: s.Type, PrayerSegment: s.Prayer})
	case len(s.Raw) > 0:
		return s.Raw, nil
	default:
		return json.Marshal(segmentEnvelope{Type: s.Type})
	}
}

func (s *ScheduleSegment) UnmarshalJSON(data []byte) error {
	var env segmentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("segment envelope: %w", err)
	}
	s.Type = env.Type
	s.Song = nil
	s.Prayer = nil
	s.Raw = nil

	switch env.Type {
	case SegmentTypeSong:
		var song SongSegment
		if err := json.Unmarshal(data, &song); err != nil {
			return fmt.Errorf("song segment: %w", err)
		}
		s.Song = &song
	case SegmentTypePrayer, SegmentTypeAnnouncement, SegmentTypeDhikr:
		var prayer PrayerSegment
		if err := json.Unmarshal(data, &prayer); err != nil {
			return fmt.Errorf("prayer segment: %w", err)
		}
		s.Prayer = &prayer
	default:
		// simpan payload asli supaya tipe yang belum dikenal tetap utuh
		s.Raw = append(json.RawMessage(nil), data...)
	}
	return nil
}

// ParseSchedule membaca kolom JSONB event_schedule menjadi daftar segmen.
// Kolom kosong dianggap jadwal kosong, bukan error.
func ParseSchedule(doc datatypes.JSON) ([]ScheduleSegment, error) {
	if len(doc) == 0 {
		return nil, nil
	}
	var segments []ScheduleSegment
	if err := json.Unmarshal(doc, &segments); err != nil {
		return nil, fmt.Errorf("parse schedule: %w", err)
	}
	return segments, nil
}

// MarshalSchedule menulis daftar segmen kembali ke bentuk kolom JSONB.
func MarshalSchedule(segments []ScheduleSegment) (datatypes.JSON, error) {
	if segments == nil {
		segments = []ScheduleSegment{}
	}
	raw, err := json.Marshal(segments)
	if err != nil {
		return nil, fmt.Errorf("marshal schedule: %w", err)
	}
	return datatypes.JSON(raw), nil
}
