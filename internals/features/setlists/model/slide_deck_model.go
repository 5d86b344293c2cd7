package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SlideDeckModel: deck hasil layout, resource standalone. Tidak pernah
// dimutasi setelah dibuat — regenerate selalu bikin deck baru lalu deck
// generasi lama dihapus.
type SlideDeckModel struct {
	SlideDeckID        uuid.UUID      `gorm:"column:slide_deck_id;type:uuid;default:gen_random_uuid();primaryKey" json:"slide_deck_id"`
	SlideDeckSetlistID *uuid.UUID     `gorm:"column:slide_deck_setlist_id;type:uuid;index:idx_slide_decks_setlist_id" json:"slide_deck_setlist_id"`
	SlideDeckTitle     string         `gorm:"column:slide_deck_title;type:varchar(255);not null" json:"slide_deck_title"`
	SlideDeckSlides    datatypes.JSON `gorm:"column:slide_deck_slides;type:jsonb" json:"slide_deck_slides"`
	SlideDeckCreatedAt time.Time      `gorm:"column:slide_deck_created_at;type:timestamptz;autoCreateTime" json:"slide_deck_created_at"`
}

func (SlideDeckModel) TableName() string {
	return "slide_decks"
}

// Arah & perataan teks pada region slide.
const (
	TextAlignLeft   = "left"
	TextAlignCenter = "center"
	TextAlignRight  = "right"

	TextDirectionLTR = "ltr"
	TextDirectionRTL = "rtl"
)

// SlideText: satu region teks dengan posisi absolut (x/y/width dalam persen
// canvas) — konsumen tinggal render tanpa tahu model jadwal.
type SlideText struct {
	TextID    string  `json:"text_id"`
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	FontSize  float64 `json:"font_size"`
	Color     string  `json:"color"`
	Align     string  `json:"align"`
	Direction string  `json:"direction"`
	ZIndex    int     `json:"z_index"`
}

type Slide struct {
	SlideID         string      `json:"slide_id"`
	BackgroundColor string      `json:"background_color"`
	Texts           []SlideText `json:"texts"`
}

func ParseSlides(doc datatypes.JSON) ([]Slide, error) {
	if len(doc) == 0 {
		return nil, nil
	}
	var slides []Slide
	if err := json.Unmarshal(doc, &slides); err != nil {
		return nil, fmt.Errorf("parse slides: %w", err)
	}
	return slides, nil
}

func MarshalSlides(slides []Slide) (datatypes.JSON, error) {
	if slides == nil {
		slides = []Slide{}
	}
	raw, err := json.Marshal(slides)
	if err != nil {
		return nil, fmt.Errorf("marshal slides: %w", err)
	}
	return datatypes.JSON(raw), nil
}
