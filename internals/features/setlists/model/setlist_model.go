package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SetlistModel struct {
	SetlistID      uuid.UUID `gorm:"column:setlist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"setlist_id"`
	SetlistEventID uuid.UUID `gorm:"column:setlist_event_id;type:uuid;not null;index:idx_setlists_event_id" json:"setlist_event_id"`
	SetlistName    string    `gorm:"column:setlist_name;type:varchar(255);not null" json:"setlist_name"`

	// Kode share publik (pendek, unik, bisa diketik) + token share (panjang,
	// tidak bisa ditebak, untuk link unlisted). Keduanya dialokasikan sekali
	// saat create dan tidak berubah saat regenerate.
	SetlistShareCode  string `gorm:"column:setlist_share_code;type:varchar(10);not null;uniqueIndex:ux_setlists_share_code" json:"setlist_share_code"`
	SetlistShareToken string `gorm:"column:setlist_share_token;type:varchar(64);not null" json:"-"`

	// Daftar item terurut (JSONB): lagu by-reference atau presentasi
	// by slide-deck-id. Ditimpa utuh setiap regenerate.
	SetlistItems datatypes.JSON `gorm:"column:setlist_items;type:jsonb" json:"setlist_items"`

	SetlistCreatedAt time.Time `gorm:"column:setlist_created_at;type:timestamptz;autoCreateTime" json:"setlist_created_at"`
	SetlistUpdatedAt time.Time `gorm:"column:setlist_updated_at;type:timestamptz;autoUpdateTime" json:"setlist_updated_at"`
}

func (SetlistModel) TableName() string {
	return "setlists"
}

const (
	SetlistItemTypeSong         = "song"
	SetlistItemTypePresentation = "presentation"
)

// SetlistItem: satu entri setlist. Item lagu hanya bawa referensi; item
// presentasi menunjuk slide deck standalone yang di-inline saat dibaca publik.
type SetlistItem struct {
	Type        string     `json:"type"`
	SongID      *uuid.UUID `json:"song_id,omitempty"`
	SlideDeckID *uuid.UUID `json:"slide_deck_id,omitempty"`
	Order       int        `json:"order"`
}

func ParseSetlistItems(doc datatypes.JSON) ([]SetlistItem, error) {
	if len(doc) == 0 {
		return nil, nil
	}
	var items []SetlistItem
	if err := json.Unmarshal(doc, &items); err != nil {
		return nil, fmt.Errorf("parse setlist items: %w", err)
	}
	return items, nil
}

func MarshalSetlistItems(items []SetlistItem) (datatypes.JSON, error) {
	if items == nil {
		items = []SetlistItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal setlist items: %w", err)
	}
	return datatypes.JSON(raw), nil
}
