package dto

import (
	"github.com/google/uuid"

	"acaraku_backend/internals/features/setlists/model"
)

//
// ========= Response DTO (konsumsi publik) =========
//
// Dokumen setlist harus self-contained: item lagu hanya bawa referensi
// (konsumen resolve sendiri), item presentasi bawa slide deck ter-inline
// supaya konsumen tidak perlu lookup lanjutan.
//

type SlideDeckInline struct {
	SlideDeckID    uuid.UUID     `json:"slide_deck_id"`
	SlideDeckTitle string        `json:"slide_deck_title"`
	Slides         []model.Slide `json:"slides"`
}

type SetlistPublicItem struct {
	Type      string           `json:"type"`
	SongID    *uuid.UUID       `json:"song_id,omitempty"`
	SlideDeck *SlideDeckInline `json:"slide_deck,omitempty"`
	Order     int              `json:"order"`
}

type SetlistPublicResponse struct {
	SetlistName      string              `json:"setlist_name"`
	SetlistShareCode string              `json:"setlist_share_code"`
	Items            []SetlistPublicItem `json:"items"`
}

// ToSetlistPublicResponse merangkai dokumen publik dari setlist + deck yang
// sudah dibaca. Item presentasi yang deck-nya hilang dilewati (jangan bikin
// konsumen gagal render hanya karena satu deck yatim).
func ToSetlistPublicResponse(sl *model.SetlistModel, items []model.SetlistItem, decks map[uuid.UUID]model.SlideDeckModel) (*SetlistPublicResponse, error) {
	out := make([]SetlistPublicItem, 0, len(items))
	for _, item := range items {
		switch item.Type {
		case model.SetlistItemTypeSong:
			out = append(out, SetlistPublicItem{
				Type:   item.Type,
				SongID: item.SongID,
				Order:  item.Order,
			})
		case model.SetlistItemTypePresentation:
			if item.SlideDeckID == nil {
				continue
			}
			deck, ok := decks[*item.SlideDeckID]
			if !ok {
				continue
			}
			slides, err := model.ParseSlides(deck.SlideDeckSlides)
			if err != nil {
				return nil, err
			}
			out = append(out, SetlistPublicItem{
				Type: item.Type,
				SlideDeck: &SlideDeckInline{
					SlideDeckID:    deck.SlideDeckID,
					SlideDeckTitle: deck.SlideDeckTitle,
					Slides:         slides,
				},
				Order: item.Order,
			})
		}
	}
	return &SetlistPublicResponse{
		SetlistName:      sl.SetlistName,
		SetlistShareCode: sl.SetlistShareCode,
		Items:            out,
	}, nil
}
