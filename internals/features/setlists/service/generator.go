package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "acaraku_backend/internals/features/events/model"
	setlistModel "acaraku_backend/internals/features/setlists/model"
	songService "acaraku_backend/internals/features/songs/service"
	helper "acaraku_backend/internals/helpers"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrNothingToGenerate = errors.New("nothing to generate: schedule has no displayable items")
)

const (
	shareCodeLength = 10
	// budget retry tabrakan kode — konstanta tuning, bukan invariant
	shareCodeMaxAttempts = 5
	shareTokenLength     = 40
)

type GenerateResult struct {
	SetlistID uuid.UUID `json:"setlist_id"`
	ShareCode string    `json:"share_code"`
	ItemCount int       `json:"item_count"`
}

// GenerateSetlist membangun ulang setlist sebuah event dalam SATU transaksi:
// resolve lagu batch, materialisasi segmen berpoin jadi slide deck, timpa
// (atau buat) setlist, lalu hapus deck generasi lama yang tak terpakai.
// Gagal di tengah → rollback total, tidak ada state parsial yang kelihatan.
// Idempoten: kode & token share tidak berubah saat regenerate.
func GenerateSetlist(ctx context.Context, db *gorm.DB, eventID uuid.UUID) (*GenerateResult, error) {
	var result *GenerateResult

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// transaksi ini bolak-balik berkali-kali (resolve, create deck per
		// segmen, GC deck lama) → longgarkan statement_timeout default
		if err := tx.Exec("SET LOCAL statement_timeout = '30s'").Error; err != nil {
			return err
		}

		var event eventModel.EventModel
		if err := tx.First(&event, "event_id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		segments, err := eventModel.ParseSchedule(event.EventSchedule)
		if err != nil {
			return err
		}
		if len(segments) == 0 {
			return ErrNothingToGenerate
		}

		// 1) generasi lama: catat deck presentasi sebagai kandidat hapus.
		//    Hapusnya NANTI setelah generasi baru jadi (delete-after-build).
		var existing *setlistModel.SetlistModel
		var oldDeckIDs []uuid.UUID
		if event.EventSetlistID != nil {
			var current setlistModel.SetlistModel
			if err := tx.First(&current, "setlist_id = ?", *event.EventSetlistID).Error; err == nil {
				existing = &current
				oldItems, err := setlistModel.ParseSetlistItems(current.SetlistItems)
				if err != nil {
					return err
				}
				for _, item := range oldItems {
					if item.Type == setlistModel.SetlistItemTypePresentation && item.SlideDeckID != nil {
						oldDeckIDs = append(oldDeckIDs, *item.SlideDeckID)
					}
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		// 2) resolve semua referensi lagu dalam satu batch
		var refs []string
		for _, seg := range segments {
			if seg.Type == eventModel.SegmentTypeSong && seg.Song != nil && seg.Song.FlowRef != "" {
				refs = append(refs, seg.Song.FlowRef)
			}
		}
		resolved, err := songService.ResolveRefs(tx, refs)
		if err != nil {
			return err
		}

		// 3+4) susun item baru; ID setlist & deck di-assign di aplikasi supaya
		// seluruh generasi baru bisa dirakit dulu sebelum menyentuh store
		setlistID := uuid.New()
		if existing != nil {
			setlistID = existing.SetlistID
		}

		var items []setlistModel.SetlistItem
		var newDecks []setlistModel.SlideDeckModel
		order := 0
		for _, seg := range segments {
			switch {
			case seg.Type == eventModel.SegmentTypeSong && seg.Song != nil:
				songID, ok := resolved[seg.Song.FlowRef]
				if !ok {
					// gagal resolve → lewati item ini, jangan batalkan semuanya
					log.Printf("[WARN] generate setlist: lagu %q tidak ter-resolve, dilewati", seg.Song.FlowRef)
					continue
				}
				id := songID
				items = append(items, setlistModel.SetlistItem{
					Type:   setlistModel.SetlistItemTypeSong,
					SongID: &id,
					Order:  order,
				})
				order++
			case seg.HasPoints():
				layoutItems := make([]LayoutItem, 0, len(seg.Prayer.Points))
				for _, p := range seg.Prayer.Points {
					layoutItems = append(layoutItems, LayoutItem{
						Subtitle:                 p.Subtitle,
						SubtitleTranslation:      p.SubtitleTranslation,
						Description:              p.Description,
						DescriptionTranslation:   p.DescriptionTranslation,
						ScriptureRef:             p.ScriptureRef,
						ScriptureRefTranslation:  p.ScriptureRefTranslation,
						ScriptureText:            p.ScriptureText,
						ScriptureTextTranslation: p.ScriptureTextTranslation,
					})
				}
				slides := BuildSlides(seg.Type, seg.Prayer.Title, seg.Prayer.TitleTranslation, layoutItems, seg.Prayer.Bilingual)
				slidesDoc, err := setlistModel.MarshalSlides(slides)
				if err != nil {
					return err
				}
				deckID := uuid.New()
				slID := setlistID
				newDecks = append(newDecks, setlistModel.SlideDeckModel{
					SlideDeckID:        deckID,
					SlideDeckSetlistID: &slID,
					SlideDeckTitle:     seg.Prayer.Title,
					SlideDeckSlides:    slidesDoc,
				})
				id := deckID
				items = append(items, setlistModel.SetlistItem{
					Type:        setlistModel.SetlistItemTypePresentation,
					SlideDeckID: &id,
					Order:       order,
				})
				order++
			}
		}
		if len(items) == 0 {
			return ErrNothingToGenerate
		}

		itemsDoc, err := setlistModel.MarshalSetlistItems(items)
		if err != nil {
			return err
		}

		shareCode := ""
		if existing != nil {
			// 5a) update in place: item & nama ditimpa, kode + token tetap
			shareCode = existing.SetlistShareCode
			if err := tx.Model(&setlistModel.SetlistModel{}).
				Where("setlist_id = ?", existing.SetlistID).
				Updates(map[string]any{
					"setlist_name":  event.EventTitle,
					"setlist_items": itemsDoc,
				}).Error; err != nil {
				return err
			}
		} else {
			// 5b) create baru: alokasi kode share (cek unik, retry terbatas)
			// + token share sekali seumur hidup setlist
			code, err := helper.AllocateUniqueCode(shareCodeMaxAttempts,
				func() (string, error) { return helper.RandomCode(shareCodeLength) },
				func(code string) (bool, error) {
					var n int64
					if err := tx.Model(&setlistModel.SetlistModel{}).
						Where("setlist_share_code = ?", code).
						Count(&n).Error; err != nil {
						return false, err
					}
					return n > 0, nil
				},
			)
			if err != nil {
				return err
			}
			token, err := helper.RandomCode(shareTokenLength)
			if err != nil {
				return err
			}
			shareCode = code
			newSetlist := setlistModel.SetlistModel{
				SetlistID:         setlistID,
				SetlistEventID:    event.EventID,
				SetlistName:       event.EventTitle,
				SetlistShareCode:  code,
				SetlistShareToken: token,
				SetlistItems:      itemsDoc,
			}
			if err := tx.Create(&newSetlist).Error; err != nil {
				return err
			}
			// 6) link event → setlist
			if err := tx.Model(&eventModel.EventModel{}).
				Where("event_id = ?", event.EventID).
				Update("event_setlist_id", setlistID).Error; err != nil {
				return err
			}
		}

		// buat deck generasi baru
		for i := range newDecks {
			if err := tx.Create(&newDecks[i]).Error; err != nil {
				return err
			}
		}

		// 7) GC deck generasi lama yang tidak dipakai lagi
		if len(oldDeckIDs) > 0 {
			reused := make(map[uuid.UUID]struct{}, len(newDecks))
			for _, d := range newDecks {
				reused[d.SlideDeckID] = struct{}{}
			}
			var toDelete []uuid.UUID
			for _, id := range oldDeckIDs {
				if _, ok := reused[id]; !ok {
					toDelete = append(toDelete, id)
				}
			}
			if len(toDelete) > 0 {
				if err := tx.Where("slide_deck_id IN ?", toDelete).
					Delete(&setlistModel.SlideDeckModel{}).Error; err != nil {
					return err
				}
			}
		}

		result = &GenerateResult{
			SetlistID: setlistID,
			ShareCode: shareCode,
			ItemCount: len(items),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
