package service

import (
	"context"
	"errors"
	"hash/fnv"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "acaraku_backend/internals/features/events/model"
	eventService "acaraku_backend/internals/features/events/service"
	"acaraku_backend/internals/features/flow/model"
	setlistService "acaraku_backend/internals/features/setlists/service"
)

const ReasonNoFlowService = "no_flow_service"

type SyncResult struct {
	EventsLinked  int    `json:"events_linked"`
	EventsUpdated int    `json:"events_updated"`
	Reason        string `json:"reason,omitempty"`
}

// SyncCoordinator menangani notifikasi perubahan dari sistem flow.
// NewCatalog dibuat per-transaksi supaya pembacaan katalog ikut di dalam
// critical section yang terkunci.
type SyncCoordinator struct {
	DB         *gorm.DB
	NewCatalog func(db *gorm.DB) SongCatalog
}

func NewSyncCoordinator(db *gorm.DB) *SyncCoordinator {
	return &SyncCoordinator{
		DB: db,
		NewCatalog: func(db *gorm.DB) SongCatalog {
			return NewGormSongCatalog(db)
		},
	}
}

// advisoryLockKey: hash stabil dari ID layanan untuk pg_advisory_xact_lock.
func advisoryLockKey(serviceID uuid.UUID) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(serviceID.String()))
	return int64(h.Sum64())
}

// HandleNotification: titik masuk notifikasi flow (fire-and-forget; flow yang
// retry kalau tidak dapat ack).
//
//   - kode tidak dikenal → sukses dengan 0 event (flow boleh saja menyebut
//     layanan yang tidak pernah didaftarkan ke aplikasi ini);
//   - critical section: advisory lock per layanan men-serialisasi notifikasi
//     konkuren untuk layanan yang sama; daftar event ter-link + daftar lagu
//     flow dibaca SEKALI di dalam lock sebagai snapshot konsisten;
//   - fan-out di luar lock: merge + generate per event, gagal satu event
//     tidak menggagalkan event lain.
func (s *SyncCoordinator) HandleNotification(ctx context.Context, serviceCode string) (*SyncResult, error) {
	var flowService model.FlowServiceModel
	if err := s.DB.WithContext(ctx).
		First(&flowService, "flow_service_code = ?", serviceCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[INFO] sync flow: kode %q tidak dikenal, tidak ada yang diupdate", serviceCode)
			return &SyncResult{Reason: ReasonNoFlowService}, nil
		}
		return nil, err
	}

	// ---- critical section (terkunci per layanan) ----
	var linkedEvents []eventModel.EventModel
	var songs []eventService.ExternalSongEntry
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// batas waktu pemegang lock supaya kompetitor tidak terblokir selamanya
		if err := tx.Exec("SET LOCAL statement_timeout = '30s'").Error; err != nil {
			return err
		}
		// serialisasi notifikasi untuk layanan yang sama; lepas otomatis
		// saat transaksi berakhir
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", advisoryLockKey(flowService.FlowServiceID)).Error; err != nil {
			return err
		}

		if err := tx.Where("event_flow_service_id = ?", flowService.FlowServiceID).
			Find(&linkedEvents).Error; err != nil {
			return err
		}

		catalog := s.NewCatalog(tx)
		list, err := catalog.ListServiceSongs(ctx, flowService.FlowServiceID)
		if err != nil {
			return err
		}
		songs = list
		return nil
	})
	if err != nil {
		return nil, err
	}

	// ---- fan-out (di luar lock, kerja lambat tidak menahan kompetitor) ----
	updated := 0
	for i := range linkedEvents {
		if err := s.syncOneEvent(ctx, &linkedEvents[i], songs); err != nil {
			log.Printf("[ERROR] sync flow %s: event %s gagal: %v",
				serviceCode, linkedEvents[i].EventID, err)
			continue
		}
		updated++
	}

	log.Printf("[INFO] sync flow %s: %d/%d event terupdate", serviceCode, updated, len(linkedEvents))
	return &SyncResult{EventsLinked: len(linkedEvents), EventsUpdated: updated}, nil
}

func (s *SyncCoordinator) syncOneEvent(ctx context.Context, event *eventModel.EventModel, songs []eventService.ExternalSongEntry) error {
	// merge hanya kalau flow punya lagu; setlist tetap digenerate ulang
	// supaya konten non-lagu ikut segar walau lagunya tidak berubah
	if len(songs) > 0 {
		segments, err := eventModel.ParseSchedule(event.EventSchedule)
		if err != nil {
			return err
		}
		merged := eventService.MergeSchedule(segments, songs)
		doc, err := eventModel.MarshalSchedule(merged)
		if err != nil {
			return err
		}
		if err := s.DB.WithContext(ctx).
			Model(&eventModel.EventModel{}).
			Where("event_id = ?", event.EventID).
			Update("event_schedule", doc).Error; err != nil {
			return err
		}
	}

	_, err := setlistService.GenerateSetlist(ctx, s.DB, event.EventID)
	if err != nil && !errors.Is(err, setlistService.ErrNothingToGenerate) {
		return err
	}
	return nil
}
