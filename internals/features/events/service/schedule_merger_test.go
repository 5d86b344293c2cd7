package service

import (
	"testing"

	"acaraku_backend/internals/features/events/model"
)

func songSeg(ref, title, leader string) model.ScheduleSegment {
	return model.ScheduleSegment{
		Type: model.SegmentTypeSong,
		Song: &model.SongSegment{Title: title, FlowRef: ref, Leader: leader},
	}
}

func prayerSeg(title string) model.ScheduleSegment {
	return model.ScheduleSegment{
		Type:   model.SegmentTypePrayer,
		Prayer: &model.PrayerSegment{Title: title},
	}
}

func opening() model.ScheduleSegment {
	return model.ScheduleSegment{Type: model.SegmentTypeOpening}
}

func closing() model.ScheduleSegment {
	return model.ScheduleSegment{Type: model.SegmentTypeClosing}
}

func segTypes(segments []model.ScheduleSegment) []string {
	out := make([]string, 0, len(segments))
	for _, s := range segments {
		out = append(out, s.Type)
	}
	return out
}

func TestMergeScheduleReplacesSongsKeepsSentinels(t *testing.T) {
	current := []model.ScheduleSegment{
		opening(),
		songSeg("a", "Lagu A", "Budi"),
		songSeg("b", "Lagu B", "Sari"),
		prayerSeg("Doa Syafaat"),
		closing(),
	}
	external := []ExternalSongEntry{
		{Ref: "b", Title: "Lagu B (flow)", Key: "G", Transpose: 2},
		{Ref: "c", Title: "Lagu C", Key: "D"},
	}

	got := MergeSchedule(current, external)

	want := []string{
		model.SegmentTypeOpening,
		model.SegmentTypeSong,
		model.SegmentTypeSong,
		model.SegmentTypePrayer,
		model.SegmentTypeClosing,
	}
	if len(got) != len(want) {
		t.Fatalf("panjang hasil = %d, want %d (%v)", len(got), len(want), segTypes(got))
	}
	for i, typ := range want {
		if got[i].Type != typ {
			t.Fatalf("segmen %d = %q, want %q (%v)", i, got[i].Type, typ, segTypes(got))
		}
	}

	// lagu lama "a" hilang, urutan ikut flow
	if got[1].Song.FlowRef != "b" || got[2].Song.FlowRef != "c" {
		t.Fatalf("urutan lagu = [%s %s], want [b c]", got[1].Song.FlowRef, got[2].Song.FlowRef)
	}
	// judul dan nada ditimpa dari flow (G + 2 = A)
	if got[1].Song.Title != "Lagu B (flow)" || got[1].Song.Key != "A" {
		t.Fatalf("lagu b: title=%q key=%q, want title dari flow dan key A", got[1].Song.Title, got[1].Song.Key)
	}
	// editan user dibawa serta lewat flow_ref
	if got[1].Song.Leader != "Sari" {
		t.Fatalf("leader lagu b = %q, want Sari", got[1].Song.Leader)
	}
	if got[2].Song.Leader != "" {
		t.Fatalf("lagu baru c tidak boleh mewarisi editan, leader = %q", got[2].Song.Leader)
	}
	// doa ikut di posisi relatifnya (setelah 2 lagu)
	if got[3].Prayer == nil || got[3].Prayer.Title != "Doa Syafaat" {
		t.Fatalf("segmen doa hilang atau berubah: %+v", got[3])
	}
}

func TestMergeScheduleCarriesAllUserFields(t *testing.T) {
	current := []model.ScheduleSegment{
		opening(),
		{Type: model.SegmentTypeSong, Song: &model.SongSegment{
			Title: "Lama", FlowRef: "x",
			Leader: "Budi", Speaker: "Pak RT", Topic: "Syukur", Notes: "intro 2x", Highlight: true,
		}},
		closing(),
	}
	got := MergeSchedule(current, []ExternalSongEntry{{Ref: "x", Title: "Baru", Key: "C"}})

	song := got[1].Song
	if song.Title != "Baru" || song.Key != "C" {
		t.Fatalf("field flow harus ditimpa: %+v", song)
	}
	if song.Leader != "Budi" || song.Speaker != "Pak RT" || song.Topic != "Syukur" ||
		song.Notes != "intro 2x" || !song.Highlight {
		t.Fatalf("field user harus dibawa: %+v", song)
	}
}

func TestMergeScheduleEmptyExternalKeepsNonSongs(t *testing.T) {
	current := []model.ScheduleSegment{
		opening(),
		songSeg("a", "Lagu A", ""),
		prayerSeg("Doa"),
		songSeg("b", "Lagu B", ""),
		closing(),
	}
	got := MergeSchedule(current, nil)

	want := []string{model.SegmentTypeOpening, model.SegmentTypePrayer, model.SegmentTypeClosing}
	if len(got) != len(want) {
		t.Fatalf("hasil = %v, want %v", segTypes(got), want)
	}
	for i, typ := range want {
		if got[i].Type != typ {
			t.Fatalf("hasil = %v, want %v", segTypes(got), want)
		}
	}
}

func TestMergeScheduleClampsAnchor(t *testing.T) {
	// doa dulunya setelah 3 lagu; flow tinggal 1 lagu → doa jatuh tepat
	// sebelum penutup, bukan di luar jangkauan
	current := []model.ScheduleSegment{
		opening(),
		songSeg("a", "A", ""),
		songSeg("b", "B", ""),
		songSeg("c", "C", ""),
		prayerSeg("Doa"),
		closing(),
	}
	got := MergeSchedule(current, []ExternalSongEntry{{Ref: "a", Title: "A"}})

	want := []string{
		model.SegmentTypeOpening,
		model.SegmentTypeSong,
		model.SegmentTypePrayer,
		model.SegmentTypeClosing,
	}
	if len(got) != len(want) {
		t.Fatalf("hasil = %v, want %v", segTypes(got), want)
	}
	for i, typ := range want {
		if got[i].Type != typ {
			t.Fatalf("hasil = %v, want %v", segTypes(got), want)
		}
	}
}

func TestMergeScheduleMultipleNonSongsKeepRelativeOrder(t *testing.T) {
	current := []model.ScheduleSegment{
		opening(),
		prayerSeg("Doa Pembuka"),
		songSeg("a", "A", ""),
		{Type: model.SegmentTypeAnnouncement, Prayer: &model.PrayerSegment{Title: "Pengumuman"}},
		songSeg("b", "B", ""),
		prayerSeg("Doa Penutup"),
		closing(),
	}
	got := MergeSchedule(current, []ExternalSongEntry{
		{Ref: "a", Title: "A"},
		{Ref: "b", Title: "B"},
	})

	want := []string{
		model.SegmentTypeOpening,
		model.SegmentTypePrayer, // anchor 0
		model.SegmentTypeSong,
		model.SegmentTypeAnnouncement, // anchor 1
		model.SegmentTypeSong,
		model.SegmentTypePrayer, // anchor 2
		model.SegmentTypeClosing,
	}
	if len(got) != len(want) {
		t.Fatalf("hasil = %v, want %v", segTypes(got), want)
	}
	for i, typ := range want {
		if got[i].Type != typ {
			t.Fatalf("segmen %d = %q, want %q (%v)", i, got[i].Type, typ, segTypes(got))
		}
	}
}

func TestMergeScheduleIdempotent(t *testing.T) {
	current := []model.ScheduleSegment{
		opening(),
		songSeg("a", "A", "Budi"),
		prayerSeg("Doa"),
		closing(),
	}
	external := []ExternalSongEntry{
		{Ref: "a", Title: "A", Key: "C"},
		{Ref: "b", Title: "B", Key: "D"},
	}

	once := MergeSchedule(current, external)
	twice := MergeSchedule(once, external)

	if len(once) != len(twice) {
		t.Fatalf("merge ulang mengubah panjang: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Type != twice[i].Type {
			t.Fatalf("merge ulang mengubah urutan: %v vs %v", segTypes(once), segTypes(twice))
		}
		if once[i].Song != nil && *once[i].Song != *twice[i].Song {
			t.Fatalf("merge ulang mengubah lagu %d: %+v vs %+v", i, once[i].Song, twice[i].Song)
		}
	}
}

func TestMergeScheduleTooShortUnchanged(t *testing.T) {
	current := []model.ScheduleSegment{opening()}
	got := MergeSchedule(current, []ExternalSongEntry{{Ref: "a", Title: "A"}})
	if len(got) != 1 || got[0].Type != model.SegmentTypeOpening {
		t.Fatalf("jadwal tanpa penutup harus dikembalikan apa adanya: %v", segTypes(got))
	}
}
