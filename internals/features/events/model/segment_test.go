package model

import (
	"encoding/json"
	"testing"
)

func TestScheduleSegmentRoundTrip(t *testing.T) {
	doc := []byte(`[
		{"segment_type":"opening"},
		{"segment_type":"song","title":"Lagu A","key":"G","flow_ref":"42","leader":"Budi"},
		{"segment_type":"prayer","title":"Doa","bilingual":true,"points":[{"subtitle":"Poin 1","scripture_ref":"Mazmur 23:1"}]},
		{"segment_type":"closing"}
	]`)

	var segments []ScheduleSegment
	if err := json.Unmarshal(doc, &segments); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(segments) != 4 {
		t.Fatalf("jumlah segmen = %d, want 4", len(segments))
	}
	if segments[1].Song == nil || segments[1].Song.Title != "Lagu A" || segments[1].Song.FlowRef != "42" {
		t.Fatalf("segmen lagu salah parse: %+v", segments[1])
	}
	if segments[2].Prayer == nil || !segments[2].Prayer.Bilingual || len(segments[2].Prayer.Points) != 1 {
		t.Fatalf("segmen doa salah parse: %+v", segments[2])
	}
	if segments[2].Prayer.Points[0].ScriptureRef != "Mazmur 23:1" {
		t.Fatalf("poin doa salah parse: %+v", segments[2].Prayer.Points[0])
	}

	out, err := json.Marshal(segments)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again []ScheduleSegment
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("unmarshal ulang: %v", err)
	}
	if again[1].Song.Leader != "Budi" || again[2].Prayer.Title != "Doa" {
		t.Fatalf("round-trip menghilangkan field: %+v", again)
	}
}

func TestScheduleSegmentUnknownTypePassthrough(t *testing.T) {
	raw := []byte(`{"segment_type":"video","url":"https://example.com/v.mp4","duration":120}`)

	var seg ScheduleSegment
	if err := json.Unmarshal(raw, &seg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if seg.Type != "video" || seg.Song != nil || seg.Prayer != nil {
		t.Fatalf("tipe tak dikenal harus masuk Raw: %+v", seg)
	}

	out, err := json.Marshal(seg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var before, after map[string]any
	if err := json.Unmarshal(raw, &before); err != nil {
		t.Fatalf("unmarshal pembanding: %v", err)
	}
	if err := json.Unmarshal(out, &after); err != nil {
		t.Fatalf("unmarshal hasil: %v", err)
	}
	if len(before) != len(after) || after["url"] != before["url"] || after["duration"] != before["duration"] {
		t.Fatalf("payload tak dikenal berubah: %s → %s", raw, out)
	}
}

func TestParseScheduleEmpty(t *testing.T) {
	segments, err := ParseSchedule(nil)
	if err != nil {
		t.Fatalf("kolom kosong tidak boleh error: %v", err)
	}
	if len(segments) != 0 {
		t.Fatalf("kolom kosong = jadwal kosong, dapat %d segmen", len(segments))
	}
}
