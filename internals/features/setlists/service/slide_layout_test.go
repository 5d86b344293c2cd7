package service

import (
	"testing"

	eventModel "acaraku_backend/internals/features/events/model"
	"acaraku_backend/internals/features/setlists/model"
)

func findText(t *testing.T, slide model.Slide, text string) model.SlideText {
	t.Helper()
	for _, st := range slide.Texts {
		if st.Text == text {
			return st
		}
	}
	t.Fatalf("teks %q tidak ditemukan di slide %+v", text, slide.Texts)
	return model.SlideText{}
}

func TestBuildSlidesOneSlidePerPoint(t *testing.T) {
	items := []LayoutItem{
		{Subtitle: "Poin satu"},
		{Subtitle: "Poin dua"},
		{Subtitle: "Poin tiga"},
	}
	slides := BuildSlides(eventModel.SegmentTypePrayer, "Doa Syafaat", "", items, false)
	if len(slides) != 3 {
		t.Fatalf("jumlah slide = %d, want 3", len(slides))
	}
	for _, slide := range slides {
		if slide.BackgroundColor != "#1B3A5C" {
			t.Fatalf("background doa = %q, want #1B3A5C", slide.BackgroundColor)
		}
	}
	// subtitle doa bernomor
	findText(t, slides[0], "1. Poin satu")
	findText(t, slides[2], "3. Poin tiga")
}

func TestBuildSlidesSubtitlePrefixes(t *testing.T) {
	items := []LayoutItem{{Subtitle: "Kerja bakti"}}

	ann := BuildSlides(eventModel.SegmentTypeAnnouncement, "Pengumuman", "", items, false)
	findText(t, ann[0], "• Kerja bakti")
	if ann[0].BackgroundColor != "#4A2F5C" {
		t.Fatalf("background pengumuman = %q", ann[0].BackgroundColor)
	}

	dhikr := BuildSlides(eventModel.SegmentTypeDhikr, "Dzikir", "", items, false)
	// dzikir tanpa prefix, rata tengah
	st := findText(t, dhikr[0], "Kerja bakti")
	if st.Align != model.TextAlignCenter {
		t.Fatalf("align dzikir = %q, want center", st.Align)
	}
	if dhikr[0].BackgroundColor != "#1F4D3A" {
		t.Fatalf("background dzikir = %q", dhikr[0].BackgroundColor)
	}

	other := BuildSlides("liturgy", "Liturgi", "", items, false)
	findText(t, other[0], "Kerja bakti")
	if other[0].BackgroundColor != slideDefaultBackground {
		t.Fatalf("background default = %q", other[0].BackgroundColor)
	}
}

func TestBuildSlidesOmitsEmptyRegions(t *testing.T) {
	slides := BuildSlides(eventModel.SegmentTypePrayer, "Doa", "", []LayoutItem{{Subtitle: "Poin"}}, false)
	if len(slides[0].Texts) != 2 {
		t.Fatalf("poin tanpa uraian/ayat harus cuma judul+subtitle, dapat %d region", len(slides[0].Texts))
	}
}

func TestBuildSlidesScriptureShiftsBelowDescription(t *testing.T) {
	withDesc := BuildSlides(eventModel.SegmentTypePrayer, "Doa", "", []LayoutItem{{
		Subtitle: "Poin", Description: "Uraian", ScriptureRef: "Mazmur 23:1",
	}}, false)
	withoutDesc := BuildSlides(eventModel.SegmentTypePrayer, "Doa", "", []LayoutItem{{
		Subtitle: "Poin", ScriptureRef: "Mazmur 23:1",
	}}, false)

	shifted := findText(t, withDesc[0], "Mazmur 23:1")
	normal := findText(t, withoutDesc[0], "Mazmur 23:1")
	if shifted.Y <= normal.Y {
		t.Fatalf("rujukan ayat harus turun saat ada uraian: %v vs %v", shifted.Y, normal.Y)
	}
}

func TestBuildSlidesArabicRTL(t *testing.T) {
	slides := BuildSlides(eventModel.SegmentTypeDhikr, "Dzikir", "", []LayoutItem{{
		Subtitle: "سبحان الله",
	}}, false)
	st := findText(t, slides[0], "سبحان الله")
	if st.Direction != model.TextDirectionRTL {
		t.Fatalf("aksara Arab harus RTL, dapat %q", st.Direction)
	}

	latin := BuildSlides(eventModel.SegmentTypeDhikr, "Dzikir", "", []LayoutItem{{
		Subtitle: "Subhanallah",
	}}, false)
	st = findText(t, latin[0], "Subhanallah")
	if st.Direction != model.TextDirectionLTR {
		t.Fatalf("aksara Latin harus LTR, dapat %q", st.Direction)
	}
}

func TestBuildSlidesBilingualColumns(t *testing.T) {
	slides := BuildSlides(eventModel.SegmentTypePrayer, "Doa", "Prayer", []LayoutItem{{
		Subtitle:            "Poin pertama",
		SubtitleTranslation: "First point",
	}}, true)

	orig := findText(t, slides[0], "1. Poin pertama")
	trans := findText(t, slides[0], "First point")
	if orig.X != xColLeft || trans.X != xColRight {
		t.Fatalf("subtitle Latin di kiri, terjemahan di kanan: orig.X=%v trans.X=%v", orig.X, trans.X)
	}
	if orig.Width != wCol || trans.Width != wCol {
		t.Fatalf("lebar kolom = %v/%v, want %v", orig.Width, trans.Width, wCol)
	}
}

func TestBuildSlidesBilingualArabicSwapsSides(t *testing.T) {
	slides := BuildSlides(eventModel.SegmentTypeDhikr, "ذكر", "Dhikr", []LayoutItem{{
		Subtitle:            "الحمد لله",
		SubtitleTranslation: "Segala puji bagi Allah",
	}}, true)

	orig := findText(t, slides[0], "الحمد لله")
	trans := findText(t, slides[0], "Segala puji bagi Allah")
	if orig.X != xColRight || trans.X != xColLeft {
		t.Fatalf("subtitle Arab di kanan, terjemahan di kiri: orig.X=%v trans.X=%v", orig.X, trans.X)
	}
	if orig.Direction != model.TextDirectionRTL || trans.Direction != model.TextDirectionLTR {
		t.Fatalf("arah kolom: orig=%q trans=%q", orig.Direction, trans.Direction)
	}
}

func TestBuildSlidesBilingualPlaceholderAndScriptureFallback(t *testing.T) {
	slides := BuildSlides(eventModel.SegmentTypePrayer, "Doa", "", []LayoutItem{{
		Subtitle:      "Poin",
		ScriptureText: "TUHAN adalah gembalaku",
	}}, true)

	// judul/subtitle tanpa terjemahan → placeholder
	findText(t, slides[0], translationPlaceholder)

	// isi ayat tanpa terjemahan → duplikasi teks asli di kedua sisi
	count := 0
	for _, st := range slides[0].Texts {
		if st.Text == "TUHAN adalah gembalaku" {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("isi ayat tanpa terjemahan harus tampil di kedua kolom, dapat %d", count)
	}
}

func TestBuildSlidesDeterministicExceptIDs(t *testing.T) {
	items := []LayoutItem{{Subtitle: "Poin", Description: "Uraian", ScriptureRef: "Yakobus 1:5"}}
	a := BuildSlides(eventModel.SegmentTypePrayer, "Doa", "", items, false)
	b := BuildSlides(eventModel.SegmentTypePrayer, "Doa", "", items, false)

	if len(a) != len(b) || len(a[0].Texts) != len(b[0].Texts) {
		t.Fatalf("bentuk output berubah antar panggilan")
	}
	if a[0].SlideID == b[0].SlideID {
		t.Fatalf("slide_id harus fresh tiap panggilan")
	}
	for i := range a[0].Texts {
		ta, tb := a[0].Texts[i], b[0].Texts[i]
		ta.TextID, tb.TextID = "", ""
		if ta != tb {
			t.Fatalf("region %d beda di luar ID: %+v vs %+v", i, ta, tb)
		}
	}
}
