package service

import (
	"fmt"

	"github.com/google/uuid"

	eventModel "acaraku_backend/internals/features/events/model"
	"acaraku_backend/internals/features/setlists/model"
)

// Satu slide per poin. Semua posisi/ukuran dalam persen canvas supaya
// konsumen bebas resolusi. Output deterministik dari input kecuali
// slide_id/text_id yang selalu fresh.

const translationPlaceholder = "[terjemahan belum tersedia]"

// Palet background per tipe konten.
var slidePalette = map[string]string{
	eventModel.SegmentTypePrayer:       "#1B3A5C",
	eventModel.SegmentTypeAnnouncement: "#4A2F5C",
	eventModel.SegmentTypeDhikr:        "#1F4D3A",
}

const slideDefaultBackground = "#1E1E1E"

// Warna & ukuran region
const (
	colorTitle       = "#FFFFFF"
	colorSubtitle    = "#FFD166"
	colorDescription = "#EAEAEA"
	colorScripture   = "#BFD7EA"

	fontTitle         = 42.0
	fontSubtitle      = 34.0
	fontDescription   = 26.0
	fontScriptureRef  = 22.0
	fontScriptureText = 24.0
)

// Posisi vertikal (persen)
const (
	yTitle         = 8.0
	ySubtitle      = 26.0
	yDescription   = 44.0
	yScriptureRef  = 66.0
	yScriptureText = 74.0
	// kalau ada description, rujukan ayat turun supaya tidak tabrakan
	yScriptureRefShifted  = 74.0
	yScriptureTextShifted = 82.0
)

// Kolom mode bilingual
const (
	xFull     = 5.0
	wFull     = 90.0
	xColLeft  = 2.0
	xColRight = 52.0
	wCol      = 46.0
)

// LayoutItem: satu poin konten siap layout (terjemahan sudah disuplai editor,
// engine tidak menerjemahkan apa pun).
type LayoutItem struct {
	Subtitle                 string
	SubtitleTranslation      string
	Description              string
	DescriptionTranslation   string
	ScriptureRef             string
	ScriptureRefTranslation  string
	ScriptureText            string
	ScriptureTextTranslation string
}

// containsArabic: deteksi aksara Arab (rentang utama + suplemen + presentasi).
func containsArabic(s string) bool {
	for _, r := range s {
		switch {
		case r >= 0x0600 && r <= 0x06FF,
			r >= 0x0750 && r <= 0x077F,
			r >= 0x08A0 && r <= 0x08FF,
			r >= 0xFB50 && r <= 0xFDFF,
			r >= 0xFE70 && r <= 0xFEFF:
			return true
		}
	}
	return false
}

func subtitlePrefix(contentType string, index int) string {
	switch contentType {
	case eventModel.SegmentTypePrayer:
		return fmt.Sprintf("%d. ", index+1)
	case eventModel.SegmentTypeAnnouncement:
		return "• "
	default:
		return ""
	}
}

func backgroundFor(contentType string) string {
	if bg, ok := slidePalette[contentType]; ok {
		return bg
	}
	return slideDefaultBackground
}

func directionFor(text string) string {
	if containsArabic(text) {
		return model.TextDirectionRTL
	}
	return model.TextDirectionLTR
}

func alignForDirection(dir string) string {
	if dir == model.TextDirectionRTL {
		return model.TextAlignRight
	}
	return model.TextAlignLeft
}

// BuildSlides menyusun deck dari konten terstruktur. Tidak pernah gagal:
// field opsional yang kosong → region-nya dihilangkan atau diganti
// placeholder, bukan error.
func BuildSlides(contentType, title, titleTranslation string, items []LayoutItem, bilingual bool) []model.Slide {
	bg := backgroundFor(contentType)
	slides := make([]model.Slide, 0, len(items))
	for i, item := range items {
		subtitle := subtitlePrefix(contentType, i) + item.Subtitle
		var texts []model.SlideText
		if bilingual {
			texts = bilingualTexts(title, titleTranslation, subtitle, item)
		} else {
			texts = singleTexts(contentType, title, subtitle, item)
		}
		slides = append(slides, model.Slide{
			SlideID:         uuid.NewString(),
			BackgroundColor: bg,
			Texts:           texts,
		})
	}
	return slides
}

func singleTexts(contentType, title, subtitle string, item LayoutItem) []model.SlideText {
	// arah & perataan slide ditentukan dari aksara subtitle poinnya sendiri;
	// untuk dzikir semua region rata tengah, hanya arah internal yang beda
	dir := directionFor(item.Subtitle)
	align := alignForDirection(dir)
	if contentType == eventModel.SegmentTypeDhikr {
		align = model.TextAlignCenter
	}

	texts := []model.SlideText{
		region(title, xFull, yTitle, wFull, fontTitle, colorTitle, align, dir, 1),
		region(subtitle, xFull, ySubtitle, wFull, fontSubtitle, colorSubtitle, align, dir, 2),
	}

	refY, refTextY := yScriptureRef, yScriptureText
	if item.Description != "" {
		texts = append(texts, region(item.Description, xFull, yDescription, wFull, fontDescription, colorDescription, align, dir, 3))
		refY, refTextY = yScriptureRefShifted, yScriptureTextShifted
	}
	if item.ScriptureRef != "" {
		texts = append(texts, region(item.ScriptureRef, xFull, refY, wFull, fontScriptureRef, colorScripture, align, dir, 4))
	}
	if item.ScriptureText != "" {
		texts = append(texts, region(item.ScriptureText, xFull, refTextY, wFull, fontScriptureText, colorScripture, align, dir, 5))
	}
	return texts
}

func bilingualTexts(title, titleTranslation, subtitle string, item LayoutItem) []model.SlideText {
	// sisi yang arah bacanya cocok dengan aksara subtitle menampilkan teks
	// asli; sisi seberangnya menampilkan terjemahan
	originalX := xColLeft
	translatedX := xColRight
	if containsArabic(item.Subtitle) {
		originalX = xColRight
		translatedX = xColLeft
	}

	translatedTitle := fallback(titleTranslation)
	translatedSubtitle := fallback(item.SubtitleTranslation)

	texts := []model.SlideText{
		column(title, originalX, yTitle, fontTitle, colorTitle, 1),
		column(translatedTitle, translatedX, yTitle, fontTitle, colorTitle, 1),
		column(subtitle, originalX, ySubtitle, fontSubtitle, colorSubtitle, 2),
		column(translatedSubtitle, translatedX, ySubtitle, fontSubtitle, colorSubtitle, 2),
	}

	refY, refTextY := yScriptureRef, yScriptureText
	if item.Description != "" {
		texts = append(texts,
			column(item.Description, originalX, yDescription, fontDescription, colorDescription, 3),
			column(fallback(item.DescriptionTranslation), translatedX, yDescription, fontDescription, colorDescription, 3),
		)
		refY, refTextY = yScriptureRefShifted, yScriptureTextShifted
	}

	// rujukan ayat & isi ayat diduplikasi di kedua sisi: sisi asli pakai teks
	// asli, sisi terjemahan pakai terjemahan yang sudah disuplai (fallback ke
	// teks asli kalau belum ada)
	if item.ScriptureRef != "" {
		translatedRef := item.ScriptureRefTranslation
		if translatedRef == "" {
			translatedRef = item.ScriptureRef
		}
		texts = append(texts,
			column(item.ScriptureRef, originalX, refY, fontScriptureRef, colorScripture, 4),
			column(translatedRef, translatedX, refY, fontScriptureRef, colorScripture, 4),
		)
	}
	if item.ScriptureText != "" {
		translatedText := item.ScriptureTextTranslation
		if translatedText == "" {
			translatedText = item.ScriptureText
		}
		texts = append(texts,
			column(item.ScriptureText, originalX, refTextY, fontScriptureText, colorScripture, 5),
			column(translatedText, translatedX, refTextY, fontScriptureText, colorScripture, 5),
		)
	}
	return texts
}

func fallback(translated string) string {
	if translated == "" {
		return translationPlaceholder
	}
	return translated
}

func region(text string, x, y, width, fontSize float64, color, align, dir string, z int) model.SlideText {
	return model.SlideText{
		TextID:    uuid.NewString(),
		Text:      text,
		X:         x,
		Y:         y,
		Width:     width,
		FontSize:  fontSize,
		Color:     color,
		Align:     align,
		Direction: dir,
		ZIndex:    z,
	}
}

func column(text string, x, y, fontSize float64, color string, z int) model.SlideText {
	dir := directionFor(text)
	return region(text, x, y, wCol, fontSize, color, alignForDirection(dir), dir, z)
}
