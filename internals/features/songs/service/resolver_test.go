package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestClassifyRefUUID(t *testing.T) {
	id := uuid.MustParse("8C5B61DE-1F2A-4E5B-9C3D-7A1B2C3D4E5F")
	canonical, legacy := ClassifyRef(id.String())
	if canonical == nil || legacy != nil {
		t.Fatalf("UUID harus terklasifikasi kanonik: canonical=%v legacy=%v", canonical, legacy)
	}
	if *canonical != id {
		t.Fatalf("canonical = %s, want %s", canonical, id)
	}

	// huruf besar tetap dinormalisasi ke UUID yang sama
	upper, _ := ClassifyRef("8C5B61DE-1F2A-4E5B-9C3D-7A1B2C3D4E5F")
	if upper == nil || *upper != id {
		t.Fatalf("UUID huruf besar harus dinormalisasi: %v", upper)
	}
}

func TestClassifyRefLegacy(t *testing.T) {
	canonical, legacy := ClassifyRef(" 417 ")
	if canonical != nil || legacy == nil {
		t.Fatalf("integer harus terklasifikasi legacy: canonical=%v legacy=%v", canonical, legacy)
	}
	if *legacy != 417 {
		t.Fatalf("legacy = %d, want 417", *legacy)
	}
}

func TestClassifyRefMalformed(t *testing.T) {
	for _, raw := range []string{"", "  ", "abc", "12x", "12.5", "not-a-uuid-at-all"} {
		canonical, legacy := ClassifyRef(raw)
		if canonical != nil || legacy != nil {
			t.Fatalf("ClassifyRef(%q) harus nil,nil; dapat %v, %v", raw, canonical, legacy)
		}
	}
}
