package helper

import (
	"errors"
	"testing"
)

func TestRandomCodeLengthAndAlphabet(t *testing.T) {
	code, err := RandomCode(10)
	if err != nil {
		t.Fatalf("RandomCode: %v", err)
	}
	if len(code) != 10 {
		t.Fatalf("expected length 10, got %d (%q)", len(code), code)
	}
	for _, r := range code {
		ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !ok {
			t.Fatalf("unexpected rune %q in code %q", r, code)
		}
	}
}

func TestAllocateUniqueCodeRetriesUntilFree(t *testing.T) {
	seq := []string{"AAAAAAAAAA", "BBBBBBBBBB", "CCCCCCCCCC", "DDDDDDDDDD", "EEEEEEEEEE", "FFFFFFFFFF"}
	taken := map[string]bool{
		"AAAAAAAAAA": true, "BBBBBBBBBB": true, "CCCCCCCCCC": true,
		"DDDDDDDDDD": true, "EEEEEEEEEE": true,
	}

	calls := 0
	gen := func() (string, error) {
		code := seq[calls]
		calls++
		return code, nil
	}
	exists := func(code string) (bool, error) { return taken[code], nil }

	// 5 kode pertama bentrok, yang ke-6 bebas → butuh 6 percobaan
	code, err := AllocateUniqueCode(6, gen, exists)
	if err != nil {
		t.Fatalf("AllocateUniqueCode: %v", err)
	}
	if code != "FFFFFFFFFF" {
		t.Fatalf("expected FFFFFFFFFF, got %q", code)
	}
	if calls != 6 {
		t.Fatalf("expected exactly 6 generator calls, got %d", calls)
	}
}

func TestAllocateUniqueCodeExhausted(t *testing.T) {
	calls := 0
	gen := func() (string, error) {
		calls++
		return "SAMECODE99", nil
	}
	exists := func(code string) (bool, error) { return true, nil }

	_, err := AllocateUniqueCode(5, gen, exists)
	if !errors.Is(err, ErrShareCodeExhausted) {
		t.Fatalf("expected ErrShareCodeExhausted, got %v", err)
	}
	if calls != 5 {
		t.Fatalf("expected exactly 5 attempts, got %d", calls)
	}
}
