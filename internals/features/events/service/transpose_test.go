package service

import "testing"

func TestTransposeKey(t *testing.T) {
	cases := []struct {
		key    string
		offset int
		want   string
	}{
		{"C", 0, "C"},
		{"C", 2, "D"},
		{"C#", 1, "D"},
		{"B", 1, "C"},
		{"C", -1, "B"},
		{"G", 7, "D"},
		{"Bb", 2, "C"},
		{"Db", 0, "C#"},
		{"Am", -1, "G#m"},
		{"Em", 3, "Gm"},
		{"c", 2, "D"},
		{"  F  ", 1, "F#"},
		{"C", 14, "D"},
		{"C", -13, "B"},
	}
	for _, tc := range cases {
		got := TransposeKey(tc.key, tc.offset)
		if got != tc.want {
			t.Fatalf("TransposeKey(%q, %d) = %q, want %q", tc.key, tc.offset, got, tc.want)
		}
	}
}

func TestTransposeKeyUnknown(t *testing.T) {
	for _, key := range []string{"", "H", "X#", "?", "mm"} {
		if got := TransposeKey(key, 1); got != "" {
			t.Fatalf("TransposeKey(%q) = %q, want kosong", key, got)
		}
	}
}
