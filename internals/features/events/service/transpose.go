package service

import "strings"

// Urutan 12 nada, tampilan pakai kres (bukan mol).
var sharpKeys = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var keyIndex = map[string]int{
	"C": 0, "B#": 0,
	"C#": 1, "Db": 1,
	"D":  2,
	"D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"F": 5, "E#": 5,
	"F#": 6, "Gb": 6,
	"G":  7,
	"G#": 8, "Ab": 8,
	"A":  9,
	"A#": 10, "Bb": 10,
	"B": 11, "Cb": 11,
}

// TransposeKey menggeser nada dasar sebanyak offset semitone (boleh negatif,
// wrap modulo 12). Akhiran minor "m" dipertahankan. Nada yang tidak dikenal
// atau kosong menghasilkan string kosong, bukan error.
func TransposeKey(key string, offset int) string {
	k := strings.TrimSpace(key)
	if k == "" {
		return ""
	}

	minor := false
	if strings.HasSuffix(k, "m") && len(k) > 1 {
		minor = true
		k = strings.TrimSuffix(k, "m")
	}

	// normalisasi: huruf nada kapital, aksidental apa adanya (b kecil, # tetap)
	root := strings.ToUpper(k[:1]) + k[1:]
	idx, ok := keyIndex[root]
	if !ok {
		return ""
	}

	n := ((idx+offset)%12 + 12) % 12
	out := sharpKeys[n]
	if minor {
		out += "m"
	}
	return out
}
