// helper/share_code.go
package helper

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const shareCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ErrShareCodeExhausted: semua percobaan alokasi kode bentrok.
// Praktis mustahil kecuali ruang kode sudah jenuh — dianggap fatal.
var ErrShareCodeExhausted = errors.New("share code allocation exhausted")

// RandomCode menghasilkan string alfanumerik acak sepanjang n.
func RandomCode(n int) (string, error) {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(shareCodeAlphabet)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = shareCodeAlphabet[idx.Int64()]
	}
	return string(buf), nil
}

// AllocateUniqueCode mencoba maks. attempts kali sampai dapat kode yang belum dipakai.
// gen dan exists di-inject supaya bisa diuji tanpa DB.
func AllocateUniqueCode(attempts int, gen func() (string, error), exists func(code string) (bool, error)) (string, error) {
	for i := 0; i < attempts; i++ {
		code, err := gen()
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}
		taken, err := exists(code)
		if err != nil {
			return "", fmt.Errorf("check code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrShareCodeExhausted
}
