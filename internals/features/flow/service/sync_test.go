package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestAdvisoryLockKeyStable(t *testing.T) {
	id := uuid.MustParse("3f2c9a10-5b6d-4c7e-8f90-123456789abc")
	first := advisoryLockKey(id)
	second := advisoryLockKey(id)
	if first != second {
		t.Fatalf("lock key harus stabil untuk ID yang sama: %d vs %d", first, second)
	}
}

func TestAdvisoryLockKeyDiffersPerService(t *testing.T) {
	a := advisoryLockKey(uuid.MustParse("3f2c9a10-5b6d-4c7e-8f90-123456789abc"))
	b := advisoryLockKey(uuid.MustParse("3f2c9a10-5b6d-4c7e-8f90-123456789abd"))
	if a == b {
		t.Fatalf("layanan berbeda harus dapat lock key berbeda: %d", a)
	}
}
