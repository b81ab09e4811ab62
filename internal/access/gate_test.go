package access

import (
	"testing"

	"inventory-manager/internal/hashing"
)

func newGate(t *testing.T, secret string) *Gate {
	t.Helper()
	hasher := hashing.NewBcrypt(4) // min cost keeps the test fast
	hash, err := hasher.Hash(secret)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	return NewGate(hash, hasher)
}

func TestGate_LockedByDefault(t *testing.T) {
	gate := newGate(t, "s3cret")
	if gate.CanWrite() {
		t.Error("fresh gate grants writes")
	}
}

func TestGate_WrongSecretStaysLocked(t *testing.T) {
	gate := newGate(t, "s3cret")
	if gate.Unlock("guess") {
		t.Error("wrong secret unlocked the gate")
	}
	if gate.CanWrite() {
		t.Error("gate writable after failed unlock")
	}
}

func TestGate_UnlockAndRelock(t *testing.T) {
	gate := newGate(t, "s3cret")

	if !gate.Unlock("s3cret") {
		t.Fatal("correct secret rejected")
	}
	if !gate.CanWrite() {
		t.Error("gate still locked after unlock")
	}

	gate.Lock()
	if gate.CanWrite() {
		t.Error("gate writable after Lock")
	}
}
