package security_test

import (
	"strings"
	"testing"

	"github.com/angelmondragon/storefront-backend/pkg/config"
	"github.com/angelmondragon/storefront-backend/pkg/security"
)

func testHasher() *security.Hasher {
	return security.NewHasher(config.PasswordConfig{
		ArgonMemoryKB:    1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	})
}

func TestHashAndVerify(t *testing.T) {
	hash, err := testHasher().Hash("abcdef")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$") {
		t.Fatalf("unexpected hash format %q", hash)
	}

	ok, err := security.Verify("abcdef", hash)
	if err != nil || !ok {
		t.Fatalf("expected password to verify, got %v (%v)", ok, err)
	}
	ok, err = security.Verify("abcdeg", hash)
	if err != nil || ok {
		t.Fatalf("expected mismatch, got %v (%v)", ok, err)
	}
}

func TestHashRejectsEmpty(t *testing.T) {
	if _, err := testHasher().Hash(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	if _, err := security.Verify("abcdef", "$bcrypt$nope"); err != security.ErrInvalidHash {
		t.Fatalf("expected ErrInvalidHash, got %v", err)
	}
}

func TestNewHasherClampsParams(t *testing.T) {
	hash, err := security.NewHasher(config.PasswordConfig{}).Hash("abcdef")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !strings.Contains(hash, "m=8,t=1,p=1") {
		t.Fatalf("expected clamped params, got %q", hash)
	}
}
