package lib

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", DefaultArgonParams)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Errorf("unexpected hash prefix: %s", hash)
	}

	ok, err := VerifyPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !ok {
		t.Error("correct password rejected")
	}

	ok, err = VerifyPassword("wrong password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if ok {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("secret", DefaultArgonParams)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("secret", DefaultArgonParams)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}

func TestDecodeArgon2Hash(t *testing.T) {
	hash, err := HashPassword("secret", DefaultArgonParams)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	parts, err := DecodeArgon2Hash(hash)
	if err != nil {
		t.Fatalf("DecodeArgon2Hash: %v", err)
	}

	if parts.Memory != DefaultArgonParams.Memory {
		t.Errorf("memory = %d, want %d", parts.Memory, DefaultArgonParams.Memory)
	}
	if parts.Time != DefaultArgonParams.Time {
		t.Errorf("time = %d, want %d", parts.Time, DefaultArgonParams.Time)
	}
	if parts.Threads != DefaultArgonParams.Threads {
		t.Errorf("threads = %d, want %d", parts.Threads, DefaultArgonParams.Threads)
	}
	if uint32(len(parts.Salt)) != DefaultArgonParams.SaltLen {
		t.Errorf("salt length = %d, want %d", len(parts.Salt), DefaultArgonParams.SaltLen)
	}
}

func TestDecodeArgon2HashInvalid(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"too few parts", "$argon2id$v=19$m=65536,t=1,p=4"},
		{"garbage", "not a hash at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeArgon2Hash(tt.hash); err == nil {
				t.Errorf("expected error for %q", tt.hash)
			}
		})
	}
}
