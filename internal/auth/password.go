package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Default scrypt parameters. The credential format is hex(key) + "." + hex(salt),
// with the hex salt text itself fed to scrypt.
const (
	DefaultScryptN = 16384
	DefaultScryptR = 8
	DefaultScryptP = 1
	scryptKeyLen   = 64
	saltBytes      = 16
)

// Hasher derives and verifies scrypt password credentials.
type Hasher struct {
	n, r, p int
}

// NewHasher builds a hasher, falling back to defaults for non-positive parameters.
func NewHasher(n, r, p int) Hasher {
	if n <= 1 {
		n = DefaultScryptN
	}
	if r <= 0 {
		r = DefaultScryptR
	}
	if p <= 0 {
		p = DefaultScryptP
	}
	return Hasher{n: n, r: r, p: p}
}

// Hash derives a salted credential for password.
func (h Hasher) Hash(password string) (string, error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	salt := hex.EncodeToString(raw)

	key, err := scrypt.Key([]byte(password), []byte(salt), h.n, h.r, h.p, scryptKeyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key) + "." + salt, nil
}

// Verify reports whether password matches credential. Malformed credentials never match.
func (h Hasher) Verify(password, credential string) bool {
	encodedKey, salt, ok := strings.Cut(credential, ".")
	if !ok || salt == "" || strings.Contains(salt, ".") {
		return false
	}
	stored, err := hex.DecodeString(encodedKey)
	if err != nil || len(stored) != scryptKeyLen {
		return false
	}

	supplied, err := scrypt.Key([]byte(password), []byte(salt), h.n, h.r, h.p, scryptKeyLen)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(stored, supplied) == 1
}
