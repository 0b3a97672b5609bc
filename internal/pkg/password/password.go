package password

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPepperMissing is returned when the server-side pepper is not configured.
// The hasher refuses to operate without it.
var ErrPepperMissing = errors.New("password: PASSWORD_PEPPER not configured")

// Hasher hashes and verifies passwords with bcrypt. Each password is first
// keyed with a server-side pepper via HMAC-SHA256, so a leaked database alone
// is not enough to mount an offline attack. The pepper is never stored
// alongside the hash.
type Hasher struct {
	pepper []byte
	cost   int
}

func NewHasher(pepper string) (*Hasher, error) {
	if pepper == "" {
		return nil, ErrPepperMissing
	}
	return &Hasher{
		pepper: []byte(pepper),
		cost:   bcrypt.DefaultCost,
	}, nil
}

// Hash returns the bcrypt hash of the peppered password.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if len(h.pepper) == 0 {
		return "", ErrPepperMissing
	}
	digest, err := bcrypt.GenerateFromPassword(h.mac(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare reports whether plaintext matches a stored hash. Any bcrypt
// mismatch or malformed hash yields false without error detail, so callers
// cannot distinguish "wrong password" from "corrupt hash".
func (h *Hasher) Compare(plaintext, hash string) (bool, error) {
	if len(h.pepper) == 0 {
		return false, ErrPepperMissing
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), h.mac(plaintext))
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (h *Hasher) mac(plaintext string) []byte {
	m := hmac.New(sha256.New, h.pepper)
	m.Write([]byte(plaintext))
	return m.Sum(nil)
}
