// Package credential turns plaintext secrets into a verifiable stored
// form and checks presented secrets against it. Stores never hash;
// hashing is owned by the service through this codec.
package credential

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedHash indicates the stored verifiable form is corrupted.
// A wrong password is never an error, only a false verification.
var ErrMalformedHash = errors.New("malformed credential hash")

// Codec hashes and verifies credentials using bcrypt
type Codec struct {
	cost int
}

// Config holds configuration for the credential codec
type Config struct {
	// Cost is the bcrypt work factor. Zero means bcrypt.DefaultCost.
	Cost int
}

// DefaultConfig returns the default codec configuration
func DefaultConfig() Config {
	return Config{Cost: bcrypt.DefaultCost}
}

// New creates a Codec with the given work factor
func New(cfg Config) *Codec {
	cost := cfg.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Codec{cost: cost}
}

// Hash produces the verifiable form of a plaintext credential
func (c *Codec) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), c.cost)
	if err != nil {
		return "", fmt.Errorf("hashing credential: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored verifiable form.
// bcrypt's comparison is constant-time over the derived key, so timing
// does not reveal where a mismatch occurs.
func (c *Codec) Verify(plaintext, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext)) == nil
}

// Check is Verify with corruption reporting: a mismatch returns
// (false, nil), an undecodable stored hash returns ErrMalformedHash so
// the caller can log the data problem.
func (c *Codec) Check(plaintext, stored string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
}
