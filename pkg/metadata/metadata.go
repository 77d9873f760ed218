// Package metadata provides utilities for describing written reports.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// ErrHashMismatch is returned when content does not match a recorded digest.
var ErrHashMismatch = errors.New("hash mismatch")

// Metadata describes one written file.
type Metadata struct {
	WrittenAt time.Time
	Path      string
	Hash      string
	Bytes     int
}

// CalculateHash computes the SHA-256 hash of the content.
func CalculateHash(content string) string {
	hash := sha256.Sum256([]byte(content))

	return hex.EncodeToString(hash[:])
}

// Describe records path, size and digest of content written at now.
func Describe(path, content string, now time.Time) *Metadata {
	return &Metadata{
		WrittenAt: now.UTC(),
		Path:      path,
		Hash:      CalculateHash(content),
		Bytes:     len(content),
	}
}

// Verify checks that content matches the recorded hash.
func (m *Metadata) Verify(content string) error {
	calculated := CalculateHash(content)
	if calculated != m.Hash {
		return fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, m.Hash, calculated)
	}

	return nil
}
