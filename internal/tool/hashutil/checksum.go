// Package hashutil provides the streaming digest algorithms used by the hash command.
package hashutil

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/Cyclone1070/fm/internal/tool/fsutil"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ErrUnknownAlgorithm is returned for an algorithm name with no registered constructor.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

var algorithms = map[string]func() (hash.Hash, error){
	"sha256": func() (hash.Hash, error) { return sha256.New(), nil },
	"sha512": func() (hash.Hash, error) { return sha512.New(), nil },
	"sha3-256": func() (hash.Hash, error) {
		return sha3.New256(), nil
	},
	"blake2b-256": func() (hash.Hash, error) {
		return blake2b.New256(nil)
	},
}

// ChecksumManager computes digests with one configured algorithm.
type ChecksumManager struct {
	algorithm string
	newHash   func() (hash.Hash, error)
}

// NewChecksumManager creates a manager for the named algorithm.
func NewChecksumManager(algorithm string) (*ChecksumManager, error) {
	newHash, ok := algorithms[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algorithm)
	}
	return &ChecksumManager{algorithm: algorithm, newHash: newHash}, nil
}

// Algorithm returns the algorithm name.
func (m *ChecksumManager) Algorithm() string {
	return m.algorithm
}

// Compute computes the digest of data and returns it as a lowercase hex string.
func (m *ChecksumManager) Compute(data []byte) (string, error) {
	h, err := m.newHash()
	if err != nil {
		return "", err
	}
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ComputeStream feeds r into the hash chunk by chunk, in stream order, and returns
// the final digest as a lowercase hex string.
func (m *ChecksumManager) ComputeStream(ctx context.Context, r io.Reader) (string, error) {
	h, err := m.newHash()
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, fsutil.NewContextReader(ctx, r)); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
