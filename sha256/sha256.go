// Package sha256 gives the message digests that nostr signatures are made over,
// using github.com/minio/sha256-simd which picks SHA-NI, AVX-512 or ARM SHA2
// instructions where the CPU has them.
package sha256

import (
	"hash"

	sha "github.com/minio/sha256-simd"
)

const (
	Size      = sha.Size
	BlockSize = sha.BlockSize
)

// New returns a new hash.Hash computing the SHA-256 checksum.
func New() hash.Hash { return sha.New() }

// Sum256 returns the SHA-256 checksum of the data.
func Sum256(data []byte) [Size]byte { return sha.Sum256(data) }

// Digest returns the SHA-256 checksum of the data as a slice, the form the
// signing functions take.
func Digest(data []byte) []byte {
	h := sha.Sum256(data)
	return h[:]
}
