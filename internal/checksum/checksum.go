// Package checksum provides streaming SHA-256 content hashing.
//
// Distribution entries in Croissant metadata carry a sha256 property so
// consumers can verify that a downloaded file matches the file the metadata
// was generated from. Hashing streams through a fixed-size buffer, so files
// larger than memory are handled without loading them whole.
//
// # Example Usage
//
//	digest, err := checksum.SumFile("data/train.csv")
//	if err != nil {
//		return err
//	}
//	// digest is a 64-character lowercase hex string
//
// All functions are safe for concurrent use by multiple goroutines.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// copyBufferSize is the chunk size used when streaming file content
// through the hash. 8KiB keeps memory flat regardless of file size.
const copyBufferSize = 8 * 1024

// Sum computes the SHA-256 digest of everything read from r and returns
// it as a lowercase hex string.
func Sum(r io.Reader) (string, error) {
	h := sha256.New()
	buf := make([]byte, copyBufferSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", fmt.Errorf("hashing content: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SumFile computes the SHA-256 digest of the file at path.
// The file is streamed, not read into memory.
func SumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	digest, err := Sum(f)
	if err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return digest, nil
}

// SumBytes computes the SHA-256 digest of content as a lowercase hex string.
// Useful for tests and for content already held in memory.
func SumBytes(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
