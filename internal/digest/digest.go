package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// DefaultChunkSize is the read size used when streaming file content into the
// hash. A few KiB keeps syscall counts low without holding much memory.
const DefaultChunkSize = 8192

// Engine computes content digests by streaming files through SHA-256.
// The zero value is usable and reads in DefaultChunkSize chunks.
type Engine struct {
	ChunkSize int
}

// Compute returns the lowercase hex SHA-256 digest of the file at path.
// The file is read sequentially in fixed-size chunks and is never loaded
// fully into memory. An empty file yields the digest of zero bytes.
//
// Any open or read failure returns an error; callers must treat a failed
// digest as "no digest" rather than matching failed files against each other.
func (e Engine) Compute(path string) (string, error) {
	chunkSize := e.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	hasher := sha256.New()
	buf := make([]byte, chunkSize)
	for {
		n, readErr := file.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return "", fmt.Errorf("read %s: %w", path, readErr)
		}
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Compute is a convenience wrapper around the default engine.
func Compute(path string) (string, error) {
	return Engine{}.Compute(path)
}
