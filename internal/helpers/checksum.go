package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// SHA256 returns the hex encoded SHA-256 digest of input.
func SHA256(input string) string {
	return SHA256Bytes([]byte(input))
}

// SHA256Bytes returns the hex encoded SHA-256 digest of input.
func SHA256Bytes(input []byte) string {
	hash := sha256.Sum256(input)
	return hex.EncodeToString(hash[:])
}

// SHA256Reader hashes everything read from reader.
func SHA256Reader(reader io.Reader) (string, error) {
	hash := sha256.New()
	if _, err := io.Copy(hash, reader); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// ShortChecksum returns the first n hex digits of the SHA-256 digest of input,
// used to build stable identifiers for inline sources.
func ShortChecksum(input []byte, n int) string {
	sum := SHA256Bytes(input)
	if n <= 0 || n > len(sum) {
		return sum
	}
	return sum[:n]
}
