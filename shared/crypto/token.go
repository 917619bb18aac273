package crypto

import (
	"crypto/md5"  // #nosec G501 -- offered for non-cryptographic fingerprints only
	"crypto/rand"
	"crypto/sha1" // #nosec G505 -- offered for non-cryptographic fingerprints only
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"
)

// ErrInvalidTokenLength is returned when SecureToken receives a non-positive
// length.
var ErrInvalidTokenLength = errors.New("token length must be positive")

// ErrUnsupportedAlgorithm is returned when HashString receives an algorithm
// outside md5, sha1, sha256, sha512.
var ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

// SecureToken returns a URL-safe token built from length random bytes,
// encoded as unpadded base64. Suitable for API keys, nonces, and reset
// tokens.
func SecureToken(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidTokenLength, length)
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashString digests value with the named algorithm and returns lowercase
// hex. Algorithm names are case-insensitive. md5 and sha1 are provided for
// interoperability with existing fingerprints, not for security.
func HashString(value, algorithm string) (string, error) {
	var h hash.Hash

	switch strings.ToLower(algorithm) {
	case "md5":
		h = md5.New() // #nosec G401 -- interoperability fingerprint
	case "sha1":
		h = sha1.New() // #nosec G401 -- interoperability fingerprint
	case "sha256":
		h = sha256.New()
	case "sha512":
		h = sha512.New()
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algorithm)
	}

	h.Write([]byte(value))

	return hex.EncodeToString(h.Sum(nil)), nil
}
