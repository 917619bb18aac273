package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/Plasma-Engine/plasma-engine-shared/shared/log"
)

// ErrNilCrypto is returned when a method requiring state is invoked on a nil
// Crypto.
var ErrNilCrypto = errors.New("nil crypto instance")

// ErrCipherNotInitialized is returned by Encrypt and Decrypt before
// InitializeCipher has succeeded.
var ErrCipherNotInitialized = errors.New("cipher not initialized")

const redactedPlaceholder = "REDACTED"

// Crypto bundles the secrets for keyed hashing and symmetric encryption.
//
// HashSecretKey keys GenerateHash. EncryptSecretKey is the hex-encoded AES
// key (16, 24, or 32 bytes) consumed by InitializeCipher. String and
// GoString redact both secrets, so a Crypto never leaks them through fmt.
type Crypto struct {
	HashSecretKey    string
	EncryptSecretKey string
	Logger           log.Logger
	Cipher           cipher.AEAD
}

func (c *Crypto) logger() log.Logger {
	if c == nil || c.Logger == nil {
		return log.NewNop()
	}

	return c.Logger
}

// InitializeCipher builds the AES-GCM cipher from EncryptSecretKey. It must
// be called once before Encrypt or Decrypt; calling it again after success
// keeps the existing cipher.
func (c *Crypto) InitializeCipher() error {
	if c == nil {
		return ErrNilCrypto
	}

	if c.Cipher != nil {
		return nil
	}

	key, err := hex.DecodeString(c.EncryptSecretKey)
	if err != nil {
		return fmt.Errorf("decode encrypt secret key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("create aes cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("create gcm: %w", err)
	}

	c.Cipher = gcm

	return nil
}

// Encrypt seals value with AES-GCM under a random nonce and returns the
// standard base64 encoding of nonce||ciphertext. Equal plaintexts produce
// different ciphertexts because the nonce is fresh on every call. A nil
// input returns nil without error.
func (c *Crypto) Encrypt(value *string) (*string, error) {
	if c == nil {
		return nil, ErrNilCrypto
	}

	if value == nil {
		return nil, nil
	}

	if c.Cipher == nil {
		return nil, ErrCipherNotInitialized
	}

	nonce := make([]byte, c.Cipher.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := c.Cipher.Seal(nonce, nonce, []byte(*value), nil)
	encoded := base64.StdEncoding.EncodeToString(sealed)

	return &encoded, nil
}

// Decrypt reverses Encrypt. It rejects payloads shorter than the nonce and
// any ciphertext whose authentication tag does not verify. A nil input
// returns nil without error.
func (c *Crypto) Decrypt(value *string) (*string, error) {
	if c == nil {
		return nil, ErrNilCrypto
	}

	if value == nil {
		return nil, nil
	}

	if c.Cipher == nil {
		return nil, ErrCipherNotInitialized
	}

	data, err := base64.StdEncoding.DecodeString(*value)
	if err != nil {
		return nil, fmt.Errorf("decode ciphertext: %w", err)
	}

	nonceSize := c.Cipher.NonceSize()
	if len(data) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short: %d bytes", len(data))
	}

	nonce, sealed := data[:nonceSize], data[nonceSize:]

	plain, err := c.Cipher.Open(nil, nonce, sealed, nil)
	if err != nil {
		c.logger().Log(context.Background(), log.LevelWarn, "payload failed authenticated decryption", log.Err(err))

		return nil, fmt.Errorf("open ciphertext: %w", err)
	}

	out := string(plain)

	return &out, nil
}

// GenerateHash returns the HMAC-SHA256 fingerprint of value keyed by
// HashSecretKey, as 64 lowercase hex characters. Equal inputs under the same
// key always hash identically, so the output works as a stable pseudonymous
// identifier. A nil receiver or nil input returns the empty string.
func (c *Crypto) GenerateHash(value *string) string {
	if c == nil || value == nil {
		return ""
	}

	mac := hmac.New(sha256.New, []byte(c.HashSecretKey))
	mac.Write([]byte(*value))

	return hex.EncodeToString(mac.Sum(nil))
}

// String renders the Crypto with both secrets redacted.
func (c *Crypto) String() string {
	if c == nil {
		return "<nil>"
	}

	return fmt.Sprintf("crypto.Crypto{HashSecretKey:%s, EncryptSecretKey:%s}",
		redactedPlaceholder, redactedPlaceholder)
}

// GoString renders the Crypto with both secrets redacted, covering %#v.
func (c *Crypto) GoString() string {
	return c.String()
}
