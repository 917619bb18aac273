// Package crypto provides hashing, token generation, and symmetric
// encryption helpers.
//
// The Crypto type supports:
//   - HMAC-SHA256 hashing for deterministic fingerprints
//   - AES-GCM encryption/decryption for confidential payloads
//
// InitializeCipher must be called before Encrypt or Decrypt.
//
// Package-level helpers cover one-shot needs: SecureToken for URL-safe
// random tokens and HashString for hex digests with a selectable algorithm.
package crypto
