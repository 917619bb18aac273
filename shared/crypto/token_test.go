//go:build unit

package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureToken(t *testing.T) {
	t.Parallel()

	t.Run("encodes the requested number of random bytes", func(t *testing.T) {
		t.Parallel()

		token, err := SecureToken(16)

		require.NoError(t, err)
		assert.NotEmpty(t, token)

		decoded, decErr := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, decErr)
		assert.Len(t, decoded, 16)
	})

	t.Run("output is url-safe and unpadded", func(t *testing.T) {
		t.Parallel()

		token, err := SecureToken(32)

		require.NoError(t, err)
		assert.NotContains(t, token, "+")
		assert.NotContains(t, token, "/")
		assert.NotContains(t, token, "=")
	})

	t.Run("successive tokens differ", func(t *testing.T) {
		t.Parallel()

		t1, err1 := SecureToken(24)
		t2, err2 := SecureToken(24)

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, t1, t2)
	})

	t.Run("non-positive lengths rejected", func(t *testing.T) {
		t.Parallel()

		for _, length := range []int{0, -1, -32} {
			token, err := SecureToken(length)

			assert.ErrorIs(t, err, ErrInvalidTokenLength)
			assert.Empty(t, token)
		}
	})
}

func TestHashString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		algorithm string
		want      string
	}{
		{
			name:      "md5",
			value:     "hello",
			algorithm: "md5",
			want:      "5d41402abc4b2a76b9719d911017c592",
		},
		{
			name:      "sha1",
			value:     "hello",
			algorithm: "sha1",
			want:      "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d",
		},
		{
			name:      "sha256",
			value:     "hello",
			algorithm: "sha256",
			want:      "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:      "sha512",
			value:     "hello",
			algorithm: "sha512",
			want: "9b71d224bd62f3785d96d46ad3ea3d73319bfbc2890caadae2dff72519673ca7" +
				"2323c3d99ba5c11d7c7acc6e14b8c5da0c4663475c2e5c3adef46f73bcdec043",
		},
		{
			name:      "algorithm name is case-insensitive",
			value:     "hello",
			algorithm: "SHA256",
			want:      "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:      "empty value still hashes",
			value:     "",
			algorithm: "md5",
			want:      "d41d8cd98f00b204e9800998ecf8427e",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := HashString(tt.value, tt.algorithm)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHashString_UnsupportedAlgorithm(t *testing.T) {
	t.Parallel()

	for _, algorithm := range []string{"crc32", "sha3", "blake2", ""} {
		got, err := HashString("hello", algorithm)

		assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
		assert.Empty(t, got)
	}
}
