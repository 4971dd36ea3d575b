package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/galtzo-floss/floss-funding-go/funding/constants"
)

const (
	// TokenBytes is the fixed ciphertext size of a credential.
	TokenBytes = aes.BlockSize
	// TokenHexLen is the length of a hex-encoded credential.
	TokenHexLen = TokenBytes * 2
	// MaxWordLen is the longest plaintext that fits one padded block.
	MaxWordLen = TokenBytes - 1
)

// IsTokenShaped reports whether s has the exact hex shape of a credential.
// It says nothing about whether the token decrypts to anything meaningful.
func IsTokenShaped(s string) bool {
	if len(s) != TokenHexLen {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}

	return true
}

// DeriveKey returns the AES-256 key for a namespace: its SHA-256 digest.
func DeriveKey(namespace string) []byte {
	sum := sha256.Sum256([]byte(namespace))

	return sum[:]
}

// Decryptor decrypts hex credentials under namespace-derived keys. The zero
// value is ready to use.
type Decryptor struct{}

// Decrypt decodes a hex credential and decrypts it with the namespace key.
//
// An empty input returns constants.ErrEmptyCiphertext as a sentinel; callers
// treat any other error as "not decryptable", never as fatal.
func (d *Decryptor) Decrypt(hexCiphertext, namespace string) (string, error) {
	if hexCiphertext == "" {
		return "", constants.ErrEmptyCiphertext
	}

	raw, err := hex.DecodeString(hexCiphertext)
	if err != nil {
		return "", fmt.Errorf("decode hex ciphertext: %w", err)
	}

	if len(raw) != TokenBytes {
		return "", constants.ErrCiphertextLength
	}

	block, err := aes.NewCipher(DeriveKey(namespace))
	if err != nil {
		return "", fmt.Errorf("init cipher: %w", err)
	}

	plain := make([]byte, len(raw))
	cipher.NewCBCDecrypter(block, zeroIV()).CryptBlocks(plain, raw)

	unpadded, err := pkcs7Unpad(plain)
	if err != nil {
		return "", err
	}

	return string(unpadded), nil
}

// Encrypt is the issuance counterpart of Decrypt: it pads a word to one
// block, encrypts it under the namespace key, and hex-encodes the result.
func Encrypt(word, namespace string) (string, error) {
	if len(word) > MaxWordLen {
		return "", constants.ErrPlaintextTooLong
	}

	block, err := aes.NewCipher(DeriveKey(namespace))
	if err != nil {
		return "", fmt.Errorf("init cipher: %w", err)
	}

	padded := pkcs7Pad([]byte(word))

	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, zeroIV()).CryptBlocks(out, padded)

	return hex.EncodeToString(out), nil
}

func zeroIV() []byte {
	return make([]byte, aes.BlockSize)
}

func pkcs7Pad(b []byte) []byte {
	pad := aes.BlockSize - len(b)%aes.BlockSize

	out := make([]byte, len(b)+pad)
	copy(out, b)

	for i := len(b); i < len(out); i++ {
		out[i] = byte(pad)
	}

	return out
}

func pkcs7Unpad(b []byte) ([]byte, error) {
	if len(b) == 0 || len(b)%aes.BlockSize != 0 {
		return nil, constants.ErrPaddingInvalid
	}

	pad := int(b[len(b)-1])
	if pad == 0 || pad > aes.BlockSize {
		return nil, constants.ErrPaddingInvalid
	}

	for _, c := range b[len(b)-pad:] {
		if int(c) != pad {
			return nil, constants.ErrPaddingInvalid
		}
	}

	return b[:len(b)-pad], nil
}
