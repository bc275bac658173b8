package yagout

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"
)

// staticIV is the 16 ASCII bytes of the literal IV string shared with the
// gateway. It is used as raw bytes, never hex-decoded; changing how this is
// derived breaks interop with every YagoutPay environment.
var staticIV = []byte("0123456789abcdef")

var (
	ErrEncryption = errors.New("encryption failed")
	ErrDecryption = errors.New("decryption failed")
)

// Codec performs AES-256-CBC encryption against the gateway contract: a
// base64-encoded 32-byte key, the fixed ASCII IV, PKCS7 padding, base64
// ciphertext. There is no per-message IV and no authentication tag; the
// gateway is the sole trust boundary and callers must not assume integrity.
type Codec struct {
	keyB64 string
}

func NewCodec(keyB64 string) Codec {
	return Codec{keyB64: keyB64}
}

func (c Codec) key() ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(c.keyB64)
	if err != nil {
		return nil, fmt.Errorf("key base64 decode: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("key must be 32 bytes after base64 decode, got %d", len(key))
	}
	return key, nil
}

// EncryptB64 encrypts plaintext and returns base64 ciphertext.
func (c Codec) EncryptB64(plaintext string) (string, error) {
	key, err := c.key()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	padded := padPKCS7([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, staticIV).CryptBlocks(ciphertext, padded)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptB64 decodes base64 ciphertext and decrypts it. It fails with a
// ErrDecryption-wrapped error on malformed base64, a ciphertext length that is
// not a multiple of the block size, or invalid padding.
func (c Codec) DecryptB64(cipherB64 string) (string, error) {
	key, err := c.key()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(cipherB64)
	if err != nil {
		return "", fmt.Errorf("%w: ciphertext base64 decode: %v", ErrDecryption, err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length invalid or not multiple of block size", ErrDecryption)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	plainPadded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, staticIV).CryptBlocks(plainPadded, ciphertext)
	plain, err := removePKCS7Padding(plainPadded, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: invalid padding after decrypt: %v", ErrDecryption, err)
	}
	return string(plain), nil
}

func padPKCS7(b []byte, blockSize int) []byte {
	padLen := blockSize - (len(b) % blockSize)
	if padLen == 0 {
		padLen = blockSize
	}
	pad := bytes.Repeat([]byte{byte(padLen)}, padLen)
	return append(b, pad...)
}

func removePKCS7Padding(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, errors.New("invalid padded data length")
	}
	pad := int(b[len(b)-1])
	if pad < 1 || pad > blockSize {
		return nil, fmt.Errorf("invalid padding value %d", pad)
	}
	for i := 0; i < pad; i++ {
		if b[len(b)-1-i] != byte(pad) {
			return nil, errors.New("invalid PKCS7 padding bytes")
		}
	}
	return b[:len(b)-pad], nil
}
