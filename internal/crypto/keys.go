package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrEmptySecret is returned when no secret material is supplied.
var ErrEmptySecret = errors.New("crypto: empty secret")

const (
	hashKeyLen  = 64
	blockKeyLen = 32
)

// DeriveCookieKeys expands secret into an HMAC key and an AES-256 key for
// signing and encrypting session cookies.
func DeriveCookieKeys(secret []byte) (hashKey, blockKey []byte, err error) {
	if len(secret) == 0 {
		return nil, nil, ErrEmptySecret
	}
	hashKey, err = expand(secret, "pharmpanel cookie hash", hashKeyLen)
	if err != nil {
		return nil, nil, err
	}
	blockKey, err = expand(secret, "pharmpanel cookie block", blockKeyLen)
	if err != nil {
		return nil, nil, err
	}
	return hashKey, blockKey, nil
}

func expand(secret []byte, info string, n int) ([]byte, error) {
	h := hkdf.New(sha256.New, secret, nil, []byte(info))
	out := make([]byte, n)
	if _, err := io.ReadFull(h, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RandomSecret returns n bytes from crypto/rand.
func RandomSecret(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
