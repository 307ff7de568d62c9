package cryptokit

import (
	"fmt"

	"github.com/vaultsandbox/cryptokit/internal/crypto"
)

// Cipher encrypts and decrypts tokens with a fixed format and algorithm.
// It holds no key and no mutable state, so one Cipher can be shared by any
// number of goroutines.
type Cipher struct {
	format    Format
	algorithm Algorithm
}

// New creates a Cipher. Without options it produces hex tokens sealed with
// XSalsa20-Poly1305.
func New(opts ...Option) (*Cipher, error) {
	cfg := &cipherConfig{
		format:    DefaultFormat,
		algorithm: DefaultAlgorithm,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.format.Valid() {
		return nil, &ArgumentError{Op: "new cipher", Err: fmt.Errorf("%w: %s", crypto.ErrUnknownFormat, cfg.format)}
	}
	if !cfg.algorithm.Valid() {
		return nil, &ArgumentError{Op: "new cipher", Err: fmt.Errorf("%w: %q", crypto.ErrUnknownAlgorithm, string(cfg.algorithm))}
	}

	return &Cipher{
		format:    cfg.format,
		algorithm: cfg.algorithm,
	}, nil
}

// Format returns the token encoding.
func (c *Cipher) Format() Format {
	return c.format
}

// Algorithm returns the AEAD construction.
func (c *Cipher) Algorithm() Algorithm {
	return c.algorithm
}

// Encrypt seals plaintext under keyHex and returns the encoded token
// nonce || ciphertext || tag. A fresh nonce is drawn for every call.
//
// Errors match ErrInvalidArgument for a malformed key and ErrEntropy when
// no nonce could be drawn. plaintext is not modified.
func (c *Cipher) Encrypt(plaintext []byte, keyHex string) ([]byte, error) {
	token, err := crypto.Encrypt(c.algorithm, c.format, plaintext, keyHex)
	if err != nil {
		return nil, wrapError("encrypt", err)
	}
	return token, nil
}

// Decrypt opens a token produced by Encrypt with the same key, format and
// algorithm.
//
// A token that is not valid for the format, or a malformed key, returns an
// error matching ErrInvalidArgument. Every other failure returns a
// *DecryptionError matching ErrDecryptionFailed and no plaintext.
//
// A corrupted base64 or hex token can surface as either error, depending on
// whether the damaged characters still decode. Hex decoding ignores case, so
// a token whose letters only changed case decrypts normally. Treat both
// errors as "token rejected".
func (c *Cipher) Decrypt(token []byte, keyHex string) ([]byte, error) {
	plaintext, err := crypto.Decrypt(c.algorithm, c.format, token, keyHex)
	if err != nil {
		return nil, wrapError("decrypt", err)
	}
	return plaintext, nil
}

// EncryptString is Encrypt for string input and output. The temporary byte
// copy of plaintext is wiped before returning.
func (c *Cipher) EncryptString(plaintext, keyHex string) (string, error) {
	buf := []byte(plaintext)
	defer crypto.Wipe(buf)

	token, err := c.Encrypt(buf, keyHex)
	if err != nil {
		return "", err
	}
	return string(token), nil
}

// DecryptString is Decrypt for string input and output. The temporary byte
// copies of the token and the plaintext are wiped before returning.
func (c *Cipher) DecryptString(token, keyHex string) (string, error) {
	buf := []byte(token)
	defer crypto.Wipe(buf)

	plaintext, err := c.Decrypt(buf, keyHex)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(plaintext)

	return string(plaintext), nil
}

// Encrypt seals plaintext with the default algorithm and encodes the token
// in format.
func Encrypt(plaintext []byte, keyHex string, format Format) ([]byte, error) {
	c, err := New(WithFormat(format))
	if err != nil {
		return nil, err
	}
	return c.Encrypt(plaintext, keyHex)
}

// Decrypt opens a token produced by Encrypt. format must match the one used
// to encrypt.
func Decrypt(token []byte, keyHex string, format Format) ([]byte, error) {
	c, err := New(WithFormat(format))
	if err != nil {
		return nil, err
	}
	return c.Decrypt(token, keyHex)
}
