package cryptokit

import "github.com/vaultsandbox/cryptokit/internal/crypto"

// Format selects the wire representation of an encrypted token. The format
// is not recorded in the token: decrypt with the format used to encrypt.
type Format = crypto.Format

const (
	// FormatBinary returns the raw envelope bytes.
	FormatBinary = crypto.FormatBinary
	// FormatBase64 encodes the envelope as padded standard base64.
	FormatBase64 = crypto.FormatBase64
	// FormatHex encodes the envelope as lowercase hexadecimal.
	FormatHex = crypto.FormatHex
)

// DefaultFormat is hexadecimal, matching text-based storage of tokens.
const DefaultFormat = FormatHex

// Algorithm selects the AEAD construction. Like the format, it is not
// recorded in the token.
type Algorithm = crypto.Algorithm

const (
	// AlgorithmXSalsa20Poly1305 is NaCl secretbox (libsodium crypto_secretbox).
	AlgorithmXSalsa20Poly1305 = crypto.AlgorithmXSalsa20Poly1305
	// AlgorithmXChaCha20Poly1305 is the IETF XChaCha20-Poly1305 AEAD.
	AlgorithmXChaCha20Poly1305 = crypto.AlgorithmXChaCha20Poly1305
)

// DefaultAlgorithm is XSalsa20-Poly1305.
const DefaultAlgorithm = AlgorithmXSalsa20Poly1305

const (
	// KeySize is the size of an encryption key in bytes. Keys are passed
	// around as 2*KeySize hex characters.
	KeySize = crypto.KeySize
	// NonceSize is the size of the nonce at the start of every envelope.
	NonceSize = crypto.NonceSize
	// Overhead is the number of bytes an envelope adds to the plaintext.
	Overhead = crypto.NonceSize + crypto.TagSize
)

// cipherConfig holds configuration for a Cipher.
type cipherConfig struct {
	format    Format
	algorithm Algorithm
}

// Option configures a Cipher.
type Option func(*cipherConfig)

// WithFormat sets the token encoding. Default: FormatHex.
func WithFormat(format Format) Option {
	return func(c *cipherConfig) {
		c.format = format
	}
}

// WithAlgorithm sets the AEAD construction. Default: XSalsa20-Poly1305.
func WithAlgorithm(algorithm Algorithm) Option {
	return func(c *cipherConfig) {
		c.algorithm = algorithm
	}
}

// ParseFormat parses "binary", "base64" or "hex" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f, err := crypto.ParseFormat(s)
	if err != nil {
		return 0, wrapError("parse format", err)
	}
	return f, nil
}

// ParseAlgorithm parses an algorithm name such as "xchacha20-poly1305".
func ParseAlgorithm(s string) (Algorithm, error) {
	a, err := crypto.ParseAlgorithm(s)
	if err != nil {
		return "", wrapError("parse algorithm", err)
	}
	return a, nil
}
