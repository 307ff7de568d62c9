package crypto

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/nacl/secretbox"
)

// Algorithm names an AEAD construction. Both supported constructions take a
// 32-byte key and a 24-byte nonce and append a 16-byte tag, so they share
// the envelope layout.
type Algorithm string

const (
	// AlgorithmXSalsa20Poly1305 is NaCl secretbox, byte-compatible with
	// libsodium crypto_secretbox_easy.
	AlgorithmXSalsa20Poly1305 Algorithm = "xsalsa20poly1305"
	// AlgorithmXChaCha20Poly1305 is the IETF XChaCha20-Poly1305 AEAD.
	AlgorithmXChaCha20Poly1305 Algorithm = "xchacha20poly1305"
)

// Valid reports whether a is a supported algorithm.
func (a Algorithm) Valid() bool {
	return a == AlgorithmXSalsa20Poly1305 || a == AlgorithmXChaCha20Poly1305
}

// ParseAlgorithm parses an algorithm name case-insensitively. Dashes and
// underscores are ignored, so "XChaCha20-Poly1305" is accepted.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch a := Algorithm(name); a {
	case AlgorithmXSalsa20Poly1305, AlgorithmXChaCha20Poly1305:
		return a, nil
	case "secretbox":
		return AlgorithmXSalsa20Poly1305, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Seal encrypts plaintext under key with a fresh random nonce and returns
// the envelope nonce || ciphertext || tag.
func Seal(alg Algorithm, key *[KeySize]byte, plaintext []byte) ([]byte, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}

	var nonce [NonceSize]byte
	defer Wipe(nonce[:])

	if err := Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	// Sized up front so sealing appends in place and leaves no stray copy.
	out := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	copy(out, nonce[:])

	switch alg {
	case AlgorithmXChaCha20Poly1305:
		aead, err := chacha20poly1305.NewX(key[:])
		if err != nil {
			return nil, fmt.Errorf("create xchacha20poly1305: %w", err)
		}
		return aead.Seal(out, nonce[:], plaintext, nil), nil
	default:
		return secretbox.Seal(out, plaintext, &nonce, key), nil
	}
}

// Open authenticates and decrypts an envelope produced by Seal. Every
// failure, including an envelope too short to hold a nonce and tag, returns
// ErrDecryptionFailed with no further detail.
func Open(alg Algorithm, key *[KeySize]byte, envelope []byte) ([]byte, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
	if len(envelope) < MinEnvelopeSize {
		return nil, ErrDecryptionFailed
	}

	var nonce [NonceSize]byte
	defer Wipe(nonce[:])
	copy(nonce[:], envelope[:NonceSize])
	sealed := envelope[NonceSize:]

	switch alg {
	case AlgorithmXChaCha20Poly1305:
		aead, err := chacha20poly1305.NewX(key[:])
		if err != nil {
			return nil, ErrDecryptionFailed
		}
		plaintext, err := aead.Open(nil, nonce[:], sealed, nil)
		if err != nil {
			return nil, ErrDecryptionFailed
		}
		return plaintext, nil
	default:
		plaintext, ok := secretbox.Open(nil, sealed, &nonce, key)
		if !ok {
			return nil, ErrDecryptionFailed
		}
		return plaintext, nil
	}
}
