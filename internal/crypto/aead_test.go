package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/nacl/secretbox"
)

var allAlgorithms = []Algorithm{AlgorithmXSalsa20Poly1305, AlgorithmXChaCha20Poly1305}

func randomKey(t testing.TB) *[KeySize]byte {
	t.Helper()
	key := new([KeySize]byte)
	if _, err := rand.Read(key[:]); err != nil {
		t.Fatal(err)
	}
	return key
}

func TestSeal_Open_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("hello world")},
		{"json", []byte(`{"foo": "bar", "num": 123}`)},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"large", make([]byte, 10000)},
	}

	for _, alg := range allAlgorithms {
		for _, tt := range tests {
			t.Run(string(alg)+"/"+tt.name, func(t *testing.T) {
				key := randomKey(t)

				envelope, err := Seal(alg, key, tt.plaintext)
				if err != nil {
					t.Fatalf("Seal() error = %v", err)
				}

				// Envelope should be nonce + ciphertext + tag
				expectedLen := NonceSize + len(tt.plaintext) + TagSize
				if len(envelope) != expectedLen {
					t.Errorf("envelope length = %d, want %d", len(envelope), expectedLen)
				}

				decrypted, err := Open(alg, key, envelope)
				if err != nil {
					t.Fatalf("Open() error = %v", err)
				}
				if !bytes.Equal(decrypted, tt.plaintext) {
					t.Errorf("decrypted = %v, want %v", decrypted, tt.plaintext)
				}
			})
		}
	}
}

func TestSeal_MatchesSecretbox(t *testing.T) {
	key := randomKey(t)
	plaintext := []byte("interoperable with crypto_secretbox_easy")

	envelope, err := Seal(AlgorithmXSalsa20Poly1305, key, plaintext)
	if err != nil {
		t.Fatal(err)
	}

	var nonce [NonceSize]byte
	copy(nonce[:], envelope[:NonceSize])
	want := secretbox.Seal(nil, plaintext, &nonce, key)

	if !bytes.Equal(envelope[NonceSize:], want) {
		t.Error("sealed payload does not match nacl/secretbox output")
	}
}

func TestSeal_MatchesXChaCha20Poly1305(t *testing.T) {
	key := randomKey(t)
	plaintext := []byte("interoperable with the IETF construction")

	envelope, err := Seal(AlgorithmXChaCha20Poly1305, key, plaintext)
	if err != nil {
		t.Fatal(err)
	}

	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		t.Fatal(err)
	}
	want := aead.Seal(nil, envelope[:NonceSize], plaintext, nil)

	if !bytes.Equal(envelope[NonceSize:], want) {
		t.Error("sealed payload does not match chacha20poly1305.NewX output")
	}
}

func TestSeal_FreshNonce(t *testing.T) {
	key := randomKey(t)
	plaintext := []byte("same plaintext")

	for _, alg := range allAlgorithms {
		a, _ := Seal(alg, key, plaintext)
		b, _ := Seal(alg, key, plaintext)
		if bytes.Equal(a[:NonceSize], b[:NonceSize]) {
			t.Errorf("%s: nonce repeated across two Seal calls", alg)
		}
		if bytes.Equal(a, b) {
			t.Errorf("%s: identical envelopes for repeated plaintext", alg)
		}
	}
}

func TestSeal_NonceFromRandomSource(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x07}, NonceSize)
	restore := SetRandReaderForTesting(bytes.NewReader(nonce))
	defer restore()

	envelope, err := Seal(AlgorithmXSalsa20Poly1305, randomKey(t), []byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(envelope[:NonceSize], nonce) {
		t.Errorf("envelope nonce = %x, want %x", envelope[:NonceSize], nonce)
	}
}

func TestSeal_EntropyFailure(t *testing.T) {
	restore := SetRandReaderForTesting(failingReader{})
	defer restore()

	_, err := Seal(AlgorithmXSalsa20Poly1305, randomKey(t), []byte("x"))
	if !errors.Is(err, ErrEntropyUnavailable) {
		t.Errorf("expected ErrEntropyUnavailable, got %v", err)
	}
}

func TestSeal_UnknownAlgorithm(t *testing.T) {
	_, err := Seal("aes-256-gcm", randomKey(t), []byte("x"))
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
	_, err = Open("aes-256-gcm", randomKey(t), make([]byte, MinEnvelopeSize))
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestOpen_EnvelopeTooShort(t *testing.T) {
	key := randomKey(t)

	tests := []struct {
		name   string
		length int
	}{
		{"empty", 0},
		{"partial nonce", NonceSize - 1},
		{"only nonce", NonceSize},
		{"nonce plus partial tag", MinEnvelopeSize - 1},
	}

	for _, alg := range allAlgorithms {
		for _, tt := range tests {
			t.Run(string(alg)+"/"+tt.name, func(t *testing.T) {
				_, err := Open(alg, key, make([]byte, tt.length))
				if err != ErrDecryptionFailed {
					t.Errorf("expected bare ErrDecryptionFailed, got %v", err)
				}
			})
		}
	}
}

func TestOpen_TamperedEnvelope(t *testing.T) {
	key := randomKey(t)

	for _, alg := range allAlgorithms {
		envelope, err := Seal(alg, key, []byte("sensitive data"))
		if err != nil {
			t.Fatal(err)
		}

		for bit := 0; bit < len(envelope)*8; bit++ {
			tampered := append([]byte{}, envelope...)
			tampered[bit/8] ^= 1 << (bit % 8)

			plaintext, err := Open(alg, key, tampered)
			if err != ErrDecryptionFailed {
				t.Fatalf("%s bit %d: expected ErrDecryptionFailed, got %v", alg, bit, err)
			}
			if plaintext != nil {
				t.Fatalf("%s bit %d: partial plaintext returned", alg, bit)
			}
		}
	}
}

func TestOpen_WrongKey(t *testing.T) {
	for _, alg := range allAlgorithms {
		envelope, _ := Seal(alg, randomKey(t), []byte("sensitive data"))

		_, err := Open(alg, randomKey(t), envelope)
		if err != ErrDecryptionFailed {
			t.Errorf("%s: expected ErrDecryptionFailed, got %v", alg, err)
		}
	}
}

func TestOpen_WrongAlgorithm(t *testing.T) {
	key := randomKey(t)
	envelope, _ := Seal(AlgorithmXSalsa20Poly1305, key, []byte("sensitive data"))

	_, err := Open(AlgorithmXChaCha20Poly1305, key, envelope)
	if err != ErrDecryptionFailed {
		t.Errorf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input string
		want  Algorithm
	}{
		{"xsalsa20poly1305", AlgorithmXSalsa20Poly1305},
		{"XSalsa20-Poly1305", AlgorithmXSalsa20Poly1305},
		{"secretbox", AlgorithmXSalsa20Poly1305},
		{"xchacha20poly1305", AlgorithmXChaCha20Poly1305},
		{"XCHACHA20_POLY1305", AlgorithmXChaCha20Poly1305},
	}

	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.input)
		if err != nil {
			t.Fatalf("ParseAlgorithm(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}

	if _, err := ParseAlgorithm("aes-256-gcm"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func BenchmarkSeal(b *testing.B) {
	key := randomKey(b)
	plaintext := make([]byte, 1000)

	for _, alg := range allAlgorithms {
		b.Run(string(alg), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Seal(alg, key, plaintext)
			}
		})
	}
}

func BenchmarkOpen(b *testing.B) {
	key := randomKey(b)
	plaintext := make([]byte, 1000)

	for _, alg := range allAlgorithms {
		envelope, _ := Seal(alg, key, plaintext)
		b.Run(string(alg), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Open(alg, key, envelope)
			}
		})
	}
}
