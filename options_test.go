package cryptokit

import (
	"errors"
	"testing"
)

func TestDefaultConstants(t *testing.T) {
	if DefaultFormat != FormatHex {
		t.Errorf("DefaultFormat = %s, want hex", DefaultFormat)
	}
	if DefaultAlgorithm != AlgorithmXSalsa20Poly1305 {
		t.Errorf("DefaultAlgorithm = %s, want xsalsa20poly1305", DefaultAlgorithm)
	}
	if KeySize != 32 || NonceSize != 24 || Overhead != 40 {
		t.Errorf("sizes = %d/%d/%d, want 32/24/40", KeySize, NonceSize, Overhead)
	}
}

func TestFormat_Values(t *testing.T) {
	// The numeric values are part of the public contract.
	if FormatBinary != 0 || FormatBase64 != 1 || FormatHex != 2 {
		t.Errorf("format values = %d/%d/%d, want 0/1/2", FormatBinary, FormatBase64, FormatHex)
	}
}

func TestWithFormat(t *testing.T) {
	cfg := &cipherConfig{}
	WithFormat(FormatBase64)(cfg)
	if cfg.format != FormatBase64 {
		t.Errorf("format = %s, want base64", cfg.format)
	}
}

func TestWithAlgorithm(t *testing.T) {
	cfg := &cipherConfig{}
	WithAlgorithm(AlgorithmXChaCha20Poly1305)(cfg)
	if cfg.algorithm != AlgorithmXChaCha20Poly1305 {
		t.Errorf("algorithm = %s, want xchacha20poly1305", cfg.algorithm)
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.Format() != DefaultFormat {
		t.Errorf("Format() = %s, want %s", c.Format(), DefaultFormat)
	}
	if c.Algorithm() != DefaultAlgorithm {
		t.Errorf("Algorithm() = %s, want %s", c.Algorithm(), DefaultAlgorithm)
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"unknown format", WithFormat(Format(3))},
		{"unknown algorithm", WithAlgorithm("aes-128-cbc")},
		{"empty algorithm", WithAlgorithm("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("Base64")
	if err != nil || f != FormatBase64 {
		t.Errorf("ParseFormat(Base64) = %v, %v", f, err)
	}

	_, err = ParseFormat("ascii85")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestParseAlgorithm(t *testing.T) {
	a, err := ParseAlgorithm("XChaCha20-Poly1305")
	if err != nil || a != AlgorithmXChaCha20Poly1305 {
		t.Errorf("ParseAlgorithm() = %v, %v", a, err)
	}

	_, err = ParseAlgorithm("des")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
