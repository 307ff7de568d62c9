package cryptokit

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vaultsandbox/cryptokit/internal/crypto"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrInvalidArgument", ErrInvalidArgument},
		{"ErrEntropy", ErrEntropy},
		{"ErrDecryptionFailed", ErrDecryptionFailed},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestArgumentError(t *testing.T) {
	err := &ArgumentError{Op: "encrypt", Err: crypto.ErrInvalidKeySize}

	if got, want := err.Error(), "encrypt: invalid argument: invalid key size"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("errors.Is(err, ErrInvalidArgument) = false")
	}
	if !errors.Is(err, crypto.ErrInvalidKeySize) {
		t.Error("ArgumentError does not unwrap to its cause")
	}
	if errors.Is(err, ErrDecryptionFailed) {
		t.Error("ArgumentError matches ErrDecryptionFailed")
	}

	bare := &ArgumentError{Op: "decrypt"}
	if got, want := bare.Error(), "decrypt: invalid argument"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestEntropyError(t *testing.T) {
	cause := fmt.Errorf("%w: read failed", crypto.ErrEntropyUnavailable)
	err := &EntropyError{Op: "generate key", Err: cause}

	if !errors.Is(err, ErrEntropy) {
		t.Error("errors.Is(err, ErrEntropy) = false")
	}
	if !errors.Is(err, crypto.ErrEntropyUnavailable) {
		t.Error("EntropyError does not unwrap to its cause")
	}
	if got, want := err.Error(), "generate key: secure random source unavailable: read failed"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDecryptionError(t *testing.T) {
	err := &DecryptionError{}

	if !errors.Is(err, ErrDecryptionFailed) {
		t.Error("errors.Is(err, ErrDecryptionFailed) = false")
	}
	if err.Error() != "decryption failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "decryption failed")
	}
	if errors.Unwrap(err) != nil {
		t.Error("DecryptionError must not expose a cause")
	}
}

func TestCryptokitErrorInterface(t *testing.T) {
	errs := []error{
		&ArgumentError{Op: "x"},
		&EntropyError{Op: "x", Err: errors.New("y")},
		&DecryptionError{},
	}

	for _, err := range errs {
		var ce CryptokitError
		if !errors.As(err, &ce) {
			t.Errorf("%T does not implement CryptokitError", err)
		}
	}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"decryption", crypto.ErrDecryptionFailed, ErrDecryptionFailed},
		{"entropy", fmt.Errorf("generate nonce: %w", crypto.ErrEntropyUnavailable), ErrEntropy},
		{"key size", crypto.ErrInvalidKeySize, ErrInvalidArgument},
		{"encoding", fmt.Errorf("%w: odd length", crypto.ErrInvalidEncoding), ErrInvalidArgument},
		{"keyspace", crypto.ErrEmptyKeyspace, ErrInvalidArgument},
		{"length", crypto.ErrNegativeLength, ErrInvalidArgument},
		{"format", crypto.ErrUnknownFormat, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapError("op", tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("wrapError() = %v, want match for %v", got, tt.want)
			}
		})
	}

	if wrapError("op", nil) != nil {
		t.Error("wrapError(nil) != nil")
	}

	other := errors.New("something else")
	if got := wrapError("op", other); !errors.Is(got, other) {
		t.Errorf("wrapError() lost unknown error: %v", got)
	}
}
