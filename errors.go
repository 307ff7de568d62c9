package cryptokit

import (
	"errors"
	"fmt"

	"github.com/vaultsandbox/cryptokit/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidArgument is returned for malformed keys, malformed token
	// encodings, unknown formats or algorithms, empty keyspaces and negative
	// lengths. The caller can recover by fixing the input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEntropy is returned when the operating system's secure random source
	// is unavailable. It is not retried.
	ErrEntropy = errors.New("secure random source unavailable")

	// ErrDecryptionFailed is returned when a token cannot be authenticated:
	// wrong key, corrupted or truncated data, tampering, or a different
	// algorithm. The cause is deliberately not reported.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// CryptokitError is implemented by all errors returned from this package.
type CryptokitError interface {
	error
	CryptokitError() // marker method
}

// ArgumentError reports invalid caller input.
type ArgumentError struct {
	Op  string
	Err error
}

func (e *ArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid argument: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: invalid argument", e.Op)
}

// Unwrap returns the underlying error.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// CryptokitError implements the CryptokitError interface.
func (e *ArgumentError) CryptokitError() {}

// EntropyError reports a failure of the secure random source.
type EntropyError struct {
	Op  string
	Err error
}

func (e *EntropyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *EntropyError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EntropyError) Is(target error) bool {
	return target == ErrEntropy
}

// CryptokitError implements the CryptokitError interface.
func (e *EntropyError) CryptokitError() {}

// DecryptionError reports that a token failed authentication. It carries no
// cause and its message never varies.
type DecryptionError struct{}

func (e *DecryptionError) Error() string {
	return ErrDecryptionFailed.Error()
}

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryptionFailed
}

// CryptokitError implements the CryptokitError interface.
func (e *DecryptionError) CryptokitError() {}

// wrapError converts internal crypto errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return &DecryptionError{}
	case errors.Is(err, crypto.ErrEntropyUnavailable):
		return &EntropyError{Op: op, Err: err}
	case crypto.IsArgumentError(err):
		return &ArgumentError{Op: op, Err: err}
	}

	return fmt.Errorf("%s: %w", op, err)
}
