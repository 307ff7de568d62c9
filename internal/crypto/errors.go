package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when a key does not decode to KeySize bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidEncoding is returned when hex or base64 input is malformed.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrUnknownFormat is returned for an encoding format outside
	// binary, base64 and hex.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrUnknownAlgorithm is returned for an unsupported AEAD algorithm.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrNegativeLength is returned when a negative length is requested.
	ErrNegativeLength = errors.New("negative length")

	// ErrLengthTooLarge is returned when a request exceeds MaxRandomLength.
	ErrLengthTooLarge = errors.New("length too large")

	// ErrInvalidBound is returned when a random index bound is not positive.
	ErrInvalidBound = errors.New("bound must be positive")

	// ErrEmptyKeyspace is returned when a random string is requested from an
	// empty keyspace.
	ErrEmptyKeyspace = errors.New("empty keyspace")

	// ErrEmptyPassphrase is returned when deriving a key from an empty passphrase.
	ErrEmptyPassphrase = errors.New("empty passphrase")

	// ErrInvalidSalt is returned when a salt is shorter than SaltSize.
	ErrInvalidSalt = errors.New("invalid salt size")

	// ErrEntropyUnavailable is returned when the secure random source fails.
	// It is never retried.
	ErrEntropyUnavailable = errors.New("secure random source unavailable")

	// ErrDecryptionFailed is returned when an envelope cannot be opened.
	// Truncation, tampering, a wrong key and a wrong algorithm all map to this
	// one error on purpose.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// argumentErrors lists the errors caused by caller input.
var argumentErrors = []error{
	ErrInvalidKeySize,
	ErrInvalidEncoding,
	ErrUnknownFormat,
	ErrUnknownAlgorithm,
	ErrNegativeLength,
	ErrLengthTooLarge,
	ErrInvalidBound,
	ErrEmptyKeyspace,
	ErrEmptyPassphrase,
	ErrInvalidSalt,
}

// IsArgumentError reports whether err was caused by invalid caller input.
func IsArgumentError(err error) bool {
	for _, target := range argumentErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
