package cryptokit

import "github.com/vaultsandbox/cryptokit/internal/crypto"

// MaxRandomLength is the largest n accepted by RandomBytes and the largest
// length accepted by RandomString.
const MaxRandomLength = crypto.MaxRandomLength

// RandomBytes returns n bytes from the operating system's secure random
// source.
func RandomBytes(n int) ([]byte, error) {
	b, err := crypto.Bytes(n)
	if err != nil {
		return nil, wrapError("random bytes", err)
	}
	return b, nil
}

// RandomIndex returns a uniformly distributed integer in [0, bound).
// Biased draws are rejected rather than reduced with a plain modulo.
func RandomIndex(bound int) (int, error) {
	i, err := crypto.Index(bound)
	if err != nil {
		return 0, wrapError("random index", err)
	}
	return i, nil
}

// RandomString returns exactly length bytes, each drawn uniformly from
// keyspace. Use DefaultKeyspace for passwords.
func RandomString(length int, keyspace string) (string, error) {
	s, err := crypto.String(length, keyspace)
	if err != nil {
		return "", wrapError("random string", err)
	}
	return s, nil
}
