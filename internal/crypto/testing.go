package crypto

import "io"

// SetRandReaderForTesting replaces the random source used for keys, nonces,
// salts and random strings. Returns a function that restores the original.
// Tests calling it must not run in parallel with other users of the package.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}
