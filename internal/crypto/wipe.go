package crypto

import "github.com/awnumar/memguard"

// Wipe overwrites every buffer with zeros using memguard's wipe, which the
// compiler cannot elide as a dead store. Go may still have copied the data
// elsewhere (stack growth, string conversions); Wipe only covers the
// buffers it is given.
func Wipe(bufs ...[]byte) {
	for _, b := range bufs {
		memguard.WipeBytes(b)
	}
}
