package crypto

const (
	// KeySize is the size of a symmetric key in bytes.
	KeySize = 32
	// NonceSize is the size of the nonce prefixed to every envelope in bytes.
	// Both supported algorithms use extended 192-bit nonces, so random nonces
	// are safe to draw without a counter.
	NonceSize = 24
	// TagSize is the size of the Poly1305 authentication tag in bytes.
	TagSize = 16

	// MinEnvelopeSize is the smallest envelope that can carry an authenticated
	// (possibly empty) payload: nonce || tag.
	MinEnvelopeSize = NonceSize + TagSize

	// SaltSize is the size of salts produced by GenerateSalt, and the minimum
	// salt size accepted for passphrase derivation.
	SaltSize = 16

	// MaxRandomLength caps a single Bytes or String request.
	MaxRandomLength = 1 << 24

	// Argon2id parameters for passphrase keys.
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 4
)
