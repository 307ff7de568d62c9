package crypto

// Encrypt seals plaintext under the hex key and encodes the envelope in
// format f. The parsed key and the raw envelope are wiped before returning,
// on success and on error. plaintext is not modified.
func Encrypt(alg Algorithm, f Format, plaintext []byte, keyHex string) ([]byte, error) {
	if !f.Valid() {
		return nil, ErrUnknownFormat
	}

	key, err := ParseKey(keyHex)
	if err != nil {
		return nil, err
	}
	defer Wipe(key[:])

	envelope, err := Seal(alg, key, plaintext)
	if err != nil {
		return nil, err
	}
	defer Wipe(envelope)

	return Encode(envelope, f)
}

// Decrypt decodes a token in format f and opens it under the hex key.
// Malformed encodings and keys are argument errors; everything after that
// is ErrDecryptionFailed. The decoded envelope and the parsed key are wiped
// before returning. token is not modified.
func Decrypt(alg Algorithm, f Format, token []byte, keyHex string) ([]byte, error) {
	envelope, err := Decode(token, f)
	if err != nil {
		return nil, err
	}
	defer Wipe(envelope)

	key, err := ParseKey(keyHex)
	if err != nil {
		return nil, err
	}
	defer Wipe(key[:])

	return Open(alg, key, envelope)
}
