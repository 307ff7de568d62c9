package cryptokit

// Predefined keyspaces for RandomString. A keyspace is a string of byte
// values; any non-empty string works.
const (
	Numeric     = "0123456789"
	ASCIILower  = "abcdefghijklmnopqrstuvwxyz"
	ASCIIUpper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	ASCIISymbol = " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	Hexadecimal = Numeric + "abcdef"

	ASCIIAlphanum  = Numeric + ASCIILower + ASCIIUpper
	ASCIIPrintable = Numeric + ASCIILower + ASCIIUpper + ASCIISymbol

	// ASCIICommonPassword is the alphanumerics plus symbols that are safe
	// to type and paste in most password fields.
	ASCIICommonPassword = ASCIIAlphanum + "!#$%&()*+,-./:;<=>?@[]~_|"
)

// DefaultKeyspace is the keyspace for generated passwords.
const DefaultKeyspace = ASCIICommonPassword
