package enc

// Encoder is a binary-to-text codec which can be selected by name or by code
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// TestPatterns returns encoded strings which must decode without errors
	TestPatterns() []string
}
