package enc

import (
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

const (
	cb58 = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

// -------------------------------------------------------

// Base58Encoder treats the whole input as one big number and writes it with the bitcoin alphabet.
// Leading zero bytes are kept as leading '1' characters.
type Base58Encoder struct {
}

func (b *Base58Encoder) Name() string {
	return "Base58"
}

func (b *Base58Encoder) String() string {
	return describe(b)
}

func (b *Base58Encoder) Code() byte {
	return 'B'
}

func (b *Base58Encoder) Encode(data []byte) string {
	return base58.Encode(data)
}

func (b *Base58Encoder) Decode(data string) ([]byte, error) {
	// the library refuses empty strings
	if data == "" {
		return []byte{}, nil
	}
	res, err := base58.Decode(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base58Encoder) TestPatterns() []string {
	return []string{
		cb58,
		"111" + cb58,
	}
}
