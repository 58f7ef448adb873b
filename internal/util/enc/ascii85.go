package enc

import (
	"github.com/bokysan/btoa85/pkg/ascii85"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Ascii85Encoder encodes 4 bytes to 5 characters and wraps the result in "<~" and "~>"
type Ascii85Encoder struct {
}

func (b *Ascii85Encoder) Name() string {
	return "Ascii85"
}

func (b *Ascii85Encoder) String() string {
	return describe(b)
}

func (b *Ascii85Encoder) Code() byte {
	return 'W'
}

func (b *Ascii85Encoder) Encode(data []byte) string {
	return ascii85.Encode(data)
}

func (b *Ascii85Encoder) Decode(data string) ([]byte, error) {
	res, err := ascii85.Decode(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Ascii85Encoder) TestPatterns() []string {
	str := make([]byte, 85)
	// 33 (!) through 117 (u)
	for k := range str {
		str[k] = byte(k + 33)
	}

	return []string{
		"<~" + string(str) + "~>",
		string(str),
		"<~z~>",
		"<~zzz!!~>",
		"<~9jqo^BlbD-\nBleB1DJ+*+F(f,q~>",
	}
}
