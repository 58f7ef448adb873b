package enc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownEncoder is returned by Lookup if no encoder matches the requested name
var ErrUnknownEncoder = errors.New("unknown encoder")

// encoders lists all available encoders. The first one is the default.
var encoders = []Encoder{
	&Ascii85Encoder{},
	&Base32Encoder{},
	&Base58Encoder{},
	&Base64Encoder{},
	&Base64uEncoder{},
	&Base91Encoder{},
	&Base128Encoder{},
	&RawEncoder{},
}

// Default returns the encoder used when none is specified
func Default() Encoder {
	return encoders[0]
}

// Lookup finds the encoder by its name or its one-letter code. Both are matched case-insensitively.
// An empty name returns the default encoder.
func Lookup(name string) (Encoder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Default(), nil
	}

	for _, e := range encoders {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
		if len(name) == 1 && strings.EqualFold(string(e.Code()), name) {
			return e, nil
		}
	}

	return nil, errors.Wrapf(ErrUnknownEncoder, "%q is not one of %s", name, strings.Join(Names(), ", "))
}

// Names returns the sorted names of all available encoders
func Names() []string {
	res := make([]string, len(encoders))
	for i, e := range encoders {
		res[i] = e.Name()
	}
	sort.Strings(res)
	return res
}

func describe(e Encoder) string {
	return fmt.Sprintf("%v(%v)", e.Name(), string(e.Code()))
}
