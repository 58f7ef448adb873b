package codec

import (
	"io"
	"os"

	"github.com/bokysan/btoa85/internal/util"
	"github.com/bokysan/btoa85/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Options are shared by the commands which push data through an encoder
type Options struct {
	Codec  string `short:"e" long:"codec"  env:"BTOA85_CODEC"  yaml:"codec"  description:"Name or one-letter code of the codec: ascii85 (W), base32 (T), base58 (B), base64 (S), base64u (U), base91 (X), base128 (V) or raw (R)" default:"ascii85"`
	Output string `short:"o" long:"output" env:"BTOA85_OUTPUT" yaml:"output" description:"Output file, truncated if it exists. Use '-' for standard output." default:"-"`

	stdin  io.Reader
	stdout io.Writer
}

// Transform processes the complete contents of one input and writes the result to out
type Transform func(encoder enc.Encoder, data []byte, out io.Writer) error

// SetStreams replaces the standard input and output used for the file name "-"
func (o *Options) SetStreams(stdin io.Reader, stdout io.Writer) {
	o.stdin = stdin
	o.stdout = stdout
}

// Run reads every input completely and hands it to transform, in order. Inputs which fail are reported
// together once all inputs have been tried. No inputs means standard input.
func (o *Options) Run(inputs []string, transform Transform) error {
	encoder, err := enc.Lookup(o.Codec)
	if err != nil {
		return err
	}
	log.Debugf("Using codec %v", encoder)

	stdin := o.stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := o.stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	out, err := util.OpenOutput(o.Output, stdout)
	if err != nil {
		return errors.Wrapf(err, "Could not open output %s", o.Output)
	}

	if len(inputs) == 0 {
		inputs = []string{util.StandardStream}
	}

	var errs error
	for _, name := range inputs {
		data, err := util.ReadInput(name, stdin)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		log.Debugf("Read %d bytes from %s", len(data), name)

		if err := transform(encoder, data, out); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not process %s", name))
		}
	}

	if err := out.Close(); err != nil {
		errs = multierror.Append(errs, errors.WithStack(err))
	}

	return errs
}
