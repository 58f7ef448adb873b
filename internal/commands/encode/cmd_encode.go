package encode

import (
	"io"

	"github.com/bokysan/btoa85/internal/commands/codec"
	"github.com/bokysan/btoa85/internal/logging"
	"github.com/bokysan/btoa85/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/emersion/go-textwrapper"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command encodes each input into one line of text
type Command struct {
	codec.Options `yaml:",inline"`

	Wrap int `short:"w" long:"wrap" env:"BTOA85_WRAP" yaml:"wrap" description:"Wrap encoded lines after this many characters. 0 disables wrapping." default:"0"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Encode options: %s", spew.Sdump(c))
	}

	if c.Wrap < 0 {
		return errors.Errorf("Wrap width must not be negative, got %d", c.Wrap)
	}

	return c.Run(args, c.encode)
}

func (c *Command) encode(encoder enc.Encoder, data []byte, out io.Writer) error {
	encoded := encoder.Encode(data)
	log.Debugf("Encoded %d bytes into %d characters", len(data), len(encoded))

	w := out
	if c.Wrap > 0 {
		w = textwrapper.New(out, "\n", c.Wrap)
	}

	if _, err := io.WriteString(w, encoded); err != nil {
		return errors.WithStack(err)
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
