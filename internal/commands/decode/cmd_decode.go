package decode

import (
	"io"
	"strings"

	"github.com/bokysan/btoa85/internal/commands/codec"
	"github.com/bokysan/btoa85/internal/logging"
	"github.com/bokysan/btoa85/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

// Command decodes each input and writes the concatenated bytes
type Command struct {
	codec.Options `yaml:",inline"`

	KeepLineBreaks bool `long:"keep-line-breaks" env:"BTOA85_KEEP_LINE_BREAKS" yaml:"keep-line-breaks" description:"Pass line breaks to the codec instead of removing them. Only useful with the raw codec."`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Decode options: %s", spew.Sdump(c))
	}

	return c.Run(args, c.decode)
}

func (c *Command) decode(encoder enc.Encoder, data []byte, out io.Writer) error {
	text := string(data)
	if !c.KeepLineBreaks {
		// encode writes a line per input and may wrap it
		text = lineBreaks.Replace(text)
	}

	decoded, err := encoder.Decode(text)
	if err != nil {
		return err
	}
	log.Debugf("Decoded %d characters into %d bytes", len(text), len(decoded))

	if _, err := out.Write(decoded); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
