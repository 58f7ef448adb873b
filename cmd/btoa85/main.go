package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/btoa85/internal/args"
	"github.com/bokysan/btoa85/internal/commands/decode"
	"github.com/bokysan/btoa85/internal/commands/encode"
	"github.com/bokysan/btoa85/internal/commands/version"
	btoaFlags "github.com/bokysan/btoa85/internal/flags"
	"github.com/bokysan/btoa85/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Btoa85 is the main executable
type Btoa85 struct {
	parser *flags.Parser
}

// NewBtoa85 will create a new instance of Btoa85 and initialize the parser
func NewBtoa85() *Btoa85 {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	b := &Btoa85{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	b.setupGeneral()
	b.setupVersion()
	b.setupEncode()
	b.setupDecode()

	return b
}

// setupGeneral will configure general options
func (b *Btoa85) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (b *Btoa85) setupVersion() {
	cmd := &version.Command{}
	_, err := b.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (b *Btoa85) setupEncode() {
	cmd := encode.NewCommand()
	_, err := b.parser.AddCommand(
		"encode",
		"Encode files",
		"Encode each file (or standard input) into one line of Ascii85 text wrapped in <~ and ~>",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (b *Btoa85) setupDecode() {
	cmd := decode.NewCommand()
	_, err := b.parser.AddCommand(
		"decode",
		"Decode files",
		"Decode each file (or standard input) and write the concatenated bytes. Whitespace is ignored.",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main starts btoa85 and reads the configuration file
func main() {

	btoa := NewBtoa85()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := btoaFlags.NewYamlParser(btoa.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := btoa.parser.Parse()
	util.MustErrorNilOrExit(err)

}
