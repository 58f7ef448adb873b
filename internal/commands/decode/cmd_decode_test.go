package decode

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bokysan/btoa85/internal/commands/encode"
	"github.com/bokysan/btoa85/internal/util/enc"
	"github.com/stretchr/testify/require"
)

func newTestCommand(stdin string) (*Command, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	cmd := NewCommand()
	cmd.SetStreams(strings.NewReader(stdin), stdout)
	return cmd, stdout
}

func Test_DecodeStdin(t *testing.T) {
	cmd, stdout := newTestCommand("<~BOu!rDZ~>\n")

	err := cmd.Execute(nil)
	require.NoError(t, err)
	require.Equal(t, "hello", stdout.String())
}

func Test_DecodeWrapped(t *testing.T) {
	cmd, stdout := newTestCommand("<~BO\nu!rD\r\nZ~>\n")

	err := cmd.Execute(nil)
	require.NoError(t, err)
	require.Equal(t, "hello", stdout.String())
}

func Test_DecodeFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")
	require.NoError(t, ioutil.WriteFile(first, []byte("<~BOu!r~>\n"), 0600))
	require.NoError(t, ioutil.WriteFile(second, []byte("<~z!!~>\n"), 0600))

	cmd, stdout := newTestCommand("")
	err := cmd.Execute([]string{first, second})
	require.NoError(t, err)
	require.Equal(t, "hell\x00\x00\x00\x00\x00", stdout.String())
}

func Test_DecodeInvalid(t *testing.T) {
	cmd, stdout := newTestCommand("<~BOu!rDZ{~>")

	err := cmd.Execute(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid character")
	require.Empty(t, stdout.String())
}

func Test_DecodeKeepLineBreaks(t *testing.T) {
	cmd, stdout := newTestCommand("a\nb\n")
	cmd.Codec = "raw"
	cmd.KeepLineBreaks = true

	err := cmd.Execute(nil)
	require.NoError(t, err)
	require.Equal(t, "a\nb\n", stdout.String())
}

func Test_EncodeDecodeAllCodecs(t *testing.T) {
	data := []byte("\x00\x00\x00\x00\xff\xfe\x01binary data\x00 with all kinds of bytes \x7f\x80")

	for _, name := range enc.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			encoded := &bytes.Buffer{}
			e := encode.NewCommand()
			e.Codec = name
			e.Wrap = 16
			e.SetStreams(bytes.NewReader(data), encoded)
			require.NoError(t, e.Execute(nil))

			if name == "Raw" {
				// raw output cannot be wrapped and decoded again
				return
			}

			decoded := &bytes.Buffer{}
			d := NewCommand()
			d.Codec = name
			d.SetStreams(encoded, decoded)
			require.NoError(t, d.Execute(nil))
			require.Equal(t, data, decoded.Bytes())
		})
	}
}
