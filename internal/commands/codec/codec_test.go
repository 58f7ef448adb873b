package codec

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/bokysan/btoa85/internal/util/enc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_RunDefaultsToStdin(t *testing.T) {
	stdout := &bytes.Buffer{}
	opts := &Options{}
	opts.SetStreams(strings.NewReader("stdin data"), stdout)

	var seen []string
	err := opts.Run(nil, func(encoder enc.Encoder, data []byte, out io.Writer) error {
		require.Equal(t, "Ascii85", encoder.Name())
		seen = append(seen, string(data))
		_, err := out.Write([]byte("ok"))
		return err
	})
	require.NoError(t, err)
	require.Equal(t, []string{"stdin data"}, seen)
	require.Equal(t, "ok", stdout.String())
}

func Test_RunCollectsErrors(t *testing.T) {
	opts := &Options{Codec: "raw"}
	opts.SetStreams(strings.NewReader(""), &bytes.Buffer{})

	calls := 0
	err := opts.Run([]string{"-", "-", "-"}, func(encoder enc.Encoder, data []byte, out io.Writer) error {
		calls++
		return errors.Errorf("failure %d", calls)
	})
	require.Error(t, err)
	require.Equal(t, 3, calls, "All inputs must be tried")
	for _, msg := range []string{"failure 1", "failure 2", "failure 3"} {
		require.Contains(t, err.Error(), msg)
	}
}

func Test_RunUnknownCodec(t *testing.T) {
	opts := &Options{Codec: "nope"}
	err := opts.Run(nil, func(encoder enc.Encoder, data []byte, out io.Writer) error {
		t.Fatal("Transform must not be called")
		return nil
	})
	require.Error(t, err)
}
