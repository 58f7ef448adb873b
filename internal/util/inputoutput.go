package util

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// StandardStream is the file name which stands for stdin or stdout
const StandardStream = "-"

// ReadInput reads the whole named file. An empty name or StandardStream reads `stdin` instead.
func ReadInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" || name == StandardStream {
		data, err := ioutil.ReadAll(stdin)
		return data, errors.Wrapf(err, "Could not read standard input")
	}

	data, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}

// OpenOutput creates (or truncates) the named file. An empty name or StandardStream returns `stdout`,
// which will not be closed by Close.
func OpenOutput(name string, stdout io.Writer) (io.WriteCloser, error) {
	if name == "" || name == StandardStream {
		return nopWriteCloser{stdout}, nil
	}

	f, err := os.Create(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
