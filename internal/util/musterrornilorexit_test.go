package util

import (
	"bou.ke/monkey"
	"errors"
	"github.com/jessevdk/go-flags"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"os"
	"sync"
	"testing"
)

// seqMutex makes sure that we are executing the code sequentially, as we are monkey-patching the code in-memory.
// This is not thread safe or safe in any kind of way
var seqMutex sync.Mutex

// patchExit replaces os.Exit with a function recording the exit code. The returned function restores it.
func patchExit(exitCode *int, exited *bool) func() {
	seqMutex.Lock()
	patch := monkey.Patch(os.Exit, func(i int) {
		*exitCode = i
		*exited = true
	})
	return func() {
		patch.Unpatch()
		seqMutex.Unlock()
	}
}

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	var exitCode int
	var exited bool
	defer patchExit(&exitCode, &exited)()

	MustErrorNilOrExit(nil)

	require.False(t, exited, "MustErrorNilOrExit existed the program and it shouldn't have done so.")
}

func Test_MustErrorNilOrExit_FlagsError(t *testing.T) {
	var exitCode int
	var exited bool
	defer patchExit(&exitCode, &exited)()

	err := &flags.Error{
		Type:    flags.ErrShortNameTooLong,
		Message: "Short name too long",
	}

	MustErrorNilOrExit(err)

	require.True(t, exited)
	require.Equal(t, int(flags.ErrShortNameTooLong), exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_WrappedFlagsError(t *testing.T) {
	var exitCode int
	var exited bool
	defer patchExit(&exitCode, &exited)()

	err := pkgerrors.WithStack(&flags.Error{
		Type:    flags.ErrUnknownGroup,
		Message: "could not find option command 'foo'",
	})

	MustErrorNilOrExit(err)

	require.Equal(t, int(flags.ErrUnknownGroup), exitCode, "MustErrorNilOrExit did not unwrap the flags error")
}

func Test_MustErrorNilOrExit_Help(t *testing.T) {
	var exitCode int
	var exited bool
	defer patchExit(&exitCode, &exited)()

	exitCode = -1
	MustErrorNilOrExit(&flags.Error{Type: flags.ErrHelp, Message: "Usage:"})

	require.True(t, exited)
	require.Equal(t, 0, exitCode)
}

func Test_MustErrorNilOrExit_GenericError(t *testing.T) {
	var exitCode int
	var exited bool
	defer patchExit(&exitCode, &exited)()

	err := errors.New("demo")

	MustErrorNilOrExit(err)

	require.Equal(t, int(ErrGeneric), exitCode, "MustErrorNilOrExit did not return a proper exit code")
}
