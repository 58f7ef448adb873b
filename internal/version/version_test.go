package version

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_AppVersion(t *testing.T) {
	defer func(tag, version string) {
		GitTag = tag
		Version = version
	}(GitTag, Version)

	GitTag, Version = "", ""
	require.Equal(t, UnknownVersion, AppVersion())

	Version = "1.2.3"
	require.Equal(t, "1.2.3", AppVersion())

	GitTag = "v1.2.4"
	require.Equal(t, "v1.2.4", AppVersion())
}
