package bumpversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input               string
		major, minor, patch string
	}{
		{"1.2.3", "1", "2", "3"},
		{"0.10.0", "0", "10", "0"},
		{"2.5.7", "2", "5", "7"},
		// Components are substrings, not numbers.
		{"1.x.3-rc1", "1", "x", "3-rc1"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			v, err := ParseVersion(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.major, v.Major)
			assert.Equal(t, tc.minor, v.Minor)
			assert.Equal(t, tc.patch, v.Patch)
			assert.Equal(t, tc.input, v.String())
			assert.Equal(t, tc.major+"."+tc.minor, v.MajorMinor())
		})
	}
}

func TestParseVersionWrongFormat(t *testing.T) {
	for _, input := range []string{"", "1", "1.2", "1.2.3.4", ".1.2.3", "1.2.", "1..", "...", "1..3", ".2.3"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseVersion(input)
			require.ErrorIs(t, err, ErrVersionFormat)
			assert.Equal(t, "wrong version format(maj.min.patch)", err.Error())
			assert.True(t, IsUsageError(err))
		})
	}
}

func TestParseArgs(t *testing.T) {
	_, err := ParseArgs(nil)
	require.ErrorIs(t, err, ErrNoVersion)
	assert.Equal(t, "no version argument", err.Error())

	v, err := ParseArgs([]string{"3.1.4", "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "3.1.4", v.String())

	_, err = ParseArgs([]string{"3.1"})
	require.ErrorIs(t, err, ErrVersionFormat)
}

func TestVersionStrict(t *testing.T) {
	v, err := ParseVersion("1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", v.Canonical())
	require.NoError(t, v.Strict())

	v, err = ParseVersion("1.x.3")
	require.NoError(t, err)
	err = v.Strict()
	require.ErrorIs(t, err, ErrNotSemver)
	assert.Equal(t, `version "1.x.3" is not valid semver`, err.Error())
	assert.True(t, IsUsageError(err))
}

func TestParseVersionDropsTrailingDots(t *testing.T) {
	for _, input := range []string{"1.2.3.", "1.2.3.."} {
		v, err := ParseVersion(input)
		require.NoError(t, err, input)
		assert.Equal(t, "3", v.Patch)
		assert.Equal(t, "1.2.3", v.String())
	}
}

func TestVersionString(t *testing.T) {
	v := Version{Major: "4", Minor: "0", Patch: "2"}
	assert.Equal(t, "4.0.2", v.String())
}
