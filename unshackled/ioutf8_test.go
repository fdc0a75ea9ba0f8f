package unshackled

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodepointRoundTrip(t *testing.T) {
	for _, cp := range []int32{'A', '0', 0x00E9, 0x4E2D, 0x1F600} {
		var buf bytes.Buffer
		require.NoError(t, WriteCodepoint(&buf, cp))
		got, err := ReadCodepoint(bufio.NewReader(&buf))
		require.NoError(t, err)
		assert.Equal(t, cp, got)
	}
}

func TestReadCodepointReturnsSentinelOnEOF(t *testing.T) {
	got, err := ReadCodepoint(bufio.NewReader(bytes.NewReader(nil)))
	require.NoError(t, err)
	assert.EqualValues(t, -1, got)
}

func TestReadCodepointRejectsMalformedUTF8(t *testing.T) {
	_, err := ReadCodepoint(bufio.NewReader(bytes.NewReader([]byte{0xff})))
	assert.Error(t, err)
}

func TestWriteCodepointRejectsOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCodepoint(&buf, 0x110000)
	assert.Error(t, err)
}
