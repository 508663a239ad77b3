package g723dec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUntransmittedProducesFullFrame(t *testing.T) {
	dec := NewDecoder(Config{PostFilter: true})
	pcm, err := dec.Decode([]byte{0x03})
	require.NoError(t, err)
	assert.Len(t, pcm, FrameLen)
}

func TestDecodeShortFrameReturnsSentinel(t *testing.T) {
	dec := NewDecoder(Config{PostFilter: true})
	_, err := dec.Decode([]byte{0x00, 0x01})
	assert.ErrorIs(t, err, ErrShortFrame)
}

func TestDecodeConcealedProducesFullFrame(t *testing.T) {
	dec := NewDecoder(Config{PostFilter: true})
	pcm := dec.DecodeConcealed()
	assert.Len(t, pcm, FrameLen)
}

func TestResetThenDecodeStillWorks(t *testing.T) {
	dec := NewDecoder(Config{PostFilter: false})
	buf := make([]byte, 24)
	_, err := dec.Decode(buf)
	require.NoError(t, err)

	dec.Reset()
	pcm, err := dec.Decode(buf)
	require.NoError(t, err)
	assert.Len(t, pcm, FrameLen)
}

func TestDecodeWithoutPostFilterDiffersFromWithPostFilter(t *testing.T) {
	plain := NewDecoder(Config{PostFilter: false})
	filtered := NewDecoder(Config{PostFilter: true})

	sid := make([]byte, 4)
	sid[0] = 0x02
	sid[3] = 0x20

	pcmPlain, err := plain.Decode(sid)
	require.NoError(t, err)
	pcmFiltered, err := filtered.Decode(sid)
	require.NoError(t, err)

	assert.Len(t, pcmPlain, FrameLen)
	assert.Len(t, pcmFiltered, FrameLen)
	assert.NotEqual(t, pcmPlain, pcmFiltered)
}
