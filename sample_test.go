package evlog

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSample(t *testing.T) {
	testCases := []struct {
		b      []byte
		expect int16
	}{
		{[]byte{0x00, 0x00}, 0},
		{[]byte{0x00, 0x01}, 1},
		{[]byte{0xff, 0xff}, -1},
		{[]byte{0x7f, 0xff}, 32767},
		{[]byte{0x80, 0x00}, -32768},
		{[]byte{0x01, 0x00}, 256},
		{[]byte{0x00, 0x0a, 0xee}, 10},
	}
	for _, tc := range testCases {
		t.Run(strconv.Itoa(int(tc.expect)), func(t *testing.T) {
			assert.Equal(t, tc.expect, DecodeSample(tc.b))
		})
	}
}

func TestSampleRoundTripFullRange(t *testing.T) {
	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		b := EncodeSample(int16(v))
		require.Len(t, b, SampleSize)
		got := DecodeSample(b)
		require.Equal(t, strconv.Itoa(v), strconv.Itoa(int(got)))
	}
}

func TestEncodeSamples(t *testing.T) {
	b, err := EncodeSamples([]int16{1, -1, 300})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0xff, 0xff, 0x01, 0x2c}, b)
}

func TestSampleReader(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		sr := NewSampleReader(bytes.NewReader(nil))
		assert.False(t, sr.Next())
		assert.NoError(t, sr.Err())
		assert.Equal(t, 0, sr.Count())
	})
	t.Run("odd trailing byte", func(t *testing.T) {
		sr := NewSampleReader(bytes.NewReader([]byte{0x00, 0x05, 0xff, 0xfe, 0x12}))
		got := make([]int16, 0)
		for sr.Next() {
			got = append(got, sr.Sample())
		}
		assert.NoError(t, sr.Err())
		assert.Equal(t, []int16{5, -2}, got)
		assert.Equal(t, 2, sr.Count())
		assert.False(t, sr.Next())
	})
	t.Run("read failure", func(t *testing.T) {
		boom := errors.New("device error")
		sr := NewSampleReader(io.MultiReader(bytes.NewReader([]byte{0x00, 0x07}), &errReader{err: boom}))
		require.True(t, sr.Next())
		assert.Equal(t, int16(7), sr.Sample())
		assert.False(t, sr.Next())
		assert.ErrorIs(t, sr.Err(), boom)
		assert.False(t, sr.Next())
	})
}

type errReader struct {
	err error
}

func (r *errReader) Read([]byte) (int, error) {
	return 0, r.err
}

type errWriter struct {
	err error
}

func (w *errWriter) Write([]byte) (int, error) {
	return 0, w.err
}
