package evlog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderWriteTo(t *testing.T) {
	h := Header{
		Title:     "Rig B",
		Generated: fixedTime,
		Frequency: "500Hz",
		Legend:    []string{"X", "Y"},
	}
	var buf bytes.Buffer
	n, err := h.WriteTo(&buf)
	require.NoError(t, err)
	expect := "Rig B\nGenerated: Wed Mar  5 14:07:09 2014\nFrequency: 500Hz\nX, Y\n\n"
	assert.Equal(t, expect, buf.String())
	assert.Equal(t, int64(len(expect)), n)
}

func TestNewHeader(t *testing.T) {
	h := NewHeader(DefaultConfig(), fixedTime)
	assert.Equal(t, DefaultTitle, h.Title)
	assert.Equal(t, DefaultFrequency, h.Frequency)
	assert.Equal(t, DefaultLegend, h.Legend)
	assert.Equal(t, fixedTime, h.Generated)
}
