package evlog

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RowReader groups samples into rows of a fixed channel count.
// The last row may be shorter when the stream ends mid-row.
type RowReader struct {
	samples  *SampleReader
	channels int
	row      []int16
	done     bool
}

func NewRowReader(r io.Reader, channels int) *RowReader {
	return &RowReader{
		samples:  NewSampleReader(r),
		channels: channels,
		row:      make([]int16, 0, channels),
	}
}

// Next returns the next row. The returned slice is reused by the
// following call.
func (r *RowReader) Next() ([]int16, bool) {
	if r.done {
		return nil, false
	}
	r.row = r.row[:0]
	for len(r.row) < r.channels {
		if !r.samples.Next() {
			r.done = true
			break
		}
		r.row = append(r.row, r.samples.Sample())
	}
	if len(r.row) == 0 {
		return nil, false
	}
	return r.row, true
}

// Partial reports whether the row last returned by Next is incomplete.
func (r *RowReader) Partial() bool {
	return len(r.row) > 0 && len(r.row) < r.channels
}

func (r *RowReader) Samples() int {
	return r.samples.Count()
}

func (r *RowReader) Err() error {
	return r.samples.Err()
}

// ReadChannels decodes a whole log into per-channel series.
// A trailing partial row contributes to the channels it covers.
func ReadChannels(r io.Reader, channels int) ([][]float64, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("invalid channel count: %d", channels)
	}
	rtn := make([][]float64, channels)
	for i := range rtn {
		rtn[i] = make([]float64, 0)
	}
	rr := NewRowReader(r, channels)
	for {
		row, ok := rr.Next()
		if !ok {
			break
		}
		for i, v := range row {
			rtn[i] = append(rtn[i], float64(v))
		}
	}
	if err := rr.Err(); err != nil {
		return rtn, &StreamError{Stream: "input", Op: "read", Err: err}
	}
	return rtn, nil
}

type ChannelStats struct {
	Name  string
	Count int
	Min   int16
	Max   int16
	Mean  float64
}

// Summarize computes per-channel statistics over a log.
// Channels without samples report zero values.
func Summarize(r io.Reader, legend []string) ([]ChannelStats, error) {
	data, err := ReadChannels(r, len(legend))
	if data == nil {
		return nil, err
	}
	stats := make([]ChannelStats, len(legend))
	for i, d := range data {
		stats[i].Name = legend[i]
		stats[i].Count = len(d)
		if len(d) == 0 {
			continue
		}
		stats[i].Min = int16(floats.Min(d))
		stats[i].Max = int16(floats.Max(d))
		stats[i].Mean = stat.Mean(d, nil)
	}
	return stats, err
}
