package evlog

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// SampleSize is the width of one encoded sample in bytes.
const SampleSize = 2

var endian = binary.BigEndian

// DecodeSample reads the first two bytes of b as a big-endian int16.
func DecodeSample(b []byte) int16 {
	return int16(endian.Uint16(b))
}

// EncodeSample is the inverse of DecodeSample.
func EncodeSample(v int16) []byte {
	b := make([]byte, SampleSize)
	endian.PutUint16(b, uint16(v))
	return b
}

// EncodeSamples converts samples to a raw log.
func EncodeSamples(samples []int16) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Grow(len(samples) * SampleSize)
	if err := binary.Write(buf, endian, samples); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SampleReader iterates over the samples of a raw log.
// Next reports false once fewer than two bytes remain; a trailing odd
// byte is dropped. Read failures other than end of stream are kept in Err.
type SampleReader struct {
	r     *bufio.Reader
	buf   [SampleSize]byte
	cur   int16
	count int
	err   error
}

func NewSampleReader(r io.Reader) *SampleReader {
	return &SampleReader{
		r: bufio.NewReader(r),
	}
}

func (s *SampleReader) Next() bool {
	if s.err != nil {
		return false
	}
	_, err := io.ReadFull(s.r, s.buf[:])
	if err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			s.err = err
		}
		return false
	}
	s.cur = DecodeSample(s.buf[:])
	s.count++
	return true
}

// Sample returns the value decoded by the last successful Next.
func (s *SampleReader) Sample() int16 {
	return s.cur
}

// Count returns the number of samples decoded so far.
func (s *SampleReader) Count() int {
	return s.count
}

func (s *SampleReader) Err() error {
	return s.err
}
