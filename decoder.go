package evlog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// StreamError reports an I/O failure and the stream it happened on.
type StreamError struct {
	Stream string
	Op     string
	Err    error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Stream, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

type Stats struct {
	Rows    int
	Samples int
	Partial bool
}

type Option func(*Decoder)

// WithClock sets the source of the header's generation time.
func WithClock(now func() time.Time) Option {
	return func(d *Decoder) {
		d.now = now
	}
}

func WithLogger(l *log.Logger) Option {
	return func(d *Decoder) {
		d.logger = l
	}
}

// Decoder converts raw sample logs into the text log format.
type Decoder struct {
	cfg    Config
	now    func() time.Time
	logger *log.Logger
}

func NewDecoder(cfg Config, opts ...Option) (*Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Decoder{
		cfg:    cfg,
		now:    time.Now,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func (d *Decoder) Config() Config {
	return d.cfg
}

// Run writes the header and one line per row of src to dst.
// Rows are separated by newlines; the last row has none, and a row cut
// short by the end of src keeps the values read so far.
func (d *Decoder) Run(dst io.Writer, src io.Reader) (Stats, error) {
	var stats Stats
	w := bufio.NewWriter(dst)
	if _, err := NewHeader(d.cfg, d.now()).WriteTo(w); err != nil {
		return stats, &StreamError{Stream: "output", Op: "write", Err: err}
	}

	rr := NewRowReader(src, d.cfg.Channels())
	line := make([]byte, 0, 8*d.cfg.Channels())
	for {
		row, ok := rr.Next()
		if !ok {
			break
		}
		line = line[:0]
		if stats.Rows > 0 {
			line = append(line, '\n')
		}
		line = appendRow(line, row)
		if _, err := w.Write(line); err != nil {
			stats.Samples = rr.Samples()
			return stats, &StreamError{Stream: "output", Op: "write", Err: err}
		}
		stats.Rows++
		stats.Partial = rr.Partial()
	}
	stats.Samples = rr.Samples()

	if err := rr.Err(); err != nil {
		rerr := &StreamError{Stream: "input", Op: "read", Err: err}
		// keep what was decoded before the failure
		if ferr := w.Flush(); ferr != nil {
			return stats, errors.Join(rerr, &StreamError{Stream: "output", Op: "write", Err: ferr})
		}
		return stats, rerr
	}
	if err := w.Flush(); err != nil {
		return stats, &StreamError{Stream: "output", Op: "write", Err: err}
	}
	d.logger.Debug("decoded", "rows", stats.Rows, "samples", stats.Samples, "partial", stats.Partial)
	return stats, nil
}

func appendRow(b []byte, row []int16) []byte {
	for i, v := range row {
		if i > 0 {
			b = append(b, Separator...)
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}
	return b
}

// ConvertFile decodes the raw log at in and writes the text log to out,
// truncating it. A partially written out is left in place on failure.
func ConvertFile(cfg Config, in, out string, opts ...Option) (stats Stats, err error) {
	d, err := NewDecoder(cfg, opts...)
	if err != nil {
		return stats, err
	}
	src, err := os.Open(in)
	if err != nil {
		return stats, &StreamError{Stream: "input", Op: "open", Err: err}
	}
	defer closeStream(src, "input", &err)

	dst, err := os.Create(out)
	if err != nil {
		return stats, &StreamError{Stream: "output", Op: "create", Err: err}
	}
	defer closeStream(dst, "output", &err)

	d.logger.Debug("converting", "in", in, "out", out, "channels", cfg.Channels())
	return d.Run(dst, src)
}

// closeStream closes c and reports its failure in *err unless an earlier
// error is already set.
func closeStream(c io.Closer, stream string, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = &StreamError{Stream: stream, Op: "close", Err: cerr}
	}
}
