package evlog

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"
)

// TimeLayout renders the generation time like the C locale's %c.
const TimeLayout = time.ANSIC

// Separator joins values and channel names within a line.
const Separator = ", "

type Header struct {
	Title     string
	Generated time.Time
	Frequency string
	Legend    []string
}

func NewHeader(cfg Config, now time.Time) Header {
	return Header{
		Title:     cfg.Title,
		Generated: now,
		Frequency: cfg.Frequency,
		Legend:    cfg.Legend,
	}
}

// WriteTo writes the header block, terminated by a blank line.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	var otp bytes.Buffer
	otp.WriteString(h.Title)
	otp.WriteByte('\n')
	otp.WriteString(fmt.Sprintf("Generated: %s\n", h.Generated.Format(TimeLayout)))
	otp.WriteString(fmt.Sprintf("Frequency: %s\n", h.Frequency))
	otp.WriteString(strings.Join(h.Legend, Separator))
	otp.WriteString("\n\n")
	return otp.WriteTo(w)
}
