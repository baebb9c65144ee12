package evlog

import (
	"fmt"
	"io"
	"strings"
)

const (
	DefaultTitle     = "EV Logger Parsed Log"
	DefaultFrequency = "1kHz"
)

// DefaultLegend is the channel layout of the EV test rig: seven ADC
// inputs followed by the three accelerometer axes.
var DefaultLegend = []string{
	"ADC0", "ADC1", "ADC2", "ADC3", "ADC4", "ADC5", "ADC6",
	"ACCELX", "ACCELY", "ACCELZ",
}

type Config struct {
	Title     string
	Frequency string
	Legend    []string
}

func DefaultConfig() Config {
	legend := make([]string, len(DefaultLegend))
	copy(legend, DefaultLegend)
	return Config{
		Title:     DefaultTitle,
		Frequency: DefaultFrequency,
		Legend:    legend,
	}
}

// GenericLegend names n channels CH0..CH(n-1).
func GenericLegend(n int) []string {
	rtn := make([]string, n)
	for i := 0; i < n; i++ {
		rtn[i] = fmt.Sprintf("CH%d", i)
	}
	return rtn
}

// ParseLegend splits a comma separated list of channel names.
func ParseLegend(s string) []string {
	lis := strings.Split(s, ",")
	rtn := make([]string, 0, len(lis))
	for _, name := range lis {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		rtn = append(rtn, name)
	}
	return rtn
}

// Channels returns the number of samples per row.
func (c Config) Channels() int {
	return len(c.Legend)
}

func (c Config) Validate() error {
	if len(c.Legend) == 0 {
		return fmt.Errorf("config: no channels")
	}
	for i, name := range c.Legend {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("config: channel %d has no name", i)
		}
	}
	return nil
}

func (c Config) Fprint(w io.Writer) {
	fmt.Fprintf(w, "title: %s\n", c.Title)
	fmt.Fprintf(w, "frequency: %s\n", c.Frequency)
	fmt.Fprintf(w, "channels: %d\n", c.Channels())
	for i, name := range c.Legend {
		fmt.Fprintf(w, "    %d: %s\n", i, name)
	}
}
