package evlog

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/mjibson/go-dsp/fft"
)

type Bin struct {
	Freq float64
	Amp  float64
}

// Spectrum returns the FFT amplitude of a channel sampled at rate [Hz]
// up to the Nyquist frequency. With subave the mean is removed first.
func Spectrum(data []float64, rate float64, subave bool) []Bin {
	if len(data) == 0 || rate <= 0 {
		return nil
	}
	d := make([]float64, len(data))
	copy(d, data)
	if subave {
		// Base line correction
		ave := 0.0
		for _, v := range d {
			ave += v
		}
		ave /= float64(len(d))
		for i := range d {
			d[i] -= ave
		}
	}
	ffts := fft.FFTReal(d)
	df := rate / float64(len(ffts))
	rtn := make([]Bin, len(ffts)/2+1)
	for i := range rtn {
		rtn[i] = Bin{
			Freq: df * float64(i),
			Amp:  cmplx.Abs(ffts[i]) / rate,
		}
	}
	return rtn
}

var rateUnits = []struct {
	suffix string
	scale  float64
}{
	{"mhz", 1e6},
	{"khz", 1e3},
	{"hz", 1},
}

// ParseRate converts a frequency label such as "1kHz" to Hz.
func ParseRate(s string) (float64, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	scale := 1.0
	for _, u := range rateUnits {
		if strings.HasSuffix(str, u.suffix) {
			str = strings.TrimSpace(strings.TrimSuffix(str, u.suffix))
			scale = u.scale
			break
		}
	}
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q: %w", s, err)
	}
	if val <= 0 {
		return 0, fmt.Errorf("invalid rate %q: must be positive", s)
	}
	return val * scale, nil
}
