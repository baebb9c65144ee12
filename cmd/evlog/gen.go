package main

import (
	"context"
	"flag"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/subcommands"
	"github.com/yofu/evlog"
)

type genCmd struct {
	layoutFlags
	rows      int
	rate      string
	freq      float64
	amplitude float64
}

func (*genCmd) Name() string {
	return "gen"
}

func (*genCmd) Synopsis() string {
	return "write a synthetic raw sample log"
}

func (*genCmd) Usage() string {
	return "gen [-rows] [-channels] [-rate] [-freq] [-amplitude] <filename>\n"
}

func (g *genCmd) SetFlags(f *flag.FlagSet) {
	g.layoutFlags.SetFlags(f)
	f.IntVar(&g.rows, "rows", 1000, "number of rows")
	f.StringVar(&g.rate, "rate", evlog.DefaultFrequency, "sample rate")
	f.Float64Var(&g.freq, "freq", 50, "base frequency [Hz]; channel i runs at (i+1)*freq")
	f.Float64Var(&g.amplitude, "amplitude", 1000, "peak value")
}

// synthesize returns rows of sine waves, channel i at (i+1)*freq.
func synthesize(rows, channels int, rate, freq, amplitude float64) []int16 {
	amplitude = math.Min(math.Abs(amplitude), math.MaxInt16)
	rtn := make([]int16, rows*channels)
	for r := 0; r < rows; r++ {
		t := float64(r) / rate
		for c := 0; c < channels; c++ {
			rtn[r*channels+c] = int16(math.Round(amplitude * math.Sin(2*math.Pi*freq*float64(c+1)*t)))
		}
	}
	return rtn
}

func (g *genCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := log.WithPrefix("gen")
	if f.NArg() != 1 || g.rows < 0 {
		logger.Error("usage: " + g.Usage())
		return subcommands.ExitUsageError
	}
	cfg := evlog.DefaultConfig()
	if err := g.apply(&cfg); err != nil {
		logger.Error(err)
		return subcommands.ExitUsageError
	}
	rate, err := evlog.ParseRate(g.rate)
	if err != nil {
		logger.Error(err)
		return subcommands.ExitUsageError
	}
	b, err := evlog.EncodeSamples(synthesize(g.rows, cfg.Channels(), rate, g.freq, g.amplitude))
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(f.Arg(0), b, 0644); err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}
	logger.Info("done", "out", f.Arg(0), "rows", g.rows, "channels", cfg.Channels())
	return subcommands.ExitSuccess
}
