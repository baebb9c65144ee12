package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/subcommands"
	"github.com/yofu/evlog"
)

type spectrumCmd struct {
	layoutFlags
	channel int
	rate    string
	subave  bool
	w       io.Writer
}

func (*spectrumCmd) Name() string {
	return "spectrum"
}

func (*spectrumCmd) Synopsis() string {
	return "print the amplitude spectrum of one channel"
}

func (*spectrumCmd) Usage() string {
	return "spectrum [-channels] [-legend] [-channel] [-rate] [-subave] <filename>\n"
}

func (s *spectrumCmd) SetFlags(f *flag.FlagSet) {
	s.layoutFlags.SetFlags(f)
	f.IntVar(&s.channel, "channel", 0, "channel index")
	f.StringVar(&s.rate, "rate", evlog.DefaultFrequency, "sample rate")
	f.BoolVar(&s.subave, "subave", true, "subtract the mean before FFT")
}

func (s *spectrumCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := log.WithPrefix("spectrum")
	if f.NArg() != 1 {
		logger.Error("need exactly one input file")
		return subcommands.ExitUsageError
	}
	cfg := evlog.DefaultConfig()
	if err := s.apply(&cfg); err != nil {
		logger.Error(err)
		return subcommands.ExitUsageError
	}
	if s.channel < 0 || s.channel >= cfg.Channels() {
		logger.Errorf("channel %d out of range [0, %d)", s.channel, cfg.Channels())
		return subcommands.ExitUsageError
	}
	rate, err := evlog.ParseRate(s.rate)
	if err != nil {
		logger.Error(err)
		return subcommands.ExitUsageError
	}

	r, err := os.Open(f.Arg(0))
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}
	defer r.Close()
	data, err := evlog.ReadChannels(r, cfg.Channels())
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}
	logger.Debug("read", "channel", cfg.Legend[s.channel], "samples", len(data[s.channel]), "rate", rate)

	w := s.w
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "Freq, %s\n", cfg.Legend[s.channel])
	for _, b := range evlog.Spectrum(data[s.channel], rate, s.subave) {
		fmt.Fprintf(w, "%f, %f\n", b.Freq, b.Amp)
	}
	return subcommands.ExitSuccess
}
