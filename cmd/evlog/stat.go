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

type statCmd struct {
	layoutFlags
	w io.Writer
}

func (*statCmd) Name() string {
	return "stat"
}

func (*statCmd) Synopsis() string {
	return "print per-channel statistics of raw sample logs"
}

func (*statCmd) Usage() string {
	return "stat [-channels] [-legend] <filename>...\n"
}

func (s *statCmd) SetFlags(f *flag.FlagSet) {
	s.layoutFlags.SetFlags(f)
}

func (s *statCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := log.WithPrefix("stat")
	if f.NArg() == 0 {
		logger.Error("no input file")
		return subcommands.ExitUsageError
	}
	cfg := evlog.DefaultConfig()
	if err := s.apply(&cfg); err != nil {
		logger.Error(err)
		return subcommands.ExitUsageError
	}
	w := s.w
	if w == nil {
		w = os.Stdout
	}
	for _, fn := range f.Args() {
		if err := printStats(w, fn, cfg.Legend); err != nil {
			logger.Error(err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func printStats(w io.Writer, fn string, legend []string) error {
	r, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer r.Close()
	stats, err := evlog.Summarize(r, legend)
	if err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	fmt.Fprintf(w, "%s\n", fn)
	for _, s := range stats {
		fmt.Fprintf(w, "%s, %d, %d, %d, %.3f\n", s.Name, s.Count, s.Min, s.Max, s.Mean)
	}
	return nil
}
