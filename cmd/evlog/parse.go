package main

import (
	"context"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/subcommands"
	"github.com/yofu/evlog"
)

type parseCmd struct {
	layoutFlags
	in        string
	out       string
	title     string
	frequency string
}

func (*parseCmd) Name() string {
	return "parse"
}

func (*parseCmd) Synopsis() string {
	return "convert a raw sample log to text"
}

func (*parseCmd) Usage() string {
	return "parse [-in] [-out] [-channels] [-legend] [-title] [-frequency]\n"
}

func (p *parseCmd) SetFlags(f *flag.FlagSet) {
	p.layoutFlags.SetFlags(f)
	f.StringVar(&p.in, "in", "sample.log", "raw sample log")
	f.StringVar(&p.out, "out", "parsed.log", "text log")
	f.StringVar(&p.title, "title", evlog.DefaultTitle, "title line")
	f.StringVar(&p.frequency, "frequency", evlog.DefaultFrequency, "sample rate label")
}

func (p *parseCmd) config() (evlog.Config, error) {
	cfg := evlog.DefaultConfig()
	cfg.Title = p.title
	cfg.Frequency = p.frequency
	if err := p.apply(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (p *parseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := log.WithPrefix("parse")
	cfg, err := p.config()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitUsageError
	}
	if logger.GetLevel() <= log.DebugLevel {
		cfg.Fprint(os.Stderr)
	}
	stats, err := evlog.ConvertFile(cfg, p.in, p.out, evlog.WithLogger(logger))
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}
	logger.Info("done", "out", p.out, "rows", stats.Rows, "samples", stats.Samples, "partial", stats.Partial)
	return subcommands.ExitSuccess
}
