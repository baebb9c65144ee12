package main

import (
	"flag"
	"fmt"

	"github.com/yofu/evlog"
)

// layoutFlags are the channel layout options shared by commands.
type layoutFlags struct {
	channels int
	legend   string
}

func (l *layoutFlags) SetFlags(f *flag.FlagSet) {
	f.IntVar(&l.channels, "channels", 0, "samples per row (default: legend length)")
	f.StringVar(&l.legend, "legend", "", "comma separated channel names")
}

func (l *layoutFlags) apply(cfg *evlog.Config) error {
	if l.legend != "" {
		cfg.Legend = evlog.ParseLegend(l.legend)
		if l.channels > 0 && l.channels != len(cfg.Legend) {
			return fmt.Errorf("legend has %d names, channels is %d", len(cfg.Legend), l.channels)
		}
		return nil
	}
	if l.channels < 0 {
		return fmt.Errorf("invalid channel count: %d", l.channels)
	}
	if l.channels > 0 && l.channels != len(cfg.Legend) {
		cfg.Legend = evlog.GenericLegend(l.channels)
	}
	return nil
}
