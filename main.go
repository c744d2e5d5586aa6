package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"orbview/app"
	"orbview/hal"
)

func main() {
	var headless hal.HeadlessConfig
	var cfgPath string
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfgPath, "config", "", "Settings file (default: the per-user orbview.toml).")
	flag.Parse()

	cfg, err := loadSettings(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithOptions(h, cfg.viewOptions())
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, cfg.halOptions(), newApp, headless); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(cfg.halOptions(), newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
