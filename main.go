package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"disco/app"
	"disco/hal"
	"disco/internal/buildinfo"
	"disco/internal/config"
	"disco/internal/logging"
	"disco/internal/statusapi"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := config.Flags()
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path, flags)
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if cfg.Mode == config.ModeTerm {
		// The terminal belongs to the picture; keep only errors.
		logger = logger.Level(max(logger.GetLevel(), zerolog.ErrorLevel))
	}
	logger.Info().
		Str("build", buildinfo.String()).
		Str("mode", cfg.Mode).
		Msg("disco starting")

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancelCause(sigCtx)
	defer cancel(nil)

	var rt app.Runtime
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Status.Enabled {
		srv := statusapi.NewServer(&rt, buildinfo.Short(), cfg.Status.AllowOrigins, logger)
		g.Go(func() error {
			if err := srv.Run(gctx, cfg.Status.Addr); err != nil {
				cancel(err)
				return err
			}
			return nil
		})
	}

	host := hal.HostConfig{Width: cfg.Width, Height: cfg.Height, Logger: logger}
	newApp := app.New(ctx, &rt, app.Options{
		Config:      cfg,
		Logger:      logger,
		Cancel:      cancel,
		ExitOnCrash: cfg.Mode == config.ModeHeadless,
	})

	// Window mode must stay on the main goroutine.
	var runErr error
	switch cfg.Mode {
	case config.ModeHeadless:
		runErr = hal.RunHeadless(ctx, host, newApp, hal.HeadlessConfig{Hz: cfg.Hz, Frames: cfg.Frames})
	case config.ModeTerm:
		runErr = hal.RunTerminal(ctx, host, newApp, hal.TerminalConfig{Hz: cfg.Hz})
	default:
		runErr = hal.RunWindow(ctx, host, newApp, hal.WindowConfig{
			Title: "disco " + buildinfo.Short(),
			Scale: cfg.Scale,
			TPS:   cfg.Hz,
		})
	}
	cancel(nil)
	waitErr := g.Wait()

	snap := rt.Snapshot()
	logger.Info().
		Uint64("frames", snap.Frames).
		AnErr("cause", context.Cause(ctx)).
		Msg("disco stopped")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	if waitErr != nil && !errors.Is(waitErr, context.Canceled) {
		return waitErr
	}
	return nil
}
