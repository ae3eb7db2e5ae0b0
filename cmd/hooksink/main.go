package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/elijahgives/webhook-client/internal/config"
	"github.com/elijahgives/webhook-client/internal/logger"
	"github.com/elijahgives/webhook-client/internal/sink"
)

var opts struct {
	Config string `long:"config" env:"HOOK_CONFIG" description:"path to the profile yaml"`
	Listen string `long:"listen" description:"listen address (overrides the profile)"`
}

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading profile: %v\n", err)
		os.Exit(1)
	}
	if opts.Listen != "" {
		cfg.ListenAddr = opts.Listen
	}

	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := sink.NewServer(cfg.ListenAddr, log)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("sink failed", logger.Error(err))
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("shutdown failed", logger.Error(err))
		os.Exit(1)
	}
}
