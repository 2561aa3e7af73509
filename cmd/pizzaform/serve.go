package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-pizzaform/internal/catalogwatch"
	"github.com/goliatone/go-pizzaform/pkg/catalog"
	"github.com/goliatone/go-pizzaform/pkg/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the order form over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	orch, err := a.orchestrator()
	if err != nil {
		return err
	}

	if a.cfg.Catalog.Watch {
		src := orch.Source()
		if src.Kind() == catalog.SourceKindFile {
			watcher, err := catalogwatch.New(src.Location(), orch.Invalidate, catalogwatch.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if err := watcher.Start(ctx); err != nil {
				return err
			}
			defer watcher.Stop()
		} else {
			a.logger.Warn("catalog watch ignored for non-file source", zap.String("source", src.Location()))
		}
	}

	srv, err := server.New(orch,
		server.WithAddr(a.cfg.Addr),
		server.WithLogger(a.logger),
		server.WithLocale(a.cfg.Locale),
		server.WithShutdownGrace(a.cfg.ShutdownGrace),
	)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
