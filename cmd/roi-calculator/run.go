package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apiserver "github.com/worksprings/inventory-roi/internal/api_server"
	"github.com/worksprings/inventory-roi/internal/config"
	"github.com/worksprings/inventory-roi/pkg/log"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the ROI calculator server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadEnvFile(envFile); err != nil {
			return err
		}

		cfg, err := config.New()
		if err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}

		logger := log.InitLog(log.ParseLevel(cfg.Service.LogLevel), cfg.Service.LogEncoding)
		defer func() { _ = logger.Sync() }()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		zap.S().Info("Starting ROI calculator service")
		defer zap.S().Info("ROI calculator service stopped")

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		apiListener, err := newListener(cfg.Service.Address)
		if err != nil {
			return fmt.Errorf("creating listener: %w", err)
		}

		metricsListener, err := newListener(cfg.Service.MetricsAddress)
		if err != nil {
			_ = apiListener.Close()
			return fmt.Errorf("creating metrics listener: %w", err)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := apiserver.New(cfg, apiListener).Run(gctx); err != nil {
				return fmt.Errorf("running api server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			if err := apiserver.NewMetricServer(cfg.Service.MetricsAddress, metricsListener).Run(gctx); err != nil {
				return fmt.Errorf("running metrics server: %w", err)
			}
			return nil
		})

		if err := g.Wait(); err != nil {
			zap.S().Errorw("server stopped with error", "error", err)
			return err
		}
		return nil
	},
}

// loadEnvFile never overrides variables already present in the environment.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func newListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}
