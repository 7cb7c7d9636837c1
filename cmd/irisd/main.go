package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"irisd/internal/config"
	"irisd/internal/httpapi"
	"irisd/internal/registry"
	"irisd/internal/serving"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// envOr returns the environment value for key, or def when unset.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath   string
		addr      string
		modelsDir string
		logLevel  string
	)
	root := &cobra.Command{
		Use:          "irisd",
		Short:        "HTTP service for iris flower classification",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config.Config
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cfg = loaded
			}
			// Flags win over file values; file values win over flag defaults.
			if cmd.Flags().Changed("addr") || cfg.Addr == "" {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("models-dir") || cfg.ModelsDir == "" {
				cfg.ModelsDir = modelsDir
			}
			if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
				cfg.LogLevel = logLevel
			}
			return run(cfg)
		},
	}
	root.Flags().StringVar(&cfgPath, "config", "", "Optional config file (yaml, json or toml)")
	root.Flags().StringVar(&addr, "addr", envOr("IRISD_ADDR", ":8080"), "HTTP listen address, e.g. :8080")
	root.Flags().StringVar(&modelsDir, "models-dir", envOr("IRISD_MODELS_DIR", "models"), "Directory to scan for *.json model bundles")
	root.Flags().StringVar(&logLevel, "log-level", envOr("IRISD_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	return root
}

func run(cfg config.Config) error {
	logger := newLogger(cfg.LogLevel)
	httpapi.SetLogger(logger)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins, cfg.CORSMethods, cfg.CORSHeaders)

	// The registry loads before the listener starts: a corrupt bundle aborts
	// startup instead of serving with a silently missing model.
	reg, err := registry.LoadDir(cfg.ModelsDir)
	if err != nil {
		logger.Error().Err(err).Str("dir", cfg.ModelsDir).Msg("failed to load model bundles")
		return err
	}
	defer reg.Close()
	logger.Info().Int("models", reg.Len()).Str("dir", cfg.ModelsDir).Msg("model registry loaded")

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	srv := &http.Server{Addr: cfg.Addr, Handler: httpapi.NewMux(serving.New(reg))}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("irisd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-stop:
	}
	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	return nil
}

// newLogger builds the process logger at the configured level.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
