package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/roomsched/internal/application/engine"
	"github.com/example/roomsched/internal/infrastructure/config"
	"github.com/example/roomsched/internal/seed"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "roomsched",
		Short: "Room reservation engine with per-booking pricing policies",
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newDemoCmd())
	root.AddCommand(newMenuCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newEngine wires the seeded catalogs, config and logger into a ready
// engine. Shared by the demo and menu commands.
func newEngine() (*engine.Engine, *zap.Logger, error) {
	_ = godotenv.Load()
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	eng := engine.New(seed.Resources(), seed.Requesters(),
		engine.WithLogger(log),
		engine.WithClock(cfg.Now()),
	)
	return eng, log, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.DevMode {
		zc = zap.NewDevelopmentConfig()
	}
	lvl, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("ROOMSCHED_LOG_LEVEL: %w", err)
	}
	zc.Level = lvl
	return zc.Build()
}
