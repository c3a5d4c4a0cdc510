package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/lander/common"
	"github.com/milk9111/lander/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lander",
		Short:         "Fling a rocket between spinning planets and land it softly.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			logger, err := logging.New(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return run(cfg, logger)
		},
	}
	bindFlags(cmd.Flags())
	return cmd
}

func run(cfg Config, logger *zap.Logger) error {
	if cfg.Monitor {
		if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
			ebiten.SetMonitor(monitors[0])
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("lander")

	game, err := NewGame(cfg, logger)
	if err != nil {
		return err
	}
	defer game.Close()

	logger.Info("starting",
		zap.String("profile", cfg.Profile),
		zap.Int64("seed", game.Seed()),
		zap.String("scenario", cfg.Scenario),
	)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
