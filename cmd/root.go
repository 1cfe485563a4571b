package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Mikeoo31/cloud-atlas/internal/config"
	"github.com/Mikeoo31/cloud-atlas/internal/logger"
	"github.com/Mikeoo31/cloud-atlas/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "cloud-atlas",
		Short: "Helpers for the cloud-atlas picture library.",
		Long: `Cloud Atlas bundles the small helpers of the picture library:
- human-readable picture sizes
- #RRGGBB normalization of dominant colors
- stable random colors for tags
- saving pictures from their URLs`,
		Version:           version.Short(),
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s', optional)",
			config.DefaultConfigFilename))

	rootCmd.AddCommand(sizeCmd, hexCmd, tagsCmd, downloadCmd, versionCmd)
}

func initConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err = config.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.SetLevel(cfg.ParsedLogLevel)

	appConfig = cfg

	return nil
}
