package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Mikeoo31/cloud-atlas/internal/app"
	"github.com/Mikeoo31/cloud-atlas/internal/config"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var downloadCmd = &cobra.Command{
	Use:   "download [flags] {url} [file name]",
	Short: "Save a picture from its URL.",
	Long: `Download saves the picture at the URL into the output folder.
Without a file name, the last segment of the URL path is used, and an
extension is added from the response content type when the name has none.
An empty URL does nothing.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			return err
		}

		var fileName string
		if len(args) > 1 {
			fileName = args[1]
		}

		return app.ExecuteDownloadCommand(cmd.Context(), appConfig, args[0], fileName)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	downloadCmdFlags := downloadCmd.Flags()

	downloadCmdFlags.StringP(
		"output",
		"o",
		"",
		"folder to save pictures to (created if it doesn't exist).")

	downloadCmdFlags.BoolP(
		"replace",
		"r",
		false,
		"overwrite an existing file with the same name.")

	downloadCmdFlags.BoolP(
		"dry-run",
		"n",
		false,
		"only show what would be saved.")

	downloadCmdFlags.StringP(
		"speed-limit",
		"s",
		"",
		"set download speed limit, for example: 500 KB, 1 MB, 1.5 MiB.")
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("replace"); flag != nil && flag.Changed {
		cfg.ReplaceFiles, _ = flags.GetBool("replace")
	}

	if flag := flags.Lookup("dry-run"); flag != nil && flag.Changed {
		cfg.DryRun, _ = flags.GetBool("dry-run")
	}

	if flag := flags.Lookup("speed-limit"); flag != nil && flag.Changed {
		cfg.DownloadSpeedLimit, _ = flags.GetString("speed-limit")
	}

	return config.ValidateConfig(cfg)
}
