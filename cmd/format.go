package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Mikeoo31/cloud-atlas/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	sizeCmd = &cobra.Command{
		Use:     "size {bytes}",
		Short:   "Format byte counts as B, KB or MB.",
		Example: "  cloud-atlas size 512 2048 \"1.5 MiB\"",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ExecuteSizeCommand(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	hexCmd = &cobra.Command{
		Use:     "hex {colors}",
		Short:   "Normalize colors like 0xff0000 to #ff0000.",
		Example: "  cloud-atlas hex 0xff0000 ff",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ExecuteHexCommand(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
)
