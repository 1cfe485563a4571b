package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Mikeoo31/cloud-atlas/internal/app"
)

// ErrNoTags indicates that neither arguments nor a tags file were given.
var ErrNoTags = errors.New("no tags given, pass them as arguments or with --file")

//nolint:gochecknoglobals // Cobra command requires a global definition.
var tagsCmd = &cobra.Command{
	Use:   "tags [flags] {tags}",
	Short: "Show the color of every tag, assigning random colors to new ones.",
	Long: `Every tag gets one of ten preset colors the first time it is seen.
Assignments are kept in the tag colors file (tag_colors_path), so a tag
keeps its color between runs.`,
	RunE: func(cmd *cobra.Command, tags []string) error {
		flags := cmd.Flags()

		tagsFile, _ := flags.GetString("file")
		isNotSaved, _ := flags.GetBool("no-save")

		if len(tags) == 0 && tagsFile == "" {
			return ErrNoTags
		}

		return app.ExecuteTagsCommand(cmd.Context(), cmd.OutOrStdout(), appConfig, tags, app.TagsOptions{
			TagsFile: tagsFile,
			IsSaved:  !isNotSaved,
		})
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	tagsCmdFlags := tagsCmd.Flags()

	tagsCmdFlags.StringP(
		"file",
		"f",
		"",
		"read tags from a file, one per line; '#' starts a comment.")

	tagsCmdFlags.Bool(
		"no-save",
		false,
		"do not write newly assigned colors to the tag colors file.")
}
