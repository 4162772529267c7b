package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/orchay/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch project plans and show changes as they happen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, _ := cmd.Flags().GetString("base")
			outputMode, _ := cmd.Flags().GetString("output")
			verbose, _ := cmd.Flags().GetBool("verbose")
			ci, _ := cmd.Flags().GetBool("ci")

			if ci {
				outputMode = "linear"
			}

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				BasePath:   base,
				OutputMode: outputMode,
				Verbose:    verbose,
			})
		},
	}
	cmd.Flags().String("base", "", "Base path to watch (defaults to the configured base path)")
	cmd.Flags().StringP("output", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output=linear)")
	cmd.Flags().BoolP("verbose", "v", false, "Report every batch in linear mode")
	return cmd
}
