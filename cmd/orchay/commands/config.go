package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the persisted configuration",
	}

	cmd.AddCommand(c.newBasePathCmd())
	cmd.AddCommand(c.newRecentCmd())

	return cmd
}

func (c *CLI) newBasePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "base-path [PATH]",
		Short: "Print the base path, or set it when PATH is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				base, err := c.app.BasePath()
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(out, base)
				return nil
			}

			change, err := c.app.SetBasePath(args[0])
			if err != nil {
				return err
			}
			if change.Previous != "" && change.Previous != change.Current {
				_, _ = fmt.Fprintf(out, "%s -> %s\n", change.Previous, change.Current)
				return nil
			}
			_, _ = fmt.Fprintln(out, change.Current)
			return nil
		},
	}
}

func (c *CLI) newRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List recently used base paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, err := c.app.RecentPaths()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range paths {
				_, _ = fmt.Fprintln(out, p)
			}
			return nil
		},
	}
}
