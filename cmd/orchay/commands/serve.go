package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/orchay/internal/adapters/server"
	"go.trai.ch/orchay/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and change stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			base, _ := cmd.Flags().GetString("base")
			noAutostart, _ := cmd.Flags().GetBool("no-autostart")
			idle, _ := cmd.Flags().GetDuration("idle-timeout")

			return c.app.Serve(cmd.Context(), app.ServeOptions{
				Addr:        addr,
				BasePath:    base,
				Autostart:   !noAutostart,
				IdleTimeout: idle,
			})
		},
	}
	cmd.Flags().String("addr", server.DefaultAddr, "Address to listen on")
	cmd.Flags().String("base", "", "Base path to watch (defaults to the configured base path)")
	cmd.Flags().Bool("no-autostart", false, "Do not start watching until requested over the API")
	cmd.Flags().Duration("idle-timeout", 0, "Shut down after this long without requests (0 disables)")
	return cmd
}
