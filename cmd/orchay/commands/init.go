package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/orchay/internal/ui/style"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the .orchay settings, templates and projects directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, _ := cmd.Flags().GetString("base")
			check, _ := cmd.Flags().GetBool("check")

			var (
				status domain.InitStatus
				err    error
			)
			if check {
				status, err = c.app.InitStatus(base)
			} else {
				status, err = c.app.Init(base)
			}
			if err != nil {
				return err
			}

			printInitStatus(cmd.OutOrStdout(), status)
			return nil
		},
	}
	cmd.Flags().String("base", "", "Base path to initialize (defaults to the configured base path)")
	cmd.Flags().Bool("check", false, "Only report which directories exist")
	return cmd
}

func printInitStatus(w io.Writer, status domain.InitStatus) {
	rows := []struct {
		name   string
		exists bool
	}{
		{domain.OrchayDirName, status.Status.Root},
		{domain.OrchayDirName + "/" + domain.SettingsDirName, status.Status.Settings},
		{domain.OrchayDirName + "/" + domain.TemplatesDirName, status.Status.Templates},
		{domain.OrchayDirName + "/" + domain.ProjectsDirName, status.Status.Projects},
	}
	for _, row := range rows {
		marker := style.Circle
		if row.exists {
			marker = style.Dot
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", marker, row.name)
	}

	if status.Initialized {
		_, _ = fmt.Fprintln(w, "initialized")
		return
	}
	_, _ = fmt.Fprintln(w, "not initialized")
}

func (c *CLI) newSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings TYPE",
		Short: "Print .orchay/settings/TYPE.json of the base path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.app.Settings(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(doc))
			return err
		},
	}
}
