package commands

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/orchay/internal/ui/output"
	"go.trai.ch/orchay/internal/ui/style"
)

func (c *CLI) newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Inspect projects below the base path",
	}

	cmd.AddCommand(c.newProjectsListCmd())
	cmd.AddCommand(c.newProjectsWBSCmd())

	return cmd
}

func (c *CLI) newProjectsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, _ := cmd.Flags().GetString("status")
			asJSON, _ := cmd.Flags().GetBool("json")

			items, err := c.app.ListProjects(status)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}

			_, err = io.WriteString(out, projectTable(out, items)+"\n")
			return err
		},
	}
	cmd.Flags().String("status", "", "Only list projects with this status")
	cmd.Flags().Bool("json", false, "Print the list as JSON")
	return cmd
}

func (c *CLI) newProjectsWBSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wbs ID",
		Short: "Print the wbs.yaml of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := c.app.ReadWBS(args[0])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}
}

// projectTable renders items as a table with a highlighted header row.
// Colors are dropped under NO_COLOR and TERM=dumb.
func projectTable(w io.Writer, items []domain.ProjectListItem) string {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(output.ColorProfile()))
	header := r.NewStyle().Bold(true).Foreground(style.Iris).PaddingRight(2)
	cell := r.NewStyle().PaddingRight(2)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(style.Slate)).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		Headers("ID", "NAME", "STATUS", "DEPTH", "CREATED").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, item := range items {
		t.Row(item.ID, item.Name, item.Status, strconv.Itoa(item.WBSDepth), item.CreatedAt)
	}
	return t.String()
}
