package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"pastel-todo/app"
)

func newListCmd(opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print tasks with the ranks used by delete",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			svc, err := openService(opts, cfg)
			if err != nil {
				return err
			}
			folders := []string{svc.Folder()}
			if all {
				folders = folderNames(svc)
			}
			printFolders(cmd.OutOrStdout(), svc, folders)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every folder")
	return cmd
}

// folderNames returns folders in order of first appearance.
func folderNames(svc *app.Service) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, t := range svc.Tasks() {
		if seen[t.Folder] {
			continue
		}
		seen[t.Folder] = true
		out = append(out, t.Folder)
	}
	return out
}

func printFolders(w io.Writer, svc *app.Service, folders []string) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	for i, folder := range folders {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		tasks := svc.FolderTasks(folder)
		_, _ = fmt.Fprintf(w, "%s %s\n", bold.Sprint(folder), faint.Sprintf("(%d)", len(tasks)))
		if len(tasks) == 0 {
			_, _ = fmt.Fprintln(w, faint.Sprint("  no tasks"))
			continue
		}

		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.MaxColWidth = 50
		for rank, t := range tasks {
			status := "○"
			if t.Done {
				status = "✓"
			}
			tbl.AddRow(fmt.Sprintf("%2d.", rank+1), status, t.Text, t.DateLabel())
		}
		_, _ = fmt.Fprintln(w, tbl)
	}
}
