package commands

import (
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/envscan/internal/build"
)

// versionLine is shared by the version subcommand and the --version flag.
func versionLine() string {
	return "envscan version " + build.Version + " (commit: " + build.Commit + ", date: " + build.Date + ")\n"
}

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build version, commit and date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), versionLine())
			return err
		},
	}
}
