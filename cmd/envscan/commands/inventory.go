package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/envscan/internal/app"
)

func (c *CLI) newInventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Write the package inventory of the project hierarchy as CSV",
		Long: `Walks every project below the root (or one owner or project), decides
which environment each source file runs in, and reports every package of the
environments in use together with whether it was imported, needed by an
imported package, or neither.

Every flag can also be set through an ENVSCAN_ environment variable, for
example ENVSCAN_ROOT or ENVSCAN_ANACONDA_ROOT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Inventory(cmd.Context(), app.InventoryOptions{
				Root:           c.env.GetString("root"),
				AnacondaRoot:   c.env.GetString("anaconda-root"),
				Owner:          c.env.GetString("owner"),
				Project:        c.env.GetString("project"),
				Output:         c.env.GetString("output"),
				Summarize:      c.env.GetString("summarize"),
				ConfigPath:     c.env.GetString("config"),
				NoBuiltinProbe: c.env.GetBool("no-builtin-probe"),
				Stdout:         cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().String("root", "", "Project store holding one directory per owner")
	cmd.Flags().String("anaconda-root", "", "Shared anaconda installation")
	cmd.Flags().String("owner", "", "Owner name below the root, or path to an owner directory")
	cmd.Flags().String("project", "", "Project name below --owner")
	cmd.Flags().StringP("output", "o", "", "Report file, '-' for stdout")
	cmd.Flags().String("summarize", "", "Summary: SCOPE, DETAIL or SCOPE/DETAIL "+
		"(scope: node, owner, project, environment; detail: package, version)")
	cmd.Flags().String("config", "", "Settings file (default: nearest envscan.yaml)")
	cmd.Flags().Bool("no-builtin-probe", false, "Use the fallback builtin module list instead of running python")
	return cmd
}
