// Package commands implements the CLI commands for envscan.
package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/envscan/internal/app"
	"go.trai.ch/envscan/internal/build"
	"go.trai.ch/zerr"
)

// EnvPrefix prefixes every environment variable that can stand in for a flag.
const EnvPrefix = "ENVSCAN"

// CLI represents the command line interface for envscan.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	env     *viper.Viper
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(opts app.LoggingOptions) error
	Inventory(ctx context.Context, opts app.InventoryOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "envscan",
		Short:         "Audit the packages projects use from their conda environments",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log package index details")
	rootCmd.PersistentFlags().String("log-format", "auto", "Log format: auto, pretty, or json")

	rootCmd.SetVersionTemplate(versionLine())
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	env := viper.New()
	env.SetEnvPrefix(EnvPrefix)
	env.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	env.AutomaticEnv()

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		env:     env,
	}

	rootCmd.PersistentPreRunE = c.configure

	rootCmd.AddCommand(c.newInventoryCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// configure binds the flags of the command being run to the environment
// and applies the logging flags.
func (c *CLI) configure(cmd *cobra.Command, _ []string) error {
	if err := c.env.BindPFlags(cmd.Flags()); err != nil {
		return zerr.Wrap(err, "failed to bind flags")
	}
	return c.app.ConfigureLogging(app.LoggingOptions{
		Verbose: c.env.GetBool("verbose"),
		Format:  c.env.GetString("log-format"),
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
