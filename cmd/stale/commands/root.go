// Package commands implements the CLI commands for the stale tracker.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/stale/internal/adapters/logger"
	"go.trai.ch/stale/internal/app"
	"go.trai.ch/stale/internal/build"
	"go.trai.ch/stale/internal/core/domain"
)

// CLI represents the command line interface for stale.
type CLI struct {
	app        *app.App
	logger     *logger.Logger
	rootCmd    *cobra.Command
	configPath string
	jsonOutput bool
}

// New creates a new CLI instance with the given app and logger.
func New(a *app.App, log *logger.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "stale",
		Short:         "Track which loaded source files changed on disk",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", domain.ConfigFileName, "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "Write logs and reports as JSON")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.logger.SetJSON(c.jsonOutput)
	}

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newRelocateCmd())
	rootCmd.AddCommand(c.newNormalizeCmd())
	rootCmd.AddCommand(c.newOwnerCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
