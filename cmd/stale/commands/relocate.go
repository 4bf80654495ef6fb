package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRelocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relocate <nominal> <actual>",
		Short: "Record that a tracked file now lives at another path",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.Relocate(c.configPath, args[0], args[1])
		},
	}
}
