package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <package> <file>",
		Short: "Print the canonical name of a file within a package",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := c.app.Normalize(c.configPath, args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
			return err
		},
	}
}
