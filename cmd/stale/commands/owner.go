package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newOwnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "owner <file>",
		Short: "Print the package that owns a tracked file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := c.app.Owner(c.configPath, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", loc.DisplayName(), loc.ID.UUID())
			return err
		},
	}
}
