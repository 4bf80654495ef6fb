package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stale/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	var exitCode bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report files changed since the previous check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			changes, err := c.app.Check(cmd.Context(), c.configPath)
			if err != nil {
				return err
			}

			if err := c.printer(cmd).report(changes); err != nil {
				return err
			}
			if exitCode && len(changes) > 0 {
				return domain.ErrStaleFilesFound
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "Exit with status 1 when stale files are found")
	return cmd
}
