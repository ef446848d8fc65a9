package settings

import (
	"github.com/spf13/cobra"

	"github.com/scribe-md/scribe/internal/config"
	"github.com/scribe-md/scribe/internal/tui/settings"
)

func NewCmdSettings(c *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"s"},
		Short:   "CLI settings menu",
		Long:    "This command allows you to adjust your settings directly from the CLI tool.",
		Example: "scribe settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := settings.Run(c); err != nil {
				return err
			}
			return nil
		},
	}

	return cmd
}
