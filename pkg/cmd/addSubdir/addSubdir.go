package addSubdir

import (
	"github.com/spf13/cobra"

	"github.com/scribe-md/scribe/internal/config"
)

func NewCmdAddSubdir(c *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add-subdir [name]",
		Aliases: []string{"as", "add-s", "a-s"},
		Short:   "Add a sub directory to the list of available directories.",
		Long:    `This command adds a sub directory to the list of available directories in the global persistent configuration.`,
		Example: "scribe add-subdir projects",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.AddSubdir(args[0])
		},
	}

	return cmd
}
