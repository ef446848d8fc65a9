package unarchive

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/scribe-md/scribe/internal/state"
	cmdpkg "github.com/scribe-md/scribe/pkg/cmd"
)

func NewCmdUnarchive(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unarchive [path]",
		Short: "Restore an archived note.",
		Long: heredoc.Doc(`
			This command restores a note from the 'archive' subdirectory back
			into the vault. Provide the path to the note you want to restore.

			Example:
			  scribe unarchive archive/note.md
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				_ = cmd.Help()
				return fmt.Errorf("path argument is required")
			}
			path, err := cmdpkg.ResolveVaultPath(cmd, s, args[0])
			if err != nil {
				return err
			}
			return s.Handler.Unarchive(path)
		},
	}

	return cmd
}
