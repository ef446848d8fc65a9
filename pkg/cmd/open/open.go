package open

import (
	"errors"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/scribe-md/scribe/internal/fzf"
	"github.com/scribe-md/scribe/internal/state"
	"github.com/scribe-md/scribe/internal/tui/editor"
	cmdpkg "github.com/scribe-md/scribe/pkg/cmd"
)

func NewCmdOpen(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open [query]",
		Aliases: []string{"o"},
		Short:   "Open a note in the editor.",
		Long: `This command opens a note in the editor with a live, scroll-synced preview.
  It takes one optional argument for a note title, the note to be opened.
  If no title is given, the vault directory files will be displayed
  with a fuzzy finder and file preview for selection.`,
		Example: "scribe open cli-notes or scribe open",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pathFlag, _ := cmd.Flags().GetBool("path")
			if pathFlag && len(args) == 1 {
				path, err := cmdpkg.ResolveVaultPath(cmd, s, args[0])
				if err != nil {
					return err
				}
				return editor.Run(s, path)
			}

			finder := fzf.NewFuzzyFinder(s.Vault, "Select file to open.")

			var (
				path string
				err  error
			)
			if len(args) == 0 {
				path, err = finder.Run()
			} else {
				path, err = finder.RunWithQuery(args[0])
			}
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return nil
			}
			if err != nil {
				return err
			}
			if path == "" {
				return nil
			}

			return editor.Run(s, path)
		},
	}

	cmd.Flags().BoolP("path", "p", false, "Treat the argument as a vault-relative path instead of a query")
	return cmd
}
