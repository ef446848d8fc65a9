package notes

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/scribe-md/scribe/internal/state"
	"github.com/scribe-md/scribe/internal/tui/editor"
	"github.com/scribe-md/scribe/internal/tui/notes"
)

func NewCmdNotes(s *state.State) *cobra.Command {
	var viewFlag string

	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"ls"},
		Short:   "Browse the notes in your vault.",
		Long: heredoc.Doc(`
			This command opens the notes browser, a list of every note in your
			vault with a rendered preview. Selecting a note opens it in the
			editor; closing the editor returns to the browser.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, viewFlag)
		},
	}

	cmd.Flags().StringVarP(&viewFlag, "view", "v", "default", "Select initial view (default, archive, trash)")
	return cmd
}

func run(s *state.State, viewFlag string) error {
	for {
		path, err := notes.Run(s, viewFlag)
		if err != nil {
			return err
		}
		if path == "" {
			return nil
		}

		if err := editor.Run(s, path); err != nil {
			return err
		}
	}
}
