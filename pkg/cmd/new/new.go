package new

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scribe-md/scribe/internal/note"
	"github.com/scribe-md/scribe/internal/state"
	"github.com/scribe-md/scribe/internal/tui/editor"
	"github.com/scribe-md/scribe/utils"
)

func NewCmdNew(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "new [title] [tags]",
		Aliases: []string{"n"},
		Short:   "Create a new note and open it in the editor.",
		Long: `
  This command creates a new markdown note in your vault directory.
  It takes a required title argument and an optional tags argument,
  then opens the note in the editor with a live preview.

              [title]  [tags]
  scribe new robotics-class "robotics science class study-notes"
  `,
		Example: "scribe new cli-notes 'cli go markdown notetaking'",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf(
					"error: No title given. Try again with 'scribe new [title]'",
				)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s)
		},
	}

	cmd.Flags().BoolP("no-edit", "E", false, "Create the note without opening the editor")
	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State) error {
	title := args[0]
	tags := handleTags(args)
	subDir := viper.GetString("subdir")

	n := note.NewNote(s.Vault, subDir, title, tags)
	handleConflicts(n)

	path, err := n.Create()
	if err != nil {
		return err
	}

	noEdit, _ := cmd.Flags().GetBool("no-edit")
	if noEdit {
		fmt.Println(path)
		return nil
	}

	return editor.Run(s, path)
}

func handleTags(args []string) []string {
	var (
		tags    []string
		tagsErr error
	)

	if len(args) > 1 {
		tags, tagsErr = utils.ValidateInput(args[1])

		if tagsErr != nil {
			fmt.Printf("error processing tags argument: %s", tagsErr)
			os.Exit(1)
		}
	}

	return tags
}

func handleConflicts(n *note.Note) {
	exists, _, existsErr := n.FileExists()
	if existsErr != nil {
		fmt.Printf("error processing note file: %s", existsErr)
		os.Exit(1)
	}

	if exists {
		fmt.Println("error: Note with given title already exists in the vault directory.")
		fmt.Println("hint: Try again with a new title, or open the existing note with 'scribe open'")
		os.Exit(1)
	}
}
