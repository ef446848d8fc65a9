package root

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scribe-md/scribe/internal/config"
	"github.com/scribe-md/scribe/internal/constants"
	"github.com/scribe-md/scribe/internal/state"
	"github.com/scribe-md/scribe/pkg/cmd/addSubdir"
	"github.com/scribe-md/scribe/pkg/cmd/archive"
	"github.com/scribe-md/scribe/pkg/cmd/initialize"
	"github.com/scribe-md/scribe/pkg/cmd/new"
	"github.com/scribe-md/scribe/pkg/cmd/notes"
	"github.com/scribe-md/scribe/pkg/cmd/open"
	"github.com/scribe-md/scribe/pkg/cmd/settings"
	"github.com/scribe-md/scribe/pkg/cmd/trash"
	"github.com/scribe-md/scribe/pkg/cmd/unarchive"
	"github.com/scribe-md/scribe/pkg/cmd/untrash"
)

var subdirName string

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "scribe",
		Aliases: []string{"sc"},
		Version: constants.Version,
		Short:   "A markdown notes editor with a live, scroll-synced preview.",
		Long: `A utility for writing markdown notes in the terminal, with a rendered
  preview pane that follows your cursor as you type.

              [title]  [tags]
  scribe new robotics "robotics science class study-notes"
  `,
		RunE: notes.NewCmdNotes(s).RunE,
	}

	cmd.PersistentFlags().
		StringVarP(
			&subdirName,
			"subdir",
			"s",
			"notes",
			"Subdirectory to use for this command.",
		)
	viper.BindPFlag("subdir", cmd.PersistentFlags().Lookup("subdir"))

	// Only note creation writes into the subdirectory, so only it needs
	// the existence check.
	cmd.PersistentPreRun = func(c *cobra.Command, args []string) {
		if c.Name() == "new" {
			handleSubdirs(s.Config)
		}
	}

	cmd.AddCommand(
		initialize.NewCmdInit(s.Home),
		addSubdir.NewCmdAddSubdir(s.Config),
		new.NewCmdNew(s),
		open.NewCmdOpen(s),
		notes.NewCmdNotes(s),
		settings.NewCmdSettings(s.Config),
		archive.NewCmdArchive(s),
		unarchive.NewCmdUnarchive(s),
		trash.NewCmdTrash(s),
		untrash.NewCmdUntrash(s),
	)

	return cmd, nil
}

func handleSubdirs(c *config.Config) {
	if c.HasSubdir(subdirName) {
		return
	}

	getConfirmation(c)
}

func getConfirmation(c *config.Config) {
	var response string
	for {
		fmt.Printf(
			"Subdirectory %s does not exist.\nDo you want to create it?\n(y/n): ",
			subdirName,
		)
		fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))

		switch response {
		case "yes", "y":
			c.AddSubdir(subdirName)
			return
		case "no", "n":
			fmt.Println("Exiting due to non-existing subdirectory")
			os.Exit(0)
		default:
			fmt.Println("Invalid response. Please enter 'y'/'yes' or 'n'/'no'.")
		}
	}
}
