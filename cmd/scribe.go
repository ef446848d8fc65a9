package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scribe-md/scribe/internal/config"
	"github.com/scribe-md/scribe/internal/state"
	"github.com/scribe-md/scribe/pkg/cmd/initialize"
	"github.com/scribe-md/scribe/pkg/cmd/root"
)

func Execute() {
	s, err := state.NewState()
	if err != nil {
		var initErr *config.ConfigInitError
		if errors.As(err, &initErr) {
			runInit()
			return
		}
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	rootCmd, rootErr := root.NewCmdRoot(s)
	if rootErr != nil {
		fmt.Fprintf(os.Stderr, "failed to build command tree: %v\n", rootErr)
		os.Exit(1)
	}

	if execErr := rootCmd.Execute(); execErr != nil {
		os.Exit(1)
	}
}

// runInit handles the first launch, before a vault directory exists.
func runInit() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	initCmd := initialize.NewCmdInit(home)
	if err := initCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "initialization failed: %v\n", err)
		os.Exit(1)
	}
}
