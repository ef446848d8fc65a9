package initialize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scribe-md/scribe/internal/config"
)

func NewCmdInit(home string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "initialize",
		Aliases: []string{"i", "init"},
		Short:   "Initialize the scribe configuration.",
		Long:    "This command walks you through setting up your vault directory and configuration file.",
		Example: "scribe init",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(home)
		},
	}

	return cmd
}

func run(home string) error {
	cfgPath := config.GetConfigPath(home)

	cfg, err := config.Load(home)
	if err != nil {
		if mkErr := os.MkdirAll(filepath.Dir(cfgPath), 0o755); mkErr != nil {
			return mkErr
		}
		if wErr := os.WriteFile(cfgPath, []byte{}, 0o644); wErr != nil {
			return wErr
		}
		cfg, err = config.Load(home)
		if err != nil {
			return err
		}
	}

	if cfg.VaultDir != "" {
		fmt.Printf("Vault directory already configured: %s\n", cfg.VaultDir)
		return nil
	}

	vault, err := promptVaultDir(home)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(vault, 0o755); err != nil {
		return fmt.Errorf("failed to create vault directory: %w", err)
	}

	cfg.VaultDir = vault
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Printf("Configuration written to %s\n", cfgPath)
	fmt.Printf("Vault directory: %s\n", vault)
	return nil
}

func promptVaultDir(home string) (string, error) {
	suggested := filepath.Join(home, "scribe-notes")

	var response string
	fmt.Printf("Where should your notes live?\n(default %s): ", suggested)
	fmt.Scanln(&response)

	response = strings.TrimSpace(response)
	if response == "" {
		return suggested, nil
	}

	if strings.HasPrefix(response, "~"+string(filepath.Separator)) {
		response = filepath.Join(home, response[2:])
	}

	if !filepath.IsAbs(response) {
		return "", fmt.Errorf("vault directory must be an absolute path, got %q", response)
	}

	return filepath.Clean(response), nil
}
