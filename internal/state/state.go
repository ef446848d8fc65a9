package state

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/scribe-md/scribe/internal/config"
	"github.com/scribe-md/scribe/internal/constants"
	"github.com/scribe-md/scribe/internal/handler"
)

type State struct {
	Config  *config.Config
	Handler *handler.FileHandler
	Home    string
	Vault   string
}

func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	h := handler.NewFileHandler(cfg.VaultDir)

	return &State{
		Config:  cfg,
		Handler: h,
		Home:    home,
		Vault:   cfg.VaultDir,
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	err := config.EnsureConfigExists(home)
	if err != nil {
		return nil, err
	}

	return config.Load(home)
}
