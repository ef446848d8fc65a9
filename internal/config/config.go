package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EditorConfig carries the preview and scroll behavior of the editor TUI.
// SyncScroll defaults to on; the sentinel tracks whether the file set it
// explicitly so a missing key does not read as false.
type EditorConfig struct {
	Typewriter    bool   `yaml:"typewriter"     json:"typewriter"`
	SyncScroll    bool   `yaml:"sync_scroll"    json:"sync_scroll"`
	PreviewStyle  string `yaml:"preview_style"  json:"preview_style"`
	WordWrap      int    `yaml:"word_wrap"      json:"word_wrap"`
	BottomPadding int    `yaml:"bottom_padding" json:"bottom_padding"`

	syncSet bool `yaml:"-" json:"-"`
}

func (cfg *EditorConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain EditorConfig
	var raw plain
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*cfg = EditorConfig(raw)
	if value.Kind == yaml.MappingNode {
		for i := 0; i < len(value.Content); i += 2 {
			if strings.EqualFold(value.Content[i].Value, "sync_scroll") {
				cfg.syncSet = true
				break
			}
		}
	}
	return nil
}

type GrammarConfig struct {
	Enable    bool   `yaml:"enable"      json:"enable"`
	Model     string `yaml:"model"       json:"model"`
	APIKeyEnv string `yaml:"api_key_env" json:"api_key_env"`
}

type Config struct {
	VaultDir string        `yaml:"vaultdir" json:"vault_dir"`
	SubDirs  []string      `yaml:"subdirs"  json:"sub_dirs"`
	Editor   EditorConfig  `yaml:"editor"   json:"editor"`
	Grammar  GrammarConfig `yaml:"grammar"  json:"grammar"`
}

const (
	defaultPreviewStyle = "dracula"
	defaultWordWrap     = 80
	defaultModel        = "claude-3-5-haiku-latest"
	defaultAPIKeyEnv    = "ANTHROPIC_API_KEY"
)

var validStyleNames = []string{"dracula", "dark", "light", "notty", "ascii", "pink", "auto"}

var ValidStyles = func() map[string]bool {
	styles := make(map[string]bool, len(validStyleNames))
	for _, style := range validStyleNames {
		styles[style] = true
	}

	return styles
}()

func ValidateStyle(style string) error {
	if _, valid := ValidStyles[style]; valid {
		return nil
	}

	return fmt.Errorf(
		"invalid preview style: %q. Please choose from %s.",
		style,
		validStyleList(),
	)
}

func validStyleList() string {
	quoted := make([]string, len(validStyleNames))
	for i, name := range validStyleNames {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}

	if len(quoted) == 0 {
		return ""
	}

	if len(quoted) == 1 {
		return quoted[0]
	}

	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

func newConfig() *Config {
	return &Config{
		SubDirs: []string{},
		Editor: EditorConfig{
			SyncScroll:   true,
			PreviewStyle: defaultPreviewStyle,
			WordWrap:     defaultWordWrap,
			syncSet:      true,
		},
		Grammar: GrammarConfig{
			Model:     defaultModel,
			APIKeyEnv: defaultAPIKeyEnv,
		},
	}
}

func (cfg *Config) ensureDefaults() {
	if cfg.SubDirs == nil {
		cfg.SubDirs = []string{}
	}
	if !cfg.Editor.syncSet && !cfg.Editor.SyncScroll {
		cfg.Editor.SyncScroll = true
	}
	cfg.Editor.PreviewStyle = strings.TrimSpace(cfg.Editor.PreviewStyle)
	if cfg.Editor.PreviewStyle == "" {
		cfg.Editor.PreviewStyle = defaultPreviewStyle
	}
	if cfg.Editor.WordWrap <= 0 {
		cfg.Editor.WordWrap = defaultWordWrap
	}
	if cfg.Editor.BottomPadding < 0 {
		cfg.Editor.BottomPadding = 0
	}
	if strings.TrimSpace(cfg.Grammar.Model) == "" {
		cfg.Grammar.Model = defaultModel
	}
	if strings.TrimSpace(cfg.Grammar.APIKeyEnv) == "" {
		cfg.Grammar.APIKeyEnv = defaultAPIKeyEnv
	}
}

func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) == 0 {
		cfg = newConfig()
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.ensureDefaults()

	if err := ValidateStyle(cfg.Editor.PreviewStyle); err != nil {
		return nil, err
	}

	cfg.syncViper()

	return cfg, nil
}

func (cfg *Config) syncViper() {
	viper.Set("vaultdir", cfg.VaultDir)
	viper.Set("vaultDir", cfg.VaultDir)
	viper.Set("typewriter", cfg.Editor.Typewriter)
	viper.Set("sync_scroll", cfg.Editor.SyncScroll)
	viper.Set("preview_style", cfg.Editor.PreviewStyle)
	viper.Set("word_wrap", cfg.Editor.WordWrap)
	viper.Set("grammar", cfg.Grammar)
	if cfg.SubDirs == nil {
		viper.Set("subdirs", []string{})
	} else {
		viper.Set("subdirs", append([]string(nil), cfg.SubDirs...))
	}
}

func (cfg *Config) GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return GetConfigPath(homeDir)
}

func (cfg *Config) AddSubdir(name string) error {
	for _, subDir := range cfg.SubDirs {
		if subDir == name {
			return fmt.Errorf("subdirectory %q already exists", name)
		}
	}

	cfg.SubDirs = append(cfg.SubDirs, name)
	return cfg.Save()
}

func (cfg *Config) HasSubdir(name string) bool {
	for _, subdir := range cfg.SubDirs {
		if subdir == name {
			return true
		}
	}
	return false
}

func (cfg *Config) SetTypewriter(on bool) error {
	cfg.Editor.Typewriter = on
	return cfg.Save()
}

func (cfg *Config) SetSyncScroll(on bool) error {
	cfg.Editor.SyncScroll = on
	cfg.Editor.syncSet = true
	return cfg.Save()
}

func (cfg *Config) ChangeStyle(style string) error {
	if err := ValidateStyle(style); err != nil {
		return err
	}

	cfg.Editor.PreviewStyle = style
	return cfg.Save()
}

func (cfg *Config) Save() error {
	if err := ValidateStyle(cfg.Editor.PreviewStyle); err != nil {
		return err
	}

	cfg.syncViper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}
