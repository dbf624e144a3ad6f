package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/01000100GT/gemini-cli/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the CLI.
const (
	KeyUpdateDisabled  = "update.disabled"
	KeyUpdateSource    = "update.source"
	KeyUpdateRegistry  = "update.registry"
	KeyUpdateMirror    = "update.mirror"
	KeyUpdateDistTag   = "update.dist_tag"
	KeyUpdateTimeout   = "update.timeout"
	KeyUpdateInstaller = "update.installer"
	KeyUpdateManifest  = "update.manifest"
	KeyLogLevel        = "log.level"
	KeyLogFile         = "log.file"
)

// Update sources.
const (
	SourceNPM    = "npm"
	SourceGitHub = "github"
)

// Dir returns the path to the config directory (~/.gemini/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.gemini/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	setDefaults()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

func setDefaults() {
	viper.SetDefault(KeyUpdateDisabled, false)
	viper.SetDefault(KeyUpdateSource, SourceNPM)
	viper.SetDefault(KeyUpdateRegistry, branding.NPMRegistry())
	viper.SetDefault(KeyUpdateDistTag, "latest")
	viper.SetDefault(KeyUpdateTimeout, "2s")
	viper.SetDefault(KeyUpdateInstaller, branding.Installer())
	viper.SetDefault(KeyLogLevel, "warn")
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// UpdateSettings controls the startup update check.
type UpdateSettings struct {
	Disabled  bool
	Source    string
	Registry  string
	Mirror    string
	DistTag   string
	Timeout   time.Duration
	Installer string
	Manifest  string
}

// Update returns the update-check settings with defaults applied.
func Update() UpdateSettings {
	setDefaults()
	return UpdateSettings{
		Disabled:  viper.GetBool(KeyUpdateDisabled),
		Source:    strings.ToLower(viper.GetString(KeyUpdateSource)),
		Registry:  viper.GetString(KeyUpdateRegistry),
		Mirror:    viper.GetString(KeyUpdateMirror),
		DistTag:   viper.GetString(KeyUpdateDistTag),
		Timeout:   viper.GetDuration(KeyUpdateTimeout),
		Installer: viper.GetString(KeyUpdateInstaller),
		Manifest:  viper.GetString(KeyUpdateManifest),
	}
}

// Validate reports settings the update check cannot use.
func (s UpdateSettings) Validate() error {
	switch s.Source {
	case SourceNPM, SourceGitHub:
	default:
		return fmt.Errorf("unknown update source %q (want %q or %q)", s.Source, SourceNPM, SourceGitHub)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("update timeout must be positive, got %s", s.Timeout)
	}
	return nil
}
