// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package before building; Go's
// //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	PackageName string `yaml:"package_name"`
	Installer   string `yaml:"installer"`
	NPMRegistry string `yaml:"npm_registry"`
	GitHubRepo  string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "gemini",
			DisplayName: "Gemini CLI",
			Description: "An open-source AI agent that brings Gemini into your terminal",
			HomeDir:     ".gemini",
			EnvPrefix:   "GEMINI",
			GoModule:    "github.com/01000100GT/gemini-cli",
			PackageName: "@google/gemini-cli",
			Installer:   "npm install -g",
			NPMRegistry: "https://registry.npmjs.org",
			GitHubRepo:  "google-gemini/gemini-cli",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "gemini").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Gemini CLI").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".gemini").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "GEMINI").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// PackageName returns the published package name checked for updates.
func PackageName() string { load(); return defaults.PackageName }

// Installer returns the command users run to install the package.
func Installer() string { load(); return defaults.Installer }

// NPMRegistry returns the default registry queried for the latest version.
func NPMRegistry() string { load(); return defaults.NPMRegistry }

// GitHubRepo returns the "owner/repo" string (e.g., "google-gemini/gemini-cli").
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "GEMINI_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
