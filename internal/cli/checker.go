package cli

import (
	"fmt"

	"github.com/01000100GT/gemini-cli/internal/branding"
	"github.com/01000100GT/gemini-cli/internal/config"
	"github.com/01000100GT/gemini-cli/internal/pkginfo"
	"github.com/01000100GT/gemini-cli/internal/updater"
	"github.com/rs/zerolog"
)

// newChecker builds an update checker from the loaded configuration.
func newChecker(log zerolog.Logger) (*updater.Checker, error) {
	s := config.Update()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	srcOpts := []updater.SourceOption{
		updater.WithUserAgent(fmt.Sprintf("%s/%s", branding.CLIName(), buildVersion)),
	}

	var lookup updater.LatestVersionLookup
	switch s.Source {
	case config.SourceGitHub:
		srcOpts = append(srcOpts, updater.WithMirror(s.Mirror))
		lookup = updater.NewGitHubReleases(branding.GitHubRepo(), srcOpts...)
	default:
		registry := s.Registry
		if s.Mirror != "" {
			registry = s.Mirror
		}
		srcOpts = append(srcOpts, updater.WithMirror(registry), updater.WithDistTag(s.DistTag))
		lookup = updater.NewNPMRegistry(srcOpts...)
	}

	var identity pkginfo.Chain
	if s.Manifest != "" {
		identity = append(identity, pkginfo.ManifestFile{Path: s.Manifest})
	}
	identity = append(identity,
		pkginfo.NewBuildInfo(branding.PackageName(), buildVersion),
		pkginfo.ExecutableManifest{Name: branding.PackageName()},
	)

	return updater.New(identity, lookup,
		updater.WithTimeout(s.Timeout),
		updater.WithDisplayName(branding.DisplayName()),
		updater.WithInstaller(s.Installer),
		updater.WithLogger(log),
	), nil
}
