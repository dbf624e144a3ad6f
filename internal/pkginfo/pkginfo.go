package pkginfo

import (
	"context"
	"runtime/debug"
	"strings"

	"github.com/01000100GT/gemini-cli/internal/updater"
)

// develVersion is what the Go toolchain reports for unversioned builds.
const develVersion = "(devel)"

// BuildInfo resolves identity from the version injected via ldflags, falling
// back to the main module version recorded by `go install`.
type BuildInfo struct {
	Name    string
	Version string

	readBuildInfo func() (*debug.BuildInfo, bool)
}

// NewBuildInfo creates a BuildInfo source for the named package.
func NewBuildInfo(name, version string) *BuildInfo {
	return &BuildInfo{
		Name:          name,
		Version:       version,
		readBuildInfo: debug.ReadBuildInfo,
	}
}

// LocalIdentity returns nil when no usable version is known, e.g. for a
// local development build.
func (b *BuildInfo) LocalIdentity(context.Context) (*updater.PackageIdentity, error) {
	version := b.Version
	if version == "" || version == "dev" {
		version = b.moduleVersion()
	}
	if b.Name == "" || version == "" {
		return nil, nil
	}
	return &updater.PackageIdentity{
		Name:    b.Name,
		Version: strings.TrimPrefix(version, "v"),
	}, nil
}

func (b *BuildInfo) moduleVersion() string {
	if b.readBuildInfo == nil {
		return ""
	}
	info, ok := b.readBuildInfo()
	if !ok || info == nil || info.Main.Version == develVersion {
		return ""
	}
	return info.Main.Version
}

// Chain tries each source in order and returns the first identity found.
// An error from any source stops the chain.
type Chain []updater.IdentitySource

// LocalIdentity implements updater.IdentitySource.
func (c Chain) LocalIdentity(ctx context.Context) (*updater.PackageIdentity, error) {
	for _, src := range c {
		if src == nil {
			continue
		}
		id, err := src.LocalIdentity(ctx)
		if err != nil {
			return nil, err
		}
		if id != nil {
			return id, nil
		}
	}
	return nil, nil
}
