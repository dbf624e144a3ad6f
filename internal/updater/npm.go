package updater

import (
	"context"
	"fmt"
	"net/url"
)

// DefaultNPMRegistry is the public npm registry.
const DefaultNPMRegistry = "https://registry.npmjs.org"

// NPMRegistry looks up the latest version of a package from the dist-tags of
// an npm-compatible registry.
type NPMRegistry struct {
	src source
}

// NewNPMRegistry creates an npm registry lookup. WithMirror points it at a
// private registry.
func NewNPMRegistry(opts ...SourceOption) *NPMRegistry {
	return &NPMRegistry{src: newSource(DefaultNPMRegistry, opts)}
}

// LookupLatest fetches the configured dist-tag for pkg.Name and pairs it
// with pkg.Version.
func (r *NPMRegistry) LookupLatest(ctx context.Context, pkg PackageIdentity) (*RemoteVersionInfo, error) {
	// Scoped names keep the "@" but escape the "/" separator.
	endpoint := fmt.Sprintf("%s/-/package/%s/dist-tags", r.src.baseURL, url.PathEscape(pkg.Name))

	var tags map[string]string
	if err := r.src.getJSON(ctx, endpoint, nil, &tags); err != nil {
		return nil, err
	}

	latest, ok := tags[r.src.distTag]
	if !ok || latest == "" {
		return nil, fmt.Errorf("dist-tag %q not published for %s", r.src.distTag, pkg.Name)
	}

	return &RemoteVersionInfo{Current: pkg.Version, Latest: latest}, nil
}
