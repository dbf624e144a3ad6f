package pkginfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/01000100GT/gemini-cli/internal/updater"
	"go.yaml.in/yaml/v3"
)

// ManifestNames are the manifest files FindManifest looks for, in order.
var ManifestNames = []string{"package.json", "package.yaml"}

// ErrManifestNotFound is returned by FindManifest when no manifest exists in
// dir or any of its parents.
var ErrManifestNotFound = errors.New("package manifest not found")

// ManifestFile resolves identity from a package manifest on disk.
type ManifestFile struct {
	Path string
}

// LocalIdentity reads and validates the manifest. A missing file, or one
// without a name or version, yields a nil identity.
func (m ManifestFile) LocalIdentity(context.Context) (*updater.PackageIdentity, error) {
	if m.Path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(m.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", m.Path, err)
	}
	return parseManifest(m.Path, data)
}

func parseManifest(path string, data []byte) (*updater.PackageIdentity, error) {
	issues, err := validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if len(issues) > 0 {
		return nil, &ValidationError{File: path, Issues: issues}
	}

	var id updater.PackageIdentity
	unmarshal := yaml.Unmarshal
	if json.Valid(data) {
		unmarshal = json.Unmarshal
	}
	if err := unmarshal(data, &id); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if id.Name == "" || id.Version == "" {
		return nil, nil
	}
	return &id, nil
}

// FindManifest walks upward from dir and returns the first manifest found.
func FindManifest(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	for {
		for _, name := range ManifestNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrManifestNotFound
		}
		dir = parent
	}
}

// ExecutableManifest resolves identity from the manifest next to, or above,
// the running executable. Manifests for a different package are ignored.
type ExecutableManifest struct {
	Name string
}

// LocalIdentity implements updater.IdentitySource.
func (e ExecutableManifest) LocalIdentity(ctx context.Context) (*updater.PackageIdentity, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, nil
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	path, err := FindManifest(filepath.Dir(exe))
	if err != nil {
		return nil, nil
	}

	id, err := ManifestFile{Path: path}.LocalIdentity(ctx)
	if err != nil || id == nil {
		return id, err
	}
	if e.Name != "" && id.Name != e.Name {
		return nil, nil
	}
	return id, nil
}
