// Package pkginfo resolves the name and version of the running package for
// the update check. Identity comes from the version baked in at build time,
// from Go module build info, or from a package.json / package.yaml manifest
// that is validated against an embedded JSON schema before use.
package pkginfo
