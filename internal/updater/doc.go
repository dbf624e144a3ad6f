// Package updater implements the startup "newer version available" check.
// A Checker resolves the local package identity, asks a remote source (the
// npm registry or GitHub Releases) for the latest published version, and
// compares the two with semver precedence. The whole check is raced against
// a fixed deadline and never returns an error: every failure becomes "no
// update" plus one warning in the log.
package updater
