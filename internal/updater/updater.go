package updater

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single update check.
const DefaultTimeout = 2000 * time.Millisecond

// PackageIdentity is the name and version of the running package.
type PackageIdentity struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// RemoteVersionInfo is the comparison pair produced by a LatestVersionLookup.
// Current normally echoes the version that was queried.
type RemoteVersionInfo struct {
	Current string `json:"current"`
	Latest  string `json:"latest"`
}

// IdentitySource resolves the local package identity. A nil identity with a
// nil error means there is nothing to check.
type IdentitySource interface {
	LocalIdentity(ctx context.Context) (*PackageIdentity, error)
}

// IdentityFunc adapts a function to IdentitySource.
type IdentityFunc func(ctx context.Context) (*PackageIdentity, error)

// LocalIdentity calls f(ctx).
func (f IdentityFunc) LocalIdentity(ctx context.Context) (*PackageIdentity, error) {
	return f(ctx)
}

// LatestVersionLookup fetches the latest published version of a package.
// Implementations must honour ctx cancellation.
type LatestVersionLookup interface {
	LookupLatest(ctx context.Context, pkg PackageIdentity) (*RemoteVersionInfo, error)
}

// LookupFunc adapts a function to LatestVersionLookup.
type LookupFunc func(ctx context.Context, pkg PackageIdentity) (*RemoteVersionInfo, error)

// LookupLatest calls f(ctx, pkg).
func (f LookupFunc) LookupLatest(ctx context.Context, pkg PackageIdentity) (*RemoteVersionInfo, error) {
	return f(ctx, pkg)
}

// Checker runs bounded update checks.
type Checker struct {
	identity    IdentitySource
	lookup      LatestVersionLookup
	timeout     time.Duration
	displayName string
	installer   string
	log         zerolog.Logger
	after       func(time.Duration) <-chan time.Time
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout sets the deadline for a single check. Non-positive values are
// ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithDisplayName sets the product name used in the update notice.
func WithDisplayName(name string) Option {
	return func(c *Checker) {
		c.displayName = name
	}
}

// WithInstaller sets the command shown in the notice, e.g. "npm install -g".
func WithInstaller(cmd string) Option {
	return func(c *Checker) {
		c.installer = cmd
	}
}

// WithLogger sets the logger used for the failure diagnostic.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Checker) {
		c.log = l
	}
}

// withAfter replaces time.After for tests that need to control the deadline.
func withAfter(after func(time.Duration) <-chan time.Time) Option {
	return func(c *Checker) {
		c.after = after
	}
}

// New creates a Checker from an identity source and a remote lookup.
func New(identity IdentitySource, lookup LatestVersionLookup, opts ...Option) *Checker {
	c := &Checker{
		identity:    identity,
		lookup:      lookup,
		timeout:     DefaultTimeout,
		displayName: "CLI",
		installer:   "npm install -g",
		log:         zerolog.Nop(),
		after:       time.After,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Timeout returns the deadline applied to each check.
func (c *Checker) Timeout() time.Duration {
	return c.timeout
}
