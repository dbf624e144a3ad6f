package updater

import (
	"context"
	"errors"
	"fmt"
)

// ErrTimeout is reported when the deadline passes before the lookup settles.
var ErrTimeout = errors.New("update check timed out")

// OutcomeKind tags an Outcome.
type OutcomeKind int

const (
	NoUpdate OutcomeKind = iota
	UpdateAvailable
)

func (k OutcomeKind) String() string {
	if k == UpdateAvailable {
		return "update-available"
	}
	return "no-update"
}

// Outcome is the result of a single check. Current, Latest, and Message are
// only set when Kind is UpdateAvailable.
type Outcome struct {
	Kind    OutcomeKind
	Current string
	Latest  string
	Message string
}

// lookupResult is what the lookup goroutine hands back to Check.
type lookupResult struct {
	outcome Outcome
	absent  bool
	err     error
}

// CheckForUpdates returns the update notice, or false when there is no update
// or the check failed, timed out, or had nothing to check.
func (c *Checker) CheckForUpdates(ctx context.Context) (string, bool) {
	out := c.Check(ctx)
	if out.Kind != UpdateAvailable {
		return "", false
	}
	return out.Message, true
}

// Start runs Check in the background. The channel receives exactly one
// Outcome, at most one deadline after Start is called.
func (c *Checker) Start(ctx context.Context) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		ch <- c.Check(ctx)
	}()
	return ch
}

// Check races the lookup against the deadline. It never panics; every
// failure is logged once at warn level and reported as NoUpdate.
func (c *Checker) Check(ctx context.Context) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			c.warn(fmt.Errorf("update check panicked: %v", r))
			out = Outcome{Kind: NoUpdate}
		}
	}()

	// Cancelled on return so a lookup that lost the race stops its I/O.
	lookupCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered so the losing goroutine can always deliver and exit.
	results := make(chan lookupResult, 1)
	go func() {
		results <- c.run(lookupCtx)
	}()

	deadline := c.after(c.timeout)
	select {
	case res := <-results:
		return c.settle(res)
	case <-deadline:
		// A lookup that settled at the same instant wins over the deadline.
		select {
		case res := <-results:
			return c.settle(res)
		default:
		}
		c.warn(ErrTimeout)
		return Outcome{Kind: NoUpdate}
	case <-ctx.Done():
		c.warn(fmt.Errorf("%w: %w", ErrTimeout, ctx.Err()))
		return Outcome{Kind: NoUpdate}
	}
}

func (c *Checker) settle(res lookupResult) Outcome {
	switch {
	case res.err != nil:
		c.warn(res.err)
		return Outcome{Kind: NoUpdate}
	case res.absent:
		c.log.Debug().Msg("No local package identity, skipping update check")
		return Outcome{Kind: NoUpdate}
	case res.outcome.Kind == NoUpdate:
		c.log.Debug().Msg("Already on the latest version")
	}
	return res.outcome
}

// run is the lookup branch. Panics from collaborators are turned into errors
// here because they cannot cross the goroutine boundary.
func (c *Checker) run(ctx context.Context) (res lookupResult) {
	defer func() {
		if r := recover(); r != nil {
			res = lookupResult{err: fmt.Errorf("update check panicked: %v", r)}
		}
	}()

	pkg, err := c.identity.LocalIdentity(ctx)
	if err != nil {
		return lookupResult{err: fmt.Errorf("resolving package identity: %w", err)}
	}
	if pkg == nil || pkg.Name == "" || pkg.Version == "" {
		return lookupResult{absent: true}
	}

	info, err := c.lookup.LookupLatest(ctx, *pkg)
	if err != nil {
		return lookupResult{err: fmt.Errorf("looking up latest version of %s: %w", pkg.Name, err)}
	}
	if info == nil {
		return lookupResult{err: fmt.Errorf("looking up latest version of %s: empty response", pkg.Name)}
	}

	newer, err := IsNewer(info.Current, info.Latest)
	if err != nil {
		return lookupResult{err: err}
	}
	if !newer {
		return lookupResult{outcome: Outcome{Kind: NoUpdate}}
	}

	return lookupResult{outcome: Outcome{
		Kind:    UpdateAvailable,
		Current: info.Current,
		Latest:  info.Latest,
		Message: c.notice(pkg.Name, info),
	}}
}

func (c *Checker) notice(name string, info *RemoteVersionInfo) string {
	return fmt.Sprintf("%s update available! %s → %s\nRun %s %s to update",
		c.displayName, info.Current, info.Latest, c.installer, name)
}

func (c *Checker) warn(err error) {
	c.log.Warn().Err(err).Msg("Failed to check for updates")
}
