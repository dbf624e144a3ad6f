//go:build integration

package integration_test

import (
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// TestStartupNotice runs the binary with no subcommand and expects the
// update notice on stderr after the help text.
func TestStartupNotice(t *testing.T) {
	env := setupTestEnv(t)
	bin := buildCLI(t, env, "1.2.0")

	var hits atomic.Int32
	t.Setenv("GEMINI_UPDATE_REGISTRY", fakeRegistry(t, "1.3.0", 0, &hits).URL)

	stdout, stderr, code := runCLI(t, bin)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Errorf("expected help on stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "update available! 1.2.0 → 1.3.0") {
		t.Errorf("expected update notice on stderr, got %q", stderr)
	}
	if hits.Load() != 1 {
		t.Errorf("expected exactly one registry request, got %d", hits.Load())
	}
}

// TestSlowRegistryDoesNotDelayExit checks that a hung registry only costs
// the configured deadline and never changes the exit code.
func TestSlowRegistryDoesNotDelayExit(t *testing.T) {
	env := setupTestEnv(t)
	bin := buildCLI(t, env, "1.2.0")

	var hits atomic.Int32
	t.Setenv("GEMINI_UPDATE_REGISTRY", fakeRegistry(t, "9.9.9", 10*time.Second, &hits).URL)
	t.Setenv("GEMINI_UPDATE_TIMEOUT", "300ms")

	start := time.Now()
	_, stderr, code := runCLI(t, bin)
	elapsed := time.Since(start)

	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if elapsed > 5*time.Second {
		t.Errorf("CLI took %s with a 300ms update deadline", elapsed)
	}
	if strings.Contains(stderr, "9.9.9") {
		t.Errorf("late registry answer leaked into output: %q", stderr)
	}
	if !strings.Contains(stderr, "update check timed out") {
		t.Errorf("expected timeout warning, got %q", stderr)
	}
}

// TestManifestNextToBinary checks that a dev build picks its identity up
// from a package.json installed alongside it.
func TestManifestNextToBinary(t *testing.T) {
	env := setupTestEnv(t)
	bin := buildCLI(t, env, "dev")
	writeFile(t, filepath.Join(env.BinDir, "package.json"),
		`{"name":"@google/gemini-cli","version":"0.1.0","bin":{"gemini":"gemini"}}`)

	var hits atomic.Int32
	t.Setenv("GEMINI_UPDATE_REGISTRY", fakeRegistry(t, "0.2.0", 0, &hits).URL)

	stdout, _, code := runCLI(t, bin, "check-update")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(stdout, "0.1.0 → 0.2.0") {
		t.Errorf("expected notice for manifest version, got %q", stdout)
	}
}

// TestDisabledByConfig checks that update.disabled suppresses the lookup.
func TestDisabledByConfig(t *testing.T) {
	env := setupTestEnv(t)
	bin := buildCLI(t, env, "1.2.0")
	writeFile(t, filepath.Join(env.HomeDir, ".gemini", "config.yaml"), "update:\n  disabled: true\n")

	var hits atomic.Int32
	t.Setenv("GEMINI_UPDATE_REGISTRY", fakeRegistry(t, "1.3.0", 0, &hits).URL)

	_, stderr, code := runCLI(t, bin)
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if strings.Contains(stderr, "update available") || hits.Load() != 0 {
		t.Errorf("update check ran while disabled (hits=%d, stderr=%q)", hits.Load(), stderr)
	}
}
