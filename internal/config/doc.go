// Package config manages user-level settings stored at ~/.gemini/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the update-check source, deadline, and installer command, and to read the
// logging level. Every key can be overridden with a GEMINI_* environment
// variable (e.g. GEMINI_UPDATE_TIMEOUT for update.timeout).
package config
