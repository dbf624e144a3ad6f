// Package cli defines the Cobra command tree for the gemini CLI. The root
// command starts a bounded update check before every command and prints the
// notice, if any, once the command has finished. Command implementations
// delegate to internal packages and only handle flags and output.
package cli
