// Package orchestrator wires catalog loading, order validation, page building
// and rendering behind a single entry point shared by the HTTP server, the
// terminal session and the CLI.
package orchestrator
