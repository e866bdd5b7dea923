// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, sync services, and the background sync reminder
// into a single process lifecycle.
package client
