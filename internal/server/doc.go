// Package server wires and runs the control API's HTTP server, including
// startup, signal handling, and graceful shutdown.
package server
