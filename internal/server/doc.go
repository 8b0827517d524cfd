// Package server wires and runs the stub backend's HTTP transport.
//
// It provides lifecycle orchestration for the HTTP server, including
// startup, signal handling, and graceful shutdown.
package server
