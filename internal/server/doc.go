// Package server runs the messagely HTTP listener.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown bounded by a timeout.
package server
