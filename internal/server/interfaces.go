package server

// Server is the lifecycle of the messagely listener.
type Server interface {
	// RunServer serves requests until a termination signal arrives.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight
	// requests, bounded by a timeout.
	Shutdown()
}
