package server

// Server is the lifecycle of the API process: serve until a stop signal,
// then drain in-flight requests.
type Server interface {
	// RunServer serves HTTP and blocks until SIGTERM, SIGINT or SIGQUIT has
	// been handled.
	RunServer()

	// Shutdown stops accepting connections and waits, bounded by the
	// request timeout, for running requests to finish.
	Shutdown()
}
