package server

// Server is the lifecycle contract for transport servers managed by
// this package. RunServer blocks until shutdown is requested; Shutdown
// releases whatever the server holds.
type Server interface {
	RunServer()
	Shutdown()
}
