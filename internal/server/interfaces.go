package server

// Server is the lifecycle contract of the transport layer.
//
// RunServer blocks until a stop signal arrives or the listener fails;
// Shutdown stops accepting new requests and drains in-flight ones.
type Server interface {
	RunServer()
	Shutdown()
}
