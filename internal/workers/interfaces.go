// Package workers hosts the background worker processes of the application.
//
// Workers run outside the request path and absorb work that must not block
// or fail inbound requests, such as best-effort cleanup of replaced avatar
// objects.
package workers

// Worker is a long-running background process with an explicit stop.
type Worker interface {
	// Run starts the worker's processing loop in its own goroutine and
	// returns immediately.
	Run()

	// Stop signals the worker to finish outstanding work and blocks until
	// its loop has exited.
	Stop()
}
