// Package workers runs background workers as a group: each Worker gets
// its own goroutine and the aggregate waits for all of them.
package workers

// Worker is a long-running background task. Run is expected to block
// for the duration of the work, spawning goroutines internally if it
// needs them.
type Worker interface {
	Run()
}
