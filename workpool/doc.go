// Package workpool implements the forkable work-stealing thread pool
// described for package subdivide's recursive task boundaries: a fixed
// number of workers drain a shared queue, and a task waiting on a child it
// forked keeps pulling other queued work instead of blocking, so the pool
// cannot deadlock once every worker is occupied by a waiter.
package workpool
