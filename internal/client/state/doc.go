// Package state tracks the lifecycle of one asynchronous request.
//
// A RequestState moves Idle -> Loading -> Success | Failure and can be started
// again from either outcome. At most one request is in flight per instance:
// Start while Loading is rejected instead of queued, so a resolution always
// belongs to the most recent Start.
//
// The machine never performs I/O itself. Owners call Start, run the request,
// then report the outcome with Resolve or Fail. After Close every outcome is
// dropped, which lets a torn-down screen ignore late responses.
package state
