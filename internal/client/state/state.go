package state

import (
	"errors"
	"sync"
)

// Status is the active tag of a RequestState.
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Failure
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

var (
	// ErrInFlight is returned by Start while a request is already loading.
	ErrInFlight = errors.New("request already in flight")
	// ErrClosed is returned by Start after the owner tore the instance down.
	ErrClosed = errors.New("request state closed")
)

// Snapshot is a consistent copy of a RequestState. Data is meaningful only
// for Success and Err only for Failure.
type Snapshot[T any] struct {
	Status Status
	Data   T
	Err    error
}

// RequestState is safe for concurrent use. The zero value is Idle.
type RequestState[T any] struct {
	mu     sync.Mutex
	status Status
	data   T
	err    error
	closed bool
}

// Start moves the instance to Loading and drops any previous payload.
// It fails with ErrInFlight when already Loading and with ErrClosed after
// Close; in both cases nothing changes and the caller must not issue the
// request.
func (r *RequestState[T]) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if r.status == Loading {
		return ErrInFlight
	}

	var zero T
	r.status = Loading
	r.data = zero
	r.err = nil
	return nil
}

// Resolve records a successful outcome. It reports false, changing nothing,
// unless the instance is Loading and open.
func (r *RequestState[T]) Resolve(data T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.status != Loading {
		return false
	}
	r.status = Success
	r.data = data
	r.err = nil
	return true
}

// Fail records a failed outcome and discards whatever the last success held.
// It reports false, changing nothing, unless the instance is Loading and open.
func (r *RequestState[T]) Fail(err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.status != Loading {
		return false
	}
	var zero T
	r.status = Failure
	r.data = zero
	r.err = err
	return true
}

func (r *RequestState[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot[T]{Status: r.status, Data: r.data, Err: r.err}
}

func (r *RequestState[T]) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Close freezes the instance. The last observed snapshot stays readable.
func (r *RequestState[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}
