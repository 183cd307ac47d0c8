package ringq

import "errors"

// Errors returned by RingQueue operations. All of them are surfaced
// directly to the caller at the point of the offending call; the queue
// state is left untouched by any failed operation.
var (
	// ErrInvalidArgument is returned when a constructor is given a
	// non-positive capacity.
	ErrInvalidArgument = errors.New("ringq: capacity must be positive")

	// ErrNilSource is returned by NewFrom when the source sequence is nil.
	ErrNilSource = errors.New("ringq: nil source sequence")

	// ErrNilDestination is returned by CopyTo when the destination slice
	// is nil.
	ErrNilDestination = errors.New("ringq: nil destination slice")

	// ErrEmptyQueue is returned by Front and Pop on an empty queue.
	ErrEmptyQueue = errors.New("ringq: queue is empty")

	// ErrIndexOutOfRange is returned by CopyTo when the start index falls
	// outside the destination slice.
	ErrIndexOutOfRange = errors.New("ringq: index out of range")

	// ErrInsufficientCapacity is returned by CopyTo when the destination
	// cannot hold all live elements from the start index onward.
	ErrInsufficientCapacity = errors.New("ringq: destination too small")

	// ErrConcurrentModification is returned by an Iterator whose queue was
	// structurally modified after the iterator was created or reset.
	ErrConcurrentModification = errors.New("ringq: queue modified during iteration")
)
