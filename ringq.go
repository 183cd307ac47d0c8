// Package ringq implements a generic, growable FIFO queue backed by a
// circular buffer. Enqueue and dequeue are amortized O(1); the backing
// store doubles when a push finds it full and never shrinks.
//
// A RingQueue is not safe for concurrent use. Callers that share one
// across goroutines must serialize access themselves; the generation
// counter only turns interleaved mutation during iteration into an
// error instead of a corrupted traversal.
package ringq

import (
	"io"
	"iter"

	"github.com/sirupsen/logrus"
)

// DefaultCapacity is the backing store size used when no better hint is
// available, e.g. ringq.New[int](ringq.DefaultCapacity).
const DefaultCapacity = 50

// logger receives internal-misuse diagnostics only. Caller-facing
// failures are returned as errors, never logged.
var logger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// SetLogger redirects internal diagnostics to l. A nil logger is ignored.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		logger = l
	}
}

// RingQueue is a FIFO queue of T over a fixed-size slice addressed with
// wrap-around indexing. front is the index of the oldest live element,
// back the slot the next push writes to. Because front == back both when
// the queue is empty and when it is full, count is the sole authority on
// emptiness and fullness.
type RingQueue[T any] struct {
	buf   []T
	front int
	back  int
	count int
	gen   uint64 // bumped on every structural mutation
}

// New returns an empty queue with room for capacity elements before the
// first grow. It fails with ErrInvalidArgument if capacity is not positive.
func New[T any](capacity int) (*RingQueue[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidArgument
	}
	return &RingQueue[T]{buf: make([]T, capacity)}, nil
}

// NewFrom builds a queue by pushing every element of src in encountered
// order. capacity is only a starting hint; the queue grows as needed while
// draining src. It fails with ErrInvalidArgument if capacity is not
// positive and ErrNilSource if src is nil.
func NewFrom[T any](src iter.Seq[T], capacity int) (*RingQueue[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidArgument
	}
	if src == nil {
		return nil, ErrNilSource
	}
	q := &RingQueue[T]{buf: make([]T, capacity)}
	for v := range src {
		q.Push(v)
	}
	return q, nil
}

// Len returns the number of elements currently in the queue.
func (q *RingQueue[T]) Len() int {
	return q.count
}

// IsEmpty reports whether the queue holds no elements.
func (q *RingQueue[T]) IsEmpty() bool {
	return q.count == 0
}

// Cap returns the current capacity of the backing store.
func (q *RingQueue[T]) Cap() int {
	return len(q.buf)
}

// Push appends v to the back of the queue. If the buffer is full it is
// doubled first, so Push always succeeds; it is O(n) exactly when that
// grow happens and O(1) otherwise.
func (q *RingQueue[T]) Push(v T) {
	q.gen++
	if q.count == len(q.buf) {
		q.resize(2 * len(q.buf))
	}
	q.buf[q.back] = v
	q.back = (q.back + 1) % len(q.buf)
	q.count++
}

// Front returns the oldest element without removing it. It fails with
// ErrEmptyQueue if the queue is empty. Front is a pure query and does not
// invalidate iterators.
func (q *RingQueue[T]) Front() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.buf[q.front], nil
}

// Pop removes and returns the oldest element. It fails with ErrEmptyQueue
// if the queue is empty.
func (q *RingQueue[T]) Pop() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, ErrEmptyQueue
	}
	v := q.buf[q.front]
	q.buf[q.front] = zero // release the reference so it can be collected
	q.front = (q.front + 1) % len(q.buf)
	q.count--
	q.gen++
	return v, nil
}

// Clear removes all elements, keeping the current capacity. Like Push and
// Pop it is a structural mutation and invalidates outstanding iterators.
func (q *RingQueue[T]) Clear() {
	var zero T
	for i := 0; i < q.count; i++ {
		q.buf[(q.front+i)%len(q.buf)] = zero
	}
	q.front, q.back, q.count = 0, 0, 0
	q.gen++
}

// CopyTo copies all live elements, front to back, into dst starting at
// index. Destination slots outside the copied range keep their values.
// It fails with ErrNilDestination if dst is nil, ErrIndexOutOfRange if
// index falls outside dst (a zero-length dst has no valid index, even for
// an empty queue), and ErrInsufficientCapacity if dst cannot hold all
// elements from index onward.
func (q *RingQueue[T]) CopyTo(dst []T, index int) error {
	if dst == nil {
		return ErrNilDestination
	}
	if index < 0 || index >= len(dst) {
		return ErrIndexOutOfRange
	}
	if len(dst)-index < q.count {
		return ErrInsufficientCapacity
	}
	q.copyInto(dst[index:])
	return nil
}

// ToSlice returns the live elements, front to back, in a new slice.
func (q *RingQueue[T]) ToSlice() []T {
	out := make([]T, q.count)
	q.copyInto(out)
	return out
}

// copyInto writes exactly count elements into dst, which must have room
// for them. When the live range wraps past the end of the buffer it is
// copied in two contiguous segments.
func (q *RingQueue[T]) copyInto(dst []T) {
	if q.count == 0 {
		return
	}
	if q.front < q.back {
		copy(dst, q.buf[q.front:q.back])
		return
	}
	n := copy(dst, q.buf[q.front:])
	copy(dst[n:], q.buf[:q.back])
}

// resize moves the live elements into a fresh buffer of newCapacity slots,
// renormalizing front to 0. The caller is responsible for the generation
// bump; resize itself changes neither gen nor count.
func (q *RingQueue[T]) resize(newCapacity int) {
	if newCapacity < q.count {
		logger.WithFields(logrus.Fields{
			"capacity": newCapacity,
			"count":    q.count,
		}).Warn("resize below element count ignored")
		return
	}
	buf := make([]T, newCapacity)
	q.copyInto(buf)
	q.buf = buf
	q.front = 0
	q.back = q.count % newCapacity
}
