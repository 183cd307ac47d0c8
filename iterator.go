package ringq

// Iterator walks the live elements of a RingQueue in front-to-back order:
//
//	it := q.Iter()
//	for it.Next() {
//	    use(it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
//
// The iterator captures the queue's generation when created (or Reset);
// any structural mutation of the queue afterwards makes the next Next or
// Reset fail with ErrConcurrentModification. Several iterators may walk
// the same queue at once, each with its own position; a mutation
// invalidates all of them.
type Iterator[T any] struct {
	q        *RingQueue[T]
	gen      uint64
	pos      int
	produced int
	cur      T
	err      error
}

// Iter returns a new iterator positioned at the front of the queue.
func (q *RingQueue[T]) Iter() *Iterator[T] {
	return &Iterator[T]{q: q, gen: q.gen, pos: q.front}
}

// Next advances to the next element, reporting whether one is available.
// The generation check runs on every call, the first included, so a
// mutation is caught on the very next access. Once the iterator has
// produced every element Next keeps returning false until Reset; the
// produced count, not index comparison, decides exhaustion, since
// front == back is ambiguous between empty and full.
func (it *Iterator[T]) Next() bool {
	var zero T
	if it.err != nil {
		return false
	}
	if it.gen != it.q.gen {
		it.err = ErrConcurrentModification
		it.cur = zero
		return false
	}
	if it.produced == it.q.count {
		it.cur = zero
		return false
	}
	it.cur = it.q.buf[it.pos]
	it.pos = (it.pos + 1) % len(it.q.buf)
	it.produced++
	return true
}

// Value returns the element produced by the last successful Next, or the
// zero value if Next returned false.
func (it *Iterator[T]) Value() T {
	return it.cur
}

// Err returns ErrConcurrentModification if the queue was mutated under
// this iterator, and nil after ordinary exhaustion.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Reset rewinds the iterator to the front of the queue. It is subject to
// the same generation check as Next: once the queue has been mutated the
// iterator cannot be revived.
func (it *Iterator[T]) Reset() error {
	if it.gen != it.q.gen {
		it.err = ErrConcurrentModification
		return it.err
	}
	var zero T
	it.pos = it.q.front
	it.produced = 0
	it.cur = zero
	it.err = nil
	return nil
}
