package vec

import "iter"

// Sequence produces values one at a time together with a best-effort
// estimate of how many remain.
type Sequence[T any] interface {
	// Next returns the next value, or false when the sequence is exhausted.
	Next() (T, bool)
	// SizeHint returns a lower-bound estimate of the values remaining.
	// Consumers may use it to pre-size storage but must not rely on it.
	SizeHint() int
}

type sliceSeq[T any] struct {
	s []T
}

// SliceSeq returns a Sequence over the values of s with an exact hint.
func SliceSeq[T any](s []T) Sequence[T] {
	return &sliceSeq[T]{s: s}
}

func (q *sliceSeq[T]) Next() (T, bool) {
	if len(q.s) == 0 {
		var zero T
		return zero, false
	}
	v := q.s[0]
	q.s = q.s[1:]
	return v, true
}

func (q *sliceSeq[T]) SizeHint() int { return len(q.s) }

// PullIter turns a push-style iter.Seq into a Sequence.
type PullIter[T any] struct {
	next func() (T, bool)
	stop func()
	hint int
}

// PullSeq returns a Sequence over seq. hint is the caller's estimate of the
// number of values; it shrinks as values are consumed. Call Stop if the
// sequence is abandoned before it is exhausted.
func PullSeq[T any](seq iter.Seq[T], hint int) *PullIter[T] {
	next, stop := iter.Pull(seq)
	return &PullIter[T]{next: next, stop: stop, hint: max(hint, 0)}
}

// Next implements Sequence.
func (p *PullIter[T]) Next() (T, bool) {
	v, ok := p.next()
	if !ok {
		p.hint = 0
		p.stop()
		return v, false
	}
	if p.hint > 0 {
		p.hint--
	}
	return v, true
}

// SizeHint implements Sequence.
func (p *PullIter[T]) SizeHint() int { return p.hint }

// Stop releases the underlying iterator. It is safe to call more than once.
func (p *PullIter[T]) Stop() { p.stop() }
