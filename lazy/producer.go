package lazy

import "iter"

// Producer is anything which can be asked for a next value. ok is false if
// no further value is available; from then on all calls have to report
// ok == false.
type Producer[T any] interface {
	Next() (value T, ok bool)
}

// Func adapts an ordinary function to a Producer.
type Func[T any] func() (T, bool)

// Next calls f.
func (f Func[T]) Next() (T, bool) {
	return f()
}

// Collect drains p by calling Next until exhaustion and returns all values in
// the order they were produced. The result is a fresh slice and is never nil.
//
// Collect does not bound the number of calls: draining a producer which never
// reports exhaustion does not return. Wrap such producers with Limit.
func Collect[T any](p Producer[T]) []T {
	out := make([]T, 0, 16)
	if p == nil {
		return out
	}
	for {
		v, ok := p.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	tracer().Debugf("collected %d values", len(out))
	return out
}

// All returns an iterator pulling values from p. Iterating the result drains
// p; stopping a range loop early leaves the remaining values in p.
func All[T any](p Producer[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if p == nil {
			return
		}
		for {
			v, ok := p.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// FromSeq turns a push-style iterator into a Producer. Clients must call stop
// when they abandon the producer before it is exhausted.
func FromSeq[T any](seq iter.Seq[T]) (p Producer[T], stop func()) {
	next, stop := iter.Pull(seq)
	return &pulled[T]{next: next, stop: stop}, stop
}

type pulled[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (p *pulled[T]) Next() (T, bool) {
	if p.done {
		var zero T
		return zero, false
	}
	v, ok := p.next()
	if !ok {
		p.done = true
		p.stop()
	}
	return v, ok
}

// FromSlice returns a Producer handing out the items of a slice, in order.
// The slice is not copied.
func FromSlice[T any](items []T) Producer[T] {
	i := 0
	return Func[T](func() (T, bool) {
		if i >= len(items) {
			var zero T
			return zero, false
		}
		i++
		return items[i-1], true
	})
}

// Limit returns a Producer handing out at most n values from p. It is the
// opt-in guard against producers which never run dry.
func Limit[T any](p Producer[T], n int) Producer[T] {
	return &limited[T]{p: p, remaining: n}
}

type limited[T any] struct {
	p         Producer[T]
	remaining int
}

func (l *limited[T]) Next() (T, bool) {
	if l.remaining <= 0 || l.p == nil {
		var zero T
		return zero, false
	}
	v, ok := l.p.Next()
	if !ok {
		l.remaining = 0
		return v, false
	}
	l.remaining--
	return v, true
}
