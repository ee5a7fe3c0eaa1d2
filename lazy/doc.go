/*
Package lazy implements a pull protocol for sequences of values.

A Producer hands out one value per call to Next, until it reports that no
further value is available. Nothing is materialized before it is asked for.
Collect drains any producer into a slice:

	r := lazy.NewRange(0.0, 1.0, 0.1)
	values := lazy.Collect(r)   // 0, 0.1, …, 0.9

Producers are stateful and single-use: once a producer has reported
exhaustion it keeps doing so, and a fresh producer has to be created to
iterate again. Producers are not safe for concurrent use.

Producers and Go iterators convert into each other with All and FromSeq.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package lazy

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

// LazyError is an error type for the lazy package.
type LazyError string

func (e LazyError) Error() string {
	return string(e)
}

// ErrNonTerminating is flagged by NewCheckedRange for ranges which would
// never be exhausted.
const ErrNonTerminating = LazyError("lazy: range does not terminate")
