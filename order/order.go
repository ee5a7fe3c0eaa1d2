/*
Package order provides three-way comparisons used to order tree payloads.

A comparison f must be a strict total order in the usual three-way sense:
f(a, b) < 0 if a sorts before b, f(a, b) == 0 if they are equal in order and
f(a, b) > 0 otherwise; it has to be transitive and consistent, i.e.
sign(f(a, b)) == -sign(f(b, a)). Comparisons violating this produce trees
of undefined shape; this is not checked.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package order

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

// Func is a three-way comparison.
type Func[T any] func(a, b T) int

// Natural orders by the built-in operators of T.
func Natural[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// Reverse inverts the ordering of f.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// FoldCase orders strings ignoring case. Strings differing in case only are
// ordered bytewise, to keep the order total.
func FoldCase() Func[string] {
	return func(a, b string) int {
		if c := cmp.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	}
}

// Collated orders strings according to the collation rules of a language.
// Strings which collate as equal are ordered bytewise.
//
// The collator is not safe for concurrent use, nor is the returned function.
func Collated(tag language.Tag) Func[string] {
	c := collate.New(tag)
	return func(a, b string) int {
		if r := c.CompareString(a, b); r != 0 {
			return r
		}
		return strings.Compare(a, b)
	}
}

// ErrUnknownOrder is returned by ByName for unrecognized names.
var ErrUnknownOrder = fmt.Errorf("order: unknown ordering")

// ByName resolves a string ordering from its name. Recognized names are
//
//	natural          bytewise
//	reverse          reversed bytewise
//	fold             case-insensitive
//	collate:<tag>    collation for a BCP 47 language tag, e.g. "collate:de"
//
// An empty name means natural.
func ByName(name string) (Func[string], error) {
	name = strings.TrimSpace(strings.ToLower(name))
	switch name {
	case "", "natural":
		return Natural[string](), nil
	case "reverse":
		return Reverse(Natural[string]()), nil
	case "fold":
		return FoldCase(), nil
	}
	if lang, ok := strings.CutPrefix(name, "collate:"); ok {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: collate:%s: %v", ErrUnknownOrder, lang, err)
		}
		tracer().Debugf("ordering strings by collation for %s", tag)
		return Collated(tag), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}
