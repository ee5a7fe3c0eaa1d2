/*
Package display renders the payloads and the shape of arbor trees for humans.

The tree itself has no notion of presentation: payloads are formatted with
package fmt. This package adds layouts on top:

  - Columns prints payloads in order, laid out in columns for a console with
    fixed-width font, aware of East Asian wide characters.
  - Sideways prints the tree shape rotated by 90 degrees.
  - HTML renders the tree shape as nested lists.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}
