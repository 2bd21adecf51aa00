/*
Package category materializes Unicode general categories and blocks
as interval sets.

The registry covers the thirty two-letter general categories ("Lu",
"Nd", …), their seven one-letter umbrella unions ("L", "N", …) and the
named Unicode blocks ("IsBasicLatin", "IsGreek", …). Category classes
of this kind are what a pattern compiler needs to resolve \p{Lu} or
\p{IsGreek} while compiling XML Schema regular expressions.

Tables are built once and never mutated afterwards; the completed
registry may be shared freely between goroutines for lookups.

	lu, _ := category.Categories().Lookup("Lu")
	lu.Contains('A')   // => true

Building the category table prefers a precomputed JSON table and falls
back to a full scan of the code point range when the table is missing
or unusable. The scan collapses runs of equal category with the same
rule the interval set complement uses, so both sources produce
identical sets. The companion generator in internal/generator
regenerates the JSON table.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package category

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
