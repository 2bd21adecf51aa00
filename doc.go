/*
Package uniset implements sets of Unicode code points.

Sets are stored as ordered lists of atoms, where an atom is either a
single code point or an inclusive range of code points. Atoms are kept
strictly ascending and never touch: between any two consecutive atoms
there is at least one absent code point. All mutating operations
restore this form before they return.

Sets of this kind show up wherever character classes have to be
evaluated at the full Unicode scale, e.g. when compiling the restricted
regular expression dialect of XML Schema patterns. A character class
body is parsed by sub-package charclass and fed into an IntervalSet:

  s := uniset.New()
  if err := s.UpdateString(`a-zA-Z0-9\-`); err != nil {
      …
  }
  s.Contains('x')        // => true
  fmt.Println(s)         // => "\-0-9A-Za-z"

Besides membership tests, IntervalSet supports the usual set algebra
(union, difference, symmetric difference, intersection), ascending and
descending code point iteration, complement with respect to the full
Unicode range, and a compact textual rendering that round-trips through
the character class parser.

Sub-package category materializes the Unicode general categories
("Lu", "L", …) and the named Unicode blocks ("IsGreek", …) as
ready-made IntervalSets.

An IntervalSet is not safe for concurrent mutation. Completed sets,
like the category registry, may be shared freely for reading.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package uniset
