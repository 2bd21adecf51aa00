/*
Package charclass lexes character class bodies.

A character class body is the content between the brackets of a class
expression in the restricted regular expression dialect of XML Schema
patterns, e.g. the "a-zA-Z\-" in "[a-zA-Z\-]". The lexer turns such a
body into a sequence of tokens, each holding a single code point or an
inclusive code point range. Tokens carry no class semantics; assembling
them into a set is the business of the parent package.

The grammar is positional. An unescaped hyphen is a range specifier
unless it occurs at the very start or the very end of the body. The
characters | . ^ ? * + { } ( ) are always literal inside a body, while
[ and ] are only legal when escaped or when the whole body consists of
just that one character.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package charclass

import "fmt"

// A Token is a single code point (Lo == Hi) or an inclusive code point
// range produced by the lexer.
type Token struct {
	Lo, Hi rune
}

// SyntaxError reports a violation of the positional rules of the class
// grammar, citing the offending character and its rune position within
// the body.
type SyntaxError struct {
	Ch      rune // offending character; the range end for bad ranges
	Lo      rune // range start; valid only when IsRange is set
	Pos     int  // rune position within the class body
	IsRange bool // a range with end < start
}

func (e *SyntaxError) Error() string {
	if e.IsRange {
		return fmt.Sprintf("bad character range %q-%q at position %d", e.Lo, e.Ch, e.Pos)
	}
	return fmt.Sprintf("bad character %q at position %d", e.Ch, e.Pos)
}

// Characters that are always literal inside a class body.
func isClassLiteral(r rune) bool {
	switch r {
	case '|', '.', '^', '?', '*', '+', '{', '}', '(', ')':
		return true
	}
	return false
}

// Characters that keep their escaping backslash meaningful as the end
// of a range, e.g. in "+-\-".
func isClassMeta(r rune) bool {
	switch r {
	case '-', '|', '.', '^', '?', '*', '+', '{', '}', '(', ')', '[', ']':
		return true
	}
	return false
}
