/*
Package ucdparse provides a parser for Unicode Character Database files.

UCD files are line oriented, with a code point or code point range
followed by semicolon-separated fields and an optional comment:

	0041..005A    ; Lu # …
	00AA          ; Lo # …

The format is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.
*/
package ucdparse

import "fmt"

// A Token carries the content of one data line of a UCD file.
type Token struct {
	LineNo   int      // line number within the input source
	From, To rune     // code point range; From == To for single entries
	Fields   []string // semicolon-separated fields following the range
	Comment  string   // rest-of-line comment, if any
}

// Range returns the code point range of the data item.
func (t *Token) Range() (from, to rune) {
	return t.From, t.To
}

// Field gets field #0…n-1 of the data item, or "" if out of bounds.
func (t *Token) Field(i int) string {
	if i < 0 || i >= len(t.Fields) {
		return ""
	}
	return t.Fields[i]
}

func (t *Token) String() string {
	return fmt.Sprintf("token[line %d %#U…%#U %v]", t.LineNo, t.From, t.To, t.Fields)
}
