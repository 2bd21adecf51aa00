package uniset

import "strings"

// classEscaped holds the code points that must be backslash-escaped
// when rendering a character class body.
const classEscaped = `-|.^?*+{}()[]`

func writeClassRune(sb *strings.Builder, r rune) {
	if strings.ContainsRune(classEscaped, r) {
		sb.WriteByte('\\')
	}
	sb.WriteRune(r)
}

// String renders the set as a character class body: a bare character
// for single atoms, two concatenated characters for an atom of width
// two, and a "start-end" form otherwise. Characters with a meaning
// inside a class body are escaped with a single backslash. The result
// parses back to the same atom list.
func (s *IntervalSet) String() string {
	var sb strings.Builder
	for _, a := range s.atoms {
		writeClassRune(&sb, a.Lo)
		if a.IsSingle() {
			continue
		}
		if a.Hi > a.Lo+1 {
			sb.WriteByte('-')
		}
		writeClassRune(&sb, a.Hi)
	}
	return sb.String()
}
