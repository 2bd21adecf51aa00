package uniset

import "sort"

// AppendSpan appends atoms covering the code points last…next-1 to a
// list, using the set's compaction rule: a gap of one code point
// becomes a single atom, a gap of two becomes two single atoms, and
// anything wider becomes one range atom. next == last appends nothing.
//
// The rule is shared between Complement and the category scanner in
// sub-package category, so that both collapse runs identically.
// Callers must ensure next >= last.
func AppendSpan(atoms []Atom, last, next rune) []Atom {
	switch diff := next - last; {
	case diff > 2:
		return append(atoms, Atom{last, next - 1})
	case diff == 2:
		return append(atoms, Single(last), Single(last+1))
	case diff == 1:
		return append(atoms, Single(last))
	}
	return atoms
}

// normalize sorts a copy of the given atoms and merges overlapping and
// adjacent ones. With descending set, the result is ordered from the
// highest atom down; this is the order in which Update and Subtract
// feed their per-atom operations, so that overlapping input resolves
// the same way regardless of the order it was supplied in.
func normalize(atoms []Atom, descending bool) []Atom {
	if len(atoms) == 0 {
		return nil
	}
	sorted := make([]Atom, len(atoms))
	copy(sorted, atoms)
	if descending {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Hi > sorted[j].Hi
		})
	} else {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Lo < sorted[j].Lo
		})
	}

	merged := sorted[:0]
	cur := sorted[0]
	for _, a := range sorted[1:] {
		if descending {
			if cur.Lo-1 <= a.Hi {
				cur.Lo = minRune(cur.Lo, a.Lo)
				continue
			}
		} else if cur.Hi+1 >= a.Lo {
			cur.Hi = maxRune(cur.Hi, a.Hi)
			continue
		}
		merged = append(merged, cur)
		cur = a
	}
	return append(merged, cur)
}
