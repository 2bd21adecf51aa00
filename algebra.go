package uniset

import "github.com/npillmayer/uniset/charclass"

// Update inserts code points and ranges, given in any order. The input
// is normalized and consumed from the highest atom down, so that
// overlapping items resolve deterministically regardless of the order
// they were supplied in.
func (s *IntervalSet) Update(atoms []Atom) error {
	for _, a := range atoms {
		if err := a.check(); err != nil {
			return err
		}
	}
	for _, a := range normalize(atoms, true) {
		s.addAtom(a)
	}
	return nil
}

// UpdateString inserts the code points denoted by a character class
// body, e.g. "a-zA-Z0-9". The body is lexed by sub-package charclass.
func (s *IntervalSet) UpdateString(body string) error {
	tokens, err := charclass.Parse(body, false)
	if err != nil {
		return err
	}
	return s.Update(tokenAtoms(tokens))
}

// Subtract removes code points and ranges, given in any order. Like
// Update, the input is consumed from the highest atom down.
func (s *IntervalSet) Subtract(atoms []Atom) error {
	for _, a := range atoms {
		if err := a.check(); err != nil {
			return err
		}
	}
	for _, a := range normalize(atoms, true) {
		s.discardAtom(a)
	}
	return nil
}

// SubtractString removes the code points denoted by a character class
// body.
func (s *IntervalSet) SubtractString(body string) error {
	tokens, err := charclass.Parse(body, false)
	if err != nil {
		return err
	}
	return s.Subtract(tokenAtoms(tokens))
}

func tokenAtoms(tokens []charclass.Token) []Atom {
	atoms := make([]Atom, len(tokens))
	for i, tok := range tokens {
		atoms[i] = Atom{Lo: tok.Lo, Hi: tok.Hi}
	}
	return atoms
}

// UnionWith adds all code points of other to the set.
func (s *IntervalSet) UnionWith(other *IntervalSet) {
	for pos := len(other.atoms) - 1; pos >= 0; pos-- {
		s.addAtom(other.atoms[pos])
	}
}

// SubtractWith removes all code points of other from the set.
func (s *IntervalSet) SubtractWith(other *IntervalSet) {
	if other == s {
		s.Clear()
		return
	}
	for pos := len(other.atoms) - 1; pos >= 0; pos-- {
		s.discardAtom(other.atoms[pos])
	}
}

// Union returns a new set holding the code points of both sets.
func (s *IntervalSet) Union(other *IntervalSet) *IntervalSet {
	u := s.Copy()
	u.UnionWith(other)
	return u
}

// Difference returns a new set holding the code points of s that are
// not in other.
func (s *IntervalSet) Difference(other *IntervalSet) *IntervalSet {
	d := s.Copy()
	d.SubtractWith(other)
	return d
}

// IntersectWith drops every code point not contained in other,
// computed as s -= (s - other). The transient difference set is taken
// from an internal pool.
func (s *IntervalSet) IntersectWith(other *IntervalSet) {
	if other == s {
		return
	}
	diff := borrowSet()
	diff.UnionWith(s)
	diff.SubtractWith(other)
	s.SubtractWith(diff)
	releaseSet(diff)
}

// Intersection returns a new set holding the code points common to
// both sets.
func (s *IntervalSet) Intersection(other *IntervalSet) *IntervalSet {
	i := s.Copy()
	i.IntersectWith(other)
	return i
}

// SymmetricDifferenceWith toggles every code point of other: common
// code points are dropped, the rest of other is added. The symmetric
// difference of a set with itself is empty.
func (s *IntervalSet) SymmetricDifferenceWith(other *IntervalSet) {
	if other == s {
		s.Clear()
		return
	}
	it := other.Runes()
	for it.Next() {
		r := it.Rune()
		if s.Contains(r) {
			s.discardAtom(Single(r))
		} else {
			s.addAtom(Single(r))
		}
	}
}

// SymmetricDifference returns a new set holding the code points
// contained in exactly one of the two sets.
func (s *IntervalSet) SymmetricDifference(other *IntervalSet) *IntervalSet {
	d := s.Copy()
	d.SymmetricDifferenceWith(other)
	return d
}
