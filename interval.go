package uniset

import (
	"errors"
	"fmt"
	"unicode"
)

// MaxCodePoint is the highest valid Unicode code point.
const MaxCodePoint rune = unicode.MaxRune

// ErrUnordered flags an interval list that turned out not to be in
// ascending order. This cannot happen for sets built through the API
// and indicates a construction bug; callers should treat it as fatal.
var ErrUnordered = errors.New("code points unordered")

// An Atom is the storage unit of an IntervalSet: an inclusive range
// Lo…Hi of code points. A single code point is an atom with Lo == Hi.
type Atom struct {
	Lo, Hi rune
}

// Single wraps a single code point into an atom.
func Single(r rune) Atom {
	return Atom{Lo: r, Hi: r}
}

// Range wraps an inclusive code point range into an atom.
func Range(lo, hi rune) Atom {
	return Atom{Lo: lo, Hi: hi}
}

// IsSingle is true for atoms holding exactly one code point.
func (a Atom) IsSingle() bool {
	return a.Lo == a.Hi
}

// Valid is true if the atom lies within 0…MaxCodePoint and is not empty.
func (a Atom) Valid() bool {
	return 0 <= a.Lo && a.Lo <= a.Hi && a.Hi <= MaxCodePoint
}

func (a Atom) check() error {
	if a.Valid() {
		return nil
	}
	return &CodePointError{Lo: a.Lo, Hi: a.Hi}
}

// CodePointError is returned when a supplied code point or range lies
// outside the Unicode domain, or when a range has Lo > Hi.
type CodePointError struct {
	Lo, Hi rune
}

func (e *CodePointError) Error() string {
	if e.Lo == e.Hi {
		return fmt.Sprintf("not a Unicode code point: %#U", e.Lo)
	}
	return fmt.Sprintf("not a Unicode code point range: %#U…%#U", e.Lo, e.Hi)
}

// An IntervalSet is a set of Unicode code points, stored as an ordered
// list of atoms. The list is kept strictly ascending, with at least one
// absent code point between consecutive atoms.
//
// The zero value is an empty set ready for use, but clients will
// usually call New.
type IntervalSet struct {
	atoms []Atom
}

// New creates an empty set.
func New() *IntervalSet {
	return &IntervalSet{}
}

// FromAtoms creates a set from code points and ranges in any order.
func FromAtoms(atoms ...Atom) (*IntervalSet, error) {
	s := New()
	if err := s.Update(atoms); err != nil {
		return nil, err
	}
	return s, nil
}

// FromString creates a set from a character class body, e.g. "a-zA-Z".
func FromString(body string) (*IntervalSet, error) {
	s := New()
	if err := s.UpdateString(body); err != nil {
		return nil, err
	}
	return s, nil
}

// MustFromString is like FromString but panics on a malformed class
// body. It is intended for statically known literals.
func MustFromString(body string) *IntervalSet {
	s, err := FromString(body)
	if err != nil {
		panic(err)
	}
	return s
}

// FromRangeTable creates a set holding every code point of a standard
// library range table.
func FromRangeTable(t *unicode.RangeTable) *IntervalSet {
	s := New()
	for _, r16 := range t.R16 {
		addStride(s, rune(r16.Lo), rune(r16.Hi), rune(r16.Stride))
	}
	for _, r32 := range t.R32 {
		addStride(s, rune(r32.Lo), rune(r32.Hi), rune(r32.Stride))
	}
	return s
}

func addStride(s *IntervalSet, lo, hi, stride rune) {
	if stride == 1 {
		s.addAtom(Atom{lo, hi})
		return
	}
	for r := lo; r <= hi; r += stride {
		s.addAtom(Single(r))
	}
}

// RangeTable converts the set into a standard library range table,
// e.g. for use with unicode.Is or the x/text rangetable helpers.
// Atoms straddling the 16-bit boundary are split between R16 and R32.
func (s *IntervalSet) RangeTable() *unicode.RangeTable {
	t := &unicode.RangeTable{}
	for _, a := range s.atoms {
		switch {
		case a.Hi <= 0xFFFF:
			t.R16 = append(t.R16, unicode.Range16{
				Lo: uint16(a.Lo), Hi: uint16(a.Hi), Stride: 1,
			})
		case a.Lo > 0xFFFF:
			t.R32 = append(t.R32, unicode.Range32{
				Lo: uint32(a.Lo), Hi: uint32(a.Hi), Stride: 1,
			})
		default:
			t.R16 = append(t.R16, unicode.Range16{
				Lo: uint16(a.Lo), Hi: 0xFFFF, Stride: 1,
			})
			t.R32 = append(t.R32, unicode.Range32{
				Lo: 0x10000, Hi: uint32(a.Hi), Stride: 1,
			})
		}
	}
	for _, r16 := range t.R16 {
		if r16.Hi > unicode.MaxLatin1 {
			break
		}
		t.LatinOffset++
	}
	return t
}

// Atoms returns a copy of the set's atom list, ascending.
func (s *IntervalSet) Atoms() []Atom {
	atoms := make([]Atom, len(s.atoms))
	copy(atoms, s.atoms)
	return atoms
}

// Len returns the number of code points contained in the set.
func (s *IntervalSet) Len() int {
	n := 0
	for _, a := range s.atoms {
		n += int(a.Hi-a.Lo) + 1
	}
	return n
}

// IsEmpty is true for sets without any code point.
func (s *IntervalSet) IsEmpty() bool {
	return len(s.atoms) == 0
}

// Clear removes all code points from the set.
func (s *IntervalSet) Clear() {
	s.atoms = s.atoms[:0]
}

// Copy returns an independent copy of the set.
func (s *IntervalSet) Copy() *IntervalSet {
	return &IntervalSet{atoms: s.Atoms()}
}

// Contains tests set membership of a single code point.
func (s *IntervalSet) Contains(r rune) bool {
	for _, a := range s.atoms {
		if a.Lo > r {
			return false
		}
		if a.Hi < r {
			continue
		}
		return true
	}
	return false
}

// Equal compares two sets by their atom lists. Sets covering the same
// code points always have identical atom lists, as both are kept in
// the maximally coalesced form.
func (s *IntervalSet) Equal(other *IntervalSet) bool {
	return s.EqualAtoms(other.atoms)
}

// EqualAtoms compares the set's atom list to a raw atom sequence.
func (s *IntervalSet) EqualAtoms(atoms []Atom) bool {
	if len(s.atoms) != len(atoms) {
		return false
	}
	for i, a := range s.atoms {
		if a != atoms[i] {
			return false
		}
	}
	return true
}

// Add inserts a code point range into the set, merging it with every
// atom it overlaps or touches.
func (s *IntervalSet) Add(a Atom) error {
	if err := a.check(); err != nil {
		return err
	}
	s.addAtom(a)
	return nil
}

// AddRune inserts a single code point into the set.
func (s *IntervalSet) AddRune(r rune) error {
	return s.Add(Single(r))
}

// addAtom is Add without domain validation. a must be a valid atom.
func (s *IntervalSet) addAtom(a Atom) {
	atoms := s.atoms
	for pos := range atoms {
		lo, hi := atoms[pos].Lo, atoms[pos].Hi
		switch {
		case a.Lo < lo:
			if a.Hi >= lo-1 {
				atoms[pos] = Atom{a.Lo, maxRune(a.Hi, hi)}
				s.absorbFrom(pos)
			} else {
				s.insertAt(pos, a)
			}
			return
		case a.Lo > hi+1:
			continue
		default: // lo <= a.Lo <= hi+1: extend this atom
			atoms[pos] = Atom{lo, maxRune(a.Hi, hi)}
			s.absorbFrom(pos)
			return
		}
	}
	s.atoms = append(s.atoms, a)
}

// absorbFrom merges the atom at pos with any following atoms it now
// overlaps or touches, so that a widened atom never crosses into its
// successors without swallowing them whole.
func (s *IntervalSet) absorbFrom(pos int) {
	end := pos + 1
	for end < len(s.atoms) && s.atoms[pos].Hi+1 >= s.atoms[end].Lo {
		s.atoms[pos].Hi = maxRune(s.atoms[pos].Hi, s.atoms[end].Hi)
		end++
	}
	if end > pos+1 {
		s.atoms = append(s.atoms[:pos+1], s.atoms[end:]...)
	}
}

// Discard removes a code point range from the set. An affected atom
// may disappear, shrink at either end, or split in two when the
// removed range is a strict interior subset.
func (s *IntervalSet) Discard(a Atom) error {
	if err := a.check(); err != nil {
		return err
	}
	s.discardAtom(a)
	return nil
}

// DiscardRune removes a single code point from the set.
func (s *IntervalSet) DiscardRune(r rune) error {
	return s.Discard(Single(r))
}

// discardAtom is Discard without domain validation. Walks the atom
// list from the top so that deletions do not disturb lower positions.
func (s *IntervalSet) discardAtom(a Atom) {
	for pos := len(s.atoms) - 1; pos >= 0; pos-- {
		lo, hi := s.atoms[pos].Lo, s.atoms[pos].Hi
		if a.Lo > hi {
			break
		}
		if a.Hi >= hi {
			switch {
			case a.Lo <= lo:
				s.removeAt(pos)
			case a.Lo-lo > 1:
				s.atoms[pos] = Atom{lo, a.Lo - 1}
			default:
				s.atoms[pos] = Single(lo)
			}
			continue
		}
		if a.Hi >= lo {
			if a.Lo <= lo {
				if hi-a.Hi > 1 {
					s.atoms[pos] = Atom{a.Hi + 1, hi}
				} else {
					s.atoms[pos] = Single(hi)
				}
			} else {
				if hi-a.Hi > 1 {
					s.insertAt(pos+1, Atom{a.Hi + 1, hi})
				} else {
					s.insertAt(pos+1, Single(hi))
				}
				if a.Lo-lo > 1 {
					s.atoms[pos] = Atom{lo, a.Lo - 1}
				} else {
					s.atoms[pos] = Single(lo)
				}
			}
		}
	}
}

func (s *IntervalSet) insertAt(pos int, a Atom) {
	s.atoms = append(s.atoms, Atom{})
	copy(s.atoms[pos+1:], s.atoms[pos:])
	s.atoms[pos] = a
}

func (s *IntervalSet) removeAt(pos int) {
	s.atoms = append(s.atoms[:pos], s.atoms[pos+1:]...)
}

func minRune(a, b rune) rune {
	if a < b {
		return a
	}
	return b
}

func maxRune(a, b rune) rune {
	if a > b {
		return a
	}
	return b
}
