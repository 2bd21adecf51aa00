package uniset

// A RuneIterator walks the code points of a set in ascending order,
// expanding range atoms into individual code points. Iteration is
// finite; for a fresh traversal obtain a new iterator.
//
//	it := s.Runes()
//	for it.Next() {
//	    r := it.Rune()
//	    …
//	}
type RuneIterator struct {
	atoms   []Atom
	pos     int
	cur     rune
	started bool
}

// Runes returns an iterator over the set's code points, ascending.
// The iterator operates on a snapshot of the set.
func (s *IntervalSet) Runes() *RuneIterator {
	return &RuneIterator{atoms: s.Atoms()}
}

// Next advances the iterator to the next code point.
func (it *RuneIterator) Next() bool {
	if !it.started {
		it.started = true
		if len(it.atoms) == 0 {
			return false
		}
		it.cur = it.atoms[0].Lo
		return true
	}
	if it.pos >= len(it.atoms) {
		return false
	}
	if it.cur < it.atoms[it.pos].Hi {
		it.cur++
		return true
	}
	it.pos++
	if it.pos >= len(it.atoms) {
		return false
	}
	it.cur = it.atoms[it.pos].Lo
	return true
}

// Rune returns the code point the iterator currently points at.
func (it *RuneIterator) Rune() rune {
	return it.cur
}

// A ReverseRuneIterator walks the code points of a set in descending
// order.
type ReverseRuneIterator struct {
	atoms   []Atom
	pos     int
	cur     rune
	started bool
}

// ReverseRunes returns an iterator over the set's code points,
// descending. The iterator operates on a snapshot of the set.
func (s *IntervalSet) ReverseRunes() *ReverseRuneIterator {
	return &ReverseRuneIterator{atoms: s.Atoms()}
}

// Next advances the iterator to the next (lower) code point.
func (it *ReverseRuneIterator) Next() bool {
	if !it.started {
		it.started = true
		it.pos = len(it.atoms) - 1
		if it.pos < 0 {
			return false
		}
		it.cur = it.atoms[it.pos].Hi
		return true
	}
	if it.pos < 0 {
		return false
	}
	if it.cur > it.atoms[it.pos].Lo {
		it.cur--
		return true
	}
	it.pos--
	if it.pos < 0 {
		return false
	}
	it.cur = it.atoms[it.pos].Hi
	return true
}

// Rune returns the code point the iterator currently points at.
func (it *ReverseRuneIterator) Rune() rune {
	return it.cur
}

// A ComplementIterator yields the atoms of a set's complement with
// respect to the full range 0…MaxCodePoint: the gaps between
// consecutive occupied atoms plus the two open ends. Gaps are
// compacted with the AppendSpan rule, so a two code point gap comes
// out as two single atoms.
//
// After Next returns false, Err reports whether iteration stopped
// because the underlying atom list was found unordered.
type ComplementIterator struct {
	atoms []Atom
	pos   int
	last  rune
	atom  Atom
	queue []Atom
	tail  bool // open end beyond the last atom already emitted
	err   error
}

// Complement returns an iterator over the gaps of the set. The
// iterator operates on a snapshot of the set.
func (s *IntervalSet) Complement() *ComplementIterator {
	return &ComplementIterator{atoms: s.Atoms()}
}

// Next advances the iterator to the next complement atom.
func (it *ComplementIterator) Next() bool {
	if it.err != nil || it.tail {
		return false
	}
	for len(it.queue) == 0 {
		if it.pos >= len(it.atoms) || it.last > MaxCodePoint {
			// open end above the topmost atom
			it.tail = true
			if it.last <= MaxCodePoint {
				it.queue = append(it.queue, Atom{it.last, MaxCodePoint})
			}
			break
		}
		a := it.atoms[it.pos]
		it.pos++
		if a.Lo < it.last {
			it.err = ErrUnordered
			return false
		}
		it.queue = AppendSpan(it.queue, it.last, a.Lo)
		it.last = a.Hi + 1
	}
	if len(it.queue) == 0 {
		return false
	}
	it.atom, it.queue = it.queue[0], it.queue[1:]
	return true
}

// Atom returns the complement atom the iterator currently points at.
func (it *ComplementIterator) Atom() Atom {
	return it.atom
}

// Err returns ErrUnordered if the atom list violated the ordering
// invariant, and nil otherwise.
func (it *ComplementIterator) Err() error {
	return it.err
}

// ComplementSet builds the complement of the set with respect to the
// full range 0…MaxCodePoint.
func (s *IntervalSet) ComplementSet() (*IntervalSet, error) {
	c := New()
	it := s.Complement()
	for it.Next() {
		c.addAtom(it.Atom())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return c, nil
}
