package uniset

import "testing"

func collectComplement(t *testing.T, s *IntervalSet) []Atom {
	t.Helper()
	var atoms []Atom
	it := s.Complement()
	for it.Next() {
		atoms = append(atoms, it.Atom())
	}
	if err := it.Err(); err != nil {
		t.Fatal(err)
	}
	return atoms
}

func TestComplementGapRule(t *testing.T) {
	s := New()
	_ = s.Add(Range(10, 20))
	_ = s.Add(Range(22, 30)) // gap of width 1
	_ = s.Add(Range(33, 40)) // gap of width 2
	expect := []Atom{
		{0, 9},
		{21, 21},
		{31, 31}, {32, 32}, // a two code point gap comes out as two singles
		{41, MaxCodePoint},
	}
	atoms := collectComplement(t, s)
	if len(atoms) != len(expect) {
		t.Fatalf("expected %d complement atoms, have %d: %v", len(expect), len(atoms), atoms)
	}
	for i, a := range atoms {
		if a != expect[i] {
			t.Errorf("expected complement atom #%d to be %v, is %v", i, expect[i], a)
		}
	}
}

func TestComplementEnds(t *testing.T) {
	s := New() // empty set: complement is the full range
	atoms := collectComplement(t, s)
	if len(atoms) != 1 || atoms[0] != (Atom{0, MaxCodePoint}) {
		t.Errorf("expected full range complement, have %v", atoms)
	}
	full := New()
	_ = full.Add(Range(0, MaxCodePoint))
	if atoms = collectComplement(t, full); len(atoms) != 0 {
		t.Errorf("expected empty complement of the full range, have %v", atoms)
	}
	top := New() // topmost code point only
	_ = top.AddRune(MaxCodePoint)
	atoms = collectComplement(t, top)
	if len(atoms) != 1 || atoms[0] != (Atom{0, MaxCodePoint - 1}) {
		t.Errorf("expected complement 0…MaxCodePoint-1, have %v", atoms)
	}
}

func TestComplementUnordered(t *testing.T) {
	s := &IntervalSet{atoms: []Atom{{20, 30}, {10, 15}}} // deliberately broken
	it := s.Complement()
	for it.Next() {
	}
	if it.Err() != ErrUnordered {
		t.Errorf("expected ErrUnordered, have %v", it.Err())
	}
}

func TestComplementInvolution(t *testing.T) {
	sets := []*IntervalSet{
		New(),
		MustFromString("a-z"),
		MustFromString("a-f0-9xy"),
	}
	low := New()
	_ = low.AddRune(0)
	high := New()
	_ = high.Add(Range(0x10FFF0, MaxCodePoint))
	sets = append(sets, low, high)

	for _, s := range sets {
		c, err := s.ComplementSet()
		if err != nil {
			t.Fatal(err)
		}
		cc, err := c.ComplementSet()
		if err != nil {
			t.Fatal(err)
		}
		if !cc.Equal(s) {
			t.Errorf("expected double complement to restore %v, have %v", s.Atoms(), cc.Atoms())
		}
	}
}

func TestRunesAscending(t *testing.T) {
	s := MustFromString("ac-e")
	var runes []rune
	it := s.Runes()
	for it.Next() {
		runes = append(runes, it.Rune())
	}
	expect := []rune{'a', 'c', 'd', 'e'}
	if len(runes) != len(expect) {
		t.Fatalf("expected %d code points, have %d", len(expect), len(runes))
	}
	for i, r := range runes {
		if r != expect[i] {
			t.Errorf("expected code point #%d to be %#U, is %#U", i, expect[i], r)
		}
	}
}

func TestRunesDescending(t *testing.T) {
	s := MustFromString("ac-e")
	var runes []rune
	it := s.ReverseRunes()
	for it.Next() {
		runes = append(runes, it.Rune())
	}
	expect := []rune{'e', 'd', 'c', 'a'}
	if len(runes) != len(expect) {
		t.Fatalf("expected %d code points, have %d", len(expect), len(runes))
	}
	for i, r := range runes {
		if r != expect[i] {
			t.Errorf("expected code point #%d to be %#U, is %#U", i, expect[i], r)
		}
	}
}

func TestIteratorRestart(t *testing.T) {
	s := MustFromString("abc")
	first := s.Runes()
	n := 0
	for first.Next() {
		n++
	}
	second := s.Runes() // a fresh iterator traverses again
	m := 0
	for second.Next() {
		m++
	}
	if n != 3 || m != 3 {
		t.Errorf("expected both traversals to yield 3 code points, have %d and %d", n, m)
	}
}
