package uniset

import (
	"math/rand"
	"testing"
)

func randomSet(rng *rand.Rand, ceiling rune) *IntervalSet {
	s := New()
	for i := 0; i < 8; i++ {
		lo := rune(rng.Intn(int(ceiling)))
		hi := lo + rune(rng.Intn(12))
		if hi > ceiling {
			hi = ceiling
		}
		_ = s.Add(Range(lo, hi))
	}
	return s
}

func TestUpdateOrderIndependence(t *testing.T) {
	// overlapping input must resolve to the same set in any order
	atoms := []Atom{Range('a', 'k'), Range('f', 'z'), Single('m')}
	reversed := []Atom{Single('m'), Range('f', 'z'), Range('a', 'k')}
	a, err := FromAtoms(atoms...)
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromAtoms(reversed...)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("expected order independent update, have %v vs %v", a.Atoms(), b.Atoms())
	}
	if !a.EqualAtoms([]Atom{{'a', 'z'}}) {
		t.Errorf("expected a-z, have %v", a.Atoms())
	}
}

func TestUpdateStringVariants(t *testing.T) {
	a := MustFromString("a-zm")
	b := MustFromString("ma-z")
	if !a.Equal(b) {
		t.Errorf("expected equal sets, have %v vs %v", a.Atoms(), b.Atoms())
	}
	if !a.EqualAtoms([]Atom{{'a', 'z'}}) {
		t.Errorf("expected a-z, have %v", a.Atoms())
	}
}

func TestUnionLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		a, b, c := randomSet(rng, 200), randomSet(rng, 200), randomSet(rng, 200)
		if !a.Union(b).Equal(b.Union(a)) {
			t.Fatalf("expected union to be commutative: %v, %v", a.Atoms(), b.Atoms())
		}
		left := a.Union(b).Union(c)
		right := a.Union(b.Union(c))
		if !left.Equal(right) {
			t.Fatalf("expected union to be associative: %v, %v, %v",
				a.Atoms(), b.Atoms(), c.Atoms())
		}
	}
}

func TestSymmetricDifferenceSelf(t *testing.T) {
	s := MustFromString("a-z0-9")
	s.SymmetricDifferenceWith(s)
	if !s.IsEmpty() {
		t.Errorf("expected xor with self to empty the set, have %v", s.Atoms())
	}
	a := MustFromString("a-m")
	b := MustFromString("h-z")
	d := a.SymmetricDifference(b)
	checkInvariant(t, d)
	for r := rune('a'); r <= 'z'; r++ {
		expected := a.Contains(r) != b.Contains(r)
		if d.Contains(r) != expected {
			t.Errorf("expected xor membership of %#U to be %v", r, expected)
		}
	}
}

func TestDifferenceThenIntersect(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		a, b := randomSet(rng, 200), randomSet(rng, 200)
		d := a.Difference(b)
		checkInvariant(t, d)
		d.IntersectWith(b)
		if !d.IsEmpty() {
			t.Fatalf("expected (A-B) ∩ B to be empty, have %v", d.Atoms())
		}
	}
}

func TestIntersection(t *testing.T) {
	a := MustFromString("a-m")
	b := MustFromString("h-z")
	i := a.Intersection(b)
	checkInvariant(t, i)
	if !i.EqualAtoms([]Atom{{'h', 'm'}}) {
		t.Errorf("expected h-m, have %v", i.Atoms())
	}
	if !a.EqualAtoms([]Atom{{'a', 'm'}}) {
		t.Errorf("expected the receiver to stay unchanged, have %v", a.Atoms())
	}
	a.IntersectWith(a) // intersection with itself is a no-op
	if !a.EqualAtoms([]Atom{{'a', 'm'}}) {
		t.Errorf("expected self intersection to be a no-op, have %v", a.Atoms())
	}
}

func TestSubtractWithSelf(t *testing.T) {
	s := MustFromString("a-z")
	s.SubtractWith(s)
	if !s.IsEmpty() {
		t.Errorf("expected subtracting a set from itself to empty it, have %v", s.Atoms())
	}
}

func TestSubtractString(t *testing.T) {
	s := MustFromString("a-z")
	if err := s.SubtractString("m-p"); err != nil {
		t.Fatal(err)
	}
	if !s.EqualAtoms([]Atom{{'a', 'l'}, {'q', 'z'}}) {
		t.Errorf("expected a-l and q-z, have %v", s.Atoms())
	}
	if err := s.SubtractString("z-a"); err == nil {
		t.Errorf("expected a syntax error for a mis-ordered range")
	}
}
