package category

import (
	"unicode"

	"github.com/npillmayer/uniset"
	"golang.org/x/text/unicode/rangetable"
)

// Scan classifies every code point from 0 up to and including ceiling
// and collects one atom list per two-letter general category. Runs of
// equal category are collapsed with the AppendSpan rule of package
// uniset, i.e. exactly like interval set complements, so that scanned
// lists and cached lists coalesce identically.
func Scan(ceiling rune) map[string][]uniset.Atom {
	if ceiling > uniset.MaxCodePoint {
		ceiling = uniset.MaxCodePoint
	}
	names, index := classify(ceiling)

	lists := make(map[string][]uniset.Atom, len(names))
	last := index[0]
	start := rune(0)
	for cp := rune(1); cp <= ceiling; cp++ {
		if index[cp] == last {
			continue
		}
		name := names[last]
		lists[name] = uniset.AppendSpan(lists[name], start, cp)
		last = index[cp]
		start = cp
	}
	name := names[last]
	lists[name] = uniset.AppendSpan(lists[name], start, ceiling+1)

	for _, name := range generalCategoryNames {
		if _, ok := lists[name]; !ok {
			lists[name] = nil
		}
	}
	return lists
}

// classify builds a per code point category index. Code points not
// covered by any standard library category table are unassigned ("Cn").
func classify(ceiling rune) (names []string, index []uint8) {
	index = make([]uint8, ceiling+1)
	names = []string{"Cn"}
	for name, table := range unicode.Categories {
		if len(name) != 2 {
			continue // skip the precomputed umbrella tables
		}
		names = append(names, name)
		cat := uint8(len(names) - 1)
		rangetable.Visit(table, func(r rune) {
			if r <= ceiling {
				index[r] = cat
			}
		})
	}
	return names, index
}
