package category

import (
	"io"
	"sort"
	"sync"

	"github.com/npillmayer/uniset"
)

// A Table is an immutable registry of named interval sets. It is
// created by Build, Categories or Blocks and never mutated afterwards.
type Table struct {
	sets map[string]*uniset.IntervalSet
}

// Lookup returns the set registered under a name, e.g. "Lu" or "L".
func (t *Table) Lookup(name string) (*uniset.IntervalSet, bool) {
	s, ok := t.sets[name]
	return s, ok
}

// Contains tests whether the named set contains a code point. Unknown
// names contain nothing.
func (t *Table) Contains(name string, r rune) bool {
	s, ok := t.sets[name]
	return ok && s.Contains(r)
}

// Names returns the registered names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.sets))
	for name := range t.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered sets.
func (t *Table) Len() int {
	return len(t.sets)
}

// generalCategoryNames holds the thirty two-letter Unicode general
// categories. "Cn" (unassigned) has no range table in the standard
// library; the scanner assigns it to every code point not covered by
// any other category.
var generalCategoryNames = []string{
	"Cc", "Cf", "Co", "Cs", "Cn",
	"Ll", "Lm", "Lo", "Lt", "Lu",
	"Mc", "Me", "Mn",
	"Nd", "Nl", "No",
	"Pc", "Pd", "Pe", "Pf", "Pi", "Po", "Ps",
	"Sc", "Sk", "Sm", "So",
	"Zl", "Zp", "Zs",
}

// umbrellaCategories maps each one-letter umbrella category to its
// constituent two-letter categories, in derivation order.
var umbrellaCategories = []struct {
	name    string
	members []string
}{
	{"C", []string{"Cc", "Cf", "Cs", "Co", "Cn"}},
	{"L", []string{"Lu", "Ll", "Lt", "Lm", "Lo"}},
	{"M", []string{"Mn", "Mc", "Me"}},
	{"N", []string{"Nd", "Nl", "No"}},
	{"P", []string{"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po"}},
	{"S", []string{"Sm", "Sc", "Sk", "So"}},
	{"Z", []string{"Zs", "Zl", "Zp"}},
}

type config struct {
	ceiling   rune
	cache     io.Reader
	cachePath string
}

// Option configures Build.
type Option func(*config)

// WithCeiling caps the scanned code point range. Ceilings below the
// full Unicode range always force a scan and suppress the block sets
// of the supplementary planes.
func WithCeiling(max rune) Option {
	return func(cfg *config) {
		cfg.ceiling = max
	}
}

// WithCache makes Build read the precomputed category table from r
// instead of the default cache file.
func WithCache(r io.Reader) Option {
	return func(cfg *config) {
		cfg.cache = r
	}
}

// WithCacheFile makes Build read the precomputed category table from
// the given file.
func WithCacheFile(path string) Option {
	return func(cfg *config) {
		cfg.cachePath = path
	}
}

// Build constructs the category table. A usable cache is preferred;
// any failure to load or decode it silently falls back to a full scan
// of the code point range, which is the source of truth.
func Build(opts ...Option) *Table {
	cfg := &config{ceiling: uniset.MaxCodePoint}
	for _, opt := range opts {
		opt(cfg)
	}
	var lists map[string][]uniset.Atom
	if cfg.ceiling >= uniset.MaxCodePoint {
		lists = loadCache(cfg)
	}
	if lists == nil {
		lists = Scan(cfg.ceiling)
	}
	return tableFromLists(lists)
}

// tableFromLists derives the umbrella categories and freezes every
// atom list into an interval set.
func tableFromLists(lists map[string][]uniset.Atom) *Table {
	sets := make(map[string]*uniset.IntervalSet, len(lists)+len(umbrellaCategories))
	for name, atoms := range lists {
		sets[name] = setFromAtoms(atoms)
	}
	for _, u := range umbrellaCategories {
		var atoms []uniset.Atom
		for _, member := range u.members {
			atoms = append(atoms, lists[member]...)
		}
		sets[u.name] = setFromAtoms(atoms)
	}
	return &Table{sets: sets}
}

func setFromAtoms(atoms []uniset.Atom) *uniset.IntervalSet {
	s := uniset.New()
	if err := s.Update(atoms); err != nil {
		// lists are validated on load and generated by the scan
		panic(err)
	}
	return s
}

var (
	categoriesOnce  sync.Once
	categoriesTable *Table
	blocksOnce      sync.Once
	blocksTable     *Table
)

// Categories returns the process-wide category table, building it on
// first use. The returned table is immutable and safe to share.
func Categories() *Table {
	categoriesOnce.Do(func() {
		categoriesTable = Build()
	})
	return categoriesTable
}

// Blocks returns the process-wide block table, building it on first
// use. The returned table is immutable and safe to share.
func Blocks() *Table {
	blocksOnce.Do(func() {
		blocksTable = buildBlocks(uniset.MaxCodePoint)
	})
	return blocksTable
}
