package category

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/npillmayer/uniset"
)

// CacheFileName is the name of the precomputed category table. The
// default location is "$GOPATH/etc/", the directory this module uses
// for Unicode companion data.
const CacheFileName = "categories.json"

func defaultCachePath() string {
	return filepath.Join(os.Getenv("GOPATH"), "etc", CacheFileName)
}

// loadCache tries to read a precomputed category table. Loading is
// best-effort: any I/O, decode or structural failure returns nil and
// the caller scans instead. A second attempt would just fail the same
// way, so there is none.
func loadCache(cfg *config) map[string][]uniset.Atom {
	r := cfg.cache
	if r == nil {
		path := cfg.cachePath
		if path == "" {
			path = defaultCachePath()
		}
		f, err := os.Open(path)
		if err != nil {
			tracer().Debugf("no category table at %q, scanning instead", path)
			return nil
		}
		defer f.Close()
		r = f
	}
	lists, err := decodeTable(r)
	if err != nil {
		tracer().Infof("category table unusable, scanning instead: %v", err)
		return nil
	}
	return lists
}

// decodeTable decodes a JSON category table. Each category maps to a
// list whose elements are either a single integer code point or a
// two-element [lo, hi] pair; both shapes may be mixed freely. Any
// other shape, and any value outside the Unicode domain, is an error.
func decodeTable(r io.Reader) (map[string][]uniset.Atom, error) {
	var raw map[string][]interface{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	lists := make(map[string][]uniset.Atom, len(raw))
	for name, items := range raw {
		atoms := make([]uniset.Atom, 0, len(items))
		for i, item := range items {
			a, err := decodeAtom(item)
			if err != nil {
				return nil, fmt.Errorf("category %q, item #%d: %w", name, i, err)
			}
			atoms = append(atoms, a)
		}
		lists[name] = atoms
	}
	for _, name := range generalCategoryNames {
		if _, ok := lists[name]; !ok {
			return nil, fmt.Errorf("category %q missing from table", name)
		}
	}
	return lists, nil
}

func decodeAtom(item interface{}) (uniset.Atom, error) {
	switch v := item.(type) {
	case float64:
		r, err := decodeCodePoint(v)
		if err != nil {
			return uniset.Atom{}, err
		}
		return uniset.Single(r), nil
	case []interface{}:
		if len(v) != 2 {
			return uniset.Atom{}, fmt.Errorf("expected a [lo, hi] pair, have %d elements", len(v))
		}
		lo, ok := v[0].(float64)
		if !ok {
			return uniset.Atom{}, fmt.Errorf("range bound is not a number: %v", v[0])
		}
		hi, ok := v[1].(float64)
		if !ok {
			return uniset.Atom{}, fmt.Errorf("range bound is not a number: %v", v[1])
		}
		rlo, err := decodeCodePoint(lo)
		if err != nil {
			return uniset.Atom{}, err
		}
		rhi, err := decodeCodePoint(hi)
		if err != nil {
			return uniset.Atom{}, err
		}
		a := uniset.Range(rlo, rhi)
		if !a.Valid() {
			return uniset.Atom{}, fmt.Errorf("not a code point range: %v", v)
		}
		return a, nil
	}
	return uniset.Atom{}, fmt.Errorf("unexpected element shape: %T", item)
}

func decodeCodePoint(v float64) (rune, error) {
	if v != math.Trunc(v) || v < 0 || v > float64(uniset.MaxCodePoint) {
		return 0, fmt.Errorf("not a code point: %v", v)
	}
	return rune(v), nil
}
