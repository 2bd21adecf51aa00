/*
Package generator regenerates the precomputed category table.

The category builder of package category prefers a JSON table over a
full scan of the code point range. This generator performs the scan
once, against the Unicode tables compiled into the Go runtime, and
writes the result as "categories.json". Keys are the two-letter
general categories; values are lists whose elements are either a
single code point or a [lo, hi] pair.

Usage

The generator has a "verbose" flag and an output option:

   generator [-v] [-o categories.json]

The output file is designed to be placed in "$GOPATH/etc/", where the
category builder looks for it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"sort"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/uniset"
	"github.com/npillmayer/uniset/category"
)

var logger = log.New(os.Stderr, "category generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// flag: output file name
var outname string

func main() {
	flag.BoolVar(&verbose, "v", false, "verbose output mode")
	flag.StringVar(&outname, "o", category.CacheFileName, "output file name")
	flag.Parse()
	defer timeTrack(time.Now(), "generating the category table")

	if verbose {
		logger.Printf("scanning code points up to %#U", uniset.MaxCodePoint)
	}
	lists := category.Scan(uniset.MaxCodePoint)

	table := make(map[string][]interface{}, len(lists))
	names := make([]string, 0, len(lists))
	for name := range lists {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		list := arraylist.New()
		for _, atom := range lists[name] {
			if atom.IsSingle() {
				list.Add(int(atom.Lo))
			} else {
				list.Add([2]int{int(atom.Lo), int(atom.Hi)})
			}
		}
		table[name] = list.Values()
		if verbose {
			logger.Printf("category %s has %d entries", name, list.Size())
		}
	}

	data, err := json.Marshal(table)
	if err != nil {
		logger.Fatalf("encoding failed: %v", err)
	}
	if err = os.WriteFile(outname, data, 0644); err != nil {
		logger.Fatalf("writing %s failed: %v", outname, err)
	}
	if verbose {
		logger.Printf("wrote %s (%d bytes)", outname, len(data))
	}
}

// timeTrack may be used to measure execution time of a function.
// Usage: defer timeTrack(time.Now(), "foo")
func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	logger.Printf("timing: %s took %s\n", name, elapsed)
}
