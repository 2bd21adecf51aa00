package category

import (
	"io"

	"github.com/npillmayer/uniset"
	"github.com/npillmayer/uniset/internal/ucdparse"
)

// FromUCDFile builds a category table from a Unicode Character
// Database file of the DerivedGeneralCategory.txt format, i.e. lines
// mapping code point ranges to a two-letter general category. This
// lets clients target a specific Unicode version independent of the
// tables compiled into the Go runtime.
//
// Umbrella categories are derived as usual. Categories without any
// entry in the file are registered as empty sets.
func FromUCDFile(r io.Reader) (*Table, error) {
	lists := make(map[string][]uniset.Atom)
	err := ucdparse.Parse(r, func(token *ucdparse.Token) {
		name := token.Field(0)
		from, to := token.Range()
		lists[name] = append(lists[name], uniset.Range(from, to))
	})
	if err != nil {
		return nil, err
	}
	for _, name := range generalCategoryNames {
		if _, ok := lists[name]; !ok {
			lists[name] = nil
		}
	}
	return tableFromLists(lists), nil
}
