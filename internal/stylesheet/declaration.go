package stylesheet

import (
	"sort"

	"github.com/alexisbeaulieu97/cascade/internal/config"
)

// Declaration maps CSS property names to values. A nil Declaration means "no styles".
type Declaration map[string]string

// Merge folds declarations into a new one. Later entries override earlier
// ones and nil entries are skipped, so a resolved style list can be merged as
// a cascade with the most specific entry last.
func Merge(decls ...Declaration) Declaration {
	merged := Declaration{}
	for _, decl := range decls {
		for property, value := range decl {
			merged[property] = value
		}
	}
	return merged
}

// Properties returns the property names in sorted order.
func (d Declaration) Properties() []string {
	props := make([]string, 0, len(d))
	for property := range d {
		props = append(props, property)
	}
	sort.Strings(props)
	return props
}

func fromConfig(decl config.Declaration) Declaration {
	if decl == nil {
		return nil
	}
	out := make(Declaration, len(decl))
	for property, value := range decl {
		out[property] = value
	}
	return out
}
