// Package visited implements the visited-at-depth filter the generator
// uses to prune revisits within a single iterative-deepening iteration.
// It shares the packed nibble layout of the corner table itself, but a
// distinct set of semantics: entry i holds the shallowest dist+1 at which
// state i has been pushed during the current iteration; 0 means "not
// pushed this iteration". Since dist+1 is at most 11 (the generator never
// searches past depth 11), 4 bits are always enough.
package visited

import "github.com/andrewbrown/cornertable/internal/nibble"

// Filter is a reusable, resettable visited-at-depth table.
type Filter struct {
	arr *nibble.Array
}

// New allocates a filter with all entries unset.
func New() *Filter {
	return &Filter{arr: nibble.New()}
}

// Reset clears every entry, to be called once at the start of each depth
// iteration.
func (f *Filter) Reset() {
	f.arr.Clear()
}

// SeenAtOrBefore reports whether index i has already been pushed this
// iteration at depth-plus-one value or shallower.
func (f *Filter) SeenAtOrBefore(i, value int) bool {
	seen := f.arr.Get(i)
	return seen != 0 && int(seen) <= value
}

// Mark records that index i has been pushed this iteration at depth-plus-
// one value. value must fit in 4 bits (it is always <= 11 in practice).
func (f *Filter) Mark(i, value int) {
	f.arr.Set(i, byte(value))
}
