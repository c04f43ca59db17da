package sema

import "sort"

// SymbolTable is a flat set of declared names. There are no nested scopes.
type SymbolTable struct {
	names map[string]struct{}
}

// NewSymbolTable returns a table pre-populated with names.
func NewSymbolTable(names ...string) *SymbolTable {
	st := &SymbolTable{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		st.Declare(n)
	}
	return st
}

// Declare adds name; empty names are ignored.
func (st *SymbolTable) Declare(name string) {
	if name == "" {
		return
	}
	st.names[name] = struct{}{}
}

func (st *SymbolTable) Has(name string) bool {
	if st == nil {
		return false
	}
	_, ok := st.names[name]
	return ok
}

func (st *SymbolTable) Len() int {
	if st == nil {
		return 0
	}
	return len(st.names)
}

// Names returns the declared names sorted.
func (st *SymbolTable) Names() []string {
	if st == nil {
		return nil
	}
	out := make([]string, 0, len(st.names))
	for n := range st.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
