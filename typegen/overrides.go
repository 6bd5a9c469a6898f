package typegen

import "reflect"

type overrideKey struct {
	owner reflect.Type
	field string
}

// Registry is the immutable (owning type, field) -> external key table built
// when a generator is constructed.
type Registry struct {
	entries map[overrideKey]string
}

// newRegistry validates the supplied override entries fail-fast: every entry
// must name an exported field that exists on its owning struct type.
func newRegistry(entries []overrideEntry) (*Registry, error) {
	r := &Registry{entries: make(map[overrideKey]string, len(entries))}
	for _, e := range entries {
		sf, ok := e.owner.FieldByName(e.field)
		if !ok {
			return nil, &InvalidOverrideError{Owner: e.owner, Field: e.field, Key: e.key, Reason: "field does not exist"}
		}
		if !sf.IsExported() {
			return nil, &InvalidOverrideError{Owner: e.owner, Field: e.field, Key: e.key, Reason: "field is not exported"}
		}
		k := overrideKey{owner: e.owner, field: e.field}
		if prev, dup := r.entries[k]; dup && prev != e.key {
			return nil, &InvalidOverrideError{Owner: e.owner, Field: e.field, Key: e.key, Reason: "conflicting override already registered"}
		}
		r.entries[k] = e.key
	}
	return r, nil
}

// Lookup returns the external key registered for the field, or the empty
// string when the field keeps its natural name.
func (r *Registry) Lookup(owner reflect.Type, field string) (string, bool) {
	key, ok := r.entries[overrideKey{owner: owner, field: field}]
	return key, ok
}
