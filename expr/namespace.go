package expr

import (
	"fmt"
	"sort"
)

// Namespace maps identifiers to values. Statements mutate it; expressions
// only read from it.
type Namespace map[string]Value

// Clone returns a shallow copy of ns. A nil ns clones to an empty map.
func (ns Namespace) Clone() Namespace {
	c := make(Namespace, len(ns))
	for k, v := range ns {
		c[k] = v
	}
	return c
}

// Lookup returns the value bound to name or a *NameError.
func (ns Namespace) Lookup(name string) (Value, error) {
	v, ok := ns[name]
	if !ok {
		return Value{}, &NameError{Name: name}
	}
	return v, nil
}

// Names returns the bound identifiers in sorted order.
func (ns Namespace) Names() []string {
	names := make([]string, 0, len(ns))
	for k := range ns {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// NamespaceOf builds a Namespace from Go values using ValueOf.
func NamespaceOf(m map[string]any) (Namespace, error) {
	ns := make(Namespace, len(m))
	for k, x := range m {
		v, err := ValueOf(x)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", k, err)
		}
		ns[k] = v
	}
	return ns, nil
}
