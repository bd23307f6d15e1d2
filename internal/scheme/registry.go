// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scheme

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownScheme is returned by Resolve for a name with no
	// registered scheme.
	ErrUnknownScheme = errors.New("unknown scheme")

	// ErrDuplicateScheme is returned by Register when the name is taken.
	// With the fixed built-in set this is a startup configuration error.
	ErrDuplicateScheme = errors.New("duplicate scheme")
)

// Registry holds named schemes and resolves them for callers. Population
// happens once at startup; the registry is read-only afterwards, so lookups
// need no locking.
type Registry struct {
	schemes map[string]*Scheme
	names   []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{schemes: make(map[string]*Scheme)}
}

// Register adds s under its name. It returns ErrDuplicateScheme if the name
// is already registered.
func (r *Registry) Register(s *Scheme) error {
	if _, ok := r.schemes[s.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateScheme, s.Name())
	}
	r.schemes[s.Name()] = s
	r.names = append(r.names, s.Name())
	return nil
}

// Resolve returns the scheme registered under name, or ErrUnknownScheme.
// Callers own surfacing the error; there is no fallback scheme.
func (r *Registry) Resolve(name string) (*Scheme, error) {
	s, ok := r.schemes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	return s, nil
}

// Names returns the registered scheme names in registration order. The
// order is stable across runs; help text enumerates it.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
