package treeflat

import (
	"fmt"
	"reflect"

	"treeflat/container"
)

// FlattenFunc decomposes a registered node value into its ordered children
// and opaque reconstruction metadata. The optional entries slice carries one
// path entry per child; a nil entries means positional indices.
type FlattenFunc func(v any) (children []any, aux any, entries []any, err error)

// UnflattenFunc rebuilds a registered node value from the metadata and the
// reconstructed children.
type UnflattenFunc func(aux any, children []any) (any, error)

// Registration is a registry entry for a custom node type. Lookup is by exact
// reflect.Type identity, never by assignability.
type Registration struct {
	Kind          Kind
	Type          reflect.Type
	Flatten       FlattenFunc
	Unflatten     UnflattenFunc
	PathEntryType reflect.Type
}

var (
	mapperType     = reflect.TypeOf((*container.Mapper)(nil)).Elem()
	dequerType     = reflect.TypeOf((*container.Dequer)(nil)).Elem()
	recordSeqType  = reflect.TypeOf((*container.RecordSequence)(nil)).Elem()
	defaultMapType = reflect.TypeOf((*container.DefaultMapper)(nil)).Elem()
	orderedMapType = reflect.TypeOf((*container.OrderedMapper)(nil)).Elem()
)

// RegisterNode registers typ as a custom node kind. typ is a sample value or
// a reflect.Type; flatten and unflatten must be mutually inverse, which is
// the caller's contract and is not validated. pathEntryType optionally names
// the path-entry type a path-aware layer should use for this node; it may be
// nil.
//
// Registration fails with ErrDuplicateRegistration when the (namespace, type)
// slot is occupied and with ErrReservedKind when the structural classifier
// already claims typ as a built-in kind. Failed registrations leave the
// registry unchanged.
func (rt *Runtime) RegisterNode(typ any, flatten FlattenFunc, unflatten UnflattenFunc, pathEntryType any, opts ...Option) error {
	cfg := resolveOptions(opts)

	t := typeOf(typ)
	if t == nil {
		return fmt.Errorf("%w: node type is nil", ErrInvalidArgument)
	}
	if flatten == nil {
		return fmt.Errorf("%w: flatten function is nil", ErrInvalidArgument)
	}
	if unflatten == nil {
		return fmt.Errorf("%w: unflatten function is nil", ErrInvalidArgument)
	}
	if reserved(t) {
		return fmt.Errorf("%w: %s", ErrReservedKind, t)
	}

	reg := &Registration{
		Kind:          KindCustom,
		Type:          t,
		Flatten:       flatten,
		Unflatten:     unflatten,
		PathEntryType: typeOf(pathEntryType),
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()

	if cfg.namespace == "" {
		if _, ok := rt.global[t]; ok {
			return fmt.Errorf("%w: %s in the global namespace", ErrDuplicateRegistration, t)
		}
		rt.global[t] = reg
		return nil
	}
	key := namespacedType{namespace: cfg.namespace, typ: t}
	if _, ok := rt.named[key]; ok {
		return fmt.Errorf("%w: %s in namespace %q", ErrDuplicateRegistration, t, cfg.namespace)
	}
	rt.named[key] = reg
	return nil
}

// UnregisterNode removes the registration of typ. It fails with
// ErrUnknownRegistration when the (namespace, type) slot is empty.
func (rt *Runtime) UnregisterNode(typ any, opts ...Option) error {
	cfg := resolveOptions(opts)

	t := typeOf(typ)
	if t == nil {
		return fmt.Errorf("%w: node type is nil", ErrInvalidArgument)
	}
	if reserved(t) {
		return fmt.Errorf("%w: %s", ErrReservedKind, t)
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()

	if cfg.namespace == "" {
		if _, ok := rt.global[t]; !ok {
			return fmt.Errorf("%w: %s in the global namespace", ErrUnknownRegistration, t)
		}
		delete(rt.global, t)
		return nil
	}
	key := namespacedType{namespace: cfg.namespace, typ: t}
	if _, ok := rt.named[key]; !ok {
		return fmt.Errorf("%w: %s in namespace %q", ErrUnknownRegistration, t, cfg.namespace)
	}
	delete(rt.named, key)
	return nil
}

// Lookup returns the registration for t in the given namespace, falling back
// to the global namespace when inherit is true. The boolean reports a hit.
func (rt *Runtime) Lookup(t reflect.Type, namespace string, inherit bool) (*Registration, bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return rt.lookupLocked(t, namespace, inherit)
}

// lookupLocked requires rt.mu held for reading.
func (rt *Runtime) lookupLocked(t reflect.Type, namespace string, inherit bool) (*Registration, bool) {
	if t == nil {
		return nil, false
	}
	if namespace != "" {
		if reg, ok := rt.named[namespacedType{namespace: namespace, typ: t}]; ok {
			return reg, true
		}
		if !inherit {
			return nil, false
		}
	}
	reg, ok := rt.global[t]
	return reg, ok
}

// RegisterNode registers typ in the default Runtime. See Runtime.RegisterNode.
func RegisterNode(typ any, flatten FlattenFunc, unflatten UnflattenFunc, pathEntryType any, opts ...Option) error {
	return Default().RegisterNode(typ, flatten, unflatten, pathEntryType, opts...)
}

// UnregisterNode removes a registration from the default Runtime. See
// Runtime.UnregisterNode.
func UnregisterNode(typ any, opts ...Option) error {
	return Default().UnregisterNode(typ, opts...)
}

// reserved reports whether the structural classifier already claims t, so a
// custom registration could never be reached or would shadow a built-in.
// Defined struct, slice and map types remain registrable: the registry is
// consulted before structural detection, so their registration wins.
func reserved(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		if t.Name() == "" {
			return true
		}
	}
	if t.Implements(mapperType) || t.Implements(dequerType) {
		return true
	}
	if t.Kind() == reflect.Array && t.Implements(recordSeqType) {
		return true
	}
	return false
}

func typeOf(v any) reflect.Type {
	if v == nil {
		return nil
	}
	if t, ok := v.(reflect.Type); ok {
		return t
	}
	return reflect.TypeOf(v)
}
