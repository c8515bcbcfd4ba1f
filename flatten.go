package treeflat

import (
	"fmt"
	"reflect"

	"treeflat/container"
	"treeflat/internal/keysort"
)

// Flatten decomposes v into its leaves, in left-to-right depth-first order,
// and a TreeSpec describing the structure. The registry and ordering state
// are read per node, so a concurrent registration is observed either fully or
// not at all.
func (rt *Runtime) Flatten(v any, opts ...Option) ([]any, *TreeSpec, error) {
	cfg := resolveOptions(opts)

	f := &flattener{rt: rt, cfg: cfg}
	if err := f.flattenInto(v, 0); err != nil {
		return nil, nil, err
	}

	// The namespace is retained only when a custom node was met, so that
	// unflatten re-resolves registrations in the right partition; descriptors
	// of purely structural trees stay namespace-free.
	namespace := ""
	if f.foundCustom {
		namespace = cfg.namespace
	}
	spec := &TreeSpec{traversal: f.traversal, noneIsLeaf: cfg.noneIsLeaf, namespace: namespace}
	return f.leaves, spec, nil
}

// Leaves returns only the flat leaf slice of v.
func (rt *Runtime) Leaves(v any, opts ...Option) ([]any, error) {
	leaves, _, err := rt.Flatten(v, opts...)
	return leaves, err
}

// Structure returns only the TreeSpec of v.
func (rt *Runtime) Structure(v any, opts ...Option) (*TreeSpec, error) {
	_, spec, err := rt.Flatten(v, opts...)
	return spec, err
}

type flattener struct {
	rt  *Runtime
	cfg config

	leaves      []any
	traversal   []specNode
	foundCustom bool
}

func (f *flattener) flattenInto(v any, depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("%w: nesting deeper than %d", ErrDepthExceeded, MaxDepth)
	}

	startLeaves := len(f.leaves)
	startNodes := len(f.traversal)

	node := specNode{}
	kind, reg := f.rt.classify(v, f.cfg)
	node.kind = kind

	switch kind {
	case KindLeaf:
		f.leaves = append(f.leaves, v)

	case KindNone:
		// Arity-0 node, recorded in the descriptor only.

	case KindFixedSequence, KindList, KindRecordSequence:
		rv := reflect.ValueOf(v)
		node.typ = rv.Type()
		node.arity = rv.Len()
		for i := 0; i < rv.Len(); i++ {
			if err := f.flattenInto(rv.Index(i).Interface(), depth+1); err != nil {
				return err
			}
		}

	case KindNamedRecord:
		rv := reflect.ValueOf(v)
		fields := exportedFields(rv.Type())
		node.typ = rv.Type()
		node.arity = len(fields)
		for _, field := range fields {
			if err := f.flattenInto(rv.FieldByIndex(field.Index).Interface(), depth+1); err != nil {
				return err
			}
		}

	case KindMapping:
		if m, ok := v.(container.Mapper); ok {
			if err := f.flattenMapper(&node, v, m, true, depth); err != nil {
				return err
			}
			break
		}
		rv := reflect.ValueOf(v)
		keys := rv.MapKeys()
		// Go maps carry no insertion order, so the ordering policy cannot
		// apply; sorted-key order is used unconditionally.
		keysort.Sort(keys)
		node.typ = rv.Type()
		node.arity = len(keys)
		node.keys = make([]any, len(keys))
		for i, key := range keys {
			node.keys[i] = key.Interface()
			if err := f.flattenInto(rv.MapIndex(key).Interface(), depth+1); err != nil {
				return err
			}
		}

	case KindOrderedMapping:
		// Contractually insertion-ordered; the ordering policy does not apply.
		if err := f.flattenMapper(&node, v, v.(container.Mapper), false, depth); err != nil {
			return err
		}

	case KindDefaultMapping:
		dm := v.(container.DefaultMapper)
		if err := f.flattenMapper(&node, v, dm, true, depth); err != nil {
			return err
		}
		node.aux = dm.DefaultFactory()

	case KindDeque:
		d := v.(container.Dequer)
		values := d.Values()
		node.typ = reflect.TypeOf(v)
		node.arity = len(values)
		node.maxLen = d.MaxLen()
		for _, value := range values {
			if err := f.flattenInto(value, depth+1); err != nil {
				return err
			}
		}

	case KindCustom:
		f.foundCustom = true
		children, aux, entries, err := reg.Flatten(v)
		if err != nil {
			return fmt.Errorf("flatten %v: %w", reg.Type, err)
		}
		if entries != nil && len(entries) != len(children) {
			return fmt.Errorf("%w: %v returned %d path entries for %d children",
				ErrStructuralMismatch, reg.Type, len(entries), len(children))
		}
		node.typ = reg.Type
		node.aux = aux
		node.entries = entries
		node.arity = len(children)
		for _, child := range children {
			if err := f.flattenInto(child, depth+1); err != nil {
				return err
			}
		}
	}

	node.numLeaves = len(f.leaves) - startLeaves
	node.numNodes = len(f.traversal) - startNodes + 1
	f.traversal = append(f.traversal, node)
	return nil
}

// flattenMapper traverses a contract-based mapping container. When sortable
// is true the effective ordering policy decides between the container's own
// key order and deterministic sorted-key order.
func (f *flattener) flattenMapper(node *specNode, v any, m container.Mapper, sortable bool, depth int) error {
	keys := m.Keys()
	if sortable && !f.rt.IsOrdered(WithNamespace(f.cfg.namespace), WithInheritGlobal(f.cfg.inheritGlobal)) {
		keysort.SortAny(keys)
	}
	node.typ = reflect.TypeOf(v)
	node.arity = len(keys)
	node.keys = keys
	for _, key := range keys {
		child, ok := m.Load(key)
		if !ok {
			return fmt.Errorf("%w: %T dropped key %v during traversal", ErrStructuralMismatch, v, key)
		}
		if err := f.flattenInto(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Flatten uses the default Runtime. See Runtime.Flatten.
func Flatten(v any, opts ...Option) ([]any, *TreeSpec, error) {
	return Default().Flatten(v, opts...)
}

// Leaves uses the default Runtime. See Runtime.Leaves.
func Leaves(v any, opts ...Option) ([]any, error) {
	return Default().Leaves(v, opts...)
}

// Structure uses the default Runtime. See Runtime.Structure.
func Structure(v any, opts ...Option) (*TreeSpec, error) {
	return Default().Structure(v, opts...)
}
