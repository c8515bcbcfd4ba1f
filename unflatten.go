package treeflat

import (
	"fmt"
	"reflect"

	"treeflat/container"
)

// Unflatten rebuilds a value isomorphic to the one spec was produced from,
// with leaves taking the leaf positions in traversal order. It fails with
// ErrLeafCountMismatch before touching anything when the slice length
// disagrees with the descriptor. Custom kinds are re-resolved in the registry
// at call time, so a registration removed since flatten fails with
// ErrUnknownRegistration.
func (rt *Runtime) Unflatten(spec *TreeSpec, leaves []any) (any, error) {
	if spec == nil || len(spec.traversal) == 0 {
		return nil, fmt.Errorf("%w: empty descriptor", ErrInvalidArgument)
	}
	if len(leaves) != spec.NumLeaves() {
		return nil, fmt.Errorf("%w: descriptor holds %d leaves, got %d",
			ErrLeafCountMismatch, spec.NumLeaves(), len(leaves))
	}

	agenda := make([]any, 0, 4)
	next := 0
	for i := range spec.traversal {
		node := &spec.traversal[i]
		if node.kind == KindLeaf {
			agenda = append(agenda, leaves[next])
			next++
			continue
		}
		if node.arity > len(agenda) {
			return nil, fmt.Errorf("%w: node wants %d children, %d available",
				ErrStructuralMismatch, node.arity, len(agenda))
		}
		// Copied so a custom unflatten function may retain the slice.
		children := append([]any(nil), agenda[len(agenda)-node.arity:]...)
		v, err := rt.makeNode(spec, node, children)
		if err != nil {
			return nil, err
		}
		agenda = append(agenda[:len(agenda)-node.arity], v)
	}
	if len(agenda) != 1 {
		return nil, fmt.Errorf("%w: traversal left %d roots", ErrStructuralMismatch, len(agenda))
	}
	return agenda[0], nil
}

// makeNode combines a node's recorded kind, aux data and reconstructed
// children into a value.
func (rt *Runtime) makeNode(spec *TreeSpec, node *specNode, children []any) (any, error) {
	switch node.kind {
	case KindNone:
		return nil, nil

	case KindFixedSequence, KindRecordSequence:
		if node.typ.Len() != len(children) {
			return nil, fmt.Errorf("%w: %v holds %d positions for %d children",
				ErrStructuralMismatch, node.typ, node.typ.Len(), len(children))
		}
		arr := reflect.New(node.typ).Elem()
		for i, child := range children {
			if err := assign(arr.Index(i), child); err != nil {
				return nil, err
			}
		}
		return arr.Interface(), nil

	case KindList:
		list := reflect.MakeSlice(node.typ, len(children), len(children))
		for i, child := range children {
			if err := assign(list.Index(i), child); err != nil {
				return nil, err
			}
		}
		return list.Interface(), nil

	case KindNamedRecord:
		fields := exportedFields(node.typ)
		if len(fields) != len(children) {
			return nil, fmt.Errorf("%w: %v declares %d fields for %d children",
				ErrStructuralMismatch, node.typ, len(fields), len(children))
		}
		record := reflect.New(node.typ).Elem()
		for i, child := range children {
			if err := assign(record.FieldByIndex(fields[i].Index), child); err != nil {
				return nil, err
			}
		}
		return record.Interface(), nil

	case KindMapping:
		if node.typ.Kind() == reflect.Map {
			return rt.makeGoMap(node, children)
		}
		return rt.makeMapper(node, children)

	case KindOrderedMapping, KindDefaultMapping:
		return rt.makeMapper(node, children)

	case KindDeque:
		d, ok := newContainer(node.typ).(container.Dequer)
		if !ok {
			return nil, fmt.Errorf("%w: %v is not a deque container", ErrStructuralMismatch, node.typ)
		}
		d.SetMaxLen(node.maxLen)
		for _, child := range children {
			if err := d.Append(child); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrStructuralMismatch, err)
			}
		}
		return d, nil

	case KindCustom:
		reg, ok := rt.Lookup(node.typ, spec.namespace, true)
		if !ok || reg.Kind != KindCustom {
			return nil, fmt.Errorf("%w: %v vanished from namespace %q since flatten",
				ErrUnknownRegistration, node.typ, spec.namespace)
		}
		v, err := reg.Unflatten(node.aux, children)
		if err != nil {
			return nil, fmt.Errorf("unflatten %v: %w", node.typ, err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: cannot reconstruct node kind %v", ErrStructuralMismatch, node.kind)
}

func (rt *Runtime) makeGoMap(node *specNode, children []any) (any, error) {
	if len(node.keys) != len(children) {
		return nil, fmt.Errorf("%w: %d keys recorded for %d children",
			ErrStructuralMismatch, len(node.keys), len(children))
	}
	m := reflect.MakeMapWithSize(node.typ, len(children))
	for i, child := range children {
		key := reflect.New(node.typ.Key()).Elem()
		if err := assign(key, node.keys[i]); err != nil {
			return nil, err
		}
		value := reflect.New(node.typ.Elem()).Elem()
		if err := assign(value, child); err != nil {
			return nil, err
		}
		m.SetMapIndex(key, value)
	}
	return m.Interface(), nil
}

// makeMapper rebuilds a contract-based mapping container, re-inserting the
// children under the exact key sequence recorded at flatten time, independent
// of the current ordering policy.
func (rt *Runtime) makeMapper(node *specNode, children []any) (any, error) {
	if len(node.keys) != len(children) {
		return nil, fmt.Errorf("%w: %d keys recorded for %d children",
			ErrStructuralMismatch, len(node.keys), len(children))
	}
	m, ok := newContainer(node.typ).(container.Mapper)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not a mapping container", ErrStructuralMismatch, node.typ)
	}
	for i, child := range children {
		if err := m.Store(node.keys[i], child); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStructuralMismatch, err)
		}
	}
	if node.kind == KindDefaultMapping {
		dm, ok := m.(container.DefaultMapper)
		if !ok {
			return nil, fmt.Errorf("%w: %v carries a default factory but is not a default mapping",
				ErrStructuralMismatch, node.typ)
		}
		if err := dm.SetDefaultFactory(node.aux); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStructuralMismatch, err)
		}
	}
	return m, nil
}

// newContainer returns a fresh zero value of t, as a pointer when t is a
// pointer type so that the contract methods' pointer receivers are satisfied.
func newContainer(t reflect.Type) any {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Elem().Interface()
}

// assign sets child into dst, converting a nil child to dst's zero value when
// dst can hold one. Replacement leaves must be assignable to the container's
// element type; containers over any accept arbitrary replacements.
func assign(dst reflect.Value, child any) error {
	if child == nil {
		switch dst.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		default:
			return fmt.Errorf("%w: nil is not assignable to %v", ErrStructuralMismatch, dst.Type())
		}
	}
	cv := reflect.ValueOf(child)
	if !cv.Type().AssignableTo(dst.Type()) {
		return fmt.Errorf("%w: %T is not assignable to %v", ErrStructuralMismatch, child, dst.Type())
	}
	dst.Set(cv)
	return nil
}

// Unflatten resolves custom kinds in the default Runtime. See
// Runtime.Unflatten.
func Unflatten(spec *TreeSpec, leaves []any) (any, error) {
	return Default().Unflatten(spec, leaves)
}
