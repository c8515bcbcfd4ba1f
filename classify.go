package treeflat

import "reflect"

// Classify determines the structural kind of v, consulting the registry for
// custom registrations. Evaluation order: the leaf predicate short-circuits
// everything; then the nil absence marker; then an exact-type registry lookup
// in the call's namespace (falling back to the global namespace unless
// WithInheritGlobal(false)); then structural detection; anything left is a
// leaf. For KindCustom the matching Registration is returned alongside.
func (rt *Runtime) Classify(v any, opts ...Option) (Kind, *Registration) {
	cfg := resolveOptions(opts)
	return rt.classify(v, cfg)
}

func (rt *Runtime) classify(v any, cfg config) (Kind, *Registration) {
	if cfg.leafPredicate != nil && cfg.leafPredicate(v) {
		return KindLeaf, nil
	}
	if v == nil {
		if cfg.noneIsLeaf {
			return KindLeaf, nil
		}
		return KindNone, nil
	}

	t := reflect.TypeOf(v)
	if reg, ok := rt.Lookup(t, cfg.namespace, cfg.inheritGlobal); ok {
		return reg.Kind, reg
	}

	// A typed-nil pointer has no contents to traverse. It must not reach
	// contract-interface dispatch, where a container method would dereference
	// its nil receiver.
	if t.Kind() == reflect.Pointer && reflect.ValueOf(v).IsNil() {
		return KindLeaf, nil
	}

	return structuralKind(t), nil
}

// structuralKind detects the built-in kinds. The container contracts are
// checked before the raw reflect kinds: the reference containers are structs
// under the hood and must not fall through to named-record detection.
func structuralKind(t reflect.Type) Kind {
	if t.Kind() == reflect.Array && t.Implements(recordSeqType) {
		return KindRecordSequence
	}
	switch {
	case t.Implements(defaultMapType):
		return KindDefaultMapping
	case t.Implements(orderedMapType):
		return KindOrderedMapping
	case t.Implements(mapperType):
		return KindMapping
	case t.Implements(dequerType):
		return KindDeque
	}

	switch t.Kind() {
	case reflect.Array:
		return KindFixedSequence
	case reflect.Slice:
		return KindList
	case reflect.Map:
		return KindMapping
	case reflect.Struct:
		if len(exportedFields(t)) > 0 {
			return KindNamedRecord
		}
	}
	return KindLeaf
}

// IsLeaf reports whether v is a leaf under the call's options: accepted by
// the leaf predicate, the nil marker under WithNoneIsLeaf(true), or any value
// no node kind claims.
func (rt *Runtime) IsLeaf(v any, opts ...Option) bool {
	kind, _ := rt.Classify(v, opts...)
	return kind == KindLeaf
}

// Classify consults the default Runtime. See Runtime.Classify.
func Classify(v any, opts ...Option) (Kind, *Registration) {
	return Default().Classify(v, opts...)
}

// IsLeaf consults the default Runtime. See Runtime.IsLeaf.
func IsLeaf(v any, opts ...Option) bool { return Default().IsLeaf(v, opts...) }
