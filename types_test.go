package treeflat_test

import (
	"fmt"

	"treeflat"
)

// Fixture types shared across the package tests.

// point is a plain named record.
type point struct {
	X, Y int
}

// wrapped has no exported fields, so it is a leaf unless registered as a
// custom node.
type wrapped struct {
	first, second any
}

func flattenWrapped(v any) ([]any, any, []any, error) {
	w, ok := v.(wrapped)
	if !ok {
		return nil, nil, nil, fmt.Errorf("expected wrapped, got %T", v)
	}
	return []any{w.first, w.second}, nil, nil, nil
}

func unflattenWrapped(_ any, children []any) (any, error) {
	if len(children) != 2 {
		return nil, fmt.Errorf("expected 2 children, got %d", len(children))
	}
	return wrapped{first: children[0], second: children[1]}, nil
}

// timeSpec is a record sequence: a defined array type with field names.
type timeSpec [2]any

func (timeSpec) RecordFields() []string { return []string{"Seconds", "Nanos"} }

// versionInfo carries one name-only field beyond its two positions.
type versionInfo [2]any

func (versionInfo) RecordFields() []string { return []string{"Major", "Minor", "Suffix"} }

func mustRegister(rt *treeflat.Runtime, typ any, opts ...treeflat.Option) {
	err := rt.RegisterNode(typ, flattenWrapped, unflattenWrapped, nil, opts...)
	if err != nil {
		panic(err)
	}
}
