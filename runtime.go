package treeflat

import (
	"reflect"
	"sync"
)

// MaxDepth is the maximum traversal depth. Flattening a value nested deeper
// fails with ErrDepthExceeded instead of exhausting the stack.
const MaxDepth = 1000

// Runtime owns the shared mutable state of the engine: the type registry and
// the ordering configuration. Classify, Flatten and Unflatten take read
// access; RegisterNode, UnregisterNode and SetOrdered take exclusive write
// access, so concurrent readers observe every mutation atomically.
//
// Most callers use the package-level functions, which share a single default
// Runtime. Independent instances from NewRuntime do not interfere with each
// other or with the default.
type Runtime struct {
	mu sync.RWMutex

	global map[reflect.Type]*Registration
	named  map[namespacedType]*Registration

	orderedGlobal bool
	ordered       map[string]bool
}

type namespacedType struct {
	namespace string
	typ       reflect.Type
}

// NewRuntime returns an empty, isolated Runtime.
func NewRuntime() *Runtime {
	return &Runtime{
		global:  make(map[reflect.Type]*Registration),
		named:   make(map[namespacedType]*Registration),
		ordered: make(map[string]bool),
	}
}

var defaultRuntime = NewRuntime()

// Default returns the shared Runtime backing the package-level functions.
func Default() *Runtime { return defaultRuntime }
