package treeflat

// IsOrdered reports whether mapping-like nodes flatten in insertion order for
// the namespace given by WithNamespace. A per-namespace override wins; absent
// one, the global default applies unless WithInheritGlobal(false) is set.
// The zero configuration is sorted-key order everywhere.
func (rt *Runtime) IsOrdered(opts ...Option) bool {
	cfg := resolveOptions(opts)

	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return rt.isOrderedLocked(cfg.namespace, cfg.inheritGlobal)
}

// isOrderedLocked requires rt.mu held for reading.
func (rt *Runtime) isOrderedLocked(namespace string, inherit bool) bool {
	if namespace == "" {
		return rt.orderedGlobal
	}
	if mode, ok := rt.ordered[namespace]; ok {
		return mode
	}
	return inherit && rt.orderedGlobal
}

// SetOrdered stores an insertion-order override for the namespace given by
// WithNamespace; with no namespace it changes the global default. The change
// is effective immediately but never alters already-produced TreeSpecs, which
// embed the concrete key order they used.
func (rt *Runtime) SetOrdered(mode bool, opts ...Option) {
	cfg := resolveOptions(opts)

	rt.mu.Lock()
	defer rt.mu.Unlock()
	if cfg.namespace == "" {
		rt.orderedGlobal = mode
		return
	}
	rt.ordered[cfg.namespace] = mode
}

// ClearOrdered removes the per-namespace override so the namespace falls back
// to the global default.
func (rt *Runtime) ClearOrdered(opts ...Option) {
	cfg := resolveOptions(opts)

	rt.mu.Lock()
	defer rt.mu.Unlock()
	delete(rt.ordered, cfg.namespace)
}

// IsOrdered queries the default Runtime. See Runtime.IsOrdered.
func IsOrdered(opts ...Option) bool { return Default().IsOrdered(opts...) }

// SetOrdered configures the default Runtime. See Runtime.SetOrdered.
func SetOrdered(mode bool, opts ...Option) { Default().SetOrdered(mode, opts...) }

// ClearOrdered configures the default Runtime. See Runtime.ClearOrdered.
func ClearOrdered(opts ...Option) { Default().ClearOrdered(opts...) }
