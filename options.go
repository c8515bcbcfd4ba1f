package treeflat

// LeafPredicate is called at each traversal step; returning true stops the
// traversal and treats the whole subtree as a leaf.
type LeafPredicate func(v any) bool

// Option configures a single classify, flatten, or registry call.
type Option func(*config)

type config struct {
	namespace     string
	leafPredicate LeafPredicate
	noneIsLeaf    bool
	inheritGlobal bool
}

func resolveOptions(opts []Option) config {
	cfg := config{inheritGlobal: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithNamespace scopes the call to the given registry namespace. The empty
// string is the global namespace and the default.
func WithNamespace(namespace string) Option {
	return func(cfg *config) { cfg.namespace = namespace }
}

// WithLeafPredicate short-circuits classification: any value the predicate
// accepts is a leaf, before the registry or structural detection is consulted.
func WithLeafPredicate(pred LeafPredicate) Option {
	return func(cfg *config) { cfg.leafPredicate = pred }
}

// WithNoneIsLeaf controls the treatment of the untyped nil absence marker.
// When true, nil is a leaf and appears in the leaf slice; when false (the
// default), nil is an arity-0 node recorded only in the descriptor.
func WithNoneIsLeaf(noneIsLeaf bool) Option {
	return func(cfg *config) { cfg.noneIsLeaf = noneIsLeaf }
}

// WithInheritGlobal controls whether a namespaced lookup falls back to the
// global namespace on a miss. It applies to registry lookups and to IsOrdered.
// The default is true.
func WithInheritGlobal(inherit bool) Option {
	return func(cfg *config) { cfg.inheritGlobal = inherit }
}
