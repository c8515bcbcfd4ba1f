package treeflat

import (
	"fmt"
	"reflect"
	"strings"
)

// TreeSpec is the structural descriptor produced by Flatten: a flat
// depth-first post-order traversal of the tree's nodes, independent of any
// particular leaf slice. A TreeSpec may be reused across many Unflatten calls
// against different leaf slices.
type TreeSpec struct {
	traversal  []specNode
	noneIsLeaf bool
	namespace  string
}

// specNode is one traversal step. Leaf nodes contribute exactly one slot to
// the flat leaf slice; internal nodes record everything reconstruction needs
// besides the children themselves.
type specNode struct {
	kind    Kind
	arity   int
	typ     reflect.Type // node type identity; nil for leaf and none nodes
	keys    []any        // mapping family: the exact key sequence used
	aux     any          // custom aux data, or the default-mapping factory
	entries []any        // custom path entries; nil means positional
	maxLen  int          // deque bound

	numLeaves int
	numNodes  int
}

func (s *TreeSpec) root() *specNode {
	return &s.traversal[len(s.traversal)-1]
}

// NumLeaves returns the number of leaf slots in the descriptor.
func (s *TreeSpec) NumLeaves() int {
	if len(s.traversal) == 0 {
		return 0
	}
	return s.root().numLeaves
}

// NumNodes returns the total number of nodes, leaves included.
func (s *TreeSpec) NumNodes() int { return len(s.traversal) }

// NumChildren returns the arity of the root node.
func (s *TreeSpec) NumChildren() int {
	if len(s.traversal) == 0 {
		return 0
	}
	return s.root().arity
}

// Kind returns the root node's kind.
func (s *TreeSpec) Kind() Kind {
	if len(s.traversal) == 0 {
		return KindLeaf
	}
	return s.root().kind
}

// Type returns the root node's type identity; nil for leaf and none roots.
func (s *TreeSpec) Type() reflect.Type {
	if len(s.traversal) == 0 {
		return nil
	}
	return s.root().typ
}

// Namespace returns the registry namespace recorded at flatten time. It is
// empty unless the traversal met a custom node.
func (s *TreeSpec) Namespace() string { return s.namespace }

// NoneIsLeaf reports whether the descriptor was produced with the nil marker
// treated as a leaf.
func (s *TreeSpec) NoneIsLeaf() bool { return s.noneIsLeaf }

// IsLeaf reports whether the descriptor describes a single leaf.
func (s *TreeSpec) IsLeaf() bool {
	return len(s.traversal) == 1 && s.traversal[0].kind == KindLeaf
}

// Equal reports whether s and other describe the same structure: same kind,
// arity, type identity and aux data at every node, and the same nil-marker
// and namespace settings.
func (s *TreeSpec) Equal(other *TreeSpec) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.noneIsLeaf != other.noneIsLeaf || s.namespace != other.namespace {
		return false
	}
	if len(s.traversal) != len(other.traversal) {
		return false
	}
	for i := range s.traversal {
		a, b := &s.traversal[i], &other.traversal[i]
		if a.kind != b.kind || a.arity != b.arity || a.typ != b.typ || a.maxLen != b.maxLen {
			return false
		}
		if !reflect.DeepEqual(a.keys, b.keys) || !reflect.DeepEqual(a.entries, b.entries) {
			return false
		}
		if !auxEqual(a.aux, b.aux) {
			return false
		}
	}
	return true
}

// auxEqual compares aux data, treating functions (default-map factories,
// callables smuggled through custom aux) as equal when they share an entry
// point, since DeepEqual never equates non-nil funcs.
func auxEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() == reflect.Func && bv.Kind() == reflect.Func {
		return av.Pointer() == bv.Pointer()
	}
	return reflect.DeepEqual(a, b)
}

// childIndexes returns the traversal indexes of the direct children of the
// node at index i, in child order. In a post-order traversal the children of
// node i occupy the positions right before it, each subtree spanning
// numNodes entries.
func (s *TreeSpec) childIndexes(i int) []int {
	node := &s.traversal[i]
	idx := make([]int, node.arity)
	j := i - 1
	for c := node.arity - 1; c >= 0; c-- {
		idx[c] = j
		j -= s.traversal[j].numNodes
	}
	return idx
}

// String renders the structure compactly: leaves as *, sequences and
// mappings in literal-like syntax, records by type name with field names.
func (s *TreeSpec) String() string {
	var b strings.Builder
	b.WriteString("TreeSpec(")
	if len(s.traversal) > 0 {
		s.writeNode(&b, len(s.traversal)-1)
	}
	if s.noneIsLeaf {
		b.WriteString(", NoneIsLeaf")
	}
	if s.namespace != "" {
		fmt.Fprintf(&b, ", namespace=%q", s.namespace)
	}
	b.WriteString(")")
	return b.String()
}

func (s *TreeSpec) writeNode(b *strings.Builder, i int) {
	node := &s.traversal[i]
	children := s.childIndexes(i)

	writeChildren := func(open, close string) {
		b.WriteString(open)
		for c, ci := range children {
			if c > 0 {
				b.WriteString(", ")
			}
			s.writeNode(b, ci)
		}
		b.WriteString(close)
	}
	writeKeyed := func(open, close string) {
		b.WriteString(open)
		for c, ci := range children {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%v: ", node.keys[c])
			s.writeNode(b, ci)
		}
		b.WriteString(close)
	}

	switch node.kind {
	case KindLeaf:
		b.WriteString("*")
	case KindNone:
		b.WriteString("nil")
	case KindFixedSequence:
		writeChildren("(", ")")
	case KindList:
		writeChildren("[", "]")
	case KindMapping:
		writeKeyed("{", "}")
	case KindOrderedMapping:
		writeKeyed("OrderedMap({", "})")
	case KindDefaultMapping:
		writeKeyed("DefaultMap({", "})")
	case KindDeque:
		if node.maxLen > 0 {
			writeChildren("Deque([", fmt.Sprintf("], maxlen=%d)", node.maxLen))
		} else {
			writeChildren("Deque([", "])")
		}
	case KindNamedRecord, KindRecordSequence:
		b.WriteString(node.typ.Name())
		b.WriteString("(")
		names := recordNames(node)
		for c, ci := range children {
			if c > 0 {
				b.WriteString(", ")
			}
			if c < len(names) {
				b.WriteString(names[c])
				b.WriteString("=")
			}
			s.writeNode(b, ci)
		}
		b.WriteString(")")
	case KindCustom:
		fmt.Fprintf(b, "Custom[%v]", node.typ)
		writeChildren("(", ")")
	}
}

func recordNames(node *specNode) []string {
	var names []string
	switch node.kind {
	case KindNamedRecord:
		names, _ = NamedRecordFields(node.typ)
	case KindRecordSequence:
		names, _ = RecordSequenceFields(node.typ)
	}
	return names
}
