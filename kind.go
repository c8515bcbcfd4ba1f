package treeflat

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the structural classification assigned to a node during traversal.
// The ordinal values are a stable wire contract for persisted descriptors and
// must never be reordered.
type Kind int

const (
	// KindCustom is a type registered with RegisterNode.
	KindCustom Kind = iota
	// KindLeaf is an opaque value the engine does not decompose.
	KindLeaf
	// KindNone is the absence marker, the untyped nil interface value.
	KindNone
	// KindFixedSequence is a fixed-arity positional sequence (a Go array).
	KindFixedSequence
	// KindList is a variable-length ordered sequence (a Go slice).
	KindList
	// KindMapping is a unique-key key→value store (a Go map, or a plain
	// container.Mapper).
	KindMapping
	// KindNamedRecord is a fixed-arity sequence whose positions carry
	// type-level field names (a Go struct with exported fields).
	KindNamedRecord
	// KindOrderedMapping is a mapping contractually preserving insertion
	// order (container.OrderedMapper).
	KindOrderedMapping
	// KindDefaultMapping is a mapping carrying a default-value factory
	// (container.DefaultMapper).
	KindDefaultMapping
	// KindDeque is an ordered sequence with both-end access
	// (container.Dequer).
	KindDeque
	// KindRecordSequence is a defined fixed-layout sequence with named-field
	// metadata (container.RecordSequence over an array type).
	KindRecordSequence

	// KindTotal is the total number of kinds defined.
	KindTotal = int(iota)
)

// IsSequence reports whether k is a positional sequence kind.
func (k Kind) IsSequence() bool {
	switch k {
	default:
		return false
	case KindFixedSequence, KindList, KindDeque:
		return true
	}
}

// IsMapping reports whether k is a mapping-family kind.
func (k Kind) IsMapping() bool {
	switch k {
	default:
		return false
	case KindMapping, KindOrderedMapping, KindDefaultMapping:
		return true
	}
}

// IsRecord reports whether k carries type-level field names.
func (k Kind) IsRecord() bool {
	switch k {
	default:
		return false
	case KindNamedRecord, KindRecordSequence:
		return true
	}
}
