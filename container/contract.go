package container

// Mapper is the minimal key→value contract shared by the mapping containers.
// Keys returns every key currently present; Load and Store use untyped keys
// and values so the engine can drive any implementation. Store reports an
// error when the key or value is not assignable to the implementation's
// concrete types.
type Mapper interface {
	Len() int
	Keys() []any
	Load(key any) (value any, ok bool)
	Store(key, value any) error
}

// OrderedMapper marks a Mapper whose Keys order is contractually the
// insertion order. The marker method carries no behavior; implementing it is
// the type-level order-preservation contract the classifier looks for.
type OrderedMapper interface {
	Mapper
	PreservesOrder()
}

// DefaultMapper is a Mapper carrying a default-value factory, the analogue of
// a defaulting dictionary. DefaultFactory returns the typed factory function
// (or nil when unset); SetDefaultFactory installs one, reporting an error
// when fn is not a compatible factory.
type DefaultMapper interface {
	Mapper
	DefaultFactory() any
	SetDefaultFactory(fn any) error
}

// Dequer is an ordered sequence optimized for both-end insertion and removal.
// MaxLen returns the capacity bound; a non-positive bound means unbounded.
// Append reports an error when v is not assignable to the element type.
type Dequer interface {
	Len() int
	Values() []any
	Append(v any) error
	MaxLen() int
	SetMaxLen(n int)
}

// RecordSequence is implemented by defined array types whose positions carry
// type-level field names. RecordFields returns the names in declaration
// order; it may return more names than the array has positions, in which case
// the trailing names are name-only and not positionally indexed.
//
// Implementations must use a value receiver so that the array type itself
// satisfies the contract.
type RecordSequence interface {
	RecordFields() []string
}
