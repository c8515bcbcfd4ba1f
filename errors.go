package treeflat

import "errors"

var (
	// ErrInvalidArgument reports a nil type, nil function, or otherwise
	// malformed argument to a registration or traversal call.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrReservedKind reports an attempt to register a type the structural
	// classifier already claims as a built-in kind.
	ErrReservedKind = errors.New("type is reserved by a built-in kind")

	// ErrDuplicateRegistration reports a register call on an occupied
	// (namespace, type) slot.
	ErrDuplicateRegistration = errors.New("type is already registered")

	// ErrUnknownRegistration reports an unregister of an absent entry, or an
	// unflatten resolving a custom kind whose registration vanished.
	ErrUnknownRegistration = errors.New("type is not registered")

	// ErrLeafCountMismatch reports an unflatten leaf slice whose length
	// disagrees with the descriptor's leaf count.
	ErrLeafCountMismatch = errors.New("leaf count does not match descriptor")

	// ErrStructuralMismatch reports node data incompatible with the kind it
	// is tagged with, or a replacement leaf incompatible with its container.
	ErrStructuralMismatch = errors.New("node data mismatches node structure")

	// ErrDepthExceeded reports an input nested deeper than MaxDepth.
	ErrDepthExceeded = errors.New("maximum traversal depth exceeded")
)
