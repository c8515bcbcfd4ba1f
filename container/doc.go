// Package container provides the container primitives and contracts the
// classifier consumes through its extension points.
//
// The engine itself never names a concrete container type. It detects the
// mapping, deque and record-sequence kinds through the interfaces declared
// here, so host code may substitute its own implementations:
//   - Mapper: minimal key→value contract (classified as a plain mapping)
//   - OrderedMapper: a Mapper whose key order is contractually insertion order
//   - DefaultMapper: a Mapper carrying a default-value factory
//   - Dequer: an ordered sequence with both-end access and an optional bound
//   - RecordSequence: a defined fixed-layout sequence with named fields
//
// OrderedMap, DefaultMap and Deque are the reference implementations. Their
// contract methods use pointer receivers, so only the pointer forms are
// classified as containers; a container passed by value is an opaque leaf.
package container
