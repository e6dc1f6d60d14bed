// Package kernel provides the shared value objects of the fleet domain model.
//
// The package includes:
//   - UUID: identity of ships, wrapping github.com/google/uuid with validation
//   - ContainerKind: the closed set of container variants (liquid, gas, refrigerated)
//   - SerialNumber: the "KON-<TYPE>-<N>" identity of a container
//   - SerialCounter: the shared, monotonically increasing source of serial sequence values
//
// Value objects are immutable. SerialCounter is the single piece of mutable state
// and is safe for concurrent use.
package kernel
