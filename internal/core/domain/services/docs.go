// Package services provides domain services for decisions that involve more
// than one aggregate.
//
// The package includes:
//   - ContainerDispatcher: picks the ship best able to take a free container
package services
