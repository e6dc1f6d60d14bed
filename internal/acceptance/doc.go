// Package acceptance runs the fleet's behaviour scenarios in features/ against
// the fully wired application over an in-memory registry.
package acceptance
