// Package ports defines the contracts between the fleet domain and infrastructure:
// repositories for ships and free containers, the unit of work that binds them
// to one transaction, and the publisher hazard notices are delivered through.
package ports
