// Package ship holds the Ship aggregate: a vessel with a speed rating and capacity
// limits that owns an ordered list of containers.
//
// A ship accepts a container only if it supports both limits:
//   - a count limit: it carries at most maxContainerCount containers
//   - a weight limit: the total gross weight may never exceed maxWeight
//
// A load that would break either limit leaves the ship and the container unchanged.
package ship
