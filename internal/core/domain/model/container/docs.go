// Package container provides the cargo container entities of the fleet domain.
//
// The package includes:
//   - Container: the behavior shared by every variant
//   - LiquidContainer: hazard-aware fill limits on load
//   - GasContainer: keeps residual pressure on unload
//   - RefrigeratedContainer: carries product type and temperature as plain data
//   - HazardNotifier / HazardReporter: the capability implemented by liquid and gas containers
//   - Factory: assigns serial numbers from a shared kernel.SerialCounter
//
// Key business rules:
//   - 0 <= cargo mass <= max capacity holds after every successful load
//   - A rejected load never mutates the container
//   - A container belongs to at most one ship, and only once
package container
