// Package ports defines the interfaces (ports) that connect the scheduler
// loop to infrastructure adapters.
//
// The agent depends only on these interfaces. Infrastructure adapters
// (internal/adapters) provide the concrete implementations, which lets the
// selection logic be exercised end to end against a fake gateway with no
// network access.
package ports
