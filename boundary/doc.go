// Package boundary contains the error-containment model and its fallback views.
//
// Allowed here:
// - the boundary Model (panic recovery, Normal/Failed state, reset/reload)
// - message contracts and key bindings for the recovery actions
// - fallback view contracts and the default fallback presentation
//
// Not allowed here:
// - diagnostic sinks (see package report)
// - low-level render primitives (see package widgets)
package boundary
