// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (card chrome, height clamping,
//   ANSI-aware padding)
//
// Not allowed here:
// - key handling, boundary state transitions, or disclosure policy
package widgets
