// Package ode provides the primitives shared by the horizon solver pipeline:
//
//   - [State]: 2-component state vector (h, dh/dθ)
//   - [System]: right-hand side of dH/dθ = F(H, θ)
//   - [Stepper]: explicit single-step integration scheme
//   - [Grid]: uniform angular grid on [0, π/2]
//
// Everything here is synchronous and stateless; a System or Stepper may be
// shared freely across goroutines as long as its implementation holds no
// mutable state.
package ode
