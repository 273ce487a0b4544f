// Package horizon evaluates the apparent-horizon equation for axisymmetric,
// time-symmetric Brill-Lindquist data and integrates trial horizon curves
// h(θ) across [0, π/2].
//
// The governing ODE comes from the vanishing of the outgoing null expansion;
// its right-hand side is [ExpansionRHS]. [Integrator] advances the
// 2-component state (h, dh/dθ) over a uniform angular grid, and
// [Integrator.Residual] exposes the boundary mismatch dh/dθ(π/2) that the
// shooting solver drives to zero.
package horizon
