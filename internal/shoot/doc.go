// Package shoot closes the boundary-value problem: it adjusts the trial
// initial radius h0 with a secant iteration until the far boundary residual
// dh/dθ(π/2) vanishes, and provides a coarse residual scan for picking the
// two secant seeds.
package shoot
