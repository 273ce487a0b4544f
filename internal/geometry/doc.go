// Package geometry evaluates the Brill-Lindquist conformal factor and its
// partial derivatives for a set of point sources on the symmetry axis.
//
// Sources live at non-negative axial positions; reflection symmetry about the
// equatorial plane is realized by adding a mirror image at -z for every
// source with z > 0, so callers never pass negative positions.
package geometry
