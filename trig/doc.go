// Package trig implements sine approximation by range reduction and
// truncated Taylor evaluation.
//
// An arbitrary finite angle is first reduced into [-π/4, π/4] by repeated
// π/2 steps (Reduce), which also yields the sign and series-selector flags
// needed to reconstruct the sine of the original angle. On the reduced
// interval, fixed-degree polynomials (SinPoly, CosPoly) approximate the
// two series to better than 1e-9 absolute error. Sin composes the two
// steps into a full-range approximation.
//
// The batched, data-parallel counterparts of these evaluators live in the
// trig/sin4 subpackage.
package trig
