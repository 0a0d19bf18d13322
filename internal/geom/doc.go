// Package geom provides the coordinate types and coefficient solvers used by
// the geometric transforms.
//
// All coordinates are real-valued image-space positions where (0,0) is the
// top-left corner, X increases rightward, and Y increases downward.
// Quadrilaterals are ordered {top-left, top-right, bottom-right, bottom-left};
// this order must match between corresponding source and destination quads
// when solving for mapping coefficients.
//
// Coefficient vectors follow the resampler convention: they map destination
// (output) pixel coordinates back to source coordinates, so a renderer can
// iterate over output pixels and sample the input.
//
// All functions are stateless and safe for concurrent use.
package geom
