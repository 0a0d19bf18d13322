// Package warp provides the image-resampling primitives consumed by the
// geometric transforms: projective and affine inverse-mapped warps, a
// piecewise mesh warp, and thin wrappers around rotation, cropping and
// resizing.
//
// All warps work by inverse mapping: for every output pixel the coefficient
// vector (or mesh cell) yields a real-valued source position, which is then
// sampled with the requested Resample mode. Source positions outside the
// input bounds produce fully transparent pixels.
//
// # Purity
//
// No primitive mutates its input. The source image is converted once with
// bild's clone.AsRGBA and only the freshly allocated output is written to.
//
// # Concurrency
//
// Rendering is row-parallel (or cell-parallel for mesh warps) via
// bild/parallel. The primitives share no state between calls and are safe to
// invoke concurrently on independent images.
package warp
