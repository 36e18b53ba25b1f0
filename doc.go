// Package linalg is an exact-arithmetic playground for small-dimension
// linear algebra: vectors whose coordinates are decimals, not floats.
//
// 🚀 What is inside?
//
//	vector/ — immutable decimal Vector: arithmetic, magnitude and
//	          normalization, angles, parallel/orthogonal tests,
//	          projections, cross product and parallelogram/triangle areas,
//	          plus gonum interop for float64 pipelines.
//
// ✨ Why decimals?
//
//   - Chained additions and scalings stay exact (8.218 + -1.129 is 7.089,
//     not 7.089000000000001).
//   - Precision is an explicit per-vector option, never a global setting.
//   - Failures are typed sentinel errors matched with errors.Is.
//
// Quick ASCII example:
//
//	    w
//	    ^   v
//	    |  /
//	    | /
//	    o────> proj_w(v)
//
// See examples/vector_geometry.go for a runnable walkthrough.
//
//	go get github.com/katalvlaran/linalg/vector
package linalg
