// Package geom provides the integer 3D vector used by the painter and the
// camera-relative projection that maps it onto the drawing plane.
//
// Vectors are values: every operation returns a new Vector3 and leaves its
// operands untouched.
//
// Projection (fixed):
//
//	zd = z / (z - camera.z) + 1   when z != 0 and a camera is given
//	zd = 1                        otherwise
//	(x, y, z) -> (trunc(x/zd), trunc(y/zd), 0)
//
// Float results are narrowed back to integers by truncation toward zero.
// Infinities saturate to the int32 range and NaN becomes 0, so degenerate
// inputs (normalizing the zero vector, projecting a point level with the
// camera) never panic.
package geom
