package levelset

import (
	"math"
)

/*
Closed form distance to the zero level set of a linear function on a single
simplex, in grid units.

The 2D simplex is an isosceles right triangle with unit legs: vertex 0 holds
the right angle, vertices 1 and 2 sit at the ends of the legs, so the
hypotenuse 1-2 has length Sqrt2. The 3D simplex is a tetrahedron cut from a
unit cube so that consecutive vertices differ by a single axis step.

Inside a simplex the field is the linear interpolant of the vertex values, the
gradient is constant, and the zero set is a line segment (2D) or a plane patch
(3D). The distance from each vertex to that zero set has a closed form, which
is what the routines below return.
*/

// TriangleDist returns the unsigned distances from the three vertices of the
// triangle to the zero set of the linear interpolant of u. ok is false when
// all three values share one strict sign and the zero set misses the triangle.
//
// The magnitude of the result does not depend on the orientation of u: the
// values are sign normalized so that u[0] >= 0 before the case analysis. Sign
// recovery is the caller's business.
func TriangleDist(u [3]float64) (r [3]float64, ok bool) {
	if u[0] < 0 {
		u[0], u[1], u[2] = -u[0], -u[1], -u[2]
	}
	var (
		gx    = u[1] - u[0]
		gy    = u[2] - u[0]
		gNorm = math.Sqrt(gx*gx + gy*gy)
	)
	switch {
	case u[1] >= 0 && u[2] >= 0:
		// No strict sign change left. Only vertices sitting exactly on the
		// zero set produce distances, enumerated to avoid dividing by a
		// vanishing gradient.
		return zeroPattern(u)
	case u[1] >= 0:
		// u[2] < 0: the zero segment crosses leg 0-2 and the hypotenuse.
		var (
			i02 = u[0] / (u[0] - u[2])
			i12 = math.Sqrt2 * u[1] / (u[1] - u[2])
		)
		switch {
		case gx <= 0:
			// Gradient points away from vertex 0 along x: feet of vertices 1
			// and 2 fall off the segment, vertex 0 sees the full line.
			r = [3]float64{u[0] / gNorm, i12, 1 - i02}
		case gx > -gy:
			r = [3]float64{i02, u[1] / gNorm, math.Sqrt2 - i12}
		default:
			r = [3]float64{i02, i12, -u[2] / gNorm}
		}
		return r, true
	case u[2] >= 0:
		// u[1] < 0: the zero segment crosses leg 0-1 and the hypotenuse.
		var (
			i01 = u[0] / (u[0] - u[1])
			i12 = math.Sqrt2 * u[1] / (u[1] - u[2])
		)
		switch {
		case gy <= 0:
			r = [3]float64{u[0] / gNorm, 1 - i01, math.Sqrt2 - i12}
		case -gx > gy:
			r = [3]float64{i01, -u[1] / gNorm, math.Sqrt2 - i12}
		default:
			r = [3]float64{i01, i12, u[2] / gNorm}
		}
		return r, true
	default:
		// u[1] < 0 and u[2] < 0: both legs cross, vertex 0 is isolated. The
		// perpendicular feet of vertices 1 and 2 always land outside the
		// segment here, so they take their leg crossings.
		r = [3]float64{u[0] / gNorm, u[1] / (u[1] - u[0]), u[2] / (u[2] - u[0])}
		return r, true
	}
}

// zeroPattern enumerates the degenerate triangles where, after sign
// normalization, every value is non negative. A crossing exists only through
// vertices that are exactly zero; the distances from the remaining vertices
// are fixed by the triangle geometry alone.
func zeroPattern(u [3]float64) (r [3]float64, ok bool) {
	var m uint8
	if u[0] == 0 {
		m |= 1
	}
	if u[1] == 0 {
		m |= 2
	}
	if u[2] == 0 {
		m |= 4
	}
	switch m {
	case 7: // all three on the zero set
		return [3]float64{0, 0, 0}, true
	case 6: // zero set is the hypotenuse
		return [3]float64{math.Sqrt(0.5), 0, 0}, true
	case 5: // zero set is leg 0-2
		return [3]float64{0, 1, 0}, true
	case 3: // zero set is leg 0-1
		return [3]float64{0, 0, 1}, true
	case 1: // single zero at the right angle vertex
		return [3]float64{0, 1, 1}, true
	case 2:
		return [3]float64{1, 0, math.Sqrt2}, true
	case 4:
		return [3]float64{1, math.Sqrt2, 0}, true
	}
	// strictly positive everywhere
	return r, false
}

// tiny separates exact zeros from the negative side before counting signs, so
// that a vertex sitting on the interface lands firmly in the positive class.
const tiny = 1e-15

// TetrahedronDist returns the unsigned distances from the four vertices of
// the tetrahedron to the zero set of the linear interpolant of u. ok is false
// when all four values share one sign.
//
// The vertices must be ordered along the tetrahedron's path through the cube:
// consecutive vertices differ by exactly one axis step, so the squared
// gradient norm is the sum of squared consecutive differences.
func TetrahedronDist(u [4]float64) (r [4]float64, ok bool) {
	var nPos int
	for m := range u {
		if u[m] >= 0 {
			u[m] += tiny
			nPos++
		}
	}
	if nPos == 0 || nPos == 4 {
		return r, false
	}
	var g2 float64
	for m := 0; m < 3; m++ {
		diff := u[m+1] - u[m]
		g2 += diff * diff
	}
	gNormInv := 1 / math.Sqrt(g2)
	for m := range u {
		r[m] = math.Abs(u[m]) * gNormInv
	}
	return r, true
}
