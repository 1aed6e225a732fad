/*
Package distance turns a sampled level set field into a signed distance
function on the same grid.

The pipeline has two stages. Near the zero set of u, exact distances are
computed cell by cell from the piecewise linear interpolant
(levelset.InitDist2D / InitDist3D). The remaining nodes are then filled by
fast sweeping the eikonal equation outward from those exact values
(eikonal.FastSweep2D / FastSweep3D). A final pass restores the sign of u and
scales from grid units to physical units.

Both entry points are pure transforms over caller owned buffers: u is read
only, d is overwritten in place, and no state survives the call. A field with
no sign change anywhere has no zero set; the result is then the saturated
marker distance (math.MaxFloat64 scaled by h) carrying the field's uniform
sign, meaning "no interface in range".
*/
package distance

import (
	"github.com/notargets/gosweep/eikonal"
	"github.com/notargets/gosweep/levelset"
)

// SignedDistance2D overwrites d with the signed distance to the zero set of
// u, sampled on an nx by ny grid (node s = j*nx + i) with uniform spacing h.
// d[s] is negative exactly where u[s] is negative. Panics when the buffer
// lengths disagree with nx*ny.
func SignedDistance2D(d, u []float64, nx, ny int, h float64) {
	levelset.InitDist2D(d, u, nx, ny)
	eikonal.FastSweep2D(d, nx, ny)
	applySign(d, u, h)
}

// SignedDistance3D is SignedDistance2D for an nx by ny by nz grid with node
// s = i*ny*nz + j*nz + k.
func SignedDistance3D(d, u []float64, nx, ny, nz int, h float64) {
	levelset.InitDist3D(d, u, nx, ny, nz)
	eikonal.FastSweep3D(d, nx, ny, nz)
	applySign(d, u, h)
}

func applySign(d, u []float64, h float64) {
	for i := range d {
		if u[i] < 0 {
			d[i] = -d[i] * h
		} else {
			d[i] *= h
		}
	}
}
