package eikonal

import (
	"fmt"
	"math"
)

/*
Fast sweeping solution of the eikonal equation

	|grad d| = 1

on a regular grid, after Zhao (2005). The grid arrives partially solved: nodes
near the interface already hold exact distances, every other node holds the in
band marker math.MaxFloat64. Those preset nodes act as fixed boundary values
and are never updated.

Each sweep visits the nodes in one of the 2^D monotone orderings and relaxes
the Godunov upwind discretization in place, Gauss-Seidel style, so values
computed earlier in a sweep feed the nodes visited later in the same sweep.
Per the causality argument, each ordering finalizes the characteristics
pointing into one quadrant (octant), so one pass over all orderings solves an
obstacle free domain; inputs outside that argument need more passes, so the
pass set repeats until the field stops changing.

Updates only ever lower a node, which makes the iteration monotone and the
repeat loop finite. All distances are in grid units; physical scaling is the
caller's business.
*/

// tol bounds the largest single node decrease a full ordering set may make
// and still count as converged, in grid units.
const tol = 1e-12

// FastSweep2D fills in every unknown entry of d with the distance, in grid
// units, to the zero set implied by the known entries. Nodes are stored at
// s = j*nx + i; entries below math.MaxFloat64 are treated as exact boundary
// values and left untouched. Panics when len(d) disagrees with nx*ny.
func FastSweep2D(d []float64, nx, ny int) {
	if nx*ny != len(d) {
		panic(fmt.Errorf("mismatch in dimensions: nx,ny = %v,%v, len(d) = %v\n", nx, ny, len(d)))
	}
	frozen := make([]bool, len(d))
	for i, v := range d {
		frozen[i] = v != math.MaxFloat64
	}
	for {
		if sweep2D(d, frozen, nx, ny) <= tol {
			break
		}
	}
}

// sweep2D runs the four monotone orderings once and reports the largest
// single node decrease.
func sweep2D(d []float64, frozen []bool, nx, ny int) (maxChange float64) {
	for ord := 0; ord < 4; ord++ {
		for q := 0; q < ny; q++ {
			j := q
			if ord&2 != 0 {
				j = ny - 1 - q
			}
			for p := 0; p < nx; p++ {
				i := p
				if ord&1 != 0 {
					i = nx - 1 - p
				}
				s := j*nx + i
				if frozen[s] {
					continue
				}
				a := math.MaxFloat64
				if i > 0 {
					a = d[s-1]
				}
				if i < nx-1 && d[s+1] < a {
					a = d[s+1]
				}
				b := math.MaxFloat64
				if j > 0 {
					b = d[s-nx]
				}
				if j < ny-1 && d[s+nx] < b {
					b = d[s+nx]
				}
				if x := update2(a, b); x < d[s] {
					if d[s]-x > maxChange {
						maxChange = d[s] - x
					}
					d[s] = x
				}
			}
		}
	}
	return
}

// FastSweep3D is the three dimensional FastSweep2D over the eight orderings,
// for nodes stored at s = i*ny*nz + j*nz + k.
func FastSweep3D(d []float64, nx, ny, nz int) {
	if nx*ny*nz != len(d) {
		panic(fmt.Errorf("mismatch in dimensions: nx,ny,nz = %v,%v,%v, len(d) = %v\n", nx, ny, nz, len(d)))
	}
	frozen := make([]bool, len(d))
	for i, v := range d {
		frozen[i] = v != math.MaxFloat64
	}
	for {
		if sweep3D(d, frozen, nx, ny, nz) <= tol {
			break
		}
	}
}

func sweep3D(d []float64, frozen []bool, nx, ny, nz int) (maxChange float64) {
	for ord := 0; ord < 8; ord++ {
		for p := 0; p < nx; p++ {
			i := p
			if ord&1 != 0 {
				i = nx - 1 - p
			}
			for q := 0; q < ny; q++ {
				j := q
				if ord&2 != 0 {
					j = ny - 1 - q
				}
				for w := 0; w < nz; w++ {
					k := w
					if ord&4 != 0 {
						k = nz - 1 - w
					}
					s := i*ny*nz + j*nz + k
					if frozen[s] {
						continue
					}
					a := math.MaxFloat64
					if i > 0 {
						a = d[s-ny*nz]
					}
					if i < nx-1 && d[s+ny*nz] < a {
						a = d[s+ny*nz]
					}
					b := math.MaxFloat64
					if j > 0 {
						b = d[s-nz]
					}
					if j < ny-1 && d[s+nz] < b {
						b = d[s+nz]
					}
					c := math.MaxFloat64
					if k > 0 {
						c = d[s-1]
					}
					if k < nz-1 && d[s+1] < c {
						c = d[s+1]
					}
					if x := update3(a, b, c); x < d[s] {
						if d[s]-x > maxChange {
							maxChange = d[s] - x
						}
						d[s] = x
					}
				}
			}
		}
	}
	return
}

// update2 solves the upwind discretization at a node from its two axis
// minima. The one sided candidate a+1 stands whenever it does not exceed the
// other axis; past that the axes couple and the two term quadratic
// (x-a)^2 + (x-b)^2 = 1 applies, whose larger root is the upwind one.
// A node with both axes unknown saturates at math.MaxFloat64 and stays
// unknown, which is how interface free regions keep the marker.
func update2(a, b float64) float64 {
	if a > b {
		a, b = b, a
	}
	if x := a + 1; x <= b {
		return x
	}
	// b - a < 1 here, so the root is real and at least b
	return 0.5 * (a + b + math.Sqrt(2-(a-b)*(a-b)))
}

// update3 extends update2 to three axis minima, escalating to the three term
// quadratic (x-a)^2 + (x-b)^2 + (x-c)^2 = 1 when the two term root does not
// clear the largest axis value.
func update3(a, b, c float64) float64 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
		if a > b {
			a, b = b, a
		}
	}
	if x := a + 1; x <= b {
		return x
	}
	if x := 0.5 * (a + b + math.Sqrt(2-(a-b)*(a-b))); x <= c {
		return x
	}
	sum := a + b + c
	q := sum*sum - 3*(a*a+b*b+c*c-1)
	if q < 0 {
		// roundoff can push the discriminant barely negative
		q = 0
	}
	return (sum + math.Sqrt(q)) / 3
}
