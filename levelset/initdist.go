package levelset

import (
	"fmt"
	"math"
)

// Unknown marks grid nodes for which no incident simplex straddles the zero
// set. Keeping the marker in band (instead of a separate tag array) lets the
// per vertex updates stay plain min combinations.
const Unknown = math.MaxFloat64

// InitDist2D writes into d the exact distance, in grid units, from every node
// near the interface to the zero set of the bilinear field u, and Unknown
// everywhere else. Nodes are stored at s = j*nx + i. Each grid cell is split
// into two right triangles sharing the cell's anti diagonal, and every node
// keeps the minimum over the contributions of its incident triangles.
//
// Panics when the buffer lengths disagree with nx*ny.
func InitDist2D(d, u []float64, nx, ny int) {
	checkDim2D(len(d), len(u), nx, ny)
	for i := range d {
		d[i] = Unknown
	}
	for j := 1; j < ny; j++ {
		for i := 1; i < nx; i++ {
			s := j*nx + i
			// Triangle anchored at the lower left corner of the cell, right
			// angle at s-nx-1, legs to s-nx and s-1.
			if r, ok := TriangleDist([3]float64{u[s-nx-1], u[s-nx], u[s-1]}); ok {
				d[s-nx-1] = math.Min(d[s-nx-1], r[0])
				d[s-nx] = math.Min(d[s-nx], r[1])
				d[s-1] = math.Min(d[s-1], r[2])
			}
			// Mirror triangle anchored at the upper right corner, sharing the
			// anti diagonal s-nx .. s-1.
			if r, ok := TriangleDist([3]float64{u[s], u[s-nx], u[s-1]}); ok {
				d[s] = math.Min(d[s], r[0])
				d[s-nx] = math.Min(d[s-nx], r[1])
				d[s-1] = math.Min(d[s-1], r[2])
			}
		}
	}
}

// cubeTets lists the corner offsets of the six tetrahedra that tile a grid
// cube. All six share the main diagonal from (0,0,0) to (1,1,1), and each row
// steps through the cube one axis at a time, which is the vertex ordering
// TetrahedronDist requires.
var cubeTets = [6][4][3]int{
	{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}},
	{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {1, 1, 1}},
	{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 1, 1}},
	{{0, 0, 0}, {0, 1, 0}, {0, 1, 1}, {1, 1, 1}},
	{{0, 0, 0}, {0, 0, 1}, {1, 0, 1}, {1, 1, 1}},
	{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {1, 1, 1}},
}

// InitDist3D is the three dimensional InitDist2D: nodes are stored at
// s = i*ny*nz + j*nz + k, and each cube is split into the six tetrahedra of
// cubeTets with per vertex min combination.
func InitDist3D(d, u []float64, nx, ny, nz int) {
	checkDim3D(len(d), len(u), nx, ny, nz)
	for i := range d {
		d[i] = Unknown
	}
	var v [4]float64
	for i := 1; i < nx; i++ {
		for j := 1; j < ny; j++ {
			for k := 1; k < nz; k++ {
				s := i*ny*nz + j*nz + k
				for _, tet := range cubeTets {
					for m := 0; m < 4; m++ {
						v[m] = u[s-tet[m][0]*ny*nz-tet[m][1]*nz-tet[m][2]]
					}
					if r, ok := TetrahedronDist(v); ok {
						for m := 0; m < 4; m++ {
							q := s - tet[m][0]*ny*nz - tet[m][1]*nz - tet[m][2]
							d[q] = math.Min(d[q], r[m])
						}
					}
				}
			}
		}
	}
}

func checkDim2D(lenD, lenU, nx, ny int) {
	if nx*ny != lenU || nx*ny != lenD {
		panic(fmt.Errorf("mismatch in dimensions: nx,ny = %v,%v, len(u) = %v, len(d) = %v\n",
			nx, ny, lenU, lenD))
	}
}

func checkDim3D(lenD, lenU, nx, ny, nz int) {
	if nx*ny*nz != lenU || nx*ny*nz != lenD {
		panic(fmt.Errorf("mismatch in dimensions: nx,ny,nz = %v,%v,%v, len(u) = %v, len(d) = %v\n",
			nx, ny, nz, lenU, lenD))
	}
}
