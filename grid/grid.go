package grid

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gosweep/utils"
)

/*
Grid2D describes a regular node grid with Nx x Ny nodes, spacing H and lower left corner
(X0, Y0). Fields living on the grid are flat slices indexed s = j*Nx + i, the i axis
contiguous.
*/
type Grid2D struct {
	Nx, Ny int
	H      float64
	X0, Y0 float64
}

// NewUnitGrid2D returns an n x n grid spanning [0,1] x [0,1], spacing 1/(n-1).
func NewUnitGrid2D(n int) Grid2D {
	return Grid2D{Nx: n, Ny: n, H: 1 / float64(n-1)}
}

// NewCenteredGrid2D returns an n x n grid spanning [-0.5,0.5] x [-0.5,0.5].
func NewCenteredGrid2D(n int) Grid2D {
	return Grid2D{Nx: n, Ny: n, H: 1 / float64(n-1), X0: -0.5, Y0: -0.5}
}

func NewGrid2D(nx, ny int, h, x0, y0 float64) Grid2D {
	return Grid2D{Nx: nx, Ny: ny, H: h, X0: x0, Y0: y0}
}

func (g Grid2D) NumNodes() int { return g.Nx * g.Ny }

func (g Grid2D) Index(i, j int) int { return j*g.Nx + i }

func (g Grid2D) Coord(i, j int) (x, y float64) {
	x = g.X0 + float64(i)*g.H
	y = g.Y0 + float64(j)*g.H
	return
}

// Coords returns the per-axis node coordinate vectors.
func (g Grid2D) Coords() (x, y []float64) {
	x = floats.Span(make([]float64, g.Nx), g.X0, g.X0+float64(g.Nx-1)*g.H)
	y = floats.Span(make([]float64, g.Ny), g.Y0, g.Y0+float64(g.Ny-1)*g.H)
	return
}

// Fill evaluates f at every node of the grid, node rows partitioned across
// the available cores.
func (g Grid2D) Fill(u []float64, f func(x, y float64) float64) {
	g.checkLen(len(u))
	overRows(g.Ny, func(jMin, jMax int) {
		for j := jMin; j < jMax; j++ {
			y := g.Y0 + float64(j)*g.H
			for i := 0; i < g.Nx; i++ {
				u[j*g.Nx+i] = f(g.X0+float64(i)*g.H, y)
			}
		}
	})
}

// Sample evaluates a signed distance shape at every node of the grid.
func (g Grid2D) Sample(u []float64, s sdf.SDF2) {
	g.Fill(u, func(x, y float64) float64 {
		return s.Evaluate(v2.Vec{X: x, Y: y})
	})
}

// PlaneField fills u with the signed distance to the line gx*x + gy*y + c = 0. The
// coefficients are normalized so the samples form a unit gradient affine field.
func (g Grid2D) PlaneField(u []float64, gx, gy, c float64) {
	var (
		nrm = math.Hypot(gx, gy)
	)
	if nrm == 0 {
		panic(fmt.Errorf("degenerate plane gradient: gx,gy = %v,%v", gx, gy))
	}
	gx, gy, c = gx/nrm, gy/nrm, c/nrm
	g.Fill(u, func(x, y float64) float64 {
		return gx*x + gy*y + c
	})
}

func (g Grid2D) checkLen(l int) {
	if g.Nx*g.Ny != l {
		panic(fmt.Errorf("mismatch in dimensions: nx,ny = %v,%v, len(u) = %v\n", g.Nx, g.Ny, l))
	}
}

/*
Grid3D is the volume counterpart of Grid2D, Nx x Ny x Nz nodes with flat index
s = i*Ny*Nz + j*Nz + k, the k axis contiguous.
*/
type Grid3D struct {
	Nx, Ny, Nz int
	H          float64
	X0, Y0, Z0 float64
}

func NewUnitGrid3D(n int) Grid3D {
	return Grid3D{Nx: n, Ny: n, Nz: n, H: 1 / float64(n-1)}
}

func NewCenteredGrid3D(n int) Grid3D {
	return Grid3D{Nx: n, Ny: n, Nz: n, H: 1 / float64(n-1), X0: -0.5, Y0: -0.5, Z0: -0.5}
}

func NewGrid3D(nx, ny, nz int, h, x0, y0, z0 float64) Grid3D {
	return Grid3D{Nx: nx, Ny: ny, Nz: nz, H: h, X0: x0, Y0: y0, Z0: z0}
}

func (g Grid3D) NumNodes() int { return g.Nx * g.Ny * g.Nz }

func (g Grid3D) Index(i, j, k int) int { return i*g.Ny*g.Nz + j*g.Nz + k }

func (g Grid3D) Coord(i, j, k int) (x, y, z float64) {
	x = g.X0 + float64(i)*g.H
	y = g.Y0 + float64(j)*g.H
	z = g.Z0 + float64(k)*g.H
	return
}

// Fill evaluates f at every node of the grid, node planes partitioned across
// the available cores.
func (g Grid3D) Fill(u []float64, f func(x, y, z float64) float64) {
	g.checkLen(len(u))
	overRows(g.Nx, func(iMin, iMax int) {
		for i := iMin; i < iMax; i++ {
			x := g.X0 + float64(i)*g.H
			for j := 0; j < g.Ny; j++ {
				y := g.Y0 + float64(j)*g.H
				for k := 0; k < g.Nz; k++ {
					u[i*g.Ny*g.Nz+j*g.Nz+k] = f(x, y, g.Z0+float64(k)*g.H)
				}
			}
		}
	})
}

// Sample evaluates a signed distance solid at every node of the grid.
func (g Grid3D) Sample(u []float64, s sdf.SDF3) {
	g.Fill(u, func(x, y, z float64) float64 {
		return s.Evaluate(v3.Vec{X: x, Y: y, Z: z})
	})
}

// SliceZ copies the k-th z plane of u into a fresh field over the matching
// planar grid.
func (g Grid3D) SliceZ(u []float64, k int) (us []float64, gs Grid2D) {
	g.checkLen(len(u))
	if k < 0 || k >= g.Nz {
		panic(fmt.Errorf("z plane %v outside grid with nz = %v\n", k, g.Nz))
	}
	gs = NewGrid2D(g.Nx, g.Ny, g.H, g.X0, g.Y0)
	us = make([]float64, gs.NumNodes())
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			us[gs.Index(i, j)] = u[g.Index(i, j, k)]
		}
	}
	return
}

func (g Grid3D) checkLen(l int) {
	if g.Nx*g.Ny*g.Nz != l {
		panic(fmt.Errorf("mismatch in dimensions: nx,ny,nz = %v,%v,%v, len(u) = %v\n",
			g.Nx, g.Ny, g.Nz, l))
	}
}

// overRows partitions numRows across the available cores and hands each
// worker one bucket as a half open range. Workers write disjoint row ranges
// of the field, so no synchronization beyond the final wait is needed.
func overRows(numRows int, process func(rMin, rMax int)) {
	np := runtime.NumCPU()
	if np > numRows {
		np = numRows
	}
	if np < 2 {
		process(0, numRows)
		return
	}
	pm := utils.NewPartitionMap(np, numRows)
	var wg sync.WaitGroup
	for n := 0; n < np; n++ {
		wg.Add(1)
		go func(bn int) {
			defer wg.Done()
			process(pm.GetBucketRange(bn))
		}(n)
	}
	wg.Wait()
}

// MaxDiff returns the largest absolute difference between two fields.
func MaxDiff(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(fmt.Errorf("mismatch in dimensions: len(a) = %v, len(b) = %v\n", len(a), len(b)))
	}
	return floats.Distance(a, b, math.Inf(1))
}

// BandMaxDiff returns the largest absolute difference between two fields over the nodes
// where |ref| <= width, the near interface band of the reference field.
func BandMaxDiff(d, ref []float64, width float64) (m float64) {
	if len(d) != len(ref) {
		panic(fmt.Errorf("mismatch in dimensions: len(d) = %v, len(ref) = %v\n", len(d), len(ref)))
	}
	for i, r := range ref {
		if math.Abs(r) <= width {
			if diff := math.Abs(d[i] - r); diff > m {
				m = diff
			}
		}
	}
	return
}
