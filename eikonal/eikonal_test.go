package eikonal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastSweep2D(t *testing.T) {
	/*
		Boundary column at zero: the solution is the column index, exactly,
		after a single ordering set.
	*/
	{
		nx, ny := 7, 5
		d := make([]float64, nx*ny)
		for s := range d {
			d[s] = math.MaxFloat64
		}
		for j := 0; j < ny; j++ {
			d[j*nx] = 0
		}
		FastSweep2D(d, nx, ny)
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				assert.Equal(t, float64(i), d[j*nx+i])
			}
		}
	}
	/*
		Point source in the middle of a 5x5 grid. Axis neighbors are exact,
		the first diagonal takes the two term root 1 + sqrt(2)/2, and the
		field is symmetric under the grid's reflections.
	*/
	{
		nx, ny := 5, 5
		d := make([]float64, nx*ny)
		for s := range d {
			d[s] = math.MaxFloat64
		}
		d[2*nx+2] = 0
		FastSweep2D(d, nx, ny)
		assert.Equal(t, 1.0, d[2*nx+3])
		assert.Equal(t, 1.0, d[2*nx+1])
		assert.Equal(t, 1.0, d[1*nx+2])
		assert.Equal(t, 1.0, d[3*nx+2])
		assert.InDelta(t, 1+math.Sqrt2/2, d[3*nx+3], 1e-12)
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				assert.InDelta(t, d[j*nx+i], d[i*nx+j], 1e-12)
				assert.InDelta(t, d[j*nx+i], d[j*nx+(nx-1-i)], 1e-12)
			}
		}
	}
	/*
		Monotone convergence: once the solver returns, one more ordering set
		moves nothing beyond the tolerance and no entry ever increases.
	*/
	{
		nx, ny := 9, 9
		d := make([]float64, nx*ny)
		frozen := make([]bool, nx*ny)
		for s := range d {
			d[s] = math.MaxFloat64
		}
		d[4*nx+4] = 0
		d[2*nx+7] = 0.25
		for s := range d {
			frozen[s] = d[s] != math.MaxFloat64
		}
		FastSweep2D(d, nx, ny)
		before := append([]float64(nil), d...)
		assert.LessOrEqual(t, sweep2D(d, frozen, nx, ny), tol)
		for s := range d {
			assert.True(t, d[s] <= before[s])
		}
		// and the exported entry point is stable on its own output
		again := append([]float64(nil), before...)
		FastSweep2D(again, nx, ny)
		assert.Equal(t, before, again)
	}
	// A grid with no known values stays unknown
	{
		d := make([]float64, 16)
		for s := range d {
			d[s] = math.MaxFloat64
		}
		FastSweep2D(d, 4, 4)
		for _, v := range d {
			assert.Equal(t, math.MaxFloat64, v)
		}
	}
	// Shape violations fail fast
	{
		assert.Panics(t, func() { FastSweep2D(make([]float64, 15), 4, 4) })
	}
}

func TestFastSweep3D(t *testing.T) {
	/*
		Boundary slab at zero: the solution is the slab index.
	*/
	{
		nx, ny, nz := 5, 4, 3
		d := make([]float64, nx*ny*nz)
		for s := range d {
			d[s] = math.MaxFloat64
		}
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				d[j*nz+k] = 0
			}
		}
		FastSweep3D(d, nx, ny, nz)
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				for k := 0; k < nz; k++ {
					assert.Equal(t, float64(i), d[i*ny*nz+j*nz+k])
				}
			}
		}
	}
	/*
		Point source in the middle of a 3x3x3 grid: face neighbors 1, edge
		neighbors 1 + sqrt(2)/2, and the corners take the three term root
		1 + sqrt(2)/2 + sqrt(3)/3.
	*/
	{
		n := 3
		d := make([]float64, n*n*n)
		for s := range d {
			d[s] = math.MaxFloat64
		}
		at := func(i, j, k int) int { return i*n*n + j*n + k }
		d[at(1, 1, 1)] = 0
		FastSweep3D(d, n, n, n)
		assert.Equal(t, 1.0, d[at(0, 1, 1)])
		assert.Equal(t, 1.0, d[at(1, 0, 1)])
		assert.Equal(t, 1.0, d[at(1, 1, 2)])
		assert.InDelta(t, 1+math.Sqrt2/2, d[at(0, 0, 1)], 1e-12)
		assert.InDelta(t, 1+math.Sqrt2/2, d[at(1, 2, 0)], 1e-12)
		assert.InDelta(t, 1+math.Sqrt2/2+math.Sqrt(3)/3, d[at(0, 0, 0)], 1e-12)
		assert.InDelta(t, 1+math.Sqrt2/2+math.Sqrt(3)/3, d[at(2, 2, 2)], 1e-12)
	}
	// Rerunning the solver on its own output changes nothing
	{
		n := 5
		d := make([]float64, n*n*n)
		for s := range d {
			d[s] = math.MaxFloat64
		}
		d[2*n*n+2*n+2] = 0
		FastSweep3D(d, n, n, n)
		again := append([]float64(nil), d...)
		FastSweep3D(again, n, n, n)
		assert.Equal(t, d, again)
	}
	// Shape violations fail fast
	{
		assert.Panics(t, func() { FastSweep3D(make([]float64, 26), 3, 3, 3) })
	}
}
