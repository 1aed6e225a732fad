package levelset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangleDist(t *testing.T) {
	/*
		Degenerate patterns: vertices sitting exactly on the zero set
	*/
	{
		check := func(u, want [3]float64) {
			r, ok := TriangleDist(u)
			assert.True(t, ok)
			assert.Equal(t, want, r)
		}
		check([3]float64{0, 0, 0}, [3]float64{0, 0, 0})
		check([3]float64{-1, 0, 0}, [3]float64{math.Sqrt(0.5), 0, 0})
		check([3]float64{1, 0, 0}, [3]float64{math.Sqrt(0.5), 0, 0})
		check([3]float64{0, 1, 0}, [3]float64{0, 1, 0})
		check([3]float64{0, 0, 1}, [3]float64{0, 0, 1})
		check([3]float64{0, -1, -1}, [3]float64{0, 1, 1})
		check([3]float64{0, 1, 1}, [3]float64{0, 1, 1})
		check([3]float64{1, 0, 1}, [3]float64{1, 0, math.Sqrt2})
		check([3]float64{1, 1, 0}, [3]float64{1, math.Sqrt2, 0})
	}
	// Unanimous strict sign carries no crossing
	{
		_, ok := TriangleDist([3]float64{0.1, 0.2, 0.3})
		assert.False(t, ok)
		_, ok = TriangleDist([3]float64{-1, -2, -3})
		assert.False(t, ok)
	}
	/*
		Generic case, vertical interface x = 0.3: the foot of vertex 2 falls
		off the zero segment, so it takes the distance to the segment's upper
		endpoint (0.3, 0.7) instead of the perpendicular 0.3.
	*/
	{
		r, ok := TriangleDist([3]float64{-0.3, 0.7, -0.3})
		assert.True(t, ok)
		assert.InDeltaSlice(t, []float64{0.3, 0.7, 0.3 * math.Sqrt2}, r[:], 1e-15)
	}
	/*
		Generic case, interface x + y = 0.5 cutting both legs: vertex 0 takes
		the perpendicular, vertices 1 and 2 their leg crossings.
	*/
	{
		r, ok := TriangleDist([3]float64{0.5, -0.5, -0.5})
		assert.True(t, ok)
		assert.InDeltaSlice(t, []float64{0.25 * math.Sqrt2, 0.5, 0.5}, r[:], 1e-15)
	}
	// Magnitudes do not depend on the orientation of u
	{
		u := [3]float64{0.4, -0.2, 0.3}
		flipped := [3]float64{-0.4, 0.2, -0.3}
		r1, ok1 := TriangleDist(u)
		r2, ok2 := TriangleDist(flipped)
		assert.True(t, ok1)
		assert.True(t, ok2)
		assert.Equal(t, r1, r2)
	}
}

func TestTetrahedronDist(t *testing.T) {
	// Unanimous sign carries no crossing; the zero bias counts exact zeros
	// as positive, so the all zero tetrahedron is sign uniform too
	{
		_, ok := TetrahedronDist([4]float64{1, 2, 3, 4})
		assert.False(t, ok)
		_, ok = TetrahedronDist([4]float64{-1, -2, -3, -4})
		assert.False(t, ok)
		_, ok = TetrahedronDist([4]float64{0, 0, 0, 0})
		assert.False(t, ok)
	}
	/*
		Axis aligned plane through the middle of the last edge: unit gradient
		along the path, all four vertices half a step away.
	*/
	{
		r, ok := TetrahedronDist([4]float64{0.5, 0.5, 0.5, -0.5})
		assert.True(t, ok)
		assert.InDeltaSlice(t, []float64{0.5, 0.5, 0.5, 0.5}, r[:], 1e-12)
	}
	/*
		Diagonal plane x + y + z = 1 sampled with unit gradient on the
		tetrahedron (0,0,0) (1,0,0) (1,1,0) (1,1,1): per vertex distances
		1/sqrt(3), 0, 1/sqrt(3), 2/sqrt(3).
	*/
	{
		s3 := math.Sqrt(3)
		r, ok := TetrahedronDist([4]float64{-1 / s3, 0, 1 / s3, 2 / s3})
		assert.True(t, ok)
		assert.InDeltaSlice(t, []float64{1 / s3, 0, 1 / s3, 2 / s3}, r[:], 1e-12)
	}
}

func TestInitDist2D(t *testing.T) {
	/*
		Vertical interface halfway between the first two columns of a 3x3
		grid: both straddled columns get the exact half step distance, the
		third column is untouched by any crossing cell.
	*/
	{
		u := []float64{
			-0.5, 0.5, 1.5,
			-0.5, 0.5, 1.5,
			-0.5, 0.5, 1.5,
		}
		d := make([]float64, len(u))
		InitDist2D(d, u, 3, 3)
		assert.Equal(t, []float64{
			0.5, 0.5, Unknown,
			0.5, 0.5, Unknown,
			0.5, 0.5, Unknown,
		}, d)
	}
	// After initialization every entry is non negative, sentinel included
	{
		nx, ny := 12, 9
		u := make([]float64, nx*ny)
		for i := range u {
			u[i] = math.Sin(float64(3*i)) * math.Cos(float64(i*i))
		}
		d := make([]float64, len(u))
		InitDist2D(d, u, nx, ny)
		for _, v := range d {
			assert.True(t, v >= 0)
		}
	}
	// Sign uniform input leaves the whole grid unknown
	{
		u := []float64{1, 2, 3, 4}
		d := make([]float64, 4)
		InitDist2D(d, u, 2, 2)
		assert.Equal(t, []float64{Unknown, Unknown, Unknown, Unknown}, d)
	}
	// Shape violations fail fast
	{
		assert.Panics(t, func() { InitDist2D(make([]float64, 9), make([]float64, 8), 3, 3) })
		assert.Panics(t, func() { InitDist2D(make([]float64, 8), make([]float64, 9), 3, 3) })
	}
}

func TestInitDist3D(t *testing.T) {
	/*
		Axis aligned plane between the first two k slabs of a 3x3x3 grid,
		mirroring the 2D column case.
	*/
	{
		nx, ny, nz := 3, 3, 3
		u := make([]float64, nx*ny*nz)
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				for k := 0; k < nz; k++ {
					u[i*ny*nz+j*nz+k] = float64(k) - 0.5
				}
			}
		}
		d := make([]float64, len(u))
		InitDist3D(d, u, nx, ny, nz)
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				assert.InDelta(t, 0.5, d[i*ny*nz+j*nz+0], 1e-12)
				assert.InDelta(t, 0.5, d[i*ny*nz+j*nz+1], 1e-12)
				assert.Equal(t, Unknown, d[i*ny*nz+j*nz+2])
			}
		}
	}
	// Non negativity on an oscillating field
	{
		nx, ny, nz := 6, 5, 4
		u := make([]float64, nx*ny*nz)
		for i := range u {
			u[i] = math.Sin(float64(5 * i))
		}
		d := make([]float64, len(u))
		InitDist3D(d, u, nx, ny, nz)
		for _, v := range d {
			assert.True(t, v >= 0)
		}
	}
	// Shape violations fail fast
	{
		assert.Panics(t, func() { InitDist3D(make([]float64, 27), make([]float64, 26), 3, 3, 3) })
		assert.Panics(t, func() { InitDist3D(make([]float64, 26), make([]float64, 27), 3, 3, 3) })
	}
}
