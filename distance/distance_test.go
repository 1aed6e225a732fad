package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// planeField2D samples gx*x + gy*y + c on an n by n unit grid with spacing
// 1/(n-1). With gx*gx+gy*gy = 1 the samples are their own signed distance.
func planeField2D(n int, gx, gy, c float64) (u []float64) {
	var (
		h = 1 / float64(n-1)
	)
	u = make([]float64, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			u[j*n+i] = gx*float64(i)*h + gy*float64(j)*h + c
		}
	}
	return
}

func TestSignedDistance2D(t *testing.T) {
	/*
		Planar interfaces are reproduced exactly, at every node, as long as the
		nearest interface point of every node stays on the grid. Axis aligned
		lines and the 45 degree diagonals through the corners have that
		property.
	*/
	{
		n := 9
		h := 1 / float64(n-1)
		cases := [][3]float64{
			{1, 0, -0.5},
			{0, 1, -0.313},
			{math.Sqrt(0.5), math.Sqrt(0.5), -math.Sqrt(0.5)},
			{-math.Sqrt(0.5), math.Sqrt(0.5), 0},
		}
		for _, tc := range cases {
			u := planeField2D(n, tc[0], tc[1], tc[2])
			d := make([]float64, len(u))
			SignedDistance2D(d, u, n, n, h)
			for s := range d {
				assert.InDelta(t, u[s], d[s], 1e-5)
			}
		}
	}
	/*
		A general slope line leaves the grid, and nodes whose perpendicular
		foot falls past the exit see the distance to the clipped segment
		instead. That can only exceed the full line distance, with the sign
		still following u. Interior nodes within half a step of the line keep
		their exact values from the local initialization.
	*/
	{
		n := 9
		h := 1 / float64(n-1)
		u := planeField2D(n, 0.6, 0.8, -0.45)
		d := make([]float64, len(u))
		SignedDistance2D(d, u, n, n, h)
		for s := range d {
			if u[s] >= 0 {
				assert.True(t, d[s] >= u[s]-1e-9)
			} else {
				assert.True(t, d[s] <= u[s]+1e-9)
			}
		}
		for j := 1; j < n-1; j++ {
			for i := 1; i < n-1; i++ {
				s := j*n + i
				if math.Abs(u[s]) <= h/2 {
					assert.InDelta(t, u[s], d[s], 1e-9)
				}
			}
		}
	}
	/*
		Redistancing an already correct distance field reproduces it, away
		from the two node boundary margin where the one sided stencils live.
	*/
	{
		n := 17
		h := 1 / float64(n-1)
		for _, tc := range [][3]float64{{1, 0, -0.345}, {0.6, 0.8, -0.55}} {
			u := planeField2D(n, tc[0], tc[1], tc[2])
			d1 := make([]float64, len(u))
			SignedDistance2D(d1, u, n, n, h)
			d2 := make([]float64, len(u))
			SignedDistance2D(d2, d1, n, n, h)
			for j := 2; j < n-2; j++ {
				for i := 2; i < n-2; i++ {
					assert.InDelta(t, d1[j*n+i], d2[j*n+i], 1e-3)
				}
			}
		}
	}
	/*
		A field with no sign change has no interface: the saturated marker
		distance comes back, carrying the field's uniform sign.
	*/
	{
		n := 9
		h := 1 / float64(n-1)
		u := make([]float64, n*n)
		for s := range u {
			u[s] = 2.5
		}
		d := make([]float64, len(u))
		SignedDistance2D(d, u, n, n, h)
		for _, v := range d {
			assert.Equal(t, math.MaxFloat64*h, v)
		}
		for s := range u {
			u[s] = -1e-3
		}
		SignedDistance2D(d, u, n, n, h)
		for _, v := range d {
			assert.Equal(t, -math.MaxFloat64*h, v)
		}
	}
	/*
		Circle of radius 0.3: the samples of the exact signed distance come
		back within first order accuracy, tightest near the interface.
	*/
	{
		n := 33
		h := 1 / float64(n-1)
		u := make([]float64, n*n)
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				x := float64(i)*h - 0.5
				y := float64(j)*h - 0.5
				u[j*n+i] = math.Sqrt(x*x+y*y) - 0.3
			}
		}
		d := make([]float64, len(u))
		SignedDistance2D(d, u, n, n, h)
		for s := range d {
			assert.InDelta(t, u[s], d[s], 3*h)
			if math.Abs(u[s]) <= h {
				assert.InDelta(t, u[s], d[s], 0.02)
			}
		}
		// the exact field is symmetric across the center, so is the output
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				assert.InDelta(t, d[j*n+i], d[j*n+(n-1-i)], 1e-9)
				assert.InDelta(t, d[j*n+i], d[i*n+j], 1e-9)
			}
		}
	}
	// Shape violations fail fast
	{
		assert.Panics(t, func() {
			SignedDistance2D(make([]float64, 9), make([]float64, 8), 3, 3, 0.5)
		})
		assert.Panics(t, func() {
			SignedDistance2D(make([]float64, 6), make([]float64, 6), 3, 3, 0.5)
		})
	}
}

func TestSignedDistance3D(t *testing.T) {
	/*
		An axis aligned planar interface reproduces exactly in three
		dimensions.
	*/
	{
		n := 9
		h := 1 / float64(n-1)
		u := make([]float64, n*n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				for k := 0; k < n; k++ {
					u[i*n*n+j*n+k] = float64(k)*h - 0.55
				}
			}
		}
		d := make([]float64, len(u))
		SignedDistance3D(d, u, n, n, n, h)
		for s := range d {
			assert.InDelta(t, u[s], d[s], 1e-5)
		}
	}
	/*
		The diagonal plane always exits the cube, so only the lower bound
		holds globally. Interior nodes close to the plane keep their exact
		values from the local initialization, every straddling tetrahedron
		reporting the unclipped plane distance.
	*/
	{
		n := 9
		h := 1 / float64(n-1)
		s3 := math.Sqrt(3)
		u := make([]float64, n*n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				for k := 0; k < n; k++ {
					x, y, z := float64(i)*h, float64(j)*h, float64(k)*h
					u[i*n*n+j*n+k] = (x + y + z - 1.2) / s3
				}
			}
		}
		d := make([]float64, len(u))
		SignedDistance3D(d, u, n, n, n, h)
		for s := range d {
			if u[s] >= 0 {
				assert.True(t, d[s] >= u[s]-1e-9)
			} else {
				assert.True(t, d[s] <= u[s]+1e-9)
			}
		}
		for i := 1; i < n-1; i++ {
			for j := 1; j < n-1; j++ {
				for k := 1; k < n-1; k++ {
					s := i*n*n + j*n + k
					if math.Abs(u[s]) <= h/s3 {
						assert.InDelta(t, u[s], d[s], 1e-9)
					}
				}
			}
		}
	}
	/*
		Uniform sign saturates, as in 2D.
	*/
	{
		n := 5
		h := 0.25
		u := make([]float64, n*n*n)
		for s := range u {
			u[s] = -4
		}
		d := make([]float64, len(u))
		SignedDistance3D(d, u, n, n, n, h)
		for _, v := range d {
			assert.Equal(t, -math.MaxFloat64*h, v)
		}
	}
	/*
		Sphere of radius 0.3: sign agrees with the input everywhere and the
		near interface band is first order accurate.
	*/
	{
		n := 17
		h := 1 / float64(n-1)
		u := make([]float64, n*n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				for k := 0; k < n; k++ {
					x := float64(i)*h - 0.5
					y := float64(j)*h - 0.5
					z := float64(k)*h - 0.5
					u[i*n*n+j*n+k] = math.Sqrt(x*x+y*y+z*z) - 0.3
				}
			}
		}
		d := make([]float64, len(u))
		SignedDistance3D(d, u, n, n, n, h)
		for s := range d {
			if u[s] < 0 {
				assert.True(t, d[s] <= 0)
			} else {
				assert.True(t, d[s] >= 0)
			}
			assert.InDelta(t, u[s], d[s], 3*h)
		}
	}
	// Shape violations fail fast
	{
		assert.Panics(t, func() {
			SignedDistance3D(make([]float64, 27), make([]float64, 26), 3, 3, 3, 0.5)
		})
	}
}
