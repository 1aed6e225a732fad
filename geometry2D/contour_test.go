package geometry2D

import (
	"math"
	"testing"

	"github.com/notargets/gosweep/grid"
	"github.com/stretchr/testify/assert"
)

func TestZeroContour(t *testing.T) {
	{ // A circle yields a single closed polyline with every point near radius r
		g := grid.NewCenteredGrid2D(33)
		u := make([]float64, g.NumNodes())
		r := 0.3
		g.Fill(u, func(x, y float64) float64 { return math.Hypot(x, y) - r })
		contours := ZeroContour(u, g)
		assert.Equal(t, 1, len(contours))
		pl := contours[0]
		assert.True(t, pl.IsClosed())
		for _, pt := range pl.Geometry {
			rr := math.Hypot(float64(pt.X[0]), float64(pt.X[1]))
			assert.InDelta(t, r, rr, 2e-3)
		}
		// The enclosed area and centroid recover the circle
		pg := NewPolygon(pl.Geometry)
		assert.InDelta(t, math.Pi*r*r, math.Abs(pg.Area()), 2e-3)
		ct := pg.Centroid()
		assert.InDelta(t, 0., float64(ct.X[0]), 1e-2)
		assert.InDelta(t, 0., float64(ct.X[1]), 1e-2)
		assert.True(t, pg.PointInside(Point{}))
		assert.False(t, pg.PointInside(Point{X: [2]float32{0.45, 0.45}}))
	}
	{ // Two separated circles yield two closed components
		g := grid.NewCenteredGrid2D(41)
		u := make([]float64, g.NumNodes())
		g.Fill(u, func(x, y float64) float64 {
			return math.Min(math.Hypot(x+0.25, y), math.Hypot(x-0.25, y)) - 0.12
		})
		contours := ZeroContour(u, g)
		assert.Equal(t, 2, len(contours))
		for _, pl := range contours {
			assert.True(t, pl.IsClosed())
		}
	}
	{ // A line entering and leaving the domain yields one open polyline
		g := grid.NewCenteredGrid2D(33)
		u := make([]float64, g.NumNodes())
		g.Fill(u, func(x, y float64) float64 { return x - 0.237 })
		contours := ZeroContour(u, g)
		assert.Equal(t, 1, len(contours))
		pl := contours[0]
		assert.False(t, pl.IsClosed())
		assert.Equal(t, g.Ny, len(pl.Geometry))
		for _, pt := range pl.Geometry {
			assert.InDelta(t, 0.237, float64(pt.X[0]), 1e-6)
		}
	}
	{ // Uniform sign has no interface
		g := grid.NewUnitGrid2D(9)
		u := make([]float64, g.NumNodes())
		g.Fill(u, func(x, y float64) float64 { return 1 + x })
		assert.Equal(t, 0, len(ZeroContour(u, g)))
	}
	{ // Shape violations fail fast
		g := grid.NewUnitGrid2D(4)
		assert.Panics(t, func() { ZeroContour(make([]float64, 15), g) })
	}
}

func TestGridMesh(t *testing.T) {
	g := grid.NewUnitGrid2D(4)
	tm := GridMesh(g)
	assert.Equal(t, 16, len(tm.Geometry))
	assert.Equal(t, 18, len(tm.Triangles))
	// first cell carries the shared anti diagonal split
	assert.Equal(t, [3]int32{0, 1, 4}, tm.Triangles[0].Nodes)
	assert.Equal(t, [3]int32{5, 1, 4}, tm.Triangles[1].Nodes)
	for _, tri := range tm.Triangles {
		for _, n := range tri.Nodes {
			assert.True(t, n >= 0 && int(n) < len(tm.Geometry))
		}
	}
	// node coordinates line up with the grid
	x, y := g.Coord(2, 3)
	assert.InDelta(t, x, float64(tm.Geometry[3*4+2].X[0]), 1e-6)
	assert.InDelta(t, y, float64(tm.Geometry[3*4+2].X[1]), 1e-6)
}
