package render

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gosweep/distance"
	"github.com/notargets/gosweep/grid"
)

func TestSaveFieldPNG(t *testing.T) {
	var (
		n     = 33
		scale = 4
		g     = grid.NewCenteredGrid2D(n)
		u     = make([]float64, g.NumNodes())
		d     = make([]float64, g.NumNodes())
	)
	g.Fill(u, func(x, y float64) float64 {
		return math.Hypot(x, y) - 0.3
	})
	distance.SignedDistance2D(d, u, g.Nx, g.Ny, g.H)

	{ // Distance field with a circular interface round trips through PNG
		fileName := filepath.Join(t.TempDir(), "circle.png")
		assert.NoError(t, SaveFieldPNG(fileName, d, g, scale))

		file, err := os.Open(fileName)
		assert.NoError(t, err)
		defer file.Close()
		img, err := png.Decode(file)
		assert.NoError(t, err)
		assert.Equal(t, scale*n, img.Bounds().Dx())
		assert.Equal(t, scale*n, img.Bounds().Dy())
	}
	{ // A field of one sign has no contour but still renders
		one := make([]float64, g.NumNodes())
		g.Fill(one, func(x, y float64) float64 { return 1 })
		fileName := filepath.Join(t.TempDir(), "flat.png")
		assert.NoError(t, SaveFieldPNG(fileName, one, g, 2))
	}
	{ // Bad inputs
		assert.Panics(t, func() { FieldImage(make([]float64, 3), g, scale) })
		assert.Panics(t, func() { FieldImage(d, g, 0) })
	}
}
