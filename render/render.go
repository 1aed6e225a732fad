/*
Package render rasterizes nodal fields to PNG files, the offline counterpart
of the interactive charts in utils. One grid node becomes a scale x scale
block of pixels, colored through the same color map the live charts use, with
the zero contour stroked on top.
*/
package render

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gosweep/geometry2D"
	"github.com/notargets/gosweep/grid"
)

// FieldImage renders u as a heatmap, one scale x scale pixel block per node,
// row j = 0 at the bottom of the image.
func FieldImage(u []float64, g grid.Grid2D, scale int) (dc *gg.Context) {
	var (
		fmin, fmax = fieldRange(u, g, scale)
		colorMap   = utils2.NewColorMap(float32(fmin), float32(fmax), 1.)
	)
	dc = gg.NewContext(scale*g.Nx, scale*g.Ny)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			dc.SetColor(colorMap.GetRGB(float32(u[g.Index(i, j)])))
			dc.DrawRectangle(float64(i*scale), float64((g.Ny-1-j)*scale),
				float64(scale), float64(scale))
			dc.Fill()
		}
	}
	return
}

// OverlayContour strokes the zero level set of u on top of an image produced
// by FieldImage at the same scale.
func OverlayContour(dc *gg.Context, u []float64, g grid.Grid2D, scale int) {
	var (
		half = 0.5 * float64(scale)
	)
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(math.Max(1, 0.25*float64(scale)))
	for _, pl := range geometry2D.ZeroContour(u, g) {
		for np, p := range pl.GetGeometry() {
			var (
				px = (float64(p.X[0])-g.X0)/g.H*float64(scale) + half
				py = (float64(g.Ny-1)-(float64(p.X[1])-g.Y0)/g.H)*float64(scale) + half
			)
			if np == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.Stroke()
	}
}

// SaveFieldPNG writes a heatmap of u with its zero contour overlaid to
// fileName.
func SaveFieldPNG(fileName string, u []float64, g grid.Grid2D, scale int) (err error) {
	var (
		dc = FieldImage(u, g, scale)
	)
	OverlayContour(dc, u, g, scale)
	if err = dc.SavePNG(fileName); err != nil {
		err = fmt.Errorf("unable to write image file %s: %v", fileName, err)
	}
	return
}

func fieldRange(u []float64, g grid.Grid2D, scale int) (fmin, fmax float64) {
	if len(u) != g.NumNodes() {
		panic(fmt.Errorf("mismatch in dimensions: nx,ny = %v,%v, len(u) = %v\n",
			g.Nx, g.Ny, len(u)))
	}
	if scale < 1 {
		panic(fmt.Errorf("image scale must be positive, got %v\n", scale))
	}
	fmin, fmax = floats.Min(u), floats.Max(u)
	if fmax-fmin < 1.e-12 {
		// Uniform field, open the range so the color map stays usable
		fmax = fmin + 1
	}
	return
}
