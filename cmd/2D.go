/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/spf13/cobra"

	"github.com/notargets/gosweep/distance"
	"github.com/notargets/gosweep/fieldio"
	"github.com/notargets/gosweep/geometry2D"
	"github.com/notargets/gosweep/grid"
	"github.com/notargets/gosweep/render"
	"github.com/notargets/gosweep/shapes"
	"github.com/notargets/gosweep/types"
	"github.com/notargets/gosweep/utils"
)

type Model2D struct {
	N         int
	Shape     string
	Radius    float64
	Graph     bool
	Delay     time.Duration
	InputFile string
	PNGFile   string
	FieldFile string
}

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Signed distance function of a planar interface on a regular grid",
	Long: `
Samples a level set field for the requested interface shape, or reads one from
a field file, and converts it to the signed distance function by exact
initialization near the interface followed by fast sweeping.

gosweep 2D -s circle -n 64 -g`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("2D called")
		m2d := &Model2D{}
		m2d.N, _ = cmd.Flags().GetInt("n")
		m2d.Shape, _ = cmd.Flags().GetString("shape")
		m2d.Radius, _ = cmd.Flags().GetFloat64("radius")
		m2d.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		m2d.Delay = time.Duration(dr) * time.Millisecond
		m2d.InputFile, _ = cmd.Flags().GetString("inputFieldFile")
		m2d.PNGFile, _ = cmd.Flags().GetString("pngFile")
		m2d.FieldFile, _ = cmd.Flags().GetString("fieldFile")
		Run2D(m2d)
	},
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().IntP("n", "n", 64, "number of cells per side, the grid carries n+1 nodes per side")
	TwoDCmd.Flags().StringP("shape", "s", "circle", "interface shape: circle, box, annulus or dumbbell")
	TwoDCmd.Flags().Float64P("radius", "r", 0.3, "shape radius")
	TwoDCmd.Flags().BoolP("graph", "g", false, "display a graph of the distance field")
	TwoDCmd.Flags().IntP("delay", "d", 0, "milliseconds to keep the graph open")
	TwoDCmd.Flags().StringP("inputFieldFile", "I", "", "read the level set field from a binary field file instead of sampling a shape")
	TwoDCmd.Flags().StringP("pngFile", "o", "", "write a PNG heatmap of the distance field with its zero contour")
	TwoDCmd.Flags().StringP("fieldFile", "F", "", "write the distance field as a binary field file")
}

func Run2D(m2d *Model2D) {
	var (
		err error
		g   grid.Grid2D
		u   []float64
	)
	if len(m2d.InputFile) != 0 {
		if g, u, err = fieldio.ReadField2D(m2d.InputFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Read %d x %d nodes with h = %v from %s\n", g.Nx, g.Ny, g.H, m2d.InputFile)
	} else {
		sf := types.NewShapeFlag(m2d.Shape)
		if sf == types.SHAPE_None || sf.Is3D() {
			fmt.Printf("error: unknown 2D shape %q, have circle, box, annulus, dumbbell\n", m2d.Shape)
			os.Exit(1)
		}
		s, err := shapes.New2D(sf, m2d.Radius)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		g = grid.NewCenteredGrid2D(m2d.N + 1)
		u = make([]float64, g.NumNodes())
		g.Sample(u, s)
	}

	d := make([]float64, g.NumNodes())
	start := time.Now()
	distance.SignedDistance2D(d, u, g.Nx, g.Ny, g.H)
	fmt.Printf("Signed distance on %d x %d nodes in %v\n", g.Nx, g.Ny, time.Since(start))
	fmt.Printf("max error = %v * h\n", grid.BandMaxDiff(d, u, 3*g.H)/g.H)

	if m2d.Graph {
		plotField2D(d, g, m2d.Delay)
	}
	if len(m2d.PNGFile) != 0 {
		if err = render.SaveFieldPNG(m2d.PNGFile, d, g, imageScale(g.Nx)); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", m2d.PNGFile)
	}
	if len(m2d.FieldFile) != 0 {
		if err = fieldio.WriteField2D(m2d.FieldFile, g, d); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", m2d.FieldFile)
	}
}

// imageScale sizes the pixel block per node so images land near 1024 wide.
func imageScale(nx int) (scale int) {
	scale = 1024 / nx
	if scale < 1 {
		scale = 1
	}
	return
}

func plotField2D(d []float64, g grid.Grid2D, delay time.Duration) {
	var (
		xmax, ymax = g.Coord(g.Nx-1, g.Ny-1)
		sp         = utils.NewSurfacePlot(1280, 1024, g.X0, xmax, g.Y0, ymax,
			geometry2D.GridMesh(g))
	)
	sp.AddColorMap(floats.Min(d), floats.Max(d))
	sp.AddField(d)
	for n, pl := range geometry2D.ZeroContour(d, g) {
		x, y := pl.Arrays()
		sp.AddLine(fmt.Sprintf("contour%d", n), x, y, utils.White)
	}
	if delay != 0 {
		time.Sleep(delay)
	} else {
		utils.SleepFor(10000)
	}
}
