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

	"github.com/spf13/cobra"

	"github.com/notargets/gosweep/distance"
	"github.com/notargets/gosweep/fieldio"
	"github.com/notargets/gosweep/grid"
	"github.com/notargets/gosweep/render"
	"github.com/notargets/gosweep/shapes"
	"github.com/notargets/gosweep/types"
)

type Model3D struct {
	N         int
	Shape     string
	Radius    float64
	InputFile string
	PNGFile   string
	FieldFile string
}

// ThreeDCmd represents the 3D command
var ThreeDCmd = &cobra.Command{
	Use:   "3D",
	Short: "Signed distance function of a solid interface on a volume grid",
	Long: `
Samples a level set field for the requested solid, or reads one from a field
file, and converts it to the signed distance function. The PNG output shows
the mid plane slice of the volume.

gosweep 3D -s sphere -n 32 -o sphere.png`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("3D called")
		m3d := &Model3D{}
		m3d.N, _ = cmd.Flags().GetInt("n")
		m3d.Shape, _ = cmd.Flags().GetString("shape")
		m3d.Radius, _ = cmd.Flags().GetFloat64("radius")
		m3d.InputFile, _ = cmd.Flags().GetString("inputFieldFile")
		m3d.PNGFile, _ = cmd.Flags().GetString("pngFile")
		m3d.FieldFile, _ = cmd.Flags().GetString("fieldFile")
		Run3D(m3d)
	},
}

func init() {
	rootCmd.AddCommand(ThreeDCmd)
	ThreeDCmd.Flags().IntP("n", "n", 32, "number of cells per side, the grid carries n+1 nodes per side")
	ThreeDCmd.Flags().StringP("shape", "s", "sphere", "interface shape: sphere or cube")
	ThreeDCmd.Flags().Float64P("radius", "r", 0.3, "shape radius")
	ThreeDCmd.Flags().StringP("inputFieldFile", "I", "", "read the level set field from a binary field file instead of sampling a shape")
	ThreeDCmd.Flags().StringP("pngFile", "o", "", "write a PNG heatmap of the mid plane distance slice")
	ThreeDCmd.Flags().StringP("fieldFile", "F", "", "write the distance field as a binary field file")
}

func Run3D(m3d *Model3D) {
	var (
		err error
		g   grid.Grid3D
		u   []float64
	)
	if len(m3d.InputFile) != 0 {
		if g, u, err = fieldio.ReadField3D(m3d.InputFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Read %d x %d x %d nodes with h = %v from %s\n",
			g.Nx, g.Ny, g.Nz, g.H, m3d.InputFile)
	} else {
		sf := types.NewShapeFlag(m3d.Shape)
		if !sf.Is3D() {
			fmt.Printf("error: unknown 3D shape %q, have sphere, cube\n", m3d.Shape)
			os.Exit(1)
		}
		s, err := shapes.New3D(sf, m3d.Radius)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		g = grid.NewCenteredGrid3D(m3d.N + 1)
		u = make([]float64, g.NumNodes())
		g.Sample(u, s)
	}

	d := make([]float64, g.NumNodes())
	start := time.Now()
	distance.SignedDistance3D(d, u, g.Nx, g.Ny, g.Nz, g.H)
	fmt.Printf("Signed distance on %d x %d x %d nodes in %v\n",
		g.Nx, g.Ny, g.Nz, time.Since(start))
	fmt.Printf("max error = %v * h\n", grid.BandMaxDiff(d, u, 3*g.H)/g.H)

	if len(m3d.PNGFile) != 0 {
		ds, gs := g.SliceZ(d, g.Nz/2)
		if err = render.SaveFieldPNG(m3d.PNGFile, ds, gs, imageScale(gs.Nx)); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", m3d.PNGFile)
	}
	if len(m3d.FieldFile) != 0 {
		if err = fieldio.WriteField3D(m3d.FieldFile, g, d); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", m3d.FieldFile)
	}
}
