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
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gosweep/distance"
	"github.com/notargets/gosweep/grid"
	"github.com/notargets/gosweep/shapes"
	"github.com/notargets/gosweep/types"
	"github.com/notargets/gosweep/utils"
)

type ModelBench struct {
	StartSize, Count int
	Radius           float64
	ThreeD           bool
	Graph            bool
	Profile          bool
	CSVFile          string
}

// BenchCmd represents the bench command
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Timing and convergence sweep of the distance solver over grid sizes",
	Long: `
Runs the signed distance solver on a sequence of doubling grid sizes against
an interface with a known distance function, reporting wall clock time and
error norms per size. Rows can be appended to a CSV file for the convOrder
tool to estimate convergence orders.

gosweep bench -s 16 -c 5 --csvFile conv.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("bench called")
		mb := &ModelBench{}
		mb.StartSize, _ = cmd.Flags().GetInt("startSize")
		mb.Count, _ = cmd.Flags().GetInt("count")
		mb.Radius, _ = cmd.Flags().GetFloat64("radius")
		mb.ThreeD, _ = cmd.Flags().GetBool("threeD")
		mb.Graph, _ = cmd.Flags().GetBool("graph")
		mb.Profile, _ = cmd.Flags().GetBool("profile")
		mb.CSVFile, _ = cmd.Flags().GetString("csvFile")
		RunBench(mb)
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	BenchCmd.Flags().IntP("startSize", "s", 16, "cells per side of the smallest grid")
	BenchCmd.Flags().IntP("count", "c", 4, "number of grid sizes, doubling from startSize")
	BenchCmd.Flags().Float64P("radius", "r", 0.3, "interface radius")
	BenchCmd.Flags().BoolP("threeD", "3", false, "sweep a sphere on volume grids instead of a circle")
	BenchCmd.Flags().BoolP("graph", "g", false, "plot error against grid spacing when the sweep completes")
	BenchCmd.Flags().Bool("profile", false, "write a CPU profile of the sweep to the working directory")
	BenchCmd.Flags().String("csvFile", "", "append convergence rows to a CSV file for the convOrder tool")
}

func RunBench(mb *ModelBench) {
	if mb.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	var (
		title                 = "circle2D"
		ns                    []int
		hs, secs, bandE, maxE []float64
	)
	if mb.ThreeD {
		title = "sphere3D"
	}
	for i := 0; i < mb.Count; i++ {
		var (
			n                     = mb.StartSize << i
			h, seconds, band, max float64
		)
		if mb.ThreeD {
			h, seconds, band, max = benchSphere(n, mb.Radius)
		} else {
			h, seconds, band, max = benchCircle(n, mb.Radius)
		}
		fmt.Printf("n = %5d, h = %10.6f, time = %9.4fs, band error = %8.5f * h, max error = %v\n",
			n, h, seconds, band/h, max)
		fmt.Printf("%s\n", utils.GetMemUsage())
		ns = append(ns, n)
		hs = append(hs, h)
		secs = append(secs, seconds)
		bandE = append(bandE, band)
		maxE = append(maxE, max)
	}
	if len(mb.CSVFile) != 0 {
		writeBenchCSV(mb.CSVFile, title, ns, hs, secs, bandE, maxE)
	}
	if mb.Graph {
		plotConvergence(hs, bandE, maxE)
	}
}

func benchCircle(n int, radius float64) (h, seconds, band, max float64) {
	var (
		g = grid.NewCenteredGrid2D(n + 1)
		u = make([]float64, g.NumNodes())
		d = make([]float64, g.NumNodes())
	)
	s, err := shapes.New2D(types.SHAPE_Circle, radius)
	if err != nil {
		panic(err)
	}
	g.Sample(u, s)
	start := time.Now()
	distance.SignedDistance2D(d, u, g.Nx, g.Ny, g.H)
	seconds = time.Since(start).Seconds()
	h = g.H
	band = grid.BandMaxDiff(d, u, 3*g.H)
	max = grid.MaxDiff(d, u)
	return
}

func benchSphere(n int, radius float64) (h, seconds, band, max float64) {
	var (
		g = grid.NewCenteredGrid3D(n + 1)
		u = make([]float64, g.NumNodes())
		d = make([]float64, g.NumNodes())
	)
	s, err := shapes.New3D(types.SHAPE_Sphere, radius)
	if err != nil {
		panic(err)
	}
	g.Sample(u, s)
	start := time.Now()
	distance.SignedDistance3D(d, u, g.Nx, g.Ny, g.Nz, g.H)
	seconds = time.Since(start).Seconds()
	h = g.H
	band = grid.BandMaxDiff(d, u, 3*g.H)
	max = grid.MaxDiff(d, u)
	return
}

func writeBenchCSV(fileName, title string, ns []int, hs, secs, bandE, maxE []float64) {
	var (
		err  error
		file *os.File
	)
	if file, err = os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
		panic(err)
	}
	defer file.Close()
	fi, err := file.Stat()
	if err != nil {
		panic(err)
	}
	w := csv.NewWriter(file)
	if fi.Size() == 0 {
		_ = w.Write([]string{"title", "n", "h", "seconds", "bandErr", "maxErr"})
	}
	for i := range ns {
		_ = w.Write([]string{
			title,
			strconv.Itoa(ns[i]),
			strconv.FormatFloat(hs[i], 'g', -1, 64),
			strconv.FormatFloat(secs[i], 'g', -1, 64),
			strconv.FormatFloat(bandE[i], 'g', -1, 64),
			strconv.FormatFloat(maxE[i], 'g', -1, 64),
		})
	}
	w.Flush()
	if err = w.Error(); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %s\n", fileName)
}

func plotConvergence(hs, bandE, maxE []float64) {
	var (
		lx, lb, lm = make([]float64, len(hs)), make([]float64, len(hs)), make([]float64, len(hs))
	)
	log10 := func(v float64) float64 {
		return math.Log10(math.Max(v, 1.e-16))
	}
	for i := range hs {
		lx[i] = log10(hs[i])
		lb[i] = log10(bandE[i])
		lm[i] = log10(maxE[i])
	}
	ymin := math.Min(floats.Min(lb), floats.Min(lm)) - 0.5
	ymax := math.Max(floats.Max(lb), floats.Max(lm)) + 0.5
	lc := utils.NewLineChart(1280, 1024, floats.Min(lx), floats.Max(lx), ymin, ymax)
	lc.Plot(0, lx, lm, -0.7, "log10 max error")
	lc.Plot(0, lx, lb, 0.7, "log10 band error")
	utils.SleepFor(10000)
}
