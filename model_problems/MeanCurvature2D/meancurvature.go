package MeanCurvature2D

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gosweep/distance"
	"github.com/notargets/gosweep/geometry2D"
	"github.com/notargets/gosweep/grid"
	"github.com/notargets/gosweep/shapes"
	"github.com/notargets/gosweep/types"
	"github.com/notargets/gosweep/utils"
)

/*
	Accelerated mean curvature flow of an interface carried by a level set
	field. Each outer cycle redistances the field to signed distance,
	extrapolates it forward to keep the interface momentum, then relaxes it
	with substeps of the linear wave equation. The interface is the zero
	contour of U throughout.
*/
type MeanCurvature struct {
	// Input parameters
	Steps, SubSteps int
	Tau             float64 // Wave substep, must stay below H/sqrt(2)
	Grid            grid.Grid2D
	U               []float64 // Level set field, the interface is its zero contour
	dPrev           []float64
	chart           *utils.SurfacePlot
	PlotOnce        sync.Once
}

func NewMeanCurvature(n int, radius, tau float64, steps, subSteps int,
	sf types.ShapeFlag) (c *MeanCurvature) {
	if n == 0 {
		n = 64
	}
	if radius == 0 {
		radius = 0.3
	}
	if steps == 0 {
		steps = 14
	}
	if subSteps == 0 {
		subSteps = 128
	}
	if sf == types.SHAPE_None {
		sf = types.SHAPE_Circle
	}
	g := grid.NewCenteredGrid2D(n + 1)
	if tau == 0 {
		tau = 0.5 * g.H
	}
	tau = LimitTau(tau, g.H)
	s, err := shapes.New2D(sf, radius)
	if err != nil {
		panic(err)
	}
	c = &MeanCurvature{
		Steps:    steps,
		SubSteps: subSteps,
		Tau:      tau,
		Grid:     g,
		U:        make([]float64, g.NumNodes()),
	}
	c.Grid.Sample(c.U, s)
	return
}

// LimitTau caps the wave substep at the stability limit of the explicit
// scheme, h/sqrt(2) on a 2D grid.
func LimitTau(tau, h float64) (tauNew float64) {
	var (
		tauMax = h / math.Sqrt2
	)
	if tau > tauMax {
		fmt.Printf("Input Tau is higher than the wave stability limit for this grid\nReplacing with Max Tau: %8.5f\n", tauMax)
		return tauMax
	}
	return tau
}

func (c *MeanCurvature) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		g = c.Grid
		d = make([]float64, g.NumNodes())
	)
	fmt.Printf("Umin, Umax = %8.5f, %8.5f\n", floats.Min(c.U), floats.Max(c.U))
	for tstep := 0; tstep < c.Steps; tstep++ {
		distance.SignedDistance2D(d, c.U, g.Nx, g.Ny, g.H)
		if c.dPrev == nil {
			c.dPrev = make([]float64, g.NumNodes())
			copy(c.U, d)
		} else {
			for i, dp := range c.dPrev {
				c.U[i] = 2*d[i] - dp
			}
		}
		c.waveRelax()
		copy(c.dPrev, d)
		utils.IsNanPanic(c.U)
		c.Plot(showGraph, graphDelay)
		fmt.Printf("Step = %4d, enclosed area = %8.5f, umin = %8.4f, umax = %8.4f\n",
			tstep, c.InterfaceArea(), floats.Min(c.U), floats.Max(c.U))
	}
}

/*
	waveRelax advances U through SubSteps leapfrog steps of the wave equation
	using the five point Laplacian. The field starts at rest, w = u, and grid
	boundaries are reflective. Redistancing bounds the gradient, so the wave
	speed stays near one and the Tau limit applies. Each substep is computed
	with the node rows partitioned across the available cores, every worker
	writing its own rows of the new field.
*/
func (c *MeanCurvature) waveRelax() {
	var (
		g    = c.Grid
		nx   = g.Nx
		coef = (c.Tau / g.H) * (c.Tau / g.H)
		u    = c.U
		w    = append([]float64(nil), u...)
		v    = make([]float64, len(u))
		np   = runtime.NumCPU()
	)
	if np > g.Ny {
		np = g.Ny
	}
	pm := utils.NewPartitionMap(np, g.Ny)
	relaxRows := func(jMin, jMax int) {
		for j := jMin; j < jMax; j++ {
			for i := 0; i < nx; i++ {
				s := j*nx + i
				uc := u[s]
				ul, ur, ub, ut := uc, uc, uc, uc
				if i > 0 {
					ul = u[s-1]
				}
				if i < nx-1 {
					ur = u[s+1]
				}
				if j > 0 {
					ub = u[s-nx]
				}
				if j < g.Ny-1 {
					ut = u[s+nx]
				}
				v[s] = 2*uc - w[s] + coef*(ul+ur+ub+ut-4*uc)
			}
		}
	}
	for step := 0; step < c.SubSteps; step++ {
		wg := sync.WaitGroup{}
		for n := 0; n < np; n++ {
			wg.Add(1)
			go func(bn int) {
				defer wg.Done()
				relaxRows(pm.GetBucketRange(bn))
			}(n)
		}
		wg.Wait()
		w, u, v = u, v, w
	}
	copy(c.U, u)
}

// InterfaceArea sums the area enclosed by the closed loops of the zero
// contour.
func (c *MeanCurvature) InterfaceArea() (area float64) {
	for _, pl := range geometry2D.ZeroContour(c.U, c.Grid) {
		if pl.IsClosed() {
			area += math.Abs(geometry2D.NewPolygon(pl.GetGeometry()).Area())
		}
	}
	return
}

func (c *MeanCurvature) Plot(showGraph bool, graphDelay []time.Duration) {
	var (
		g = c.Grid
	)
	if !showGraph {
		return
	}
	c.PlotOnce.Do(func() {
		xmax, ymax := g.Coord(g.Nx-1, g.Ny-1)
		c.chart = utils.NewSurfacePlot(1280, 1024, g.X0, xmax, g.Y0, ymax,
			geometry2D.GridMesh(g))
		c.chart.AddColorMap(floats.Min(c.U), floats.Max(c.U))
	})
	c.chart.AddField(c.U)
	for n, pl := range geometry2D.ZeroContour(c.U, g) {
		x, y := pl.Arrays()
		c.chart.AddLine(fmt.Sprintf("contour%d", n), x, y, utils.White)
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}
