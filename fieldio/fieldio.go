package fieldio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/notargets/gosweep/grid"
)

/*
Binary field snapshots. A snapshot carries the dimension count, the per axis node
counts, the grid spacing and origin, then the raw float64 node values in the flat
layout, everything little endian. The files round trip bit exactly, so a saved level
set can be reloaded and redistanced later.
*/

// WriteField2D saves u and its grid to fileName.
func WriteField2D(fileName string, g grid.Grid2D, u []float64) (err error) {
	var (
		file *os.File
	)
	if g.NumNodes() != len(u) {
		return fmt.Errorf("mismatch in dimensions: nx,ny = %v,%v, len(u) = %v",
			g.Nx, g.Ny, len(u))
	}
	if file, err = os.Create(fileName); err != nil {
		return fmt.Errorf("unable to create field file %s: %v", fileName, err)
	}
	defer file.Close()
	err = writeLE(file,
		int64(2), int64(g.Nx), int64(g.Ny),
		g.H, g.X0, g.Y0, u)
	if err != nil {
		err = fmt.Errorf("unable to write field file %s: %v", fileName, err)
	}
	return
}

// ReadField2D loads a field saved by WriteField2D.
func ReadField2D(fileName string) (g grid.Grid2D, u []float64, err error) {
	var (
		file   *os.File
		nDim   int64
		nx, ny int64
		h      float64
		x0, y0 float64
	)
	if file, err = os.Open(fileName); err != nil {
		err = fmt.Errorf("unable to open field file %s: %v", fileName, err)
		return
	}
	defer file.Close()
	if err = readLE(file, &nDim, &nx, &ny, &h, &x0, &y0); err != nil {
		err = fmt.Errorf("unable to read field file %s: %v", fileName, err)
		return
	}
	if nDim != 2 {
		err = fmt.Errorf("field file %s has dimension %d, want 2", fileName, nDim)
		return
	}
	if nx < 2 || ny < 2 || h <= 0 {
		err = fmt.Errorf("field file %s has bad header: nx,ny = %v,%v, h = %v",
			fileName, nx, ny, h)
		return
	}
	u = make([]float64, nx*ny)
	if err = readLE(file, u); err != nil {
		err = fmt.Errorf("unable to read field file %s: %v", fileName, err)
		return
	}
	g = grid.NewGrid2D(int(nx), int(ny), h, x0, y0)
	return
}

// WriteField3D saves u and its grid to fileName.
func WriteField3D(fileName string, g grid.Grid3D, u []float64) (err error) {
	var (
		file *os.File
	)
	if g.NumNodes() != len(u) {
		return fmt.Errorf("mismatch in dimensions: nx,ny,nz = %v,%v,%v, len(u) = %v",
			g.Nx, g.Ny, g.Nz, len(u))
	}
	if file, err = os.Create(fileName); err != nil {
		return fmt.Errorf("unable to create field file %s: %v", fileName, err)
	}
	defer file.Close()
	err = writeLE(file,
		int64(3), int64(g.Nx), int64(g.Ny), int64(g.Nz),
		g.H, g.X0, g.Y0, g.Z0, u)
	if err != nil {
		err = fmt.Errorf("unable to write field file %s: %v", fileName, err)
	}
	return
}

// ReadField3D loads a field saved by WriteField3D.
func ReadField3D(fileName string) (g grid.Grid3D, u []float64, err error) {
	var (
		file       *os.File
		nDim       int64
		nx, ny, nz int64
		h          float64
		x0, y0, z0 float64
	)
	if file, err = os.Open(fileName); err != nil {
		err = fmt.Errorf("unable to open field file %s: %v", fileName, err)
		return
	}
	defer file.Close()
	if err = readLE(file, &nDim, &nx, &ny, &nz, &h, &x0, &y0, &z0); err != nil {
		err = fmt.Errorf("unable to read field file %s: %v", fileName, err)
		return
	}
	if nDim != 3 {
		err = fmt.Errorf("field file %s has dimension %d, want 3", fileName, nDim)
		return
	}
	if nx < 2 || ny < 2 || nz < 2 || h <= 0 {
		err = fmt.Errorf("field file %s has bad header: nx,ny,nz = %v,%v,%v, h = %v",
			fileName, nx, ny, nz, h)
		return
	}
	u = make([]float64, nx*ny*nz)
	if err = readLE(file, u); err != nil {
		err = fmt.Errorf("unable to read field file %s: %v", fileName, err)
		return
	}
	g = grid.NewGrid3D(int(nx), int(ny), int(nz), h, x0, y0, z0)
	return
}

func writeLE(w io.Writer, data ...interface{}) (err error) {
	for _, d := range data {
		if err = binary.Write(w, binary.LittleEndian, d); err != nil {
			return
		}
	}
	return
}

func readLE(r io.Reader, data ...interface{}) (err error) {
	for _, d := range data {
		if err = binary.Read(r, binary.LittleEndian, d); err != nil {
			return
		}
	}
	return
}
