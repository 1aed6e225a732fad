package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study, written by gosweep bench")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	studies := readCSV(csvFile)
	for _, cs := range studies {
		cs.Print()
	}
}

type ConvergenceStudy struct {
	title           string
	n               []int
	h, seconds      []float64
	bandErr, maxErr []float64
}

func NewConvergenceStudy(title string) *ConvergenceStudy {
	return &ConvergenceStudy{title: title}
}

func (cs *ConvergenceStudy) Add(n int, h, seconds, bandErr, maxErr float64) {
	cs.n = append(cs.n, n)
	cs.h = append(cs.h, h)
	cs.seconds = append(cs.seconds, seconds)
	cs.bandErr = append(cs.bandErr, bandErr)
	cs.maxErr = append(cs.maxErr, maxErr)
}

// order is the observed convergence order between two resolutions
func order(e1, e2, h1, h2 float64) float64 {
	return math.Log(e1/e2) / math.Log(h1/h2)
}

func (cs *ConvergenceStudy) Print() {
	fmt.Printf("Title = %s\n", cs.title)
	fmt.Printf("%8s %12s %12s %12s %10s %10s\n",
		"n", "seconds", "bandErr", "maxErr", "bandOrd", "maxOrd")
	for i := range cs.n {
		if i == 0 {
			fmt.Printf("%8d %12.5f %12.4e %12.4e %10s %10s\n",
				cs.n[i], cs.seconds[i], cs.bandErr[i], cs.maxErr[i], "-", "-")
			continue
		}
		bo := order(cs.bandErr[i-1], cs.bandErr[i], cs.h[i-1], cs.h[i])
		mo := order(cs.maxErr[i-1], cs.maxErr[i], cs.h[i-1], cs.h[i])
		fmt.Printf("%8d %12.5f %12.4e %12.4e %10.3f %10.3f\n",
			cs.n[i], cs.seconds[i], cs.bandErr[i], cs.maxErr[i], bo, mo)
	}
	if len(cs.n) > 1 {
		fmt.Printf("Least squares order: band = %6.3f, max = %6.3f\n",
			cs.RegressionOrder(cs.bandErr), cs.RegressionOrder(cs.maxErr))
	}
}

// RegressionOrder fits log(err) against log(h) over all resolutions, the
// slope is the convergence order.
func (cs *ConvergenceStudy) RegressionOrder(errs []float64) (p float64) {
	var (
		lh = make([]float64, len(cs.h))
		le = make([]float64, len(errs))
	)
	for i := range cs.h {
		lh[i] = math.Log(cs.h[i])
		le[i] = math.Log(errs[i])
	}
	_, p = stat.LinearRegression(lh, le, nil, false)
	return
}

func readCSV(csvFile string) (studies map[string]*ConvergenceStudy) {
	var (
		records [][]string
		err     error
		f       *os.File
		ok      bool
		cs      *ConvergenceStudy
	)
	studies = make(map[string]*ConvergenceStudy)
	if f, err = os.Open(csvFile); err != nil {
		panic(err)
	}
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		panic(err)
	}
	for _, rec := range records {
		var (
			h, seconds, bandErr, maxErr float64
		)
		title, ntxt := rec[0], rec[1]
		n, convErr := strconv.Atoi(ntxt)
		if convErr != nil {
			// Header row
			continue
		}
		if cs, ok = studies[title]; !ok {
			cs = NewConvergenceStudy(title)
			studies[title] = cs
		}
		_, _ = fmt.Sscanf(rec[2], "%f", &h)
		_, _ = fmt.Sscanf(rec[3], "%f", &seconds)
		_, _ = fmt.Sscanf(rec[4], "%f", &bandErr)
		_, _ = fmt.Sscanf(rec[5], "%f", &maxErr)
		cs.Add(n, h, seconds, bandErr, maxErr)
	}
	return
}
