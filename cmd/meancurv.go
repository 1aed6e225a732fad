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
	"io/ioutil"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/notargets/gosweep/InputParameters"
	"github.com/notargets/gosweep/fieldio"
	"github.com/notargets/gosweep/model_problems/MeanCurvature2D"
	"github.com/notargets/gosweep/render"
	"github.com/notargets/gosweep/types"
)

type ModelMeanCurv struct {
	ICFile string
	Graph  bool
	Delay  time.Duration
}

// MeanCurvCmd represents the meancurv command
var MeanCurvCmd = &cobra.Command{
	Use:   "meancurv",
	Short: "Accelerated mean curvature flow of a level set interface",
	Long: `
Evolves an interface by accelerated mean curvature flow. Each cycle
redistances the level set field with the fast sweeping solver, extrapolates
it forward, then relaxes it with substeps of the linear wave equation.
Without an input file the reference shrinking circle problem runs.

gosweep meancurv -g`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("meancurv called")
		mmc := &ModelMeanCurv{}
		mmc.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		mmc.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		mmc.Delay = time.Duration(dr) * time.Millisecond
		ip := processInput(mmc)
		RunMeanCurv(mmc, ip)
	},
}

func init() {
	rootCmd.AddCommand(MeanCurvCmd)
	MeanCurvCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file of problem parameters, omit for the reference shrinking circle")
	MeanCurvCmd.Flags().BoolP("graph", "g", false, "display the evolving field while computing")
	MeanCurvCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting each cycle")
}

func processInput(mmc *ModelMeanCurv) (ip *InputParameters.InputParameters2D) {
	var (
		err error
	)
	ip = &InputParameters.InputParameters2D{}
	if len(mmc.ICFile) == 0 {
		exampleFile := `
########################################
Title: "Shrinking Circle"
Shape: circle # circle, box, annulus or dumbbell
Radius: 0.3
N: 64
Steps: 14
SubSteps: 128
PNGFile: meancurv.png
########################################
`
		fmt.Printf("No input file given (-I, --inputConditionsFile), using the reference problem\n")
		fmt.Printf("Example File:%s\n", exampleFile)
		return
	}
	var data []byte
	if data, err = ioutil.ReadFile(mmc.ICFile); err != nil {
		panic(err)
	}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	ip.Print()
	return
}

func RunMeanCurv(mmc *ModelMeanCurv, ip *InputParameters.InputParameters2D) {
	var (
		err error
		c   = MeanCurvature2D.NewMeanCurvature(ip.N, ip.Radius, ip.Tau,
			ip.Steps, ip.SubSteps, types.NewShapeFlag(ip.Shape))
	)
	c.Run(mmc.Graph, mmc.Delay)
	if len(ip.PNGFile) != 0 {
		if err = render.SaveFieldPNG(ip.PNGFile, c.U, c.Grid, imageScale(c.Grid.Nx)); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", ip.PNGFile)
	}
	if len(ip.FieldFile) != 0 {
		if err = fieldio.WriteField2D(ip.FieldFile, c.Grid, c.U); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", ip.FieldFile)
	}
}
