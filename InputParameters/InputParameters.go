package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters2D struct {
	Title     string  `yaml:"Title"`
	Shape     string  `yaml:"Shape"` // Interface shape, see types.ShapeNameMap
	Radius    float64 `yaml:"Radius"`
	N         int     `yaml:"N"` // Cells per side, the grid carries N+1 nodes
	Steps     int     `yaml:"Steps"`
	SubSteps  int     `yaml:"SubSteps"`
	Tau       float64 `yaml:"Tau"`
	PNGFile   string  `yaml:"PNGFile"`
	FieldFile string  `yaml:"FieldFile"`
}

func (ip *InputParameters2D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters2D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Shape\n", ip.Shape)
	fmt.Printf("%8.5f\t\t= Radius\n", ip.Radius)
	fmt.Printf("[%d]\t\t\t\t= N\n", ip.N)
	fmt.Printf("[%d]\t\t\t\t= Steps\n", ip.Steps)
	fmt.Printf("[%d]\t\t\t\t= SubSteps\n", ip.SubSteps)
	fmt.Printf("%8.5f\t\t= Tau\n", ip.Tau)
	if len(ip.PNGFile) != 0 {
		fmt.Printf("[%s]\t\t= PNGFile\n", ip.PNGFile)
	}
	if len(ip.FieldFile) != 0 {
		fmt.Printf("[%s]\t\t= FieldFile\n", ip.FieldFile)
	}
}
