package InputParameters

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/dgwave/types"
)

var ErrInvalidParameter = errors.New("invalid input parameter")

type GaussParameters struct {
	Amplitude float64 `json:"Amplitude"`
	Center    float64 `json:"Center"`
	Width     float64 `json:"Width"` // standard deviation of the pulse
}

type SineParameters struct {
	Amplitude  float64 `json:"Amplitude"`
	Wavelength float64 `json:"Wavelength"`
	Phase      float64 `json:"Phase"`
}

// Parameters obtained from the YAML input file. The value is treated as immutable once handed to a model.
type InputParameters1D struct {
	Title            string          `json:"Title"`
	PolynomialOrder  int             `json:"PolynomialOrder"`
	Elements         int             `json:"Elements"`
	XMin             float64         `json:"XMin"`
	XMax             float64         `json:"XMax"`
	WaveSpeed        float64         `json:"WaveSpeed"`
	FluxType         string          `json:"FluxType"` // upwind, central
	BCLeft           string          `json:"BCLeft"`   // periodic, reflecting, outgoing
	BCRight          string          `json:"BCRight"`
	InitType         string          `json:"InitType"` // gaussian, sinusoid
	Gauss            GaussParameters `json:"Gauss"`
	Sine             SineParameters  `json:"Sine"`
	T0               float64         `json:"T0"`
	FinalTime        float64         `json:"FinalTime"`
	CFL              float64         `json:"CFL"`
	UseFixedTimeStep bool            `json:"UseFixedTimeStep"`
	TimeStep         float64         `json:"TimeStep"`
	CheckStability   bool            `json:"CheckStability"`
	MaxCourant       float64         `json:"MaxCourant"`
	OutputInterval   float64         `json:"OutputInterval"`  // simulated time between solution dumps
	ComparisonCount  int             `json:"ComparisonCount"` // dump number compared against the initial state, <= 0 compares at FinalTime
	LogFrequency     int             `json:"LogFrequency"`
	ParallelDegree   int             `json:"ParallelDegree"`
	OutputFile       string          `json:"OutputFile"`
	DiffFile         string          `json:"DiffFile"`
	ConvergenceFile  string          `json:"ConvergenceFile"`
}

// NewInputParameters1D returns the defaults: a unit Gaussian pulse crossing a periodic [-1,1] domain once
func NewInputParameters1D() (ip *InputParameters1D) {
	ip = &InputParameters1D{
		Title:           "Gaussian pulse, one period",
		PolynomialOrder: 4,
		Elements:        20,
		XMin:            -1,
		XMax:            1,
		WaveSpeed:       1,
		FluxType:        "upwind",
		BCLeft:          "periodic",
		BCRight:         "periodic",
		InitType:        "gaussian",
		Gauss: GaussParameters{
			Amplitude: 1,
			Center:    0,
			Width:     0.1,
		},
		Sine: SineParameters{
			Amplitude:  1,
			Wavelength: 1,
		},
		FinalTime:      2,
		CFL:            0.5,
		MaxCourant:     1,
		OutputInterval: 0.1,
		LogFrequency:   50,
		ParallelDegree: 1,
	}
	return
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// ReadInputParameters1D overlays the YAML file at path on the defaults
func ReadInputParameters1D(path string) (ip *InputParameters1D, err error) {
	var data []byte
	ip = NewInputParameters1D()
	if len(path) == 0 {
		return
	}
	if data, err = os.ReadFile(path); err != nil {
		return nil, err
	}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return
}

func (ip *InputParameters1D) Periodic() bool {
	bc, ok := types.NewBCFLAG(ip.BCLeft)
	return ok && bc == types.BC_Periodic
}

func (ip *InputParameters1D) Validate() (err error) {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
	}
	finite := func(vals ...float64) bool {
		for _, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
		return true
	}
	switch {
	case ip.PolynomialOrder < 1:
		return invalid("PolynomialOrder = %d, must be at least 1", ip.PolynomialOrder)
	case ip.Elements < 1:
		return invalid("Elements = %d, must be at least 1", ip.Elements)
	case !finite(ip.XMin, ip.XMax) || ip.XMax <= ip.XMin:
		return invalid("domain [%v, %v] is empty", ip.XMin, ip.XMax)
	case !finite(ip.WaveSpeed) || ip.WaveSpeed <= 0:
		return invalid("WaveSpeed = %v, must be positive", ip.WaveSpeed)
	case !finite(ip.T0, ip.FinalTime) || ip.FinalTime <= ip.T0:
		return invalid("FinalTime = %v must exceed T0 = %v", ip.FinalTime, ip.T0)
	case ip.UseFixedTimeStep && !(ip.TimeStep > 0):
		return invalid("TimeStep = %v, must be positive with UseFixedTimeStep", ip.TimeStep)
	case !ip.UseFixedTimeStep && !(ip.CFL > 0):
		return invalid("CFL = %v, must be positive", ip.CFL)
	case ip.CheckStability && !(ip.MaxCourant > 0):
		return invalid("MaxCourant = %v, must be positive with CheckStability", ip.MaxCourant)
	case ip.OutputInterval < 0:
		return invalid("OutputInterval = %v, must not be negative", ip.OutputInterval)
	case ip.ParallelDegree < 0:
		return invalid("ParallelDegree = %d, must not be negative", ip.ParallelDegree)
	}
	bcLeft, okLeft := types.NewBCFLAG(ip.BCLeft)
	bcRight, okRight := types.NewBCFLAG(ip.BCRight)
	if !okLeft || !okRight {
		return invalid("unknown boundary condition in [%s, %s]", ip.BCLeft, ip.BCRight)
	}
	if (bcLeft == types.BC_Periodic) != (bcRight == types.BC_Periodic) {
		return invalid("periodic boundaries must be set on both ends, have [%s, %s]", ip.BCLeft, ip.BCRight)
	}
	switch strings.ToLower(ip.InitType) {
	case "gaussian":
		if !(ip.Gauss.Width > 0) {
			return invalid("Gauss.Width = %v, must be positive", ip.Gauss.Width)
		}
	case "sinusoid":
		if !(ip.Sine.Wavelength > 0) {
			return invalid("Sine.Wavelength = %v, must be positive", ip.Sine.Wavelength)
		}
	}
	return
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", ip.PolynomialOrder)
	fmt.Printf("[%d]\t\t\t\t= Elements\n", ip.Elements)
	fmt.Printf("[%8.5f, %8.5f]\t= Domain\n", ip.XMin, ip.XMax)
	fmt.Printf("%8.5f\t\t= Wave Speed\n", ip.WaveSpeed)
	fmt.Printf("[%s]\t\t\t= Flux Type\n", ip.FluxType)
	fmt.Printf("[%s, %s]\t= BCs\n", ip.BCLeft, ip.BCRight)
	fmt.Printf("[%s]\t\t= InitType\n", ip.InitType)
	fmt.Printf("%8.5f\t\t= T0\n", ip.T0)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	if ip.UseFixedTimeStep {
		fmt.Printf("%8.6f\t\t= Fixed Time Step\n", ip.TimeStep)
	} else {
		fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	}
	fmt.Printf("[%d]\t\t\t\t= Parallel Degree\n", ip.ParallelDegree)
}
