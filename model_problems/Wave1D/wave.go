package Wave1D

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/dgwave/DG1D"
	"github.com/notargets/dgwave/InputParameters"
	"github.com/notargets/dgwave/types"
	"github.com/notargets/dgwave/utils"
)

var ErrUnstableTimeStep = errors.New("time step exceeds the stability bound")

// Field components, in storage order
const (
	Psi = iota
	Pi
	Phi
	NComp
)

type FluxType uint8

const (
	FLUX_Upwind FluxType = iota
	FLUX_Central
)

var (
	FluxNames = map[string]FluxType{
		"upwind":  FLUX_Upwind,
		"central": FLUX_Central,
	}
	FluxPrintNames = []string{"Upwind (characteristic)", "Central (average)"}
)

func (ft FluxType) Print() string { return FluxPrintNames[ft] }

func NewFluxType(label string) (ft FluxType, err error) {
	var ok bool
	if ft, ok = FluxNames[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("%w: unknown flux type [%s]", InputParameters.ErrInvalidParameter, label)
	}
	return
}

func NewBCType(label string) (bc types.BCFLAG, err error) {
	var ok bool
	if bc, ok = types.NewBCFLAG(label); !ok {
		err = fmt.Errorf("%w: unknown boundary condition [%s]", InputParameters.ErrInvalidParameter, label)
	}
	return
}

type InitType uint8

const (
	INIT_Gaussian InitType = iota
	INIT_Sinusoid
)

var (
	InitNames = map[string]InitType{
		"gaussian": INIT_Gaussian,
		"sinusoid": INIT_Sinusoid,
	}
	InitPrintNames = []string{"Gaussian pulse", "Right moving sinusoid"}
)

func (it InitType) Print() string { return InitPrintNames[it] }

func NewInitType(label string) (it InitType, err error) {
	var ok bool
	if it, ok = InitNames[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("%w: unknown initial condition [%s]", InputParameters.ErrInvalidParameter, label)
	}
	return
}

// Wave integrates psi_tt = c^2 psi_xx as the first order system in (psi, pi = psi_t, phi = psi_x)
type Wave struct {
	// Input parameters
	ip              InputParameters.InputParameters1D
	C               float64
	Flux            FluxType
	BCLeft, BCRight types.BCFLAG
	Init            InitType
	El              *DG1D.Elements1D
	U, U0           *DG1D.VectorGridFunction
	DT              float64
	Nsteps          int
	rk              *DG1D.LowStorageRK
	partitionMap    *utils.PartitionMap
	// Face flux differences nx*(F- - F*) for pi and phi, (Nfp*NFaces) x K row major
	dFPi, dFPhi []float64
	plotOnce    sync.Once
	chart       *chart2d.Chart2D
	colorMap    *utils2.ColorMap
}

func NewWave(ip *InputParameters.InputParameters1D) (c *Wave, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	c = &Wave{
		ip: *ip,
		C:  ip.WaveSpeed,
	}
	if c.Flux, err = NewFluxType(ip.FluxType); err != nil {
		return nil, err
	}
	if c.BCLeft, err = NewBCType(ip.BCLeft); err != nil {
		return nil, err
	}
	if c.BCRight, err = NewBCType(ip.BCRight); err != nil {
		return nil, err
	}
	if c.Init, err = NewInitType(ip.InitType); err != nil {
		return nil, err
	}
	VX, EToV := DG1D.SimpleMesh1D(ip.XMin, ip.XMax, ip.Elements)
	if c.El, err = DG1D.NewElements1D(ip.PolynomialOrder, VX, EToV, ip.Periodic()); err != nil {
		return nil, err
	}
	el := c.El
	fmt.Printf("Polynomial Degree N = %d (1 is linear), Num Elements K = %d\nFlux: %s, BCs: [%s, %s], Init: %s\n\n",
		ip.PolynomialOrder, el.K, c.Flux.Print(), c.BCLeft, c.BCRight, c.Init.Print())

	c.U = NewVectorGridFunction(el)
	c.InitializeSolution(c.U)
	c.U0 = c.U.Copy()
	c.rk = DG1D.NewLowStorageRK(c.U)
	NP := ip.ParallelDegree
	if NP == 0 {
		NP = runtime.NumCPU()
	}
	c.partitionMap = utils.NewPartitionMap(NP, el.K)
	NF := el.Nfp * el.NFaces * el.K
	c.dFPi, c.dFPhi = make([]float64, NF), make([]float64, NF)

	if c.DT, c.Nsteps, err = c.SelectTimeStep(); err != nil {
		return nil, err
	}
	return
}

func NewVectorGridFunction(el *DG1D.Elements1D) *DG1D.VectorGridFunction {
	return DG1D.NewVectorGridFunction(NComp, el.K, el.Np, 0)
}
