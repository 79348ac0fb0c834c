package DG1D

import (
	"github.com/notargets/dgwave/utils"
)

// RHSFunc evaluates the semi-discrete right hand side of U at time into RHS
type RHSFunc func(U, RHS *VectorGridFunction, time float64)

// LowStorageRK advances a VectorGridFunction with the five stage, fourth order low storage Runge-Kutta scheme,
// keeping a single residual accumulator across stages
type LowStorageRK struct {
	Resid, RHS *VectorGridFunction
}

func NewLowStorageRK(U *VectorGridFunction) *LowStorageRK {
	return &LowStorageRK{
		Resid: NewVectorGridFunction(U.VectorDim(), U.GridDim(), U.PointsDim(), 0),
		RHS:   NewVectorGridFunction(U.VectorDim(), U.GridDim(), U.PointsDim(), 0),
	}
}

// Step advances U in place from time to time+dt. Each stage completes the RHS over all elements before the
// stage update reads it.
func (rk *LowStorageRK) Step(U *VectorGridFunction, time, dt float64, rhs RHSFunc) {
	U.AssertShape(rk.Resid.VectorDim(), rk.Resid.GridDim(), rk.Resid.PointsDim())
	for INTRK := 0; INTRK < 5; INTRK++ {
		timelocal := time + dt*utils.RK4c[INTRK]
		rhs(U, rk.RHS, timelocal)
		for n := 0; n < U.VectorDim(); n++ {
			// resid = rk4a(INTRK) * resid + dt * rhs;
			rk.Resid.Component(n).Scale(utils.RK4a[INTRK]).AddScaled(dt, rk.RHS.Component(n))
			// u += rk4b(INTRK) * resid;
			U.Component(n).AddScaled(utils.RK4b[INTRK], rk.Resid.Component(n))
		}
	}
}
