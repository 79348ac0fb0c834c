package DG1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func integrateDecay(dt, tFinal float64) float64 {
	var (
		U    = NewVectorGridFunction(1, 1, 1, 1)
		rk   = NewLowStorageRK(U)
		time float64
	)
	decay := func(U, RHS *VectorGridFunction, _ float64) {
		RHS.Data[0].DataP[0] = -U.Data[0].DataP[0]
	}
	nSteps := int(math.Round(tFinal / dt))
	for n := 0; n < nSteps; n++ {
		rk.Step(U, time, dt, decay)
		time += dt
	}
	return U.Get(0, 0, 0)
}

func TestLowStorageRK_Order(t *testing.T) {
	exact := math.Exp(-1)
	e1 := math.Abs(integrateDecay(0.1, 1) - exact)
	e2 := math.Abs(integrateDecay(0.05, 1) - exact)
	assert.True(t, e1 < 1.e-6, "error %v", e1)
	ratio := e1 / e2
	// Fourth order: halving dt divides the error by about 16
	assert.True(t, ratio > 12 && ratio < 20, "error ratio %v", ratio)
}

func TestLowStorageRK_StageTimes(t *testing.T) {
	var (
		U    = NewVectorGridFunction(2, 1, 1, 0)
		rk   = NewLowStorageRK(U)
		dt   = 0.01
		time float64
	)
	// u' = cos(t) has solution sin(t), only reachable when each stage sees its own time
	forcing := func(U, RHS *VectorGridFunction, t float64) {
		RHS.Data[0].DataP[0] = math.Cos(t)
		RHS.Data[1].DataP[0] = 2 * t
	}
	for n := 0; n < 100; n++ {
		rk.Step(U, time, dt, forcing)
		time += dt
	}
	assert.InDelta(t, math.Sin(1), U.Get(0, 0, 0), 1.e-9)
	// The rational stage coefficients satisfy the order conditions to about 1e-11 per step
	assert.InDelta(t, 1., U.Get(1, 0, 0), 1.e-10)
}

func TestLowStorageRK_ShapeMismatch(t *testing.T) {
	rk := NewLowStorageRK(NewVectorGridFunction(3, 4, 2, 0))
	noop := func(U, RHS *VectorGridFunction, _ float64) {}
	assert.Panics(t, func() { rk.Step(NewVectorGridFunction(3, 5, 2, 0), 0, 0.1, noop) })
	assert.NotPanics(t, func() { rk.Step(NewVectorGridFunction(3, 4, 2, 0), 0, 0.1, noop) })
}
