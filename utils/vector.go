package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

func NewVector(N int, dataO ...[]float64) (R Vector) {
	var (
		data []float64
	)
	if len(dataO) != 0 {
		if len(dataO[0]) != N {
			panic(fmt.Errorf("mismatch in allocation: NewVector N = %v, len(data[0]) = %v", N, len(dataO[0])))
		}
		data = dataO[0]
	} else {
		data = make([]float64, N)
	}
	R = Vector{
		V:     mat.NewVecDense(N, data),
		DataP: data,
	}
	return
}

func (v Vector) AtVec(i int) float64 { return v.DataP[i] }
func (v Vector) Len() int            { return len(v.DataP) }

func (v Vector) Copy() (R Vector) { // Does not change receiver
	data := make([]float64, len(v.DataP))
	copy(data, v.DataP)
	return NewVector(len(data), data)
}

func (v Vector) AddScalar(a float64) Vector { // Changes receiver
	floats.AddConst(a, v.DataP)
	return v
}

func (v Vector) Subtract(a Vector) Vector { // Changes receiver
	floats.Sub(v.DataP, a.DataP)
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector { // Changes receiver
	for i, val := range v.DataP {
		v.DataP[i] = f(val)
	}
	return v
}

func (v Vector) Min() float64 { return floats.Min(v.DataP) }

// Find returns the positions of entries satisfying op against target, optionally comparing magnitudes
func (v Vector) Find(op EvalOp, target float64, abs bool) (I Index) {
	for i, val := range v.DataP {
		if abs {
			val = math.Abs(val)
		}
		if op.Eval(val, target) {
			I = append(I, i)
		}
	}
	return
}
