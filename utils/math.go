package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Low storage Runge-Kutta coefficients, Carpenter and Kennedy (1994), five stages, fourth order
var (
	RK4a = [5]float64{
		0.0,
		-567301805773.0 / 1357537059087.0,
		-2404267990393.0 / 2016746695238.0,
		-3550918686646.0 / 2091501179385.0,
		-1275806237668.0 / 842570457699.0,
	}
	RK4b = [5]float64{
		1432997174477.0 / 9575080441755.0,
		5161836677717.0 / 13612068292357.0,
		1720146321549.0 / 2090206949498.0,
		3134564353537.0 / 4481467310338.0,
		2277821191437.0 / 14882151754819.0,
	}
	RK4c = [5]float64{
		0.0,
		1432997174477.0 / 9575080441755.0,
		2526269341429.0 / 6820363183890.0,
		2006345519317.0 / 3224310063776.0,
		2802321613138.0 / 2924317926251.0,
	}
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// NewSymTriDiagonal assembles a dense symmetric matrix with d0 on the main diagonal and d1 on the first
// off diagonals
func NewSymTriDiagonal(d0, d1 []float64) (Tri *mat.SymDense) {
	var (
		n = len(d0)
	)
	if n == 0 || len(d1) != n-1 {
		panic(fmt.Errorf("off diagonal length %d inconsistent with diagonal length %d", len(d1), n))
	}
	dd := make([]float64, n*n)
	for i := 0; i < n; i++ {
		dd[i*n+i] = d0[i]
		if i < n-1 {
			dd[i*n+i+1] = d1[i]
			dd[(i+1)*n+i] = d1[i]
		}
	}
	Tri = mat.NewSymDense(n, dd)
	return
}
