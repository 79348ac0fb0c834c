package DG1D

import (
	"fmt"

	"github.com/notargets/dgwave/utils"
)

// ReferenceElement holds the order dependent nodal operators on r in [-1,1]. It is built once and shared
// read only by every element of the mesh.
type ReferenceElement struct {
	N, Np int
	R, W  utils.Vector // Legendre-Gauss-Lobatto nodes and quadrature weights
	V     utils.Matrix // Vandermonde, V(i,j) = P_j(r_i)
	Vinv  utils.Matrix
	Vr    utils.Matrix // r derivative of the Vandermonde
	Dr    utils.Matrix // nodal differentiation, Dr = Vr * Vinv
	M     utils.Matrix // mass matrix, (V*V^T)^-1
	LIFT  utils.Matrix // surface to volume lift for the two end points
}

func NewReferenceElement(N int) (re *ReferenceElement, err error) {
	if N < 1 {
		err = fmt.Errorf("%w: element order N = %d, must be at least 1", ErrInvalidArgument, N)
		return
	}
	re = &ReferenceElement{
		N:  N,
		Np: N + 1,
	}
	if re.R, err = JacobiGL(0, 0, N); err != nil {
		return nil, err
	}
	re.V = Vandermonde1D(N, re.R)
	if re.Vinv, err = re.V.Inverse(); err != nil {
		return nil, fmt.Errorf("order %d Vandermonde: %w", N, err)
	}
	re.Vr = GradVandermonde1D(re.R, N)
	if re.Dr, err = Dmatrix1D(re.V, re.Vr); err != nil {
		return nil, fmt.Errorf("order %d differentiation matrix: %w", N, err)
	}
	if re.M, err = re.V.Mul(re.V.Transpose()).Inverse(); err != nil {
		return nil, fmt.Errorf("order %d mass matrix: %w", N, err)
	}
	// The Lobatto weight of node i is the integral of its Lagrange interpolant, the i-th mass matrix row sum
	re.W = re.M.SumRows()
	re.LIFT = Lift1D(re.V, re.Np, 2, 1)

	re.V.SetReadOnly("V")
	re.Vinv.SetReadOnly("Vinv")
	re.Vr.SetReadOnly("Vr")
	re.Dr.SetReadOnly("Dr")
	re.M.SetReadOnly("M")
	re.LIFT.SetReadOnly("LIFT")
	return
}

func Vandermonde1D(N int, R utils.Vector) (V utils.Matrix) {
	V = utils.NewMatrix(R.Len(), N+1)
	for j := 0; j < N+1; j++ {
		V.SetCol(j, JacobiP(R, 0, 0, j))
	}
	return
}

func GradVandermonde1D(r utils.Vector, N int) (Vr utils.Matrix) {
	Vr = utils.NewMatrix(r.Len(), N+1)
	for i := 0; i < N+1; i++ {
		Vr.SetCol(i, GradJacobiP(r, 0, 0, i))
	}
	return
}

// Dmatrix1D solves Dr * V = Vr for the nodal differentiation matrix
func Dmatrix1D(V, Vr utils.Matrix) (Dr utils.Matrix, err error) {
	nr, nc := V.Dims()
	nrr, ncr := Vr.Dims()
	if nr != nc || nrr != nr || ncr != nc {
		err = fmt.Errorf("%w: V is %d x %d, Vr is %d x %d", ErrShape, nr, nc, nrr, ncr)
		return
	}
	return Vr.RightSolve(V)
}

func Lift1D(V utils.Matrix, Np, Nfaces, Nfp int) (LIFT utils.Matrix) {
	Emat := utils.NewMatrix(Np, Nfaces*Nfp)
	Emat.Set(0, 0, 1)
	Emat.Set(Np-1, 1, 1)
	LIFT = V.Mul(V.Transpose()).Mul(Emat)
	return
}
