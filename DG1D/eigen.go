package DG1D

import (
	"fmt"

	"github.com/notargets/dgwave/utils"
	"gonum.org/v1/gonum/mat"
)

// SymTriDiagEigenSolver computes the full eigen-decomposition of the symmetric tridiagonal matrix with diag on
// the main diagonal and offDiag on the first off diagonals. It returns the eigenvalues and the first component
// of each corresponding unit eigenvector, in matching (not necessarily sorted) order.
type SymTriDiagEigenSolver interface {
	SymTriDiagEigen(diag, offDiag []float64) (values, firstComponents []float64, err error)
}

// EigenSolver is used by JacobiGQ
var EigenSolver SymTriDiagEigenSolver = GonumEigenSym{}

// GonumEigenSym solves the tridiagonal problem with the dense LAPACK symmetric eigensolver in gonum
type GonumEigenSym struct{}

func (GonumEigenSym) SymTriDiagEigen(diag, offDiag []float64) (values, firstComponents []float64, err error) {
	var (
		n   = len(diag)
		eig mat.EigenSym
		VV  mat.Dense
	)
	if n == 0 || len(offDiag) != n-1 {
		err = fmt.Errorf("%w: tridiagonal with %d diagonal and %d off diagonal entries", ErrShape, n, len(offDiag))
		return
	}
	JJ := utils.NewSymTriDiagonal(diag, offDiag)
	if ok := eig.Factorize(JJ, true); !ok {
		err = fmt.Errorf("eigenvalue decomposition failed for tridiagonal of order %d", n)
		return
	}
	values = eig.Values(nil)
	eig.VectorsTo(&VV)
	firstComponents = make([]float64, n)
	copy(firstComponents, VV.RawRowView(0))
	return
}
