package DG1D

import (
	"fmt"
	"math"
	"sort"

	"github.com/notargets/dgwave/utils"
)

// JacobiGQ computes the N+1 Gauss quadrature nodes and weights for the Jacobi weight (1-x)^alpha (1+x)^beta.
// Nodes are returned in the order produced by the eigensolver and must not be assumed sorted.
// For N = 0 the node is the root of P_1, (beta-alpha)/(alpha+beta+2), with the full weight integral as its weight,
// which agrees with the N >= 1 path and reduces to (0, 2) for Legendre.
func JacobiGQ(alpha, beta float64, N int) (X, W utils.Vector, err error) {
	if N < 0 {
		err = fmt.Errorf("%w: JacobiGQ order N = %d must be non-negative", ErrInvalidArgument, N)
		return
	}
	x, w := make([]float64, N+1), make([]float64, N+1)
	if err = JacobiGQInto(alpha, beta, N, x, w); err != nil {
		return
	}
	return utils.NewVector(N+1, x), utils.NewVector(N+1, w), nil
}

// JacobiGQInto writes the Gauss nodes and weights of order N into x and w, which must both have length N+1
func JacobiGQInto(alpha, beta float64, N int, x, w []float64) (err error) {
	if err = checkJacobiParameters(alpha, beta); err != nil {
		return
	}
	if N < 0 {
		return fmt.Errorf("%w: JacobiGQ order N = %d must be non-negative", ErrInvalidArgument, N)
	}
	if len(x) != N+1 || len(w) != N+1 {
		return fmt.Errorf("%w: JacobiGQ storage has len(x) = %d, len(w) = %d, want %d for order %d",
			ErrShape, len(x), len(w), N+1, N)
	}
	if N == 0 {
		x[0] = (beta - alpha) / (alpha + beta + 2.)
		w[0] = gamma0(alpha, beta)
		return
	}
	var (
		ab     = alpha + beta
		d0, d1 = make([]float64, N+1), make([]float64, N)
	)
	// main diagonal: (beta^2-alpha^2)/(h1*(h1+2)), h1 = 2i+alpha+beta
	// The i=0 entry cancels to (beta-alpha)/(alpha+beta+2), avoiding 0/0 when alpha+beta = 0
	d0[0] = (beta - alpha) / (ab + 2.)
	for i := 1; i < N+1; i++ {
		h1 := 2*float64(i) + ab
		if denom := h1 * (h1 + 2.); denom > 0 {
			d0[i] = (beta*beta - alpha*alpha) / denom
		}
	}
	// 1st off diagonal: 2/(h1+2)*sqrt(ip1*(ip1+alpha+beta)*(ip1+alpha)*(ip1+beta)/((h1+1)*(h1+3)))
	// The i=0 entry cancels the (alpha+beta+1) factor, which is singular when alpha+beta = -1
	d1[0] = 2. / (ab + 2.) * math.Sqrt((alpha+1.)*(beta+1.)/(ab+3.))
	for i := 1; i < N; i++ {
		ip1 := float64(i + 1)
		h1 := 2*float64(i) + ab
		d1[i] = 2. / (h1 + 2.) * math.Sqrt(ip1*(ip1+ab)*(ip1+alpha)*(ip1+beta)/((h1+1.)*(h1+3.)))
	}
	var (
		values, v0 []float64
	)
	if values, v0, err = EigenSolver.SymTriDiagEigen(d0, d1); err != nil {
		return
	}
	g0 := gamma0(alpha, beta)
	copy(x, values)
	for i := range w {
		w[i] = v0[i] * v0[i] * g0
	}
	return
}

// JacobiGL computes the N+1 Gauss-Lobatto nodes in ascending order, the endpoints are exactly -1 and 1
func JacobiGL(alpha, beta float64, N int) (X utils.Vector, err error) {
	if N < 1 {
		err = fmt.Errorf("%w: JacobiGL order N = %d, a Lobatto rule needs N >= 1", ErrInvalidArgument, N)
		return
	}
	if err = checkJacobiParameters(alpha, beta); err != nil {
		return
	}
	x := make([]float64, N+1)
	x[0], x[N] = -1, 1
	if N > 1 {
		var (
			xint = x[1:N]
			wint = make([]float64, N-1)
		)
		if err = JacobiGQInto(alpha+1, beta+1, N-2, xint, wint); err != nil {
			return
		}
		sort.Float64s(xint)
	}
	X = utils.NewVector(N+1, x)
	return
}

// JacobiP evaluates the orthonormal Jacobi polynomial of order N at the points r
func JacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	var (
		Nc = r.Len()
		ab = alpha + beta
	)
	if N < 0 {
		panic(fmt.Errorf("%w: JacobiP degree %d", ErrInvalidArgument, N))
	}
	pOld := utils.ConstArray(Nc, 1./math.Sqrt(gamma0(alpha, beta)))
	if N == 0 {
		return pOld
	}
	rg1 := 1. / math.Sqrt(gamma1(alpha, beta))
	p = make([]float64, Nc)
	for i, x := range r.DataP {
		p[i] = rg1 * ((ab+2.0)*x/2.0 + (alpha-beta)/2.0)
	}
	if N == 1 {
		return
	}
	// Three term recurrence, keeping only the last two orders
	aold := 2.0 / (ab + 2.0) * math.Sqrt((alpha+1.)*(beta+1.)/(ab+3.0))
	for i := 1; i < N; i++ {
		var (
			fi   = float64(i)
			ip1  = fi + 1
			h1   = 2.0*fi + ab
			anew = 2.0 / (h1 + 2.0) * math.Sqrt(ip1*(ip1+ab)*(ip1+alpha)*(ip1+beta)/(h1+1.0)/(h1+3.0))
			bnew = -(alpha*alpha - beta*beta) / h1 / (h1 + 2.0)
			pNew = make([]float64, Nc)
		)
		for j, x := range r.DataP {
			pNew[j] = (-aold*pOld[j] + (x-bnew)*p[j]) / anew
		}
		pOld, p = p, pNew
		aold = anew
	}
	return
}

// GradJacobiP evaluates the r derivative of the orthonormal Jacobi polynomial of order N at the points r
func GradJacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	if N == 0 {
		p = make([]float64, r.Len())
		return
	}
	p = JacobiP(r, alpha+1, beta+1, N-1)
	fN := float64(N)
	fac := math.Sqrt(fN * (fN + alpha + beta + 1))
	for i, val := range p {
		p[i] = val * fac
	}
	return
}

func checkJacobiParameters(alpha, beta float64) error {
	if !(alpha > -1) || !(beta > -1) {
		return fmt.Errorf("%w: Jacobi parameters alpha = %v, beta = %v must exceed -1", ErrInvalidArgument, alpha, beta)
	}
	return nil
}

// gamma0 is the squared norm of the order zero Jacobi polynomial, 2^(a+b+1) Gamma(a+1) Gamma(b+1) / Gamma(a+b+2),
// formed from log-Gamma so that large parameters do not overflow
func gamma0(alpha, beta float64) float64 {
	var (
		ab1 = alpha + beta + 1.
	)
	lga, _ := math.Lgamma(alpha + 1.)
	lgb, _ := math.Lgamma(beta + 1.)
	lgab, _ := math.Lgamma(ab1 + 1.)
	return math.Exp(ab1*math.Ln2 + lga + lgb - lgab)
}

func gamma1(alpha, beta float64) float64 {
	var (
		ab = alpha + beta
		a1 = alpha + 1.
		b1 = beta + 1.
	)
	return a1 * b1 * gamma0(alpha, beta) / (ab + 3.0)
}
