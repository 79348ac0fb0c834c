package DG1D

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/notargets/dgwave/utils"
)

func TestJacobiGQ_LegendreExactness(t *testing.T) {
	for N := 0; N <= 12; N++ {
		X, W, err := JacobiGQ(0, 0, N)
		require.NoError(t, err)
		require.Equal(t, N+1, X.Len())
		require.Equal(t, N+1, W.Len())
		assert.InDeltaf(t, 2., floats.Sum(W.DataP), 1.e-13, "N = %d: sum(w) = %v", N, floats.Sum(W.DataP))
		// Gauss rules of N+1 points integrate degree 2N+1 exactly
		for k := 0; k <= 2*N+1; k++ {
			var s float64
			for i, xi := range X.DataP {
				s += W.DataP[i] * math.Pow(xi, float64(k))
			}
			exact := (1 - math.Pow(-1, float64(k+1))) / float64(k+1)
			assert.InDeltaf(t, exact, s, 1.e-12, "N = %d, moment %d", N, k)
		}
		// Independent check against the gonum fixed Legendre rule of the same size
		f := func(x float64) float64 { return math.Cos(x) + x*x*x }
		var s float64
		for i, xi := range X.DataP {
			s += W.DataP[i] * f(xi)
		}
		assert.InDeltaf(t, quad.Fixed(f, -1, 1, N+1, quad.Legendre{}, 0), s, 1.e-12, "N = %d", N)
	}
}

func TestJacobiGQ_JacobiWeightMoments(t *testing.T) {
	const (
		α   = 0.3
		β   = 0.7
		N   = 5
		tol = 1e-10
	)
	X, W, err := JacobiGQ(α, β, N)
	require.NoError(t, err)
	x, w := X.DataP, W.DataP

	// Nodes are the roots of P_{N+1}
	for i, xi := range x {
		pi := JacobiP(utils.NewVector(1, []float64{xi}), α, β, N+1)[0]
		assert.InDeltaf(t, 0, pi, tol, "P_%d(%g) node %d", N+1, xi, i)
		assert.True(t, xi > -1 && xi < 1)
		assert.True(t, w[i] > 0)
	}
	for k := 0; k <= 2*N+1; k++ {
		var s float64
		for i, xi := range x {
			s += w[i] * math.Pow(xi, float64(k))
		}
		assert.InDeltaf(t, exactMoment(k, α, β), s, tol, "moment %d", k)
	}
}

// exactMoment computes ∫_{-1}^1 x^k (1-x)^α (1+x)^β dx through the substitution u = (1+x)/2 and a binomial
// expansion of (2u-1)^k
func exactMoment(k int, α, β float64) (result float64) {
	for j := 0; j <= k; j++ {
		coeff := float64(combin.Binomial(k, j)) * math.Pow(2, float64(j)) * math.Pow(-1, float64(k-j))
		result += coeff * mathext.Beta(float64(j)+β+1, α+1)
	}
	result *= math.Pow(2, α+β+1)
	return
}

func TestJacobiGQ_Symmetry(t *testing.T) {
	for _, ab := range []float64{0, 0.5, 1, 2.5} {
		for N := 1; N <= 9; N++ {
			X, W, err := JacobiGQ(ab, ab, N)
			require.NoError(t, err)
			x, w := sortedRule(X.DataP, W.DataP)
			for i := 0; i < len(x)/2; i++ {
				j := len(x) - 1 - i
				assert.InDeltaf(t, -x[i], x[j], 1.e-13, "alpha=beta=%v N=%d", ab, N)
				assert.InDeltaf(t, w[i], w[j], 1.e-13, "alpha=beta=%v N=%d", ab, N)
			}
			if N%2 == 0 {
				assert.InDelta(t, 0, x[N/2], 1.e-14)
			}
		}
	}
}

func sortedRule(x, w []float64) (xs, ws []float64) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return x[idx[i]] < x[idx[j]] })
	xs, ws = make([]float64, len(x)), make([]float64, len(w))
	for i, ind := range idx {
		xs[i], ws[i] = x[ind], w[ind]
	}
	return
}

func TestJacobiGQ_DegenerateOrder(t *testing.T) {
	{ // Legendre: a single node at 0 with weight 2
		X, W, err := JacobiGQ(0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, []float64{0}, X.DataP)
		assert.InDelta(t, 2., W.AtVec(0), 1.e-15)
	}
	{ // The single node is the weighted mean of x, and the weight is the total weight
		α, β := 0.5, 1.5
		X, W, err := JacobiGQ(α, β, 0)
		require.NoError(t, err)
		assert.InDelta(t, (β-α)/(α+β+2), X.AtVec(0), 1.e-15)
		assert.InDelta(t, exactMoment(0, α, β), W.AtVec(0), 1.e-13)
	}
	{ // alpha+beta = 0 with alpha != beta exercises the cancelled first diagonal entry
		α, β := 0.5, -0.5
		X, W, err := JacobiGQ(α, β, 4)
		require.NoError(t, err)
		for k := 0; k <= 9; k++ {
			var s float64
			for i, xi := range X.DataP {
				s += W.DataP[i] * math.Pow(xi, float64(k))
			}
			assert.InDeltaf(t, exactMoment(k, α, β), s, 1.e-11, "moment %d", k)
		}
	}
	{ // alpha+beta = -1, Chebyshev weight
		α, β := -0.5, -0.5
		X, W, err := JacobiGQ(α, β, 3)
		require.NoError(t, err)
		x, w := sortedRule(X.DataP, W.DataP)
		for i := range x {
			// Chebyshev-Gauss nodes are cos((2i+1)π/(2n)) with equal weights π/n
			assert.InDelta(t, -math.Cos(float64(2*i+1)*math.Pi/8), x[i], 1.e-13)
			assert.InDelta(t, math.Pi/4, w[i], 1.e-13)
			assert.False(t, math.IsNaN(w[i]))
		}
	}
}

func TestJacobiGQ_LargeParameters(t *testing.T) {
	// Gamma(401) overflows float64, the log-Gamma form does not
	assert.True(t, math.IsInf(math.Gamma(401), 1))
	X, W, err := JacobiGQ(200, 200, 4)
	require.NoError(t, err)
	var sum float64
	for i, wi := range W.DataP {
		assert.False(t, math.IsNaN(wi) || math.IsInf(wi, 0), "weight %d = %v", i, wi)
		assert.True(t, wi > 0)
		assert.True(t, math.Abs(X.AtVec(i)) < 1)
		sum += wi
	}
	assert.InDelta(t, 1, sum/gamma0(200, 200), 1.e-12)
	p := JacobiP(X, 200, 200, 5)
	for _, val := range p {
		assert.False(t, math.IsNaN(val))
	}
}

func TestJacobiGQ_InvalidInput(t *testing.T) {
	{
		x, w := make([]float64, 3), make([]float64, 4)
		err := JacobiGQInto(0, 0, 3, x, w)
		assert.True(t, errors.Is(err, ErrShape))
		assert.Equal(t, []float64{0, 0, 0}, x)
		assert.Equal(t, []float64{0, 0, 0, 0}, w)
	}
	{
		x, w := make([]float64, 5), make([]float64, 5)
		err := JacobiGQInto(0, 0, 3, x, w)
		assert.True(t, errors.Is(err, ErrShape))
	}
	{
		_, _, err := JacobiGQ(-1, 0, 3)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		_, _, err = JacobiGQ(0, -1.5, 3)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		_, _, err = JacobiGQ(math.NaN(), 0, 3)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		_, _, err = JacobiGQ(0, 0, -1)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}
}

func TestJacobiGL(t *testing.T) {
	{
		X, err := JacobiGL(0, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, []float64{-1, 1}, X.DataP)
	}
	{
		_, err := JacobiGL(0, 0, 0)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		_, err = JacobiGL(0, 0, -2)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}
	{ // Known interior Lobatto nodes
		X, err := JacobiGL(0, 0, 3)
		require.NoError(t, err)
		s5 := 1. / math.Sqrt(5)
		assert.InDeltaSlice(t, []float64{-1, -s5, s5, 1}, X.DataP, 1.e-14)
		X, err = JacobiGL(0, 0, 4)
		require.NoError(t, err)
		s37 := math.Sqrt(3. / 7.)
		assert.InDeltaSlice(t, []float64{-1, -s37, 0, s37, 1}, X.DataP, 1.e-14)
	}
	for N := 1; N <= 16; N++ {
		X, err := JacobiGL(0, 0, N)
		require.NoError(t, err)
		require.Equal(t, N+1, X.Len())
		assert.Equal(t, -1., X.AtVec(0))
		assert.Equal(t, 1., X.AtVec(N))
		for i := 1; i <= N; i++ {
			assert.True(t, X.AtVec(i) > X.AtVec(i-1))
		}
		// Interior Lobatto nodes are the roots of P'_N
		for i := 1; i < N; i++ {
			dp := GradJacobiP(utils.NewVector(1, []float64{X.AtVec(i)}), 0, 0, N)[0]
			assert.InDeltaf(t, 0, dp, 1.e-9, "N = %d node %d", N, i)
		}
	}
}

func TestJacobiP_Orthonormality(t *testing.T) {
	for _, ab := range [][2]float64{{0, 0}, {0.3, 0.7}, {1, 1}, {2, -0.5}} {
		α, β := ab[0], ab[1]
		const Nmax = 7
		X, W, err := JacobiGQ(α, β, Nmax+2)
		require.NoError(t, err)
		P := make([][]float64, Nmax+1)
		for n := 0; n <= Nmax; n++ {
			P[n] = JacobiP(X, α, β, n)
			assert.Equal(t, X.Len(), len(P[n]))
		}
		for m := 0; m <= Nmax; m++ {
			for n := 0; n <= Nmax; n++ {
				var g float64
				for i := range X.DataP {
					g += W.DataP[i] * P[m][i] * P[n][i]
				}
				expected := 0.
				if m == n {
					expected = 1
				}
				assert.InDeltaf(t, expected, g, 1.e-11, "(%v,%v): <P_%d, P_%d>", α, β, m, n)
			}
		}
	}
}

func TestJacobiP_LowOrders(t *testing.T) {
	r := utils.NewVector(3, []float64{-1, 0, 0.5})
	// Orthonormal Legendre polynomials, sqrt((2n+1)/2) P_n
	assert.InDeltaSlice(t, utils.ConstArray(3, math.Sqrt(0.5)), JacobiP(r, 0, 0, 0), 1.e-15)
	assert.InDeltaSlice(t, []float64{-math.Sqrt(1.5), 0, 0.5 * math.Sqrt(1.5)}, JacobiP(r, 0, 0, 1), 1.e-15)
	p2 := func(x float64) float64 { return math.Sqrt(2.5) * 0.5 * (3*x*x - 1) }
	assert.InDeltaSlice(t, []float64{p2(-1), p2(0), p2(0.5)}, JacobiP(r, 0, 0, 2), 1.e-14)
	p3 := func(x float64) float64 { return math.Sqrt(3.5) * 0.5 * (5*x*x*x - 3*x) }
	assert.InDeltaSlice(t, []float64{p3(-1), p3(0), p3(0.5)}, JacobiP(r, 0, 0, 3), 1.e-14)
	dp3 := func(x float64) float64 { return math.Sqrt(3.5) * 0.5 * (15*x*x - 3) }
	assert.InDeltaSlice(t, []float64{dp3(-1), dp3(0), dp3(0.5)}, GradJacobiP(r, 0, 0, 3), 1.e-13)
	assert.Equal(t, []float64{0, 0, 0}, GradJacobiP(r, 0, 0, 0))
	assert.Panics(t, func() { JacobiP(r, 0, 0, -1) })
}

type countingSolver struct {
	calls int
}

func (c *countingSolver) SymTriDiagEigen(diag, offDiag []float64) ([]float64, []float64, error) {
	c.calls++
	return GonumEigenSym{}.SymTriDiagEigen(diag, offDiag)
}

func TestEigenSolverIsPluggable(t *testing.T) {
	saved := EigenSolver
	defer func() { EigenSolver = saved }()
	cs := &countingSolver{}
	EigenSolver = cs
	_, _, err := JacobiGQ(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cs.calls)
	_, _, err = JacobiGQ(0, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, cs.calls)
	_, err = JacobiGL(0, 0, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, cs.calls)

	_, _, err = GonumEigenSym{}.SymTriDiagEigen([]float64{1, 2}, nil)
	assert.True(t, errors.Is(err, ErrShape))
}
