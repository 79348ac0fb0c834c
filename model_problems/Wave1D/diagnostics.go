package Wave1D

import (
	"math"

	"github.com/notargets/dgwave/DG1D"
)

// L2Error integrates (psi - psi0)^2 over the mesh with the Lobatto weights scaled by each element Jacobian
func (c *Wave) L2Error(U0, U *DG1D.VectorGridFunction) float64 {
	var (
		el  = c.El
		W   = el.Ref.W
		sum float64
	)
	for k := 0; k < el.K; k++ {
		J := el.J.AtVec(k)
		for i := 0; i < el.Np; i++ {
			d := U.Get(Psi, k, i) - U0.Get(Psi, k, i)
			sum += W.AtVec(i) * J * d * d
		}
	}
	return math.Sqrt(sum)
}

// Energy is 1/2 * integral of pi^2 + c^2 phi^2, conserved by the exact solution on a periodic domain
func (c *Wave) Energy(U *DG1D.VectorGridFunction) float64 {
	var (
		el  = c.El
		W   = el.Ref.W
		c2  = c.C * c.C
		sum float64
	)
	for k := 0; k < el.K; k++ {
		J := el.J.AtVec(k)
		for i := 0; i < el.Np; i++ {
			pi, phi := U.Get(Pi, k, i), U.Get(Phi, k, i)
			sum += W.AtVec(i) * J * (pi*pi + c2*phi*phi)
		}
	}
	return 0.5 * sum
}
