package Wave1D

import (
	"sync"

	"github.com/notargets/dgwave/DG1D"
)

// RHS evaluates the strong form right hand side
//
//	RHS = -Rx * Dr * F + LIFT * (FScale * nx * (F- - F*)) + S
//
// with F = (0, -c^2 phi, -pi) and S = (pi, 0, 0). Face fluxes are computed once for the whole mesh, then the
// element local volume terms run concurrently over the partition map.
func (c *Wave) RHS(U, RHS *DG1D.VectorGridFunction, time float64) {
	var (
		el = c.El
		wg = sync.WaitGroup{}
	)
	U.AssertShape(NComp, el.K, el.Np)
	RHS.AssertShape(NComp, el.K, el.Np)
	c.FaceFluxes(U)
	for np := 0; np < c.partitionMap.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := c.partitionMap.GetBucketRange(np)
			c.volumeRHS(U, RHS, kMin, kMax)
		}(np)
	}
	wg.Wait()
}

func (c *Wave) volumeRHS(U, RHS *DG1D.VectorGridFunction, kMin, kMax int) {
	var (
		el      = c.El
		K, Np   = el.K, el.Np
		c2      = c.C * c.C
		Dr      = el.Dr.DataP
		LIFT    = el.LIFT.DataP
		FScale  = el.FScale.DataP
		NF      = el.Nfp * el.NFaces
		pi, phi = U.Data[Pi].DataP, U.Data[Phi].DataP
		rPsi    = RHS.Data[Psi].DataP
		rPi     = RHS.Data[Pi].DataP
		rPhi    = RHS.Data[Phi].DataP
	)
	for k := kMin; k < kMax; k++ {
		rx := el.Rx.DataP[k]
		for i := 0; i < Np; i++ {
			var dPhi, dPi float64
			for j := 0; j < Np; j++ {
				dr := Dr[i*Np+j]
				dPhi += dr * phi[j*K+k]
				dPi += dr * pi[j*K+k]
			}
			var liftPi, liftPhi float64
			for f := 0; f < NF; f++ {
				l := LIFT[i*NF+f] * FScale[f*K+k]
				liftPi += l * c.dFPi[f*K+k]
				liftPhi += l * c.dFPhi[f*K+k]
			}
			ind := i*K + k
			rPsi[ind] = pi[ind]
			rPi[ind] = c2*rx*dPhi + liftPi
			rPhi[ind] = rx*dPi + liftPhi
		}
	}
}

// FaceFluxes fills the face flux differences from the trace of U, applying boundary conditions at domain ends
func (c *Wave) FaceFluxes(U *DG1D.VectorGridFunction) {
	var (
		el      = c.El
		K       = el.K
		pi, phi = U.Data[Pi].DataP, U.Data[Phi].DataP
		nx      = el.NX.DataP
		c2      = c.C * c.C
	)
	for f := 0; f < el.Nfp*el.NFaces; f++ {
		for k := 0; k < K; k++ {
			fi := f*K + k
			vM, vP := el.VmapM[fi], el.VmapP[fi]
			piM, phiM := pi[vM], phi[vM]
			piP, phiP := pi[vP], phi[vP]
			if vM == vP {
				piP, phiP = c.boundaryState(piM, phiM, nx[fi])
			}
			piS, phiS := c.numericalFlux(piM, phiM, piP, phiP, nx[fi])
			c.dFPi[fi] = nx[fi] * c2 * (phiS - phiM)
			c.dFPhi[fi] = nx[fi] * (piS - piM)
		}
	}
}
