package Wave1D

import "github.com/notargets/dgwave/types"

// Characteristics of the (pi, phi) subsystem: w+ = pi - c*phi moves at +c, w- = pi + c*phi moves at -c

func (c *Wave) numericalFlux(piM, phiM, piP, phiP, nx float64) (piS, phiS float64) {
	switch c.Flux {
	case FLUX_Central:
		piS, phiS = 0.5*(piM+piP), 0.5*(phiM+phiP)
	case FLUX_Upwind:
		fallthrough
	default:
		// Left and right states relative to +x
		piL, phiL, piR, phiR := piM, phiM, piP, phiP
		if nx < 0 {
			piL, phiL, piR, phiR = piP, phiP, piM, phiM
		}
		wPlus := piL - c.C*phiL
		wMinus := piR + c.C*phiR
		piS = 0.5 * (wPlus + wMinus)
		phiS = 0.5 * (wMinus - wPlus) / c.C
	}
	return
}

// boundaryState returns the exterior trace at a domain end given the interior trace and the outward normal
func (c *Wave) boundaryState(piM, phiM, nx float64) (piP, phiP float64) {
	bc := c.BCRight
	if nx < 0 {
		bc = c.BCLeft
	}
	switch bc {
	case types.BC_Reflecting:
		// psi is held fixed, so pi changes sign and phi passes through
		piP, phiP = -piM, phiM
	case types.BC_Outgoing:
		if nx > 0 {
			// w- entering from the right is zero, w+ leaves unchanged
			wPlus := piM - c.C*phiM
			piP, phiP = 0.5*wPlus, -0.5*wPlus/c.C
		} else {
			wMinus := piM + c.C*phiM
			piP, phiP = 0.5*wMinus, 0.5*wMinus/c.C
		}
	default:
		// Periodic ends never reach here, the mesh connects them
		piP, phiP = piM, phiM
	}
	return
}
