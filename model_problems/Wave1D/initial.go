package Wave1D

import (
	"math"

	"github.com/notargets/dgwave/DG1D"
)

func (c *Wave) InitializeSolution(U *DG1D.VectorGridFunction) {
	var (
		el = c.El
	)
	for k := 0; k < el.K; k++ {
		for i := 0; i < el.Np; i++ {
			psi, pi, phi := c.InitialState(el.X.At(i, k))
			U.Set(Psi, k, i, psi)
			U.Set(Pi, k, i, pi)
			U.Set(Phi, k, i, phi)
		}
	}
}

// InitialState evaluates (psi, pi, phi) of the configured initial condition at x
func (c *Wave) InitialState(x float64) (psi, pi, phi float64) {
	switch c.Init {
	case INIT_Sinusoid:
		// Right moving wave psi(x - ct) = A sin(w(x - ct) + d), so pi = psi_t = -c psi_x
		sp := c.ip.Sine
		omega := 2 * math.Pi / sp.Wavelength
		psi = sp.Amplitude * math.Sin(omega*x+sp.Phase)
		phi = sp.Amplitude * omega * math.Cos(omega*x+sp.Phase)
		pi = -c.C * phi
	case INIT_Gaussian:
		fallthrough
	default:
		// Starts at rest, splitting into two pulses moving in opposite directions
		gp := c.ip.Gauss
		dx := x - gp.Center
		psi = gp.Amplitude * math.Exp(-dx*dx/(2*gp.Width*gp.Width))
		phi = -dx / (gp.Width * gp.Width) * psi
		pi = 0
	}
	return
}
