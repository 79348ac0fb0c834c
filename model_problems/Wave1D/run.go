package Wave1D

import (
	"fmt"
	"math"
	"time"

	"github.com/notargets/dgwave/utils"
)

type Result struct {
	Steps   int
	DT      float64
	Time    float64 // simulated time at the end of the run
	L2Error float64 // psi against the initial state, measured at the comparison output
	Energy  float64 // at the end of the run
}

// SelectTimeStep returns the fixed step when configured, otherwise the largest step under the CFL bound that
// divides the simulated interval evenly
func (c *Wave) SelectTimeStep() (dt float64, Nsteps int, err error) {
	var (
		ip    = c.ip
		span  = ip.FinalTime - ip.T0
		dxMin = c.El.MinNodeSpacing()
	)
	if ip.UseFixedTimeStep {
		dt = ip.TimeStep
		Nsteps = int(math.Ceil(span/dt - utils.NODETOL))
	} else {
		dtCFL := ip.CFL * dxMin / c.C
		Nsteps = int(math.Ceil(span / dtCFL))
		dt = span / float64(Nsteps)
	}
	if Nsteps < 1 {
		Nsteps = 1
	}
	courant := c.C * dt / dxMin
	fmt.Printf("FinalTime = %8.4f, Nsteps = %d, dt = %8.6f, Courant = %6.4f\n", ip.FinalTime, Nsteps, dt, courant)
	if ip.CheckStability && courant > ip.MaxCourant {
		err = fmt.Errorf("%w: c*dt/dx_min = %8.5f is above %8.5f (dt = %v, dx_min = %v)",
			ErrUnstableTimeStep, courant, ip.MaxCourant, dt, dxMin)
	}
	return
}

// Run advances the solution from T0 to FinalTime, writing solution dumps every OutputInterval of simulated time
func (c *Wave) Run(showGraph bool, graphDelay ...time.Duration) (res *Result, err error) {
	var (
		ip           = c.ip
		logFrequency = ip.LogFrequency
		out          *outputFiles
		dumpCount    int
		compared     bool
		// Dump when the accumulator goes positive, starting with the initial state
		nextDump = c.DT / 2
		Time     = ip.T0
	)
	if logFrequency < 1 {
		logFrequency = 50
	}
	if out, err = openOutputFiles(ip.OutputFile, ip.DiffFile, ip.ConvergenceFile); err != nil {
		return
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	// Every run starts from the initial condition
	c.U.CopyFrom(c.U0)
	res = &Result{DT: c.DT}
	compare := func() error {
		res.L2Error = c.L2Error(c.U0, c.U)
		compared = true
		fmt.Printf("Order, deltat, num elems, L2 norm\n%d %v %d %v\n", c.El.Ref.N, c.DT, c.El.K, res.L2Error)
		if err := out.WriteDiff(c, Time); err != nil {
			return err
		}
		return out.AppendConvergence(c.El.Ref.N, c.DT, c.El.K, res.L2Error)
	}
	for tstep := 0; ; tstep++ {
		if ip.OutputInterval > 0 && nextDump > 0 {
			if err = out.WriteSolution(c, Time); err != nil {
				return
			}
			c.Plot(showGraph, graphDelay)
			if dumpCount == ip.ComparisonCount && ip.ComparisonCount > 0 {
				if err = compare(); err != nil {
					return
				}
			}
			nextDump -= ip.OutputInterval
			dumpCount++
		}
		if tstep == c.Nsteps {
			break
		}
		c.rk.Step(c.U, Time, c.DT, c.RHS)
		Time = ip.T0 + float64(tstep+1)*c.DT
		nextDump += c.DT
		res.Steps++
		if tstep%logFrequency == 0 {
			fmt.Printf("Time = %8.4f, max_resid[%d] = %8.4f, psimin = %8.6f, psimax = %8.6f\n",
				Time, tstep, c.rk.Resid.Data[Psi].Max(), c.U.Data[Psi].Min(), c.U.Data[Psi].Max())
			if utils.IsNan(c.U.Data) {
				err = fmt.Errorf("%w: solution is not finite at time %8.4f, step %d", ErrUnstableTimeStep, Time, tstep)
				return
			}
		}
	}
	res.Time = Time
	if utils.IsNan(c.U.Data) {
		err = fmt.Errorf("%w: solution is not finite at time %8.4f", ErrUnstableTimeStep, Time)
		return
	}
	if !compared {
		if err = compare(); err != nil {
			return
		}
	}
	res.Energy = c.Energy(c.U)
	fmt.Printf("Steps = %d, Time = %8.4f, L2 = %v, Energy = %v, %s\n",
		res.Steps, res.Time, res.L2Error, res.Energy, utils.GetMemUsage())
	return
}
