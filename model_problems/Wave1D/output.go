package Wave1D

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// outputFiles holds the gnuplot solution dumps, the one period difference file, and the convergence summary.
// A nil writer disables that output.
type outputFiles struct {
	solution, diff  *bufio.Writer
	files           []*os.File
	convergencePath string
}

func openOutputFiles(solutionPath, diffPath, convergencePath string) (out *outputFiles, err error) {
	out = &outputFiles{convergencePath: convergencePath}
	open := func(path string) (w *bufio.Writer, err error) {
		var f *os.File
		if len(path) == 0 {
			return
		}
		if f, err = os.Create(path); err != nil {
			return
		}
		out.files = append(out.files, f)
		return bufio.NewWriter(f), nil
	}
	if out.solution, err = open(solutionPath); err != nil {
		return nil, err
	}
	if out.diff, err = open(diffPath); err != nil {
		_ = out.Close()
		return nil, err
	}
	return
}

// WriteSolution appends one gnuplot block: a time header then "x psi pi phi" per node, in element order
func (out *outputFiles) WriteSolution(c *Wave, time float64) (err error) {
	if out.solution == nil {
		return
	}
	el := c.El
	if _, err = fmt.Fprintf(out.solution, "\n\n #time = %v\n", time); err != nil {
		return
	}
	for k := 0; k < el.K; k++ {
		for i := 0; i < el.Np; i++ {
			if _, err = fmt.Fprintf(out.solution, "%v %v %v %v\n", el.X.At(i, k),
				c.U.Get(Psi, k, i), c.U.Get(Pi, k, i), c.U.Get(Phi, k, i)); err != nil {
				return
			}
		}
	}
	return
}

// WriteDiff writes "x psi-psi0" per node at the comparison time
func (out *outputFiles) WriteDiff(c *Wave, time float64) (err error) {
	if out.diff == nil {
		return
	}
	el := c.El
	if _, err = fmt.Fprintf(out.diff, " #time = %v\n", time); err != nil {
		return
	}
	for k := 0; k < el.K; k++ {
		for i := 0; i < el.Np; i++ {
			if _, err = fmt.Fprintf(out.diff, "%v %v\n", el.X.At(i, k),
				c.U.Get(Psi, k, i)-c.U0.Get(Psi, k, i)); err != nil {
				return
			}
		}
	}
	return
}

// AppendConvergence adds the line "order dt K L2" to the convergence file, creating it if needed
func (out *outputFiles) AppendConvergence(N int, dt float64, K int, L2 float64) (err error) {
	var f *os.File
	if len(out.convergencePath) == 0 {
		return
	}
	if f, err = os.OpenFile(out.convergencePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
		return
	}
	if _, err = fmt.Fprintf(f, "%d %v %d %v\n", N, dt, K, L2); err != nil {
		_ = f.Close()
		return
	}
	return f.Close()
}

func (out *outputFiles) Close() (err error) {
	var errs []error
	for _, w := range []*bufio.Writer{out.solution, out.diff} {
		if w != nil {
			errs = append(errs, w.Flush())
		}
	}
	for _, f := range out.files {
		errs = append(errs, f.Close())
	}
	return errors.Join(errs...)
}
