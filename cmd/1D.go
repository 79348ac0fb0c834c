/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/dgwave/InputParameters"
	"github.com/notargets/dgwave/model_problems/Wave1D"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One Dimensional Wave Equation Solutions",
	Long: `
Executes the Nodal Discontinuous Galerkin solver for the scalar wave equation.
Parameters come from the input file, overridden by the config file, DGWAVE_* environment
variables and finally the command line,

dgwave 1D -I input.yaml -k 40 -n 6`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			ip  *InputParameters.InputParameters1D
		)
		fmt.Println("1D called")
		m1d := &Model1D{}
		if m1d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		m1d.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		m1d.Delay = time.Duration(dr) * time.Millisecond
		m1d.Profile, _ = cmd.Flags().GetBool("profile")
		m1d.Perf, _ = cmd.Flags().GetBool("perf")
		for _, fk := range flagKeys {
			if err = viper.BindPFlag(fk.key, cmd.Flags().Lookup(fk.flag)); err != nil {
				panic(err)
			}
		}
		if ip, err = processInput(m1d, viper.GetViper()); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = Run1D(m1d, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

// Flags that override input file entries, keyed as in the input file
var flagKeys = []struct{ flag, key string }{
	{"n", "PolynomialOrder"},
	{"k", "Elements"},
	{"CFL", "CFL"},
	{"finalTime", "FinalTime"},
	{"waveSpeed", "WaveSpeed"},
	{"parallel", "ParallelDegree"},
	{"flux", "FluxType"},
	{"init", "InitType"},
	{"outputFile", "OutputFile"},
	{"convergenceFile", "ConvergenceFile"},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	ip := InputParameters.NewInputParameters1D()
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- PolynomialOrder\n\t- Elements\n\t- InitType")
	OneDCmd.Flags().IntP("k", "k", ip.Elements, "Number of elements in model")
	OneDCmd.Flags().IntP("n", "n", ip.PolynomialOrder, "polynomial degree")
	OneDCmd.Flags().IntP("parallel", "p", ip.ParallelDegree, "number of goroutines evaluating the RHS, 0 uses all CPUs")
	OneDCmd.Flags().Float64("CFL", ip.CFL, "CFL - increase for speedup, decrease for stability")
	OneDCmd.Flags().Float64("finalTime", ip.FinalTime, "FinalTime - the target end time for the sim")
	OneDCmd.Flags().Float64("waveSpeed", ip.WaveSpeed, "wave speed c")
	OneDCmd.Flags().String("flux", ip.FluxType, "numerical flux: upwind or central")
	OneDCmd.Flags().String("init", ip.InitType, "initial condition: gaussian or sinusoid")
	OneDCmd.Flags().String("outputFile", "", "gnuplot file for solution dumps")
	OneDCmd.Flags().String("convergenceFile", "", "file accumulating \"order dt K L2\" lines")
	OneDCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	OneDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	OneDCmd.Flags().Bool("profile", false, "write a CPU profile to the current directory")
	OneDCmd.Flags().Bool("perf", false, "report the hardware instruction count of the run (linux)")
}

type Model1D struct {
	ICFile        string
	Graph         bool
	Delay         time.Duration
	Profile, Perf bool
}

func processInput(m1d *Model1D, v *viper.Viper) (ip *InputParameters.InputParameters1D, err error) {
	if ip, err = InputParameters.ReadInputParameters1D(m1d.ICFile); err != nil {
		return
	}
	MergeOverrides(v, ip)
	if err = ip.Validate(); err != nil {
		exampleFile := `
########################################
Title: "Gaussian pulse"
PolynomialOrder: 4
Elements: 20
InitType: gaussian # Can be "sinusoid"
FluxType: upwind
BCLeft: periodic
BCRight: periodic
FinalTime: 2
ConvergenceFile: L2error.dat
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		return nil, err
	}
	return
}

// MergeOverrides copies every key set in v, from flags, environment or config file, over the input parameters
func MergeOverrides(v *viper.Viper, ip *InputParameters.InputParameters1D) {
	if v.IsSet("PolynomialOrder") {
		ip.PolynomialOrder = v.GetInt("PolynomialOrder")
	}
	if v.IsSet("Elements") {
		ip.Elements = v.GetInt("Elements")
	}
	if v.IsSet("CFL") {
		ip.CFL = v.GetFloat64("CFL")
	}
	if v.IsSet("FinalTime") {
		ip.FinalTime = v.GetFloat64("FinalTime")
	}
	if v.IsSet("WaveSpeed") {
		ip.WaveSpeed = v.GetFloat64("WaveSpeed")
	}
	if v.IsSet("ParallelDegree") {
		ip.ParallelDegree = v.GetInt("ParallelDegree")
	}
	if v.IsSet("FluxType") {
		ip.FluxType = v.GetString("FluxType")
	}
	if v.IsSet("InitType") {
		ip.InitType = v.GetString("InitType")
	}
	if v.IsSet("OutputFile") {
		ip.OutputFile = v.GetString("OutputFile")
	}
	if v.IsSet("ConvergenceFile") {
		ip.ConvergenceFile = v.GetString("ConvergenceFile")
	}
}

func Run1D(m1d *Model1D, ip *InputParameters.InputParameters1D) (err error) {
	var (
		c *Wave1D.Wave
	)
	ip.Print()
	if m1d.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	if c, err = Wave1D.NewWave(ip); err != nil {
		return
	}
	run := func() error {
		res, err := c.Run(m1d.Graph, m1d.Delay)
		if err != nil {
			return err
		}
		fmt.Printf("Steps = %d, dt = %8.6f, Time = %8.4f, L2 error = %v\n", res.Steps, res.DT, res.Time, res.L2Error)
		return nil
	}
	if m1d.Perf {
		return countInstructions(run)
	}
	return run()
}
