package InputParameters

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputParameters1D_Parse(t *testing.T) {
	fileInput := []byte(`
Title: Reflecting box
PolynomialOrder: 6
Elements: 40
FluxType: central
BCLeft: reflecting
BCRight: outgoing
InitType: sinusoid # Can be gaussian
Sine:
  Amplitude: 0.5
  Wavelength: 2.
FinalTime: 4.
ConvergenceFile: L2error.dat
`)
	ip := NewInputParameters1D()
	require.NoError(t, ip.Parse(fileInput))
	assert.Equal(t, "Reflecting box", ip.Title)
	assert.Equal(t, 6, ip.PolynomialOrder)
	assert.Equal(t, 40, ip.Elements)
	assert.Equal(t, "central", ip.FluxType)
	assert.Equal(t, 0.5, ip.Sine.Amplitude)
	assert.Equal(t, 2., ip.Sine.Wavelength)
	assert.Equal(t, 4., ip.FinalTime)
	assert.Equal(t, "L2error.dat", ip.ConvergenceFile)
	assert.False(t, ip.Periodic())
	// Keys absent from the file keep their defaults
	assert.Equal(t, 1., ip.WaveSpeed)
	assert.Equal(t, 0.5, ip.CFL)
	assert.Equal(t, 0.1, ip.Gauss.Width)
	require.NoError(t, ip.Validate())
	ip.Print()
}

func TestReadInputParameters1D(t *testing.T) {
	{
		ip, err := ReadInputParameters1D("")
		require.NoError(t, err)
		assert.Equal(t, NewInputParameters1D(), ip)
		assert.True(t, ip.Periodic())
		assert.NoError(t, ip.Validate())
	}
	{
		path := filepath.Join(t.TempDir(), "input.yaml")
		require.NoError(t, os.WriteFile(path, []byte("Elements: 8\nCFL: 0.25\n"), 0644))
		ip, err := ReadInputParameters1D(path)
		require.NoError(t, err)
		assert.Equal(t, 8, ip.Elements)
		assert.Equal(t, 0.25, ip.CFL)
	}
	{
		_, err := ReadInputParameters1D(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	}
	{
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("Elements: [1, 2\n"), 0644))
		_, err := ReadInputParameters1D(path)
		assert.Error(t, err)
	}
}

func TestInputParameters1D_Validate(t *testing.T) {
	cases := map[string]func(ip *InputParameters1D){
		"order":         func(ip *InputParameters1D) { ip.PolynomialOrder = 0 },
		"elements":      func(ip *InputParameters1D) { ip.Elements = 0 },
		"domain":        func(ip *InputParameters1D) { ip.XMax = ip.XMin },
		"speed":         func(ip *InputParameters1D) { ip.WaveSpeed = -1 },
		"time":          func(ip *InputParameters1D) { ip.FinalTime = ip.T0 },
		"fixed step":    func(ip *InputParameters1D) { ip.UseFixedTimeStep = true },
		"cfl":           func(ip *InputParameters1D) { ip.CFL = 0 },
		"courant":       func(ip *InputParameters1D) { ip.CheckStability, ip.MaxCourant = true, 0 },
		"half periodic": func(ip *InputParameters1D) { ip.BCRight = "outgoing" },
		"bc name":       func(ip *InputParameters1D) { ip.BCLeft, ip.BCRight = "absorbing", "absorbing" },
		"gauss width":   func(ip *InputParameters1D) { ip.Gauss.Width = 0 },
		"parallel":      func(ip *InputParameters1D) { ip.ParallelDegree = -2 },
	}
	for name, mod := range cases {
		ip := NewInputParameters1D()
		mod(ip)
		err := ip.Validate()
		assert.Truef(t, errors.Is(err, ErrInvalidParameter), "%s: %v", name, err)
	}
}
