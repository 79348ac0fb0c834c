package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadStudies(t *testing.T) {
	input := `4 0.01 20 3.2e-05
4 0.02 10 0.001024
6 0.005 10 1e-06
4 0.005 40 1e-06
`
	studies, err := readStudies(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, studies, 2)
	cs := studies[4]
	assert.Equal(t, []int{10, 20, 40}, cs.numElements)
	assert.Equal(t, []float64{0.02, 0.01, 0.005}, cs.dt)
	rates := cs.Rates()
	require.Len(t, rates, 2)
	// Errors shrink by 32 per doubling
	assert.InDelta(t, 5., rates[0], 1.e-9)
	assert.InDelta(t, 5., rates[1], 1.e-9)
	assert.Len(t, studies[6].Rates(), 0)

	_, err = readStudies(strings.NewReader("4 0.01 twenty 1e-3\n"))
	assert.Error(t, err)
	_, err = readStudies(strings.NewReader("4 0.01 20\n"))
	assert.Error(t, err)
}
