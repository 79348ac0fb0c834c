package Wave1D

import (
	"math"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/dgwave/utils"
)

func (c *Wave) Plot(showGraph bool, graphDelay []time.Duration) {
	var (
		el         = c.El
		fmin, fmax = float32(-1.1), float32(1.1)
	)
	if !showGraph {
		return
	}
	c.plotOnce.Do(func() {
		scale := float32(1.1 * c.U0.Data[Psi].Copy().Apply(math.Abs).Max())
		if scale > 0 {
			fmin, fmax = -scale, scale
		}
		c.chart = chart2d.NewChart2D(1920, 1280, float32(el.XMin()), float32(el.XMax()), fmin, fmax)
		c.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.Plot()
	})
	pSeries := func(field utils.Matrix, name string, color float32, gl chart2d.GlyphType) {
		if err := c.chart.AddSeries(name, el.X.Transpose().RawMatrix().Data, field.Transpose().RawMatrix().Data,
			gl, chart2d.Solid, c.colorMap.GetRGB(color)); err != nil {
			panic("unable to add graph series")
		}
	}
	pSeries(c.U.Data[Psi], "Psi", -0.7, chart2d.NoGlyph)
	pSeries(c.U.Data[Pi], "Pi", 0.0, chart2d.NoGlyph)
	pSeries(c.U.Data[Phi], "Phi", 0.7, chart2d.NoGlyph)
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}

