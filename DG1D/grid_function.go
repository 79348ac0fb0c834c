package DG1D

import (
	"fmt"

	"github.com/notargets/dgwave/utils"
)

// VectorGridFunction stores NComp fields, each an Np x K matrix with one column per element
type VectorGridFunction struct {
	NComp, K, Np int
	Data         []utils.Matrix
}

func NewVectorGridFunction(NComp, K, Np int, init float64) (vgf *VectorGridFunction) {
	if NComp < 1 || K < 1 || Np < 1 {
		panic(fmt.Errorf("%w: grid function with %d components, %d elements, %d points", ErrShape, NComp, K, Np))
	}
	vgf = &VectorGridFunction{
		NComp: NComp,
		K:     K,
		Np:    Np,
		Data:  make([]utils.Matrix, NComp),
	}
	for n := range vgf.Data {
		vgf.Data[n] = utils.NewMatrix(Np, K, utils.ConstArray(Np*K, init))
	}
	return
}

func (vgf *VectorGridFunction) Get(c, k, i int) float64 {
	return vgf.Data[c].DataP[i*vgf.K+k]
}

func (vgf *VectorGridFunction) Set(c, k, i int, val float64) {
	vgf.Data[c].DataP[i*vgf.K+k] = val
}

func (vgf *VectorGridFunction) Component(c int) utils.Matrix { return vgf.Data[c] }

func (vgf *VectorGridFunction) VectorDim() int { return vgf.NComp }
func (vgf *VectorGridFunction) GridDim() int   { return vgf.K }
func (vgf *VectorGridFunction) PointsDim() int { return vgf.Np }

func (vgf *VectorGridFunction) Copy() (R *VectorGridFunction) {
	R = &VectorGridFunction{
		NComp: vgf.NComp,
		K:     vgf.K,
		Np:    vgf.Np,
		Data:  make([]utils.Matrix, vgf.NComp),
	}
	for n, m := range vgf.Data {
		R.Data[n] = m.Copy()
	}
	return
}

// CopyFrom overwrites the receiver with src, which must have identical dimensions
func (vgf *VectorGridFunction) CopyFrom(src *VectorGridFunction) {
	vgf.AssertShape(src.NComp, src.K, src.Np)
	for n := range vgf.Data {
		copy(vgf.Data[n].DataP, src.Data[n].DataP)
	}
}

// AssertShape panics when the receiver dimensions differ from those given. A mismatch is a programming error.
func (vgf *VectorGridFunction) AssertShape(NComp, K, Np int) {
	if vgf.NComp != NComp || vgf.K != K || vgf.Np != Np {
		panic(fmt.Errorf("%w: grid function is (%d, %d, %d), want (%d, %d, %d)",
			ErrShape, vgf.NComp, vgf.K, vgf.Np, NComp, K, Np))
	}
}
