package DG1D

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"github.com/notargets/dgwave/utils"
)

// Elements1D is the mesh of K elements of order N sharing one ReferenceElement
type Elements1D struct {
	K, Np, Nfp, NFaces int
	Periodic           bool
	Ref                *ReferenceElement
	VX                 utils.Vector
	EToV, EToE, EToF   utils.Matrix
	X                  utils.Matrix // Np x K physical node locations
	J, Rx              utils.Vector // per element Jacobian dx/dr and its inverse
	FMask              utils.Index
	Dr, LIFT           utils.Matrix
	NX, FScale         utils.Matrix // (Nfp*NFaces) x K
	// Row major indices into Np x K volume storage and (Nfp*NFaces) x K face storage
	VmapM, VmapP, VmapB, VmapI, VmapO utils.Index
	MapB, MapI, MapO                  utils.Index
}

// SimpleMesh1D divides [xmin, xmax] into K equal elements
func SimpleMesh1D(xmin, xmax float64, K int) (VX utils.Vector, EToV utils.Matrix) {
	var (
		Nv = K + 1
	)
	VX = utils.NewVector(Nv)
	for i := 0; i < Nv; i++ {
		VX.DataP[i] = (xmax-xmin)*float64(i)/float64(Nv-1) + xmin
	}
	EToV = utils.NewMatrix(K, 2)
	for k := 0; k < K; k++ {
		EToV.Set(k, 0, float64(k))
		EToV.Set(k, 1, float64(k+1))
	}
	return
}

func NewElements1D(N int, VX utils.Vector, EToV utils.Matrix, periodic bool) (el *Elements1D, err error) {
	var (
		K, nc = EToV.Dims()
		re    *ReferenceElement
	)
	if K < 1 || nc != 2 {
		err = fmt.Errorf("%w: EToV is %d x %d, want K x 2 with K >= 1", ErrShape, K, nc)
		return
	}
	if re, err = NewReferenceElement(N); err != nil {
		return
	}
	el = &Elements1D{
		K:        K,
		Np:       re.Np,
		Nfp:      1,
		NFaces:   2,
		Periodic: periodic,
		Ref:      re,
		VX:       VX,
		EToV:     EToV,
	}
	if err = el.Startup1D(); err != nil {
		return nil, err
	}
	return
}

func (el *Elements1D) Startup1D() (err error) {
	var (
		R = el.Ref.R
	)
	el.Dr, el.LIFT = el.Ref.Dr, el.Ref.LIFT
	el.NX = Normals1D(el.NFaces, el.Nfp, el.K)

	// x = ones(Np)*VX(va) + 0.5*(r+1.)*sT(vc);
	el.X = utils.NewMatrix(el.Np, el.K)
	el.J, el.Rx = utils.NewVector(el.K), utils.NewVector(el.K)
	for k := 0; k < el.K; k++ {
		va, vb := int(el.EToV.At(k, 0)), int(el.EToV.At(k, 1))
		xa := el.VX.AtVec(va)
		sT := el.VX.AtVec(vb) - xa
		if sT <= 0 {
			return fmt.Errorf("%w: element %d has non-positive length %v", ErrInvalidArgument, k, sT)
		}
		for i := 0; i < el.Np; i++ {
			el.X.Set(i, k, xa+0.5*(R.AtVec(i)+1.)*sT)
		}
		el.J.DataP[k] = 0.5 * sT
		el.Rx.DataP[k] = 1. / el.J.DataP[k]
	}
	el.X.SetReadOnly("X")

	fmask1 := R.Copy().AddScalar(1).Find(utils.Less, utils.NODETOL, true)
	fmask2 := R.Copy().AddScalar(-1).Find(utils.Less, utils.NODETOL, true)
	el.FMask = fmask1.Concat(fmask2)
	if len(el.FMask) != el.NFaces*el.Nfp {
		return fmt.Errorf("%w: found %d face nodes, want %d", ErrShape, len(el.FMask), el.NFaces*el.Nfp)
	}
	el.FScale = utils.NewMatrix(el.Nfp*el.NFaces, el.K)
	for f := 0; f < el.NFaces; f++ {
		el.FScale.SetRow(f, el.Rx.DataP)
	}
	el.Connect1D()
	return el.BuildMaps1D()
}

func Normals1D(Nfaces, Nfp, K int) (NX utils.Matrix) {
	nx := make([]float64, Nfaces*Nfp*K)
	for i := 0; i < K; i++ {
		nx[i] = -1
		nx[i+K] = 1
	}
	NX = utils.NewMatrix(Nfp*Nfaces, K, nx)
	return
}

// Connect1D finds face neighbors from the product of the sparse face to vertex incidence with its transpose.
// Unmatched faces connect to themselves.
func (el *Elements1D) Connect1D() {
	var (
		NFaces     = el.NFaces
		K          = el.K
		Nv         = el.VX.Len()
		TotalFaces = NFaces * K
	)
	vertex := func(k, face int) int {
		v := int(el.EToV.At(k, face))
		if el.Periodic && v == Nv-1 {
			v = 0
		}
		return v
	}
	SpFToV_Tmp := sparse.NewDOK(TotalFaces, Nv)
	var sk int
	for k := 0; k < K; k++ {
		for face := 0; face < NFaces; face++ {
			SpFToV_Tmp.Set(sk, vertex(k, face), 1)
			sk++
		}
	}
	SpFToV := SpFToV_Tmp.ToCSR()
	SpFToF := sparse.NewCSR(TotalFaces, TotalFaces, nil, nil, nil)
	SpFToF.Mul(SpFToV, SpFToV.T())

	el.EToE = utils.NewMatrix(K, NFaces)
	el.EToF = utils.NewMatrix(K, NFaces)
	for k := 0; k < K; k++ {
		for face := 0; face < NFaces; face++ {
			el.EToE.Set(k, face, float64(k))
			el.EToF.Set(k, face, float64(face))
		}
	}
	SpFToF.DoNonZero(func(face1, face2 int, v float64) {
		if face1 == face2 || v != 1 {
			return
		}
		k1, f1 := face1/NFaces, face1%NFaces
		k2, f2 := face2/NFaces, face2%NFaces
		el.EToE.Set(k1, f1, float64(k2))
		el.EToF.Set(k1, f1, float64(f2))
	})
	el.EToE.SetReadOnly("EToE")
	el.EToF.SetReadOnly("EToF")
}

func (el *Elements1D) BuildMaps1D() (err error) {
	var (
		K  = el.K
		NF = el.Nfp * el.NFaces
	)
	el.VmapM = utils.NewIndex(NF * K)
	el.VmapP = utils.NewIndex(NF * K)
	for k := 0; k < K; k++ {
		for f := 0; f < el.NFaces; f++ {
			el.VmapM[f*K+k] = el.FMask[f]*K + k
		}
	}
	for k1 := 0; k1 < K; k1++ {
		for f1 := 0; f1 < el.NFaces; f1++ {
			k2 := int(el.EToE.At(k1, f1))
			f2 := int(el.EToF.At(k1, f1))
			el.VmapP[f1*K+k1] = el.VmapM[f2*K+k2]
			if el.Periodic || k1 == k2 {
				continue
			}
			// Interior neighbors must share the face coordinate
			x1 := el.X.DataP[el.VmapM[f1*K+k1]]
			x2 := el.X.DataP[el.VmapP[f1*K+k1]]
			v1 := int(el.EToV.At(k1, 0))
			v2 := int(el.EToV.At(k1, 1))
			refd := math.Abs(el.VX.AtVec(v1) - el.VX.AtVec(v2))
			if math.Abs(x1-x2) > utils.NODETOL*refd*1.e3 {
				return fmt.Errorf("%w: face %d of element %d at x = %v does not meet neighbor at x = %v",
					ErrShape, f1, k1, x1, x2)
			}
		}
	}

	// Create list of boundary nodes
	el.MapB = el.VmapP.Compare(utils.Equal, el.VmapM)
	el.VmapB = make(utils.Index, len(el.MapB))
	for i, ind := range el.MapB {
		el.VmapB[i] = el.VmapM[ind]
	}
	if !el.Periodic {
		el.MapI = utils.Index{0}
		el.MapO = utils.Index{K*el.NFaces - 1}
		el.VmapI = utils.Index{0}
		el.VmapO = utils.Index{K*el.Np - 1}
	}
	return
}

// MinNodeSpacing is the smallest physical distance between adjacent nodes, found at the element ends
func (el *Elements1D) MinNodeSpacing() float64 {
	return el.X.Row(1).Subtract(el.X.Row(0)).Apply(math.Abs).Min()
}

func (el *Elements1D) XMin() float64 { return el.X.Min() }
func (el *Elements1D) XMax() float64 { return el.X.Max() }
