package utils

const (
	NODETOL = 1.e-12
)

type EvalOp uint8

const (
	Equal EvalOp = iota
	Less
	Greater
	LessOrEqual
	GreaterOrEqual
)

func (op EvalOp) Eval(val, target float64) bool {
	switch op {
	case Equal:
		return val == target
	case Less:
		return val < target
	case Greater:
		return val > target
	case LessOrEqual:
		return val <= target
	case GreaterOrEqual:
		return val >= target
	}
	return false
}

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func (I Index) Concat(J Index) (R Index) {
	R = make(Index, 0, len(I)+len(J))
	R = append(R, I...)
	R = append(R, J...)
	return
}

// Compare returns the positions where the two indices agree under op
func (I Index) Compare(op EvalOp, J Index) (R Index) {
	if len(I) != len(J) {
		panic("index lengths do not match")
	}
	for i := range I {
		if op.Eval(float64(I[i]), float64(J[i])) {
			R = append(R, i)
		}
	}
	return
}
