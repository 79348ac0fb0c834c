package types

import "strings"

type BCFLAG uint8

const (
	BC_Periodic BCFLAG = iota
	BC_Reflecting
	BC_Outgoing
)

var BCNameMap = map[string]BCFLAG{
	"periodic":   BC_Periodic,
	"reflecting": BC_Reflecting,
	"reflect":    BC_Reflecting,
	"wall":       BC_Reflecting,
	"outgoing":   BC_Outgoing,
	"out":        BC_Outgoing,
	"outflow":    BC_Outgoing,
}

var bcPrintNames = []string{
	"Periodic",
	"Reflecting (psi fixed)",
	"Outgoing (no incoming characteristic)",
}

func (bc BCFLAG) String() string {
	if int(bc) < len(bcPrintNames) {
		return bcPrintNames[bc]
	}
	return "BCFLAG(unknown)"
}

// NewBCFLAG looks up a boundary condition by name, ignoring case and surrounding space
func NewBCFLAG(label string) (bc BCFLAG, ok bool) {
	bc, ok = BCNameMap[strings.ToLower(strings.TrimSpace(label))]
	return
}
