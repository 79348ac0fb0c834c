package DG1D

import "errors"

var (
	// ErrInvalidArgument reports a violated precondition on an order or Jacobi parameter
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrShape reports storage whose dimensions disagree with the polynomial order or mesh
	ErrShape = errors.New("dimension mismatch")
)
