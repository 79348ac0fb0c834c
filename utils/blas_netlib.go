//go:build netlib && cgo
// +build netlib,cgo

package utils

/*
#cgo LDFLAGS: -lopenblas -lm -lpthread
*/
import "C"

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

func init() {
	blas64.Use(netblas.Implementation{})
	fmt.Println("Using netlib to accelerate BLAS")
}
