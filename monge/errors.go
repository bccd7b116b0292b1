package monge

import "errors"

var (
	// ErrNotMonge indicates a 2×2 window violating the Monge inequality.
	ErrNotMonge = errors.New("monge: matrix is not Monge")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("monge: nil matrix")
)
