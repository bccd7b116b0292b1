// SPDX-License-Identifier: MIT
// Package: smawk/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf (%w wrapping).
//   • Constructors MUST NOT panic; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative row or column count.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownPrimitive indicates a MongePrim value outside the declared set.
var ErrUnknownPrimitive = errors.New("builder: unknown Monge primitive")

// builderErrorf wraps err with the given method context, preserving it for
// errors.Is. It returns an error of the form "<Method>: <message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
