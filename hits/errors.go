// SPDX-License-Identifier: MIT

package hits

import "errors"

var (
	// ErrNilData indicates that Rank was called without builder output.
	ErrNilData = errors.New("hits: nil citation data")

	// ErrNilVariant indicates a nil Variant.
	ErrNilVariant = errors.New("hits: nil variant")

	// ErrBadOptions indicates MaxRounds <= 0 or a negative/non-finite tolerance.
	ErrBadOptions = errors.New("hits: invalid options")

	// ErrUncitedEntity indicates an entity nobody cites; its score is zero
	// and the Demange weight phase would divide by it.
	ErrUncitedEntity = errors.New("hits: entity receives no citations")

	// ErrDegenerate indicates a calibration denominator that is zero or not finite.
	ErrDegenerate = errors.New("hits: degenerate vector cannot be calibrated")

	// ErrNonFinite indicates that a phase produced NaN or ±Inf.
	ErrNonFinite = errors.New("hits: non-finite value produced")
)
