// SPDX-License-Identifier: MIT

package citation

import "errors"

var (
	// ErrEmptyTable indicates a table without entity rows.
	ErrEmptyTable = errors.New("citation: table has no entities")

	// ErrShapeMismatch indicates that the reference columns do not form an
	// N×N block for N rows.
	ErrShapeMismatch = errors.New("citation: reference matrix is not square")

	// ErrNonPositivePubs indicates a publication count ≤ 0 (or not finite).
	ErrNonPositivePubs = errors.New("citation: publication count must be > 0")

	// ErrNoOutgoingRefs indicates an entity whose references sum to zero.
	ErrNoOutgoingRefs = errors.New("citation: entity has no outgoing references")

	// ErrInvalidCount indicates a negative or non-finite reference count.
	ErrInvalidCount = errors.New("citation: reference count must be finite and >= 0")
)
