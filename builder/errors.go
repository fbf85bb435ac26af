// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with `%w`, prefixed by the method name.
//   • Constructors never panic; option constructors may (see options.go).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree)
// is below the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates an unknown enumerated parameter, e.g. a
// PlatonicName outside the five solids.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates the builder gave up: a nil constructor, or
// retries exhausted (RandomRegular stub matching).
var ErrConstructFailed = errors.New("builder: construction failed")
