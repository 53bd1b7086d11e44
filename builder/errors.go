// SPDX-License-Identifier: MIT
// Package: hemesh/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w; sentinels carry no parameters.
//   • Producers never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (rows, cols) is smaller
// than the allowed minimum for the requested producer.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that jitter was requested without an RNG
// (WithSeed or WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a producer could not assemble a valid
// topology (e.g. the dual construction of the dodecahedron hit a broken fan),
// or that Compose was handed a nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an unknown solid name or another parameter
// outside its domain that must surface as an error rather than a panic.
// Usage: if errors.Is(err, ErrOptionViolation) { /* correct the parameter */ }.
var ErrOptionViolation = errors.New("builder: invalid option value")

// --- Implementation Notes ----------------------------------------------------
//
// Priority when several validations fail:
//   • ErrTooFewVertices  — size checks first (rows, cols).
//   • ErrOptionViolation — then parameter domains (unknown solid).
//   • ErrNeedRandSource  — then RNG presence for jittered output.
//   • ErrConstructFailed — only for internal construction faults.
