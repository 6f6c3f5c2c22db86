// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Kind defines the kind of failure
type Kind int

// kinds of failure
const (
	ConvergenceFailure  Kind = iota + 1 // Newton iterations reached the maximum number without meeting the tolerance
	LinearSolveFailure                  // factorisation or solution of linear system failed
	ProtocolMismatch                    // external eigensolver output disagrees with the request
	ResourceUnavailable                 // file or external process is missing or unreadable
	InvalidConfig                       // configuration values are invalid
)

// String returns the name of the kind of failure
func (k Kind) String() string {
	switch k {
	case ConvergenceFailure:
		return "ConvergenceFailure"
	case LinearSolveFailure:
		return "LinearSolveFailure"
	case ProtocolMismatch:
		return "ProtocolMismatch"
	case ResourceUnavailable:
		return "ResourceUnavailable"
	case InvalidConfig:
		return "InvalidConfig"
	}
	return io.Sf("Kind(%d)", int(k))
}

// sentinels to be used with errors.Is
var (
	ErrConvergence = &Failure{Kind: ConvergenceFailure}
	ErrLinearSolve = &Failure{Kind: LinearSolveFailure}
	ErrProtocol    = &Failure{Kind: ProtocolMismatch}
	ErrResource    = &Failure{Kind: ResourceUnavailable}
	ErrConfig      = &Failure{Kind: InvalidConfig}
)

// Failure holds information about a fatal failure
type Failure struct {
	Kind      Kind    // kind of failure
	Step      int     // time step where failure happened; 0 => outside time loop
	Iteration int     // Newton iteration where failure happened; 0 => outside Newton loop
	Time      float64 // simulation time corresponding to Step
	Err       error   // cause
}

// failf returns a new failure with a formatted cause
func failf(kind Kind, msg string, prm ...interface{}) *Failure {
	return &Failure{Kind: kind, Err: chk.Err(msg, prm...)}
}

// Error returns the failure message
func (o *Failure) Error() string {
	l := o.Kind.String()
	if o.Step > 0 {
		l += io.Sf(" at step %d (t = %g)", o.Step, o.Time)
	}
	if o.Iteration > 0 {
		l += io.Sf(" at iteration %d", o.Iteration)
	}
	if o.Err != nil {
		l += ": " + o.Err.Error()
	}
	return l
}

// Unwrap returns the cause
func (o *Failure) Unwrap() error { return o.Err }

// Is matches failures of the same kind; i.e. errors.Is(err, ErrConvergence)
func (o *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok {
		return false
	}
	return t.Kind == o.Kind
}

// KindOf returns the kind of failure in err or 0 if err does not hold a failure
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return 0
}
