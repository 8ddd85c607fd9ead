package par

import (
	"errors"
	"fmt"
)

// Sentinel errors for the four fatal conditions spec.md §6/§7 define.
// Callers should use errors.Is against these rather than matching
// DiagnosticKind directly, so a future extra wrapping layer doesn't
// break detection.
var (
	ErrUnknownPrimitive   = errors.New("unknown primitive type")
	ErrMultiplyDrivenPort = errors.New("net connected to multiple top-level ports")
	ErrPortDrivesNonIOB   = errors.New("top-level port drives a non-IOB cell")
	ErrDanglingNet        = errors.New("net has loads but no driver")
)

// DiagnosticKind distinguishes the four fatal conditions for callers
// that want structured handling instead of string matching.
type DiagnosticKind int

const (
	DiagUnknownPrimitive DiagnosticKind = iota
	DiagMultiplyDrivenPort
	DiagPortDrivesNonIOB
	DiagDanglingNet
)

// DiagnosticError is a fatal, user-readable diagnostic. Message text
// matches spec.md §6 verbatim (preserved for tool-output
// compatibility); Unwrap exposes the matching sentinel.
type DiagnosticError struct {
	Kind    DiagnosticKind
	Message string
	sentinel error
}

func (e *DiagnosticError) Error() string { return e.Message }
func (e *DiagnosticError) Unwrap() error { return e.sentinel }

func errUnknownPrimitive(cellName, cellType string) error {
	return &DiagnosticError{
		Kind: DiagUnknownPrimitive,
		Message: fmt.Sprintf(
			"Cell \"%s\" is of type \"%s\" which is not a valid GreenPak4 primitive",
			cellName, cellType),
		sentinel: ErrUnknownPrimitive,
	}
}

func errMultiplyDrivenPort(netName string) error {
	return &DiagnosticError{
		Kind: DiagMultiplyDrivenPort,
		Message: fmt.Sprintf(
			"Net \"%s\" is connected directly to multiple top-level ports (need an IOB)",
			netName),
		sentinel: ErrMultiplyDrivenPort,
	}
}

func errPortDrivesNonIOB(netName, cellName, portName, cellType string) error {
	return &DiagnosticError{
		Kind: DiagPortDrivesNonIOB,
		Message: fmt.Sprintf(
			"Net \"%s\" directly drives cell %s port %s (type %s, should be IOB)",
			netName, cellName, portName, cellType),
		sentinel: ErrPortDrivesNonIOB,
	}
}

func errDanglingNet(netName string) error {
	return &DiagnosticError{
		Kind: DiagDanglingNet,
		Message: fmt.Sprintf(
			"Net \"%s\" has loads, but no driver",
			netName),
		sentinel: ErrDanglingNet,
	}
}
