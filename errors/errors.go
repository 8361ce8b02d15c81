package errors

import (
	"errors"
	"fmt"
	"strings"
)

// These are all causes folded into a NotFoundError
var (
	ErrNotFound         = errors.New("directory not found")
	ErrNoTargets        = errors.New("no targets to search for")
	ErrNoStartDirectory = errors.New("couldn't determine the start directory")
	ErrInvalidDepth     = errors.New("invalid search depth")
	ErrInvalidTarget    = errors.New("invalid target")
)

// NotFoundError is the only failure a search surfaces.
//
// It unwraps to ErrNotFound and, when present, to the cause that made the search fail early.
type NotFoundError struct {
	Direction string
	Dir       string
	Depth     int // Zero or less means unbounded
	Targets   []string
	Cause     error
}

func (e *NotFoundError) Error() string {
	var sb strings.Builder
	sb.WriteString("no directory containing ")
	switch len(e.Targets) {
	case 0:
		sb.WriteString("any target")
	case 1:
		sb.WriteString(fmt.Sprintf("'%s'", e.Targets[0]))
	default:
		sb.WriteString(fmt.Sprintf("any of [%s]", strings.Join(e.Targets, ", ")))
	}
	if e.Direction != "" {
		sb.WriteString(fmt.Sprintf(" found %s from '%s'", e.Direction, e.Dir))
	} else {
		sb.WriteString(fmt.Sprintf(" found from '%s'", e.Dir))
	}
	if e.Depth > 0 {
		sb.WriteString(fmt.Sprintf(" within depth %d", e.Depth))
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}

	return sb.String()
}

func (e *NotFoundError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrNotFound}
	}

	return []error{ErrNotFound, e.Cause}
}

// InvalidDepthError represents a maximum depth lower than one
type InvalidDepthError struct {
	Depth int
}

func (e *InvalidDepthError) Error() string {
	return fmt.Sprintf("depth '%d': must be at least 1", e.Depth)
}

func (e *InvalidDepthError) Unwrap() error {
	return ErrInvalidDepth
}

// InvalidTargetError represents a target whose name can't name an immediate child of a directory
type InvalidTargetError struct {
	Index   int
	Target  string
	Message string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("target #%d '%s': %s", e.Index, e.Target, e.Message)
}

func (e *InvalidTargetError) Unwrap() error {
	return ErrInvalidTarget
}

// ValidationError wraps multiple validation errors that occurred while checking a search or the CLI options.
type ValidationError struct {
	Subject     string // What is invalid, "options" when empty
	ContextName string
	Errors      []error
}

func (e *ValidationError) Error() string {
	subject := e.Subject
	if subject == "" {
		subject = "options"
	}

	var sb strings.Builder
	if e.ContextName != "" {
		sb.WriteString(fmt.Sprintf("invalid %s for %s", subject, e.ContextName))
	} else {
		sb.WriteString("invalid " + subject)
	}
	if len(e.Errors) >= 1 {
		sb.WriteString(":")
	}

	for _, err := range e.Errors {
		sb.WriteString("\n       ")
		sb.WriteString(err.Error())
	}

	return sb.String()
}

// UnderlyingErrors returns the slice of individual validation errors (immutable).
func (e *ValidationError) UnderlyingErrors() []error {
	if e.Errors == nil {
		return nil
	}

	// Return a copy to prevent mutations
	result := make([]error, len(e.Errors))
	copy(result, e.Errors)

	return result
}

func (e *ValidationError) Unwrap() []error {
	return e.UnderlyingErrors()
}

func NewNotFoundError(direction, dir string, depth int, targets []string, cause error) error {
	return &NotFoundError{
		Direction: direction,
		Dir:       dir,
		Depth:     depth,
		Targets:   targets,
		Cause:     cause,
	}
}

func NewInvalidDepthError(depth int) error {
	return &InvalidDepthError{
		Depth: depth,
	}
}

func NewInvalidTargetError(index int, target, message string) error {
	return &InvalidTargetError{
		Index:   index,
		Target:  target,
		Message: message,
	}
}

// NewSearchValidationError reports the problems found in a search configuration.
func NewSearchValidationError(errs []error) error {
	return &ValidationError{
		Subject: "search",
		Errors:  errs,
	}
}

func NewValidationError(contextName string, errs []error) error {
	return &ValidationError{
		ContextName: contextName,
		Errors:      errs,
	}
}
