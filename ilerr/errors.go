package ilerr

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/cottand/streamtype/pos"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Unimplemented
	ExistentialBinding
	UnsatisfiedConstraint
	NotFound
	HookNotInstalled
	InvalidConfig
)

type IleError interface {
	Error() string
	Code() ErrCode
	pos.Positioner

	withStack([]byte) IleError
	getStack() []byte
}

func FormatWithCode(e IleError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			if lines := strings.Split(stack, "\n"); len(lines) > 6 {
				stack = lines[6]
			}
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E IleError](err E) IleError {
	return err.withStack(debug.Stack())
}

// Is reports whether err, or anything it wraps, is an IleError with the given code
func Is(err error, code ErrCode) bool {
	var ileErr IleError
	if !errors.As(err, &ileErr) {
		return false
	}
	return ileErr.Code() == code
}

type Unclassified struct {
	From error
	pos.Range
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Unwrap() error    { return e.From }
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

// NewUnimplemented is returned by a custom type behaviour which has no rule
// for the given operation and operand. Callers are expected to fall back to a
// default policy.
type NewUnimplemented struct {
	pos.Range
	Op    string
	Type  string
	stack []byte
}

func (e NewUnimplemented) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("operation '%s' is not implemented", e.Op)
	}
	return fmt.Sprintf("operation '%s' is not implemented for type '%s'", e.Op, e.Type)
}
func (e NewUnimplemented) Code() ErrCode    { return Unimplemented }
func (e NewUnimplemented) getStack() []byte { return e.stack }
func (e NewUnimplemented) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

// NewExistentialBinding is raised when something assumed to be defined at a
// source location turned out not to be.
type NewExistentialBinding struct {
	pos.Range
	Message string
	stack   []byte
}

func (e NewExistentialBinding) Error() string    { return e.Message }
func (e NewExistentialBinding) Code() ErrCode    { return ExistentialBinding }
func (e NewExistentialBinding) getStack() []byte { return e.stack }
func (e NewExistentialBinding) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewUnsatisfiedConstraint struct {
	pos.Range
	Kind        string
	Description string
	stack       []byte
}

func (e NewUnsatisfiedConstraint) Error() string {
	return fmt.Sprintf("type does not satisfy constraint '%s': expected %s", e.Kind, e.Description)
}
func (e NewUnsatisfiedConstraint) Code() ErrCode    { return UnsatisfiedConstraint }
func (e NewUnsatisfiedConstraint) getStack() []byte { return e.stack }
func (e NewUnsatisfiedConstraint) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

// NewNotFound signals a lookup miss. Where describes what was searched,
// for example "method" or "registry".
type NewNotFound struct {
	pos.Range
	Name  string
	Where string
	stack []byte
}

func (e NewNotFound) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Where, e.Name)
}
func (e NewNotFound) Code() ErrCode    { return NotFound }
func (e NewNotFound) getStack() []byte { return e.stack }
func (e NewNotFound) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewHookNotInstalled struct {
	pos.Range
	Hook  string
	stack []byte
}

func (e NewHookNotInstalled) Error() string {
	return fmt.Sprintf("hook '%s' was used before being installed", e.Hook)
}
func (e NewHookNotInstalled) Code() ErrCode    { return HookNotInstalled }
func (e NewHookNotInstalled) getStack() []byte { return e.stack }
func (e NewHookNotInstalled) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewInvalidConfig struct {
	pos.Range
	Field  string
	Reason string
	stack  []byte
}

func (e NewInvalidConfig) Error() string {
	return fmt.Sprintf("invalid configuration for '%s': %s", e.Field, e.Reason)
}
func (e NewInvalidConfig) Code() ErrCode    { return InvalidConfig }
func (e NewInvalidConfig) getStack() []byte { return e.stack }
func (e NewInvalidConfig) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}
