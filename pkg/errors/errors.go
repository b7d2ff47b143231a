// Package errors provides error handling and the warning system shared by
// the treekit packages. Errors carry stack traces via cockroachdb/errors and
// marshal structured fields into zerolog events.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("treekit-warning: %v\n", w)
	}
	// zerolog warn hook, set lazily to avoid an import cycle with callers
	// that configure their own logger.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the library-wide warning handler. Warnings such
// as DegenerateTreeWarning flow through it; install a no-op handler to
// silence them.
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc routes warnings to a zerolog-backed sink. When set, it
// takes precedence over the plain handler.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn raises a warning through the configured sink.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// DegenerateTreeWarning is raised when a construction produced a maximally
// skewed tree: every node on a single chain, so the recursive traversals
// cost O(n) stack depth instead of O(log n).
type DegenerateTreeWarning struct {
	Op     string
	Nodes  int
	Height int
}

func (w *DegenerateTreeWarning) Error() string {
	return fmt.Sprintf("%s built a degenerate tree (%d nodes, height %d). Prefer a balanced builder or the iterative traversals.",
		w.Op, w.Nodes, w.Height)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *DegenerateTreeWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("op", w.Op).
		Int("nodes", w.Nodes).
		Int("height", w.Height).
		Str("type", "DegenerateTreeWarning")
}

// NewDegenerateTreeWarning creates a new DegenerateTreeWarning.
func NewDegenerateTreeWarning(op string, nodes, height int) *DegenerateTreeWarning {
	return &DegenerateTreeWarning{Op: op, Nodes: nodes, Height: height}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// ValidationError reports an argument that failed validation.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("treekit: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace attached.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// EmptyTreeError reports an operation that needs at least one node but was
// given the empty tree. Traversals themselves never return it; they define
// the empty tree as the empty sequence.
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	return fmt.Sprintf("treekit: %s: empty tree", e.Op)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *EmptyTreeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("op", e.Op).
		Str("type", "EmptyTreeError")
}

// NewEmptyTreeError creates an EmptyTreeError with a stack trace attached.
func NewEmptyTreeError(op string) error {
	return errors.WithStack(&EmptyTreeError{Op: op})
}

// RenderError wraps a failure from an output backend (plot save, writer).
type RenderError struct {
	Format string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("treekit: rendering %s output: %v", e.Format, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *RenderError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("format", e.Format).
		AnErr("cause", e.Err).
		Str("type", "RenderError")
}

// NewRenderError creates a RenderError with a stack trace attached.
func NewRenderError(format string, err error) error {
	return errors.WithStack(&RenderError{Format: format, Err: err})
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}
