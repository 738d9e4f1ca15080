package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which category of native primitive was running
type Phase string

const (
	PhaseCreate  Phase = "create"  // minting a new identifier
	PhaseCopy    Phase = "copy"    // deep copy of an identifier
	PhaseCompare Phase = "compare" // content equality
	PhaseQuery   Phase = "query"   // existence, counts, names
	PhaseIterate Phase = "iterate" // callback-driven enumeration
	PhaseRelease Phase = "release" // dropping a reference
	PhaseLookup  Phase = "lookup"  // identifier kind and validity checks
	PhaseConfig  Phase = "config"  // library selection and setup
)

// Kind categorizes the error
type Kind string

const (
	KindNativeCall        Kind = "native_call"
	KindInvalidIdentifier Kind = "invalid_identifier"
	KindInvalidName       Kind = "invalid_name"
	KindNotInitialized    Kind = "not_initialized"
	KindUnsupported       Kind = "unsupported"
)

// Sentinels for errors.Is. They match any phase.
var (
	ErrNativeCall        = &Error{Kind: KindNativeCall}
	ErrInvalidIdentifier = &Error{Kind: KindInvalidIdentifier}
	ErrInvalidName       = &Error{Kind: KindInvalidName}
)

// Error is the structured error type used throughout the module
type Error struct {
	Cause      error
	Phase      Phase
	Kind       Kind
	Op         string // native primitive, e.g. "H5Pcopy"
	Object     string // wrapper kind name, e.g. "property list"
	Detail     string
	Stack      string // native error stack description
	ID         int64
	HasID      bool
	ActualType int32 // identifier kind reported by the library
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}

	if e.Object != "" || e.HasID {
		b.WriteString(": ")
		if e.Object != "" {
			b.WriteString(e.Object)
		}
		if e.HasID {
			if e.Object != "" {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "id %d", e.ID)
		}
	}

	if e.Detail != "" {
		if e.Op != "" || e.Object != "" || e.HasID {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Stack != "" {
		b.WriteString("\n")
		b.WriteString(e.Stack)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target without a phase matches on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Op sets the native primitive name
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Object sets the wrapper kind name
func (b *Builder) Object(name string) *Builder {
	b.err.Object = name
	return b
}

// ID records the offending identifier
func (b *Builder) ID(id int64) *Builder {
	b.err.ID = id
	b.err.HasID = true
	return b
}

// Stack sets the native error stack description
func (b *Builder) Stack(stack string) *Builder {
	b.err.Stack = strings.TrimRight(stack, "\n")
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NativeCall creates an error for a native primitive that signaled failure.
func NativeCall(phase Phase, op, stack string) *Error {
	return New(phase, KindNativeCall).
		Op(op).
		Detail("native call failed").
		Stack(stack).
		Build()
}

// InvalidIdentifier creates an error for an identifier that cannot back
// the named wrapper kind. actual is the identifier kind the library reported.
func InvalidIdentifier(object string, id int64, actual int32) *Error {
	return &Error{
		Phase:      PhaseLookup,
		Kind:       KindInvalidIdentifier,
		Object:     object,
		ID:         id,
		HasID:      true,
		ActualType: actual,
		Detail:     fmt.Sprintf("invalid %s id (identifier kind %d)", object, actual),
	}
}

// InvalidName creates an error for a name that cannot be passed to the library
func InvalidName(phase Phase, name string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidName,
		Detail: fmt.Sprintf("name %q: %s", name, detail),
	}
}

// NotInitialized creates a not-initialized error for a missing component
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
