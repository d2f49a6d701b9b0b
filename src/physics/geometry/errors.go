package geometry

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrDegenerateSeed is returned when the first four points are coplanar
	// and span no initial polyhedron.
	ErrDegenerateSeed = errors.New("geometry: first four points are coplanar")
	// ErrTooFewPoints is returned when fewer than four points are supplied.
	ErrTooFewPoints = errors.New("geometry: a hull needs at least four points")
	// ErrInvariant marks a broken mesh invariant. A hull that reported it
	// must be discarded.
	ErrInvariant = errors.New("geometry: mesh invariant violated")
)

// Fault is a programming error detected while reading or mutating the mesh,
// such as following a link to a removed entity. It is raised with panic and
// turned back into an error at the public API boundary by CheckError.
type Fault struct {
	Msg   string
	frame string
}

func newFault(format string, args ...any) *Fault {
	f := &Fault{Msg: fmt.Sprintf(format, args...)}
	if pc, _, _, ok := runtime.Caller(2); ok {
		f.frame = newStackFrame(pc)
	}
	return f
}

func (f *Fault) Error() string {
	if f.frame == "" {
		return fmt.Sprintf("%s: %s", ErrInvariant, f.Msg)
	}
	return fmt.Sprintf("%s: %s on %s", ErrInvariant, f.Msg, f.frame)
}

func (f *Fault) Unwrap() error {
	return ErrInvariant
}

func newStackFrame(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	file, line := fn.FileLine(pc)
	return fmt.Sprintf("%s (%s:%d)", fn.Name(), file, line)
}

// OrPanic raises err as a Fault after running the finalizers. It is a no-op
// for a nil error.
func OrPanic(err error, finalizers ...func()) {
	if err == nil {
		return
	}
	for _, fn := range finalizers {
		fn()
	}
	var f *Fault
	if errors.As(err, &f) {
		panic(f)
	}
	panic(newFault("%v", err))
}

// CheckError recovers a Fault into *err. Any other panic is re-raised.
func CheckError(err *error) {
	v := recover()
	if v == nil {
		return
	}
	if f, ok := v.(*Fault); ok {
		*err = f
		return
	}
	panic(v)
}
