package internal

import (
	"runtime"

	"github.com/pkg/errors"
)

// The mesh accessors index straight into the mesh slices, and threading errors
// through every one of them would bury the walk under error plumbing. Instead,
// a corrupt mesh makes them panic (either explicitly via fatalf, or with a
// runtime index error), and the public API recovers to convert to an error.

var ErrInvalidMesh = errors.New("invalid mesh")

// LocateError is only ever panicked by fatalf, so recovering one means the walk
// itself gave up on the mesh.
type LocateError struct {
	err error
}

func (e LocateError) Error() string { return e.err.Error() }
func (e LocateError) Unwrap() error { return e.err }

// Panic with a LocateError wrapping ErrInvalidMesh.
func fatalf(format string, args ...interface{}) {
	panic(LocateError{errors.Wrapf(ErrInvalidMesh, format, args...)})
}

// A panic that came out of caller code, such as a trace callback. It is passed
// through untouched rather than blamed on the mesh.
type callerPanic struct {
	value interface{}
}

func HandleLocatePanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	switch r := r.(type) {
	case callerPanic:
		panic(r.value)
	case runtime.Error:
		// Out of range ids from a bad halfedges or triangles array
		return errors.Wrap(ErrInvalidMesh, r.Error())
	case LocateError:
		return r.err
	}
	panic(r)
}
