package sim

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/hdf5/internal/registry"
	"github.com/wippyai/hdf5/sys"
)

// Library is a pure-Go sys.Library. Like the native library it is not safe
// for concurrent use; it counts overlapping calls instead of preventing
// them so tests can prove the caller serializes.
type Library struct {
	reg      *registry.Registry
	classes  map[sys.ClassKind]sys.ID
	defs     map[sys.ClassKind]*class
	errs     []errRecord
	faults   map[string]int
	faultsMu sync.Mutex
	active   atomic.Int32
	inCb     atomic.Int32
	overlaps atomic.Int64
}

type errRecord struct {
	op    string
	major string
	minor string
	desc  string
}

var (
	defaultLib  *Library
	defaultOnce sync.Once
)

// Default returns the process-wide simulated library.
func Default() *Library {
	defaultOnce.Do(func() {
		defaultLib = New()
	})
	return defaultLib
}

// New creates an independent simulated library with the predefined
// property list classes registered as library-owned identifiers.
func New() *Library {
	l := &Library{
		reg:     registry.New(),
		classes: make(map[sys.ClassKind]sys.ID),
		defs:    predefinedClasses(),
		faults:  make(map[string]int),
	}
	for kind, c := range l.defs {
		id, err := l.reg.Register(sys.TypeGenPropClass, c, false)
		if err != nil {
			panic(fmt.Sprintf("sim: register class %s: %v", c.name, err))
		}
		l.classes[kind] = id
	}
	return l
}

var _ sys.Library = (*Library)(nil)

// Name implements sys.Library.
func (l *Library) Name() string { return "sim" }

// Registry exposes the identifier registry for observers in tests.
func (l *Library) Registry() *registry.Registry { return l.reg }

// Close releases every identifier the library issued.
func (l *Library) Close() error {
	return l.reg.Close()
}

// PredefinedClass implements sys.Library.
func (l *Library) PredefinedClass(kind sys.ClassKind) sys.ID {
	defer l.enter("H5P_CLS")()
	id, ok := l.classes[kind]
	if !ok {
		l.push("H5P_CLS", "Property lists", "Bad value", fmt.Sprintf("no predefined class %d", kind))
		return sys.InvalidID
	}
	return id
}

// IGetType implements sys.Library.
func (l *Library) IGetType(id sys.ID) sys.IDType {
	defer l.enter("H5Iget_type")()
	if l.fault("H5Iget_type") {
		return sys.TypeBadID
	}
	if registry.TypeOf(id) == sys.TypeBadID {
		return sys.TypeBadID
	}
	typ, ok := l.reg.Type(id)
	if !ok {
		return sys.TypeBadID
	}
	return typ
}

// IIsValid implements sys.Library.
func (l *Library) IIsValid(id sys.ID) sys.Tri {
	defer l.enter("H5Iis_valid")()
	if l.fault("H5Iis_valid") {
		return -1
	}
	if l.reg.IsApp(id) {
		return 1
	}
	return 0
}

// IGetRef implements sys.Library.
func (l *Library) IGetRef(id sys.ID) int {
	defer l.enter("H5Iget_ref")()
	if l.fault("H5Iget_ref") {
		return -1
	}
	n, ok := l.reg.RefCount(id)
	if !ok {
		l.push("H5Iget_ref", "Object ID", "Bad object ID", "can't get ID ref count")
		return -1
	}
	return n
}

// IDecRef implements sys.Library.
func (l *Library) IDecRef(id sys.ID) int {
	defer l.enter("H5Idec_ref")()
	if l.fault("H5Idec_ref") {
		return -1
	}
	if !l.reg.IsApp(id) {
		l.push("H5Idec_ref", "Object ID", "Bad object ID", "can't decrement ID ref count")
		return -1
	}
	n, _ := l.reg.DecRef(id)
	logger().Debug("identifier reference dropped",
		zap.Int64("id", int64(id)),
		zap.Int("remaining", n))
	return n
}

// IIncRef adds an application reference to id, as H5Iinc_ref does.
// It is not part of sys.Library; the handle layer never calls it.
func (l *Library) IIncRef(id sys.ID) int {
	defer l.enter("H5Iinc_ref")()
	if !l.reg.IsApp(id) {
		l.push("H5Iinc_ref", "Object ID", "Bad object ID", "can't increment ID ref count")
		return -1
	}
	n, _ := l.reg.IncRef(id)
	return n
}

// ErrorStack implements sys.Library. The format follows the native
// library's diagnostic output.
func (l *Library) ErrorStack() string {
	if len(l.errs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("HDF5-DIAG: Error detected in HDF5 (sim):\n")
	for i, e := range l.errs {
		fmt.Fprintf(&b, "  #%03d: %s(): %s\n", i, e.op, e.desc)
		fmt.Fprintf(&b, "    major: %s\n", e.major)
		fmt.Fprintf(&b, "    minor: %s\n", e.minor)
	}
	return b.String()
}

// ClearErrors implements sys.Library.
func (l *Library) ClearErrors() {
	l.errs = l.errs[:0]
}

// ErrorDepth returns the number of records on the error stack.
func (l *Library) ErrorDepth() int {
	return len(l.errs)
}

func (l *Library) push(op, major, minor, desc string) {
	l.errs = append(l.errs, errRecord{op: op, major: major, minor: minor, desc: desc})
}

// enter marks the start of a library call and returns its end marker.
// Calls made from inside a PIterate callback are nested, not overlapping.
func (l *Library) enter(op string) func() {
	if l.active.Add(1) > 1 && l.inCb.Load() == 0 {
		l.overlaps.Add(1)
		logger().Warn("overlapping library call", zap.String("op", op))
	}
	return func() { l.active.Add(-1) }
}
