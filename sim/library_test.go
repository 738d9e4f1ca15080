package sim

import (
	"strings"
	"testing"

	"github.com/wippyai/hdf5/internal/registry"
	"github.com/wippyai/hdf5/sys"
)

type releaseLog struct {
	released map[sys.ID]int
}

func (r *releaseLog) OnRegistryEvent(e registry.Event) {
	if e.Type == registry.EventReleased {
		r.released[e.ID]++
	}
}

func create(t *testing.T, l *Library, kind sys.ClassKind) sys.ID {
	t.Helper()
	id := l.PCreate(l.PredefinedClass(kind))
	if id < 0 {
		t.Fatalf("PCreate(%v) failed:\n%s", kind, l.ErrorStack())
	}
	return id
}

func names(t *testing.T, l *Library, id sys.ID) []string {
	t.Helper()
	var out []string
	if ret := l.PIterate(id, func(_ sys.ID, name string) sys.Herr {
		out = append(out, name)
		return 0
	}); ret < 0 {
		t.Fatalf("PIterate failed:\n%s", l.ErrorStack())
	}
	return out
}

func TestPredefinedClasses(t *testing.T) {
	l := New()
	for _, kind := range sys.ClassKinds() {
		cls := l.PredefinedClass(kind)
		if cls <= 0 {
			t.Fatalf("no identifier for %v", kind)
		}
		if typ := l.IGetType(cls); typ != sys.TypeGenPropClass {
			t.Errorf("%v has type %v", kind, typ)
		}
		if l.IIsValid(cls) != 0 {
			t.Errorf("predefined %v should not be user-visible", kind)
		}
		name, ret := l.PGetClassName(cls)
		if ret < 0 || name != kind.String() {
			t.Errorf("class name = %q, want %q", name, kind.String())
		}
	}
}

func TestCreateCopyEqual(t *testing.T) {
	l := New()
	fapl := create(t, l, sys.ClassFileAccess)
	fcpl := create(t, l, sys.ClassFileCreate)

	if l.IIsValid(fapl) != 1 || l.IGetRef(fapl) != 1 {
		t.Fatal("fresh list should be valid with one reference")
	}
	if l.PEqual(fapl, fapl) != 1 {
		t.Error("list should equal itself")
	}
	if l.PEqual(fapl, fcpl) != 0 {
		t.Error("lists of different classes should differ")
	}

	c := l.PCopy(fapl)
	if c <= 0 || c == fapl {
		t.Fatalf("PCopy = %d", c)
	}
	if l.PEqual(fapl, c) != 1 {
		t.Error("copy should equal original")
	}
	if l.IGetRef(fapl) != 1 || l.IGetRef(c) != 1 {
		t.Error("copy must not share the reference count")
	}

	if err := l.SetProperty(c, "sieve_buf_size", []byte{9}); err != nil {
		t.Fatal(err)
	}
	if l.PEqual(fapl, c) != 0 {
		t.Error("changed copy should differ")
	}
}

func TestPEqual_MixedTypes(t *testing.T) {
	l := New()
	p := create(t, l, sys.ClassFileAccess)
	cls := l.PGetClass(p)

	if l.PEqual(p, cls) >= 0 {
		t.Fatal("comparing a list with a class should fail")
	}
	if !strings.Contains(l.ErrorStack(), "different types") {
		t.Errorf("unexpected stack:\n%s", l.ErrorStack())
	}
}

func TestPExist(t *testing.T) {
	l := New()
	fapl := create(t, l, sys.ClassFileAccess)
	fcpl := create(t, l, sys.ClassFileCreate)

	if l.PExist(fapl, "sieve_buf_size") != 1 {
		t.Error("file access list should have sieve_buf_size")
	}
	if l.PExist(fcpl, "sieve_buf_size") != 0 {
		t.Error("file create list should not have sieve_buf_size")
	}
	// Inherited from group create and object create.
	if l.PExist(fcpl, "link info") != 1 || l.PExist(fcpl, "max compact") != 1 {
		t.Error("file create list should inherit parent properties")
	}
	if l.PExist(fapl, "") >= 0 {
		t.Error("empty name should fail")
	}
	if l.PExist(sys.InvalidID, "x") >= 0 {
		t.Error("invalid identifier should fail")
	}
}

func TestPIterate_SortedAndStoppable(t *testing.T) {
	l := New()
	fapl := create(t, l, sys.ClassFileAccess)

	got := names(t, l, fapl)
	n, _ := l.PGetNProps(fapl)
	if len(got) != n || n == 0 {
		t.Fatalf("iterated %d names, PGetNProps = %d", len(got), n)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("names not sorted: %q before %q", got[i-1], got[i])
		}
	}

	calls := 0
	ret := l.PIterate(fapl, func(sys.ID, string) sys.Herr {
		calls++
		return 1
	})
	if ret != 1 || calls != 1 {
		t.Errorf("stop: ret=%d calls=%d", ret, calls)
	}

	ret = l.PIterate(fapl, func(sys.ID, string) sys.Herr { return -1 })
	if ret >= 0 || l.ErrorDepth() == 0 {
		t.Error("negative callback return should fail with an error record")
	}
}

func TestPIterate_Reentrant(t *testing.T) {
	l := New()
	fapl := create(t, l, sys.ClassFileAccess)

	ret := l.PIterate(fapl, func(id sys.ID, name string) sys.Herr {
		if l.PExist(id, name) != 1 {
			return -1
		}
		return 0
	})
	if ret != 0 {
		t.Fatalf("reentrant iteration failed:\n%s", l.ErrorStack())
	}
	if l.Overlaps() != 0 {
		t.Fatalf("nested calls from a callback counted as overlaps: %d", l.Overlaps())
	}
}

func TestClasses(t *testing.T) {
	l := New()
	fcpl := create(t, l, sys.ClassFileCreate)

	cls := l.PGetClass(fcpl)
	if l.IIsValid(cls) != 1 {
		t.Fatal("PGetClass should return a user-visible identifier")
	}
	if l.PEqual(cls, l.PredefinedClass(sys.ClassFileCreate)) != 1 {
		t.Error("class of a file create list should equal the predefined class")
	}

	parent := l.PGetClassParent(cls)
	name, _ := l.PGetClassName(parent)
	if name != "group create" {
		t.Errorf("parent of file create = %q", name)
	}

	root := l.PCopy(l.PredefinedClass(sys.ClassRoot))
	if l.PGetClassParent(root) >= 0 {
		t.Error("root class should have no parent")
	}
}

func TestDecRef_ReleasesOnce(t *testing.T) {
	l := New()
	rl := &releaseLog{released: make(map[sys.ID]int)}
	l.Registry().Subscribe(rl)

	id := create(t, l, sys.ClassFileAccess)
	if l.IIncRef(id) != 2 {
		t.Fatal("IIncRef should return 2")
	}
	if l.IDecRef(id) != 1 || rl.released[id] != 0 {
		t.Fatal("first IDecRef must not release")
	}
	if l.IDecRef(id) != 0 || rl.released[id] != 1 {
		t.Fatal("second IDecRef should release")
	}
	if l.IDecRef(id) >= 0 {
		t.Fatal("IDecRef of a released identifier should fail")
	}
	if rl.released[id] != 1 {
		t.Fatalf("released %d times", rl.released[id])
	}
	if l.IIsValid(id) != 0 {
		t.Fatal("released identifier should be invalid")
	}
}

func TestDecRef_PredefinedRejected(t *testing.T) {
	l := New()
	cls := l.PredefinedClass(sys.ClassFileAccess)
	if l.IDecRef(cls) >= 0 {
		t.Fatal("releasing a library-owned class should fail")
	}
	if l.PCreate(cls) < 0 {
		t.Fatal("predefined class must survive a rejected release")
	}
}

func TestInvalidate(t *testing.T) {
	l := New()
	id := create(t, l, sys.ClassDatasetXfer)
	l.IIncRef(id)

	if !l.Invalidate(id) {
		t.Fatal("Invalidate failed")
	}
	if l.IIsValid(id) != 0 || l.IGetType(id) != sys.TypeBadID {
		t.Fatal("invalidated identifier still resolves")
	}
	if l.Invalidate(id) {
		t.Fatal("second Invalidate should report false")
	}
}

func TestFaultsAndErrorStack(t *testing.T) {
	l := New()
	id := create(t, l, sys.ClassFileAccess)

	l.FailNext("H5Pcopy", 2)
	if l.PCopy(id) >= 0 || l.PCopy(id) >= 0 {
		t.Fatal("injected failures did not fire")
	}
	if l.PCopy(id) < 0 {
		t.Fatal("fault budget should be exhausted")
	}

	stack := l.ErrorStack()
	if !strings.Contains(stack, "H5Pcopy()") || !strings.Contains(stack, "#001") {
		t.Errorf("unexpected stack:\n%s", stack)
	}
	l.ClearErrors()
	if l.ErrorStack() != "" || l.ErrorDepth() != 0 {
		t.Fatal("ClearErrors left records behind")
	}

	l.FailNext("H5Pequal", 1)
	l.ResetFaults()
	if l.PEqual(id, id) != 1 {
		t.Fatal("ResetFaults should cancel pending failures")
	}
}

func TestLive(t *testing.T) {
	l := New()
	if l.Live() != 0 {
		t.Fatalf("fresh library has %d live identifiers", l.Live())
	}
	a := create(t, l, sys.ClassFileAccess)
	create(t, l, sys.ClassFileCreate)
	if l.Live() != 2 {
		t.Fatalf("Live = %d, want 2", l.Live())
	}
	l.IDecRef(a)
	if l.Live() != 1 {
		t.Fatalf("Live = %d, want 1", l.Live())
	}
}

func TestRelease_DropsListValues(t *testing.T) {
	l := New()

	id := create(t, l, sys.ClassFileAccess)
	v, ok := l.Registry().GetTyped(id, sys.TypeGenPropList)
	if !ok {
		t.Fatal("created list not registered")
	}
	p := v.(*plist)
	if len(p.props) == 0 {
		t.Fatal("new list has no properties")
	}
	if l.IDecRef(id) != 0 {
		t.Fatal("IDecRef should release the only reference")
	}
	if p.props != nil {
		t.Error("released list kept its values")
	}

	id = create(t, l, sys.ClassFileAccess)
	v, _ = l.Registry().GetTyped(id, sys.TypeGenPropList)
	l.Invalidate(id)
	if v.(*plist).props != nil {
		t.Error("invalidated list kept its values")
	}
}

func TestIGetType_ForgedIdentifiers(t *testing.T) {
	l := New()
	for _, id := range []sys.ID{sys.InvalidID, 0, 12345, registry.MakeID(sys.TypeGenPropList, 1<<40)} {
		if typ := l.IGetType(id); typ != sys.TypeBadID {
			t.Errorf("IGetType(%d) = %v, want TypeBadID", id, typ)
		}
	}
	if l.ErrorDepth() != 0 {
		t.Error("IGetType of an unknown identifier should not push errors")
	}
}
