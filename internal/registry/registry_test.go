package registry

import (
	"sync"
	"testing"

	"github.com/wippyai/hdf5/sys"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnRegistryEvent(e Event) {
	o.events = append(o.events, e)
}

type releaseCounter struct {
	count int
}

func (r *releaseCounter) Release() {
	r.count++
}

func TestMakeID_TypeOf(t *testing.T) {
	for typ := sys.TypeFile; typ < sys.NumTypes; typ++ {
		id := MakeID(typ, 1)
		if id <= 0 {
			t.Fatalf("MakeID(%v, 1) = %d, want positive", typ, id)
		}
		if got := TypeOf(id); got != typ {
			t.Errorf("TypeOf(MakeID(%v)) = %v", typ, got)
		}
	}

	if TypeOf(sys.InvalidID) != sys.TypeBadID {
		t.Error("sentinel should decode to TypeBadID")
	}
	if TypeOf(0) != sys.TypeBadID {
		t.Error("zero should decode to TypeBadID")
	}
	if TypeOf(12345) != sys.TypeBadID {
		t.Error("an identifier without a type tag should decode to TypeBadID")
	}
}

func TestRegistry_Basic(t *testing.T) {
	r := New()

	id, err := r.Register(sys.TypeGenPropList, "test", true)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if id <= 0 {
		t.Fatal("Expected positive identifier")
	}

	val, ok := r.GetTyped(id, sys.TypeGenPropList)
	if !ok || val != "test" {
		t.Fatalf("GetTyped = %v, %v", val, ok)
	}
	if _, ok := r.GetTyped(id, sys.TypeGroup); ok {
		t.Fatal("GetTyped with wrong type should fail")
	}

	typ, ok := r.Type(id)
	if !ok || typ != sys.TypeGenPropList {
		t.Fatalf("Type = %v, %v", typ, ok)
	}

	if n, _ := r.RefCount(id); n != 1 {
		t.Fatalf("RefCount = %d, want 1", n)
	}

	if n, ok := r.DecRef(id); !ok || n != 0 {
		t.Fatalf("DecRef = %d, %v", n, ok)
	}
	if _, ok := r.GetTyped(id, sys.TypeGenPropList); ok {
		t.Fatal("Expected GetTyped to fail after release")
	}
	if r.Len(false) != 0 {
		t.Fatal("Expected Len() == 0 after release")
	}
}

func TestRegistry_NeverReissues(t *testing.T) {
	r := New()

	a, _ := r.Register(sys.TypeGenPropList, "a", true)
	r.DecRef(a)
	b, _ := r.Register(sys.TypeGenPropList, "b", true)

	if a == b {
		t.Fatalf("released identifier %d was reissued", a)
	}
}

func TestRegistry_RejectsBadType(t *testing.T) {
	r := New()
	for _, typ := range []sys.IDType{sys.TypeBadID, sys.TypeUninit, sys.NumTypes} {
		if _, err := r.Register(typ, nil, true); err != ErrInvalidType {
			t.Errorf("Register(%v) err = %v, want ErrInvalidType", typ, err)
		}
	}
}

func TestRegistry_RefCounting(t *testing.T) {
	r := New()
	rc := &releaseCounter{}
	id, _ := r.Register(sys.TypeDataset, rc, true)

	if n, _ := r.IncRef(id); n != 2 {
		t.Fatalf("IncRef = %d, want 2", n)
	}
	if n, _ := r.DecRef(id); n != 1 {
		t.Fatalf("DecRef = %d, want 1", n)
	}
	if rc.count != 0 {
		t.Fatal("Release must not run while references remain")
	}
	if n, _ := r.DecRef(id); n != 0 {
		t.Fatalf("DecRef = %d, want 0", n)
	}
	if rc.count != 1 {
		t.Fatalf("Release called %d times, want 1", rc.count)
	}

	// Further decrements are rejected, not double releases.
	if _, ok := r.DecRef(id); ok {
		t.Fatal("DecRef of a released identifier should fail")
	}
	if _, ok := r.IncRef(id); ok {
		t.Fatal("IncRef of a released identifier should fail")
	}
	if rc.count != 1 {
		t.Fatalf("Release called %d times, want 1", rc.count)
	}
}

func TestRegistry_Remove(t *testing.T) {
	r := New()
	rc := &releaseCounter{}
	id, _ := r.Register(sys.TypeFile, rc, true)
	r.IncRef(id)
	r.IncRef(id)

	if _, ok := r.Remove(id); !ok {
		t.Fatal("Remove failed")
	}
	if rc.count != 1 {
		t.Fatalf("Release called %d times, want 1", rc.count)
	}
	if _, ok := r.Remove(id); ok {
		t.Fatal("second Remove should fail")
	}
}

func TestRegistry_Visibility(t *testing.T) {
	r := New()
	lib, _ := r.Register(sys.TypeGenPropClass, "root", false)
	app, _ := r.Register(sys.TypeGenPropList, "plist", true)

	if r.IsApp(lib) {
		t.Error("library-owned identifier should not be user-visible")
	}
	if !r.IsApp(app) {
		t.Error("application identifier should be user-visible")
	}
	if r.Len(true) != 1 || r.Len(false) != 2 {
		t.Errorf("Len(true)=%d Len(false)=%d", r.Len(true), r.Len(false))
	}
}

func TestRegistry_Observer(t *testing.T) {
	r := New()
	obs := &testObserver{}
	r.Subscribe(obs)

	id, _ := r.Register(sys.TypeGenPropList, "test", true)
	r.IncRef(id)
	r.DecRef(id)
	r.DecRef(id)

	want := []EventType{EventRegistered, EventIncRef, EventDecRef, EventReleased}
	if len(obs.events) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(obs.events))
	}
	for i, typ := range want {
		if obs.events[i].Type != typ {
			t.Errorf("event %d = %v, want %v", i, obs.events[i].Type, typ)
		}
		if obs.events[i].ID != id {
			t.Errorf("event %d has wrong identifier", i)
		}
	}
}

func TestRegistry_Close(t *testing.T) {
	r := New()
	rc := &releaseCounter{}
	r.Register(sys.TypeGroup, rc, true)
	r.Register(sys.TypeGroup, rc, true)

	if err := r.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if rc.count != 2 {
		t.Fatalf("Release called %d times, want 2", rc.count)
	}
	if _, err := r.Register(sys.TypeGroup, nil, true); err != ErrClosed {
		t.Fatalf("Register after Close err = %v, want ErrClosed", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	ids := make([]sys.ID, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := r.Register(sys.TypeGenPropList, i, true)
			if err != nil {
				t.Errorf("Register: %v", err)
				return
			}
			ids[i] = id
		}(i)
	}
	wg.Wait()

	seen := make(map[sys.ID]bool)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate identifier %d", id)
		}
		seen[id] = true
	}

	for _, id := range ids {
		wg.Add(1)
		go func(id sys.ID) {
			defer wg.Done()
			r.DecRef(id)
		}(id)
	}
	wg.Wait()

	if r.Len(false) != 0 {
		t.Fatalf("Len = %d after releasing everything", r.Len(false))
	}
}
