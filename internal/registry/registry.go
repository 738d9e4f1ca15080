package registry

import (
	"errors"
	"sync"

	"github.com/wippyai/hdf5/sys"
)

var (
	ErrClosed      = errors.New("identifier registry closed")
	ErrInvalidType = errors.New("cannot register identifier of this type")
	ErrExhausted   = errors.New("identifier index space exhausted")
)

// Registry issues type-tagged identifiers and tracks their reference
// counts. An identifier is released, and never reissued, when its count
// drops to zero.
type Registry struct {
	entries   map[sys.ID]*entry
	next      [sys.NumTypes]uint64
	observers []Observer
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	closed    bool
}

type entry struct {
	value any
	typ   sys.IDType
	count int
	// app marks identifiers handed to applications. Library-owned
	// identifiers exist and carry counts but are not user-visible.
	app bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[sys.ID]*entry, 64),
	}
}

// Register stores value under a fresh identifier of kind typ with a
// reference count of one. app controls user visibility.
func (r *Registry) Register(typ sys.IDType, value any, app bool) (sys.ID, error) {
	if !typ.Valid() || typ == sys.TypeUninit {
		return sys.InvalidID, ErrInvalidType
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return sys.InvalidID, ErrClosed
	}
	r.next[typ]++
	index := r.next[typ]
	if index > indexMask {
		r.mu.Unlock()
		return sys.InvalidID, ErrExhausted
	}
	id := MakeID(typ, index)
	r.entries[id] = &entry{value: value, typ: typ, count: 1, app: app}
	r.mu.Unlock()

	r.notify(Event{
		Type:     EventRegistered,
		ID:       id,
		IDType:   typ,
		Value:    value,
		RefCount: 1,
	})
	return id, nil
}

// GetTyped retrieves the value only if id is of kind typ.
func (r *Registry) GetTyped(id sys.ID, typ sys.IDType) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok || e.typ != typ {
		return nil, false
	}
	return e.value, true
}

// Type returns the kind of a live identifier.
func (r *Registry) Type(id sys.ID) (sys.IDType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return sys.TypeBadID, false
	}
	return e.typ, true
}

// IsApp reports whether id is live and user-visible.
func (r *Registry) IsApp(id sys.ID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	return ok && e.app
}

// RefCount returns the current reference count of id.
func (r *Registry) RefCount(id sys.ID) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return 0, false
	}
	return e.count, true
}

// IncRef adds a reference to id and returns the new count.
func (r *Registry) IncRef(id sys.ID) (int, bool) {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		r.mu.Unlock()
		return 0, false
	}
	e.count++
	ev := Event{Type: EventIncRef, ID: id, IDType: e.typ, Value: e.value, RefCount: e.count}
	r.mu.Unlock()

	r.notify(ev)
	return ev.RefCount, true
}

// DecRef drops a reference from id and returns the remaining count.
// At zero the identifier is released and its value's Release, if any,
// is called.
func (r *Registry) DecRef(id sys.ID) (int, bool) {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		r.mu.Unlock()
		return 0, false
	}
	e.count--
	ev := Event{Type: EventDecRef, ID: id, IDType: e.typ, Value: e.value, RefCount: e.count}
	if e.count <= 0 {
		delete(r.entries, id)
		ev.Type = EventReleased
		ev.RefCount = 0
	}
	r.mu.Unlock()

	if ev.Type == EventReleased {
		if rel, ok := ev.Value.(Releaser); ok {
			rel.Release()
		}
	}
	r.notify(ev)
	return ev.RefCount, true
}

// Remove releases id regardless of its reference count, as the library
// does when a container closes and takes its members with it.
func (r *Registry) Remove(id sys.ID) (any, bool) {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		r.mu.Unlock()
		return nil, false
	}
	delete(r.entries, id)
	r.mu.Unlock()

	if rel, ok := e.value.(Releaser); ok {
		rel.Release()
	}
	r.notify(Event{Type: EventReleased, ID: id, IDType: e.typ, Value: e.value})
	return e.value, true
}

// Subscribe adds an observer for lifecycle events.
func (r *Registry) Subscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	r.observers = append(r.observers, o)
}

// Len returns the number of live identifiers, optionally restricted to
// user-visible ones.
func (r *Registry) Len(appOnly bool) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !appOnly {
		return len(r.entries)
	}
	count := 0
	for _, e := range r.entries {
		if e.app {
			count++
		}
	}
	return count
}

// Close releases every identifier and stops issuing new ones.
func (r *Registry) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	entries := r.entries
	r.entries = make(map[sys.ID]*entry)
	r.mu.Unlock()

	for _, e := range entries {
		if rel, ok := e.value.(Releaser); ok {
			rel.Release()
		}
	}
	return nil
}

func (r *Registry) notify(e Event) {
	r.obsMu.RLock()
	defer r.obsMu.RUnlock()
	for _, o := range r.observers {
		o.OnRegistryEvent(e)
	}
}
