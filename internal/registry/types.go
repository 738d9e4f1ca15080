package registry

import "github.com/wippyai/hdf5/sys"

// Identifier layout: sign bit clear, 7 type bits, 56 index bits.
// Index 0 is never issued, so no valid identifier is <= 0.
const (
	typeBits  = 7
	indexBits = 64 - typeBits - 1
	indexMask = uint64(1)<<indexBits - 1
	typeMask  = uint64(1)<<typeBits - 1
)

// MakeID packs an identifier kind and an index into an identifier.
func MakeID(typ sys.IDType, index uint64) sys.ID {
	return sys.ID((uint64(typ)&typeMask)<<indexBits | index&indexMask)
}

// TypeOf decodes the kind tag of an identifier without looking it up.
// Non-positive identifiers decode to TypeBadID.
func TypeOf(id sys.ID) sys.IDType {
	if id <= 0 {
		return sys.TypeBadID
	}
	t := sys.IDType(uint64(id) >> indexBits & typeMask)
	if !t.Valid() || t == sys.TypeUninit {
		return sys.TypeBadID
	}
	return t
}

// EventType identifies a registry lifecycle notification.
type EventType uint8

const (
	EventRegistered EventType = iota
	EventIncRef
	EventDecRef
	EventReleased
)

func (e EventType) String() string {
	switch e {
	case EventRegistered:
		return "registered"
	case EventIncRef:
		return "incref"
	case EventDecRef:
		return "decref"
	case EventReleased:
		return "released"
	}
	return "unknown"
}

// Event represents an identifier lifecycle event.
type Event struct {
	Value    any
	ID       sys.ID
	IDType   sys.IDType
	Type     EventType
	RefCount int
}

// Observer receives notifications about identifier lifecycle events.
type Observer interface {
	OnRegistryEvent(Event)
}

// Releaser is optionally implemented by registered values that need
// cleanup when their identifier is released.
type Releaser interface {
	Release()
}
