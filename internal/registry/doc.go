// Package registry issues and tracks native-style identifiers.
//
// Identifiers are positive int64 values whose top bits encode the
// identifier kind, the same layout the native library uses, so the kind of
// any identifier can be decoded without a lookup:
//
//	reg := registry.New()
//	id, _ := reg.Register(sys.TypeGenPropList, plist, true)
//	registry.TypeOf(id) // sys.TypeGenPropList
//
// # Reference Counts
//
// Every identifier starts with a count of one. IncRef and DecRef adjust it;
// when it reaches zero the identifier is released and never reissued:
//
//	reg.IncRef(id) // 2
//	reg.DecRef(id) // 1
//	reg.DecRef(id) // 0, released
//	reg.DecRef(id) // (0, false)
//
// Remove releases an identifier regardless of its count.
//
// # Visibility
//
// Identifiers registered with app=false belong to the library itself
// (predefined classes, for example). They resolve and carry counts, but
// IsApp reports false for them.
//
// # Observers
//
// Register observers to track identifier lifecycle events:
//
//	reg.Subscribe(obs) // obs.OnRegistryEvent(registry.Event{...})
//
// Tests use observers to prove that each identifier is released exactly once.
package registry
