// Package chipdb is the in-memory chip database: typed, keyed storage for
// technology layers and sites, the standard-cell library, the module and
// netlist hierarchy, and the floorplan.
//
// Every first-class entity (cell, pin, net, instance, layer, site, module,
// region) lives in a keyed Container: a map from a monotonically-assigned
// ObjectKey to an owned entity, plus a name→key index. Containers notify
// registered listeners synchronously on Add, Remove, and ContentsChanged,
// before the mutating call returns (see Container.notify).
//
// Cross-entity relationships are always ObjectKeys, never owning pointers,
// so cyclic ownership cannot arise: an Instance's pin-connection slot holds
// a Net's key, and a Net's connection list holds (instance key, pin key)
// pairs. Both sides of a connection are kept mirrored in lock-step (see
// Netlist.Connect / Netlist.Disconnect) so the two views never diverge.
//
// The database is not internally synchronized beyond a best-effort mutex
// per container: per the concurrency model, callers own single-threaded
// access or external exclusion, and structural-invariant violations (e.g.
// a mirrored connection going stale) are bugs, not recoverable errors.
package chipdb
