// Package registry provides the default importer.Loader: an in-process store
// of named modules.
//
// Go has no runtime import mechanism, so dotted-path settings resolve against
// modules that hosts register explicitly, typically from an init function in
// the package that owns the factories:
//
//	func init() {
//	    registry.MustRegister("redispkg", map[string]any{
//	        "NewClient": NewClient,
//	    })
//	}
//
// A module can be any value the importer's attribute walk understands: a
// string-keyed map of members, a struct (or pointer to one), or a value
// implementing importer.Attributer.
//
// The package-level functions operate on a process-wide default registry,
// mirroring the database/sql driver registry. Registration is guarded by a
// mutex and loads take a read lock, so concurrent resolution is safe.
package registry
