// Package importer resolves dotted-path strings to values provided by a
// module Loader.
//
// A dotted path such as "redispkg.clients.NewClient" may reference either a
// module-level member or an attribute nested arbitrarily deep inside one.
// Naively loading everything up to the last dot fails for nested references,
// so the Resolver searches for the longest loadable module prefix and walks
// the remaining segments as attributes:
//
//	"a.b.c.d" -> try Load("a.b.c.d"), Load("a.b.c"), Load("a.b"), Load("a")
//	             then attribute-walk the segments that were peeled off
//
// The Loader interface is the only coupling to where modules come from; the
// registry package provides the default in-process implementation, and tests
// can supply their own.
//
// Attribute lookup understands three shapes, tried in order:
//   - values implementing Attributer control their own lookup
//   - string-keyed maps are indexed by key
//   - exported struct fields and methods are found via reflection
//
// Failure kinds are distinguishable with errors.Is: ErrNoSuchModule when no
// prefix of the path names a loadable module, and ErrNoSuchAttribute when an
// attribute segment does not exist on the value reached so far.
package importer
