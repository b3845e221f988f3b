// Package varde provides declarative, lazily-resolved settings objects.
//
// A settings Object pairs a name, used to build dotted error paths, with a
// raw mapping of user-supplied values. What each key means is declared up
// front in a Schema; the raw value is transformed into a usable runtime
// value every time it is accessed. Nothing is cached: each Get re-runs the
// resolution pipeline against the same immutable raw mapping.
//
// # Declaring settings
//
//	schema := varde.NewSchema(
//	    varde.Setting("TOKEN"),                                // required
//	    varde.Setting("TIMEOUT", varde.Default(30)),           // static default
//	    varde.Setting("BASE_URL", varde.Computed(defaultURL)), // computed default
//	    varde.MergedMap("OPTIONS", map[string]any{"retries": 3}),
//	    varde.Nested("DATABASE", databaseSchema),
//	    varde.ImportString("SERIALIZER"),
//	    varde.ObjectFactory("CACHE"),
//	)
//
//	obj := varde.NewObject("MYAPP", rawValues, schema)
//	timeout, err := obj.Get("TIMEOUT")
//
// Settings are read-only: Object.Set always fails with ErrSettingsReadOnly.
// A required setting with no raw value fails with a RequiredSettingError
// whose message names the full dotted path, e.g. "MYAPP.TOKEN". Nested
// objects extend the path, so a missing key three levels down reports
// "MYAPP.DATABASE.POOL.SIZE".
//
// # Object factories
//
// An ObjectFactory setting interprets its raw value as a declarative
// factory specification:
//
//	CACHE:
//	  FACTORY: cachepkg.New
//	  PARAMS:
//	    HOST: localhost
//	    SERIALIZER:
//	      FACTORY: jsonpkg.NewSerializer
//
// The FACTORY dotted path is resolved through the module loader (see the
// importer and registry packages) to a Go function, PARAMS values are
// processed recursively (nested factory specs are built first), keys are
// lower-cased and bound to the function's parameter struct, and the
// function is called. Misconfigurations surface as path-qualified errors:
// a missing required parameter reports "MYAPP.CACHE.PARAMS.HOST", an
// unrecognized one reports it as invalid. Errors returned by the factory
// itself pass through untouched.
//
// Schema declarations are program structure, not input data, so misuse
// there (duplicate or empty names, an unsupported Computed function)
// panics at construction time rather than returning an error.
package varde
