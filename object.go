package varde

import (
	"fmt"
	"reflect"

	"github.com/0xalexb/varde/importer"
	"github.com/0xalexb/varde/registry"
)

// Object is a settings object: a named view over a raw mapping of
// user-supplied values, interpreted through a Schema.
//
// The raw mapping is never mutated by resolution; every Get is a fresh,
// pure computation. Objects are therefore safe for concurrent reads as
// long as the raw mapping itself is not written to by the host.
type Object struct {
	name     string
	raw      map[string]any
	schema   *Schema
	resolver *importer.Resolver
}

// ObjectOption configures an Object.
type ObjectOption func(*Object)

// WithLoader overrides the module loader used by import-string and
// object-factory settings. The default is the process-wide registry.
func WithLoader(loader importer.Loader) ObjectOption {
	return func(o *Object) {
		o.resolver = importer.NewResolver(loader)
	}
}

// NewObject creates a settings object over the given raw mapping.
// The name becomes the root of every dotted error path reported for this
// object and its nested children. A nil raw mapping is treated as empty.
func NewObject(name string, raw map[string]any, schema *Schema, opts ...ObjectOption) *Object {
	obj := &Object{
		name:   name,
		raw:    raw,
		schema: schema,
	}

	for _, apply := range opts {
		apply(obj)
	}

	if obj.raw == nil {
		obj.raw = map[string]any{}
	}

	if obj.schema == nil {
		obj.schema = NewSchema()
	}

	if obj.resolver == nil {
		obj.resolver = importer.NewResolver(registry.Default())
	}

	return obj
}

// newChild builds a nested object scoped to a sub-mapping, inheriting the
// owner's module loader.
func newChild(owner *Object, name string, raw map[string]any, schema *Schema) *Object {
	if raw == nil {
		raw = map[string]any{}
	}

	if schema == nil {
		schema = NewSchema()
	}

	return &Object{
		name:     owner.path(name),
		raw:      raw,
		schema:   schema,
		resolver: owner.resolver,
	}
}

// Name returns the object's name, e.g. "MYAPP" or "MYAPP.DATABASE" for a
// nested object.
func (o *Object) Name() string {
	return o.name
}

// Raw returns the raw mapping backing this object. Callers must treat it
// as read-only.
func (o *Object) Raw() map[string]any {
	return o.raw
}

// Get resolves the named setting. The error is an UnknownSettingError for
// names the schema does not declare; otherwise it is whatever the setting's
// resolution produces.
func (o *Object) Get(name string) (any, error) {
	decl, ok := o.schema.declarations[name]
	if !ok {
		return nil, &UnknownSettingError{Path: o.path(name)}
	}

	return decl.resolve(o)
}

// MustGet is like Get but panics on error. Intended for startup paths where
// a misconfiguration should abort immediately.
func (o *Object) MustGet(name string) any {
	value, err := o.Get(name)
	if err != nil {
		panic(err)
	}

	return value
}

// Set always fails: settings are read-only once declared.
func (o *Object) Set(name string, value any) error {
	_ = value

	return fmt.Errorf("%s: %w", o.path(name), ErrSettingsReadOnly)
}

func (o *Object) path(setting string) string {
	return o.name + "." + setting
}

// Get resolves a setting on obj and asserts its type.
func Get[T any](obj *Object, name string) (T, error) {
	var zero T

	value, err := obj.Get(name)
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, &WrongTypeError{
			Path: obj.path(name),
			Want: reflect.TypeOf((*T)(nil)).Elem().String(),
			Got:  value,
		}
	}

	return typed, nil
}
