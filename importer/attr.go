package importer

import (
	"fmt"
	"reflect"
)

// Attributer allows a value to control attribute lookup on itself during
// path resolution, instead of the reflective default.
type Attributer interface {
	Attr(name string) (any, bool)
}

// AttributeError records a failed attribute lookup during path resolution.
type AttributeError struct {
	// Path is the dotted path successfully resolved so far.
	Path string
	// Name is the attribute segment that was not found.
	Name string
}

// Error implements the error interface.
func (e *AttributeError) Error() string {
	return fmt.Sprintf("%q has no attribute %q", e.Path, e.Name)
}

// Unwrap implements the implicit interface for usage with errors.Is.
func (e *AttributeError) Unwrap() error {
	return ErrNoSuchAttribute
}

// attr reads a named member from a value. Lookup order: Attributer, string
// keyed map index, exported struct field, method. Method sets follow the
// usual Go rules, so modules holding values with pointer-receiver methods
// should be registered as pointers.
func attr(value any, name string) (any, bool) {
	if value == nil {
		return nil, false
	}

	if attributer, ok := value.(Attributer); ok {
		return attributer.Attr(name)
	}

	if m, ok := value.(map[string]any); ok {
		member, present := m[name]

		return member, present
	}

	rv := reflect.ValueOf(value)

	if method := rv.MethodByName(name); method.IsValid() {
		return method.Interface(), true
	}

	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		field, ok := rv.Type().FieldByName(name)
		if !ok || !field.IsExported() {
			return nil, false
		}

		return rv.FieldByIndex(field.Index).Interface(), true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}

		member := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !member.IsValid() {
			return nil, false
		}

		return member.Interface(), true
	default:
		return nil, false
	}
}
