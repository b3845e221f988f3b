package varde

// Nested declares a setting whose value is a child settings object scoped
// to the raw sub-mapping. The child's name is "<owner>.<name>", so error
// paths stay fully qualified at every depth. The setting is optional: with
// no raw value the child sees an empty mapping.
//
// Each access constructs a fresh child; nothing is memoized.
func Nested(name string, schema *Schema) Declaration {
	return &nested{
		base:   base{name: name, def: emptyMapDefault()},
		schema: schema,
	}
}

type nested struct {
	base

	schema *Schema
}

func (n *nested) resolve(owner *Object) (any, error) {
	raw, err := n.base.resolve(owner)
	if err != nil {
		return nil, err
	}

	sub, ok := raw.(map[string]any)
	if !ok {
		return nil, &WrongTypeError{Path: owner.path(n.name), Want: "mapping", Got: raw}
	}

	return newChild(owner, n.name, sub, n.schema), nil
}
