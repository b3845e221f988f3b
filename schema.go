package varde

// Schema is the declared set of settings an Object understands, keyed by
// setting name. Schemas are immutable once built and safe to share between
// objects, including across goroutines.
type Schema struct {
	declarations map[string]Declaration
}

// NewSchema builds a Schema from setting declarations.
// Duplicate or empty names panic: declarations are program structure, and a
// clash is a bug in the host, not bad input.
func NewSchema(decls ...Declaration) *Schema {
	schema := &Schema{declarations: make(map[string]Declaration, len(decls))}

	for _, decl := range decls {
		name := decl.settingName()
		if name == "" {
			panic("varde: setting name must not be empty")
		}

		if _, exists := schema.declarations[name]; exists {
			panic("varde: duplicate setting declaration: " + name)
		}

		schema.declarations[name] = decl
	}

	return schema
}

// Names returns the declared setting names, in no particular order.
func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.declarations))
	for name := range s.declarations {
		names = append(names, name)
	}

	return names
}
