// Package source supplies the raw settings mappings that varde objects
// resolve against.
//
// A Source produces a map[string]any on every Load, matching the engine's
// pull-based model: nothing is cached between loads, so a YAMLFile source
// re-reads the file each time it is asked.
//
// Available sources:
//   - Static: a fixed in-memory mapping
//   - YAML / YAMLFile: a YAML document, optionally narrowed to a subsection
//     addressed with a colon-separated path such as "services:api"
//   - Merge: layers several sources, later ones overriding earlier ones,
//     merging nested mappings key by key
//
// A typical host layers packaged defaults under operator overrides:
//
//	src := source.Merge(
//	    source.Static(defaults),
//	    source.YAMLFile("/etc/myapp/settings.yaml", source.Section("myapp")),
//	)
//	values, err := src.Load()
//	obj := varde.NewObject("MYAPP", values, schema)
package source
