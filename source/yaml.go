package source

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyDocument is returned when a YAML source holds no data.
var ErrEmptyDocument = errors.New("empty settings document")

// ErrSectionNotFound is returned when the requested section does not exist
// in the document.
var ErrSectionNotFound = errors.New("section not found")

// Option configures YAML-backed sources.
type Option func(*options)

type options struct {
	section string
}

// Section narrows the source to a subsection of the document, addressed by
// a colon-separated path such as "services:api".
func Section(path string) Option {
	return func(o *options) {
		o.section = path
	}
}

// YAML returns a Source that parses a settings mapping from YAML data.
func YAML(data []byte, opts ...Option) Source {
	var o options
	for _, apply := range opts {
		apply(&o)
	}

	return Func(func() (map[string]any, error) {
		return parseYAML(data, o.section)
	})
}

func parseYAML(data []byte, section string) (map[string]any, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}

	values := map[string]any{}

	if section == "" {
		err := yaml.Unmarshal(data, &values)
		if err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}

		return values, nil
	}

	pathObj, err := yaml.PathString(yamlPath(section))
	if err != nil {
		return nil, fmt.Errorf("invalid section %q: %w", section, err)
	}

	err = pathObj.Read(bytes.NewReader(data), &values)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, section)
		}

		return nil, fmt.Errorf("reading section %q: %w", section, err)
	}

	return values, nil
}

// yamlPath converts a colon-separated section path to goccy/go-yaml
// PathString format, e.g. "services:api" -> "$.services.api".
func yamlPath(section string) string {
	return "$." + strings.Join(strings.Split(section, ":"), ".")
}
