package search

import (
	"context"
	"fmt"
	"os"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"gopkg.in/yaml.v3"
)

// FieldResolver maps an attribute name used in a query (title:foo) to custom field IDs.
// A name may resolve to several fields when it is used by more than one field layout.
type FieldResolver interface {
	FieldIDs(ctx context.Context, attribute string) ([]int64, error)
}

// StaticFieldResolver resolves field handles from a fixed, lowercase-keyed map.
type StaticFieldResolver map[string][]int64

// FieldIDs returns the IDs registered for attribute, or none when it is a built-in attribute.
func (r StaticFieldResolver) FieldIDs(_ context.Context, attribute string) ([]int64, error) {
	return r[strings.ToLower(attribute)], nil
}

type fieldsFile struct {
	Fields map[string][]int64 `yaml:"fields"`
}

// LoadFieldResolver reads a YAML file mapping field handles to field IDs:
//
//	fields:
//	  body: [7]
//	  specs: [8, 9]
func LoadFieldResolver(path string) (StaticFieldResolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field file %s: %w", path, err)
	}

	var f fieldsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse field file %s: %w", path, err)
	}

	r := make(StaticFieldResolver, len(f.Fields))
	for handle, ids := range f.Fields {
		key := strings.ToLower(strings.TrimSpace(handle))
		if key == "" {
			return nil, fmt.Errorf("field file %s has an empty handle", path)
		}
		if len(ids) == 0 {
			return nil, fmt.Errorf("field file %s: handle %q has no field ids", path, handle)
		}
		for _, id := range ids {
			if id <= 0 {
				return nil, fmt.Errorf("field file %s: handle %q has invalid field id %d", path, handle, id)
			}
		}
		r[key] = append(r[key], ids...)
	}
	return r, nil
}

// EntityIDSource runs attribute-scoped subqueries against the index.
type EntityIDSource interface {
	EntityIDs(ctx context.Context, where sq.Sqlizer) ([]int64, error)
}
