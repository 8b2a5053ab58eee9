// Package schema publishes JSON Schemas for the profile and project data
// files, for editor completion and validation.
package schema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/nikogura/readme-forge/pkg/profile"
	"github.com/nikogura/readme-forge/pkg/repo"
	"github.com/pkg/errors"
)

// Kind names a document type.
type Kind string

// Document kinds.
const (
	KindProfile Kind = "profile"
	KindRepo    Kind = "repo"
)

// Kinds lists every document kind.
func Kinds() (kinds []Kind) {
	kinds = []Kind{KindProfile, KindRepo}
	return kinds
}

// For reflects the schema of a document kind. Field names follow the yaml
// tags, which are the names data files use.
func For(kind Kind) (schema *jsonschema.Schema, err error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		ExpandedStruct:             true,
		FieldNameTag:               "yaml",
		RequiredFromJSONSchemaTags: true,
	}

	switch kind {
	case KindProfile:
		schema = r.Reflect(&profile.Data{})
		schema.Title = "readme-forge profile"
		schema.Description = "Data file for a GitHub profile README."
	case KindRepo:
		schema = r.Reflect(&repo.Data{})
		schema.Title = "readme-forge project"
		schema.Description = "Data file for a project README."
	default:
		err = errors.Errorf("unknown document kind %q (want profile or repo)", kind)
		return schema, err
	}

	return schema, err
}

// JSON returns the indented schema of a document kind.
func JSON(kind Kind) (data []byte, err error) {
	var schema *jsonschema.Schema
	schema, err = For(kind)
	if err != nil {
		return data, err
	}

	data, err = json.MarshalIndent(schema, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal schema")
		return data, err
	}

	return data, err
}
