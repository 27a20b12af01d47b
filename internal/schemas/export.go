package schemas

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/jonathan/structured-data-validator/internal/registry"
)

const draft07 = "http://json-schema.org/draft-07/schema#"

// Export renders def as a draft-07 JSON Schema document. Unions become anyOf,
// since a value only has to satisfy one branch, and self references become
// local $ref pointers. Recommended properties and the documentation link are
// carried as annotations.
func Export(def *registry.Definition) (map[string]any, error) {
	if def == nil {
		return nil, fmt.Errorf("export: no definition")
	}
	root, err := exportConstraint(def.Shape())
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", def.Name, err)
	}
	root["$schema"] = draft07
	root["title"] = def.Name
	if def.DocURL != "" {
		root["$comment"] = def.DocURL
	}
	if len(def.Recommended) > 0 {
		root["x-recommended"] = append([]string(nil), def.Recommended...)
	}
	return root, nil
}

// ExportJSON renders def as indented JSON.
func ExportJSON(def *registry.Definition) ([]byte, error) {
	schema, err := Export(def)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(schema, "", "  ")
}

func exportConstraint(c registry.Constraint) (map[string]any, error) {
	switch k := c.(type) {
	case *registry.Primitive:
		if len(k.Kinds) == 1 {
			return map[string]any{"type": k.Kinds[0].String()}, nil
		}
		kinds := make([]string, len(k.Kinds))
		for i, kind := range k.Kinds {
			kinds[i] = kind.String()
		}
		return map[string]any{"type": kinds}, nil

	case *registry.Const:
		return map[string]any{"const": k.Value.Interface()}, nil

	case *registry.OneOf:
		branches := make([]any, 0, len(k.Branches))
		for _, b := range k.Branches {
			out, err := exportConstraint(b)
			if err != nil {
				return nil, err
			}
			branches = append(branches, out)
		}
		return map[string]any{"anyOf": branches}, nil

	case *registry.ObjectShape:
		props := make(map[string]any, len(k.Properties))
		for _, p := range k.Properties {
			out, err := exportConstraint(p.Constraint)
			if err != nil {
				return nil, fmt.Errorf("property %s: %w", p.Name, err)
			}
			props[p.Name] = out
		}
		out := map[string]any{"type": "object", "properties": props}
		if len(k.Required) > 0 {
			out["required"] = append([]string(nil), k.Required...)
		}
		if len(k.AtLeastOne) > 0 {
			alternatives := make([]any, len(k.AtLeastOne))
			for i, name := range k.AtLeastOne {
				alternatives[i] = map[string]any{"required": []string{name}}
			}
			out["anyOf"] = alternatives
		}
		return out, nil

	case *registry.ArrayOf:
		items, err := exportConstraint(k.Items)
		if err != nil {
			return nil, err
		}
		out := map[string]any{"type": "array", "items": items}
		if k.MinItems > 0 {
			out["minItems"] = k.MinItems
		}
		return out, nil

	case *registry.SelfReference:
		return map[string]any{"$ref": refPointer(k.Pointer)}, nil
	}
	return nil, fmt.Errorf("unsupported constraint %T", c)
}

// refPointer maps a definition pointer onto the exported document, where
// unions are spelled anyOf.
func refPointer(pointer string) string {
	segments := strings.Split(strings.Trim(pointer, "/"), "/")
	for i, s := range segments {
		if s == "oneOf" && (i == 0 || segments[i-1] != "properties") {
			segments[i] = "anyOf"
		}
	}
	return "#/" + strings.Join(segments, "/")
}
