package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// Definition is the curated schema for one schema.org type.
type Definition struct {
	Name        string
	Required    []string
	Properties  []Property
	Recommended []string
	AtLeastOne  []string // top-level "at least one of" group, at most one per type
	DocURL      string
}

// Shape returns the definition root as an object shape.
func (d *Definition) Shape() *ObjectShape {
	return &ObjectShape{
		Owner:      d.Name,
		Properties: d.Properties,
		Required:   d.Required,
		AtLeastOne: d.AtLeastOne,
	}
}

// Property returns the top-level constraint for name.
func (d *Definition) Property(name string) (Constraint, bool) {
	return d.Shape().Property(name)
}

// Resolve follows a SelfReference pointer ("properties/offers/oneOf/0") from the
// definition root.
func (d *Definition) Resolve(pointer string) (Constraint, error) {
	segments := strings.Split(strings.Trim(pointer, "/"), "/")
	var current Constraint = d.Shape()

	for i := 0; i < len(segments); i++ {
		seg := segments[i]
		switch seg {
		case "properties":
			s, ok := current.(*ObjectShape)
			if !ok || i+1 >= len(segments) {
				return nil, &PointerError{Definition: d.Name, Pointer: pointer, Message: "properties must follow an object shape and name a property"}
			}
			i++
			next, ok := s.Property(segments[i])
			if !ok {
				return nil, &PointerError{Definition: d.Name, Pointer: pointer, Message: fmt.Sprintf("no property %q", segments[i])}
			}
			current = next
		case "oneOf":
			u, ok := current.(*OneOf)
			if !ok || i+1 >= len(segments) {
				return nil, &PointerError{Definition: d.Name, Pointer: pointer, Message: "oneOf must follow a union and give a branch index"}
			}
			i++
			idx, err := strconv.Atoi(segments[i])
			if err != nil || idx < 0 || idx >= len(u.Branches) {
				return nil, &PointerError{Definition: d.Name, Pointer: pointer, Message: fmt.Sprintf("branch %q out of range", segments[i])}
			}
			current = u.Branches[idx]
		case "items":
			a, ok := current.(*ArrayOf)
			if !ok {
				return nil, &PointerError{Definition: d.Name, Pointer: pointer, Message: "items must follow an array"}
			}
			current = a.Items
		default:
			return nil, &PointerError{Definition: d.Name, Pointer: pointer, Message: fmt.Sprintf("unknown segment %q", seg)}
		}
	}

	if _, ok := current.(*SelfReference); ok {
		return nil, &PointerError{Definition: d.Name, Pointer: pointer, Message: "pointer resolves to another reference"}
	}
	return current, nil
}

// PointerError reports a SelfReference that does not resolve inside its definition.
type PointerError struct {
	Definition string
	Pointer    string
	Message    string
}

func (e *PointerError) Error() string {
	return fmt.Sprintf("schema %s: pointer %q: %s", e.Definition, e.Pointer, e.Message)
}
