package schemas

import (
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/structured-data-validator/internal/document"
	"github.com/jonathan/structured-data-validator/internal/registry"
	"github.com/jonathan/structured-data-validator/internal/structural"
)

// Conformance compares the structural validator with a general JSON Schema
// validator running the exported schema over the same entity.
type Conformance struct {
	Definition       string
	StructuralValid  bool
	JSONSchemaValid  bool
	JSONSchemaErrors []FieldError
}

// Agree reports whether both validators reached the same verdict.
func (c *Conformance) Agree() bool {
	return c.StructuralValid == c.JSONSchemaValid
}

// Checker runs conformance checks, compiling each exported schema once.
type Checker struct {
	cache    *structural.Cache
	compiled sync.Map // definition name -> *gojsonschema.Schema
}

// NewChecker returns a checker that takes structural programs from cache.
// A nil cache uses structural.DefaultCache().
func NewChecker(cache *structural.Cache) *Checker {
	if cache == nil {
		cache = structural.DefaultCache()
	}
	return &Checker{cache: cache}
}

// Check validates entity against def with both validators.
func (c *Checker) Check(def *registry.Definition, entity *document.Value) (*Conformance, error) {
	program, err := c.cache.Program(def)
	if err != nil {
		return nil, err
	}
	schema, err := c.schema(def)
	if err != nil {
		return nil, err
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(entity.Interface()))
	if err != nil {
		return nil, &SchemaLoadError{Path: def.Name, Message: "validate document", Cause: err}
	}

	out := &Conformance{
		Definition:      def.Name,
		StructuralValid: program.Matches(entity),
		JSONSchemaValid: result.Valid(),
	}
	if verr, ok := resultError(result).(*ValidationError); ok {
		out.JSONSchemaErrors = verr.Errors
	}
	return out, nil
}

func (c *Checker) schema(def *registry.Definition) (*gojsonschema.Schema, error) {
	if s, ok := c.compiled.Load(def.Name); ok {
		return s.(*gojsonschema.Schema), nil
	}

	exported, err := Export(def)
	if err != nil {
		return nil, &SchemaLoadError{Path: def.Name, Message: "export definition", Cause: err}
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(exported))
	if err != nil {
		return nil, &SchemaLoadError{Path: def.Name, Message: "compile exported schema", Cause: err}
	}
	actual, _ := c.compiled.LoadOrStore(def.Name, s)
	return actual.(*gojsonschema.Schema), nil
}
