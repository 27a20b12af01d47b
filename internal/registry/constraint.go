package registry

import (
	"github.com/jonathan/structured-data-validator/internal/document"
)

// Constraint is a node of a schema shape. The concrete types below are the only
// implementations; consumers switch over them.
type Constraint interface {
	isConstraint()
}

// Primitive accepts any value whose kind is listed. Listing both number and string
// accepts either representation without coercion.
type Primitive struct {
	Kinds []document.Kind
}

// Const accepts exactly one value.
type Const struct {
	Value *document.Value
}

// OneOf accepts a value that satisfies at least one branch.
type OneOf struct {
	Branches []Constraint
}

// Property binds a constraint to an object key.
type Property struct {
	Name       string
	Constraint Constraint
}

// ObjectShape accepts an object whose listed properties satisfy their constraints.
// Keys not listed are allowed.
type ObjectShape struct {
	Owner      string // schema.org type the shape describes, used in messages
	Properties []Property
	Required   []string
	AtLeastOne []string // at least one of these keys must be present
}

// ArrayOf accepts an array whose every element satisfies Items.
type ArrayOf struct {
	Items    Constraint
	MinItems int
}

// SelfReference points back into the owning Definition, for shapes such as
// "a review, or an array of reviews". Pointer uses JSON Schema segments relative
// to the definition root, for example "properties/review/oneOf/0".
type SelfReference struct {
	Pointer string
}

func (*Primitive) isConstraint()     {}
func (*Const) isConstraint()         {}
func (*OneOf) isConstraint()         {}
func (*ObjectShape) isConstraint()   {}
func (*ArrayOf) isConstraint()       {}
func (*SelfReference) isConstraint() {}

// Property returns the constraint for name.
func (s *ObjectShape) Property(name string) (Constraint, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p.Constraint, true
		}
	}
	return nil, false
}

// Require returns s with names added to its required list.
func (s *ObjectShape) Require(names ...string) *ObjectShape {
	s.Required = append(s.Required, names...)
	return s
}

// RequireOneOf returns s with an at-least-one group set.
func (s *ObjectShape) RequireOneOf(names ...string) *ObjectShape {
	s.AtLeastOne = names
	return s
}

// Constructors used by the schema tables.

func primitive(kinds ...document.Kind) *Primitive { return &Primitive{Kinds: kinds} }

var (
	str       = primitive(document.KindString)
	num       = primitive(document.KindNumber)
	boolean   = primitive(document.KindBool)
	object    = primitive(document.KindObject)
	numOrStr  = primitive(document.KindNumber, document.KindString)
	strArray  = &ArrayOf{Items: str}
	objArray  = &ArrayOf{Items: object}
	strOrList = oneOf(str, strArray)
)

func constant(s string) *Const { return &Const{Value: document.NewString(s)} }

func oneOf(branches ...Constraint) *OneOf { return &OneOf{Branches: branches} }

// oneOfConst is a union of string constants, the usual shape of an @type property.
func oneOfConst(values ...string) *OneOf {
	branches := make([]Constraint, len(values))
	for i, v := range values {
		branches[i] = constant(v)
	}
	return oneOf(branches...)
}

func prop(name string, c Constraint) Property { return Property{Name: name, Constraint: c} }

func arrayOf(items Constraint) *ArrayOf { return &ArrayOf{Items: items} }

// shape builds an object shape without an @type constant.
func shape(props ...Property) *ObjectShape { return &ObjectShape{Properties: props} }

// typed builds an object shape whose @type must equal typeName.
func typed(typeName string, props ...Property) *ObjectShape {
	all := append([]Property{prop("@type", constant(typeName))}, props...)
	return &ObjectShape{Owner: typeName, Properties: all}
}

// typedAny builds an object shape whose @type must be one of typeNames.
func typedAny(typeNames []string, props ...Property) *ObjectShape {
	all := append([]Property{prop("@type", oneOfConst(typeNames...))}, props...)
	return &ObjectShape{Owner: typeNames[0], Properties: all}
}

func selfRef(pointer string) *SelfReference { return &SelfReference{Pointer: pointer} }

// selfOrList is "shape, or an array of the same shape" for a top-level property.
func selfOrList(name string, single Constraint) *OneOf {
	return oneOf(single, arrayOf(selfRef("properties/"+name+"/oneOf/0")))
}
