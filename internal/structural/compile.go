// Package structural compiles schema definitions into reusable validation programs
// and runs them against parsed documents, producing raw violations.
package structural

import (
	"fmt"
	"slices"

	"github.com/jonathan/structured-data-validator/internal/document"
	"github.com/jonathan/structured-data-validator/internal/registry"
)

type nodeKind int

const (
	nodePrimitive nodeKind = iota
	nodeConst
	nodeOneOf
	nodeObject
	nodeArray
)

type property struct {
	name string
	node *node
}

// node is the compiled form of a constraint. Self references are linked to the
// node of their target, so the graph may contain cycles.
type node struct {
	kind nodeKind

	kinds []document.Kind // primitive
	value *document.Value // const

	branches []*node // oneOf

	owner      string // object
	props      []property
	required   []string
	atLeastOne []string

	items    *node // array
	minItems int
}

// Program is a compiled definition. It is immutable and safe for concurrent use.
type Program struct {
	name string
	root *node
}

// Name returns the name of the compiled definition.
func (p *Program) Name() string { return p.name }

type compiler struct {
	def  *registry.Definition
	memo map[registry.Constraint]*node
}

// Compile links def into a Program. Every self reference must resolve inside def.
func Compile(def *registry.Definition) (*Program, error) {
	if def == nil {
		return nil, &CompileError{Definition: "<nil>", Message: "no definition"}
	}
	c := &compiler{def: def, memo: make(map[registry.Constraint]*node)}
	root, err := c.compile(def.Shape())
	if err != nil {
		return nil, err
	}
	return &Program{name: def.Name, root: root}, nil
}

func (c *compiler) compile(con registry.Constraint) (*node, error) {
	if n, ok := c.memo[con]; ok {
		return n, nil
	}

	switch k := con.(type) {
	case *registry.Primitive:
		if len(k.Kinds) == 0 {
			return nil, &CompileError{Definition: c.def.Name, Message: "primitive without kinds"}
		}
		n := &node{kind: nodePrimitive, kinds: slices.Clone(k.Kinds)}
		c.memo[con] = n
		return n, nil

	case *registry.Const:
		n := &node{kind: nodeConst, value: k.Value}
		c.memo[con] = n
		return n, nil

	case *registry.OneOf:
		if len(k.Branches) == 0 {
			return nil, &CompileError{Definition: c.def.Name, Message: "union without branches"}
		}
		n := &node{kind: nodeOneOf}
		c.memo[con] = n
		for _, b := range k.Branches {
			child, err := c.compile(b)
			if err != nil {
				return nil, err
			}
			n.branches = append(n.branches, child)
		}
		return n, nil

	case *registry.ObjectShape:
		n := &node{
			kind:       nodeObject,
			owner:      k.Owner,
			required:   slices.Clone(k.Required),
			atLeastOne: slices.Clone(k.AtLeastOne),
		}
		c.memo[con] = n
		for _, p := range k.Properties {
			child, err := c.compile(p.Constraint)
			if err != nil {
				return nil, err
			}
			n.props = append(n.props, property{name: p.Name, node: child})
		}
		return n, nil

	case *registry.ArrayOf:
		n := &node{kind: nodeArray, minItems: k.MinItems}
		c.memo[con] = n
		child, err := c.compile(k.Items)
		if err != nil {
			return nil, err
		}
		n.items = child
		return n, nil

	case *registry.SelfReference:
		target, err := c.def.Resolve(k.Pointer)
		if err != nil {
			return nil, &CompileError{Definition: c.def.Name, Message: "unresolved self reference", Cause: err}
		}
		n, err := c.compile(target)
		if err != nil {
			return nil, err
		}
		c.memo[con] = n
		return n, nil

	case nil:
		return nil, &CompileError{Definition: c.def.Name, Message: "nil constraint"}

	default:
		return nil, &CompileError{Definition: c.def.Name, Message: fmt.Sprintf("unsupported constraint %T", con)}
	}
}
