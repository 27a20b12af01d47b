package structural

import (
	"slices"

	"github.com/jonathan/structured-data-validator/internal/document"
)

// Validate runs the program against v and returns every violation found, in
// document order. Properties not named by the definition are ignored.
func (p *Program) Validate(v *document.Value) []Violation {
	var out []Violation
	validateNode(p.root, v, Root(), &out)
	return out
}

// Matches reports whether v satisfies the program without collecting violations.
func (p *Program) Matches(v *document.Value) bool {
	return len(p.Validate(v)) == 0
}

func validateNode(n *node, v *document.Value, path Path, out *[]Violation) {
	switch n.kind {
	case nodePrimitive:
		if !slices.Contains(n.kinds, v.Kind()) {
			*out = append(*out, Violation{
				Path:    path,
				Keyword: KeywordType,
				Params:  Params{Expected: n.kinds, Actual: v.Kind()},
			})
		}

	case nodeConst:
		if !v.Equal(n.value) {
			*out = append(*out, Violation{
				Path:    path,
				Keyword: KeywordConst,
				Params:  Params{Allowed: n.value},
			})
		}

	case nodeOneOf:
		validateOneOf(n, v, path, out)

	case nodeObject:
		obj := v.Object()
		if obj == nil {
			*out = append(*out, Violation{
				Path:    path,
				Keyword: KeywordType,
				Params:  Params{Expected: []document.Kind{document.KindObject}, Actual: v.Kind()},
			})
			return
		}
		for _, name := range n.required {
			if !obj.Has(name) {
				*out = append(*out, Violation{
					Path:    path,
					Keyword: KeywordRequired,
					Params:  Params{MissingProperty: name},
				})
			}
		}
		if len(n.atLeastOne) > 0 && !slices.ContainsFunc(n.atLeastOne, obj.Has) {
			for _, name := range n.atLeastOne {
				*out = append(*out, Violation{
					Path:    path,
					Keyword: KeywordRequired,
					Params:  Params{MissingProperty: name, Group: n.atLeastOne, Owner: n.owner},
				})
			}
		}
		for _, p := range n.props {
			child, ok := obj.Get(p.name)
			if !ok {
				continue
			}
			validateNode(p.node, child, path.Field(p.name), out)
		}

	case nodeArray:
		items := v.Items()
		if v.Kind() != document.KindArray {
			*out = append(*out, Violation{
				Path:    path,
				Keyword: KeywordType,
				Params:  Params{Expected: []document.Kind{document.KindArray}, Actual: v.Kind()},
			})
			return
		}
		if len(items) < n.minItems {
			*out = append(*out, Violation{
				Path:    path,
				Keyword: KeywordMinItems,
				Params:  Params{Limit: n.minItems},
			})
		}
		for i, item := range items {
			validateNode(n.items, item, path.Index(i), out)
		}
	}
}

// validateOneOf accepts v when any branch does. Otherwise it emits one oneOf
// violation that carries the details of the closest branch: among the branches
// whose kind admits v, the one with the fewest violations, first wins. When the
// only branches admitting v are constants, their values are carried instead.
func validateOneOf(n *node, v *document.Value, path Path, out *[]Violation) {
	var (
		closest []Violation
		choices []*document.Value
	)
	for _, b := range n.branches {
		var scratch []Violation
		validateNode(b, v, path, &scratch)
		if len(scratch) == 0 {
			return
		}
		if !b.admits(v.Kind()) {
			continue
		}
		if b.kind == nodeConst {
			choices = append(choices, b.value)
			continue
		}
		if closest == nil || len(scratch) < len(closest) {
			closest = scratch
		}
	}
	if closest != nil {
		choices = nil
	}

	*out = append(*out, Violation{
		Path:    path,
		Keyword: KeywordOneOf,
		Params:  Params{Branches: len(n.branches), Closest: closest, Choices: choices},
	})
}

// admits reports whether a value of kind k could satisfy n given the right
// content, which is how the closest union branch is chosen.
func (n *node) admits(k document.Kind) bool {
	switch n.kind {
	case nodePrimitive:
		return slices.Contains(n.kinds, k)
	case nodeConst:
		return n.value.Kind() == k
	case nodeObject:
		return k == document.KindObject
	case nodeArray:
		return k == document.KindArray
	case nodeOneOf:
		return slices.ContainsFunc(n.branches, func(b *node) bool { return b.admits(k) })
	}
	return false
}
