// Package diagnostics turns raw structural violations into path-addressed,
// user-facing errors and formats the messages shared by the domain checks.
package diagnostics

import (
	"strings"

	"github.com/jonathan/structured-data-validator/internal/document"
	"github.com/jonathan/structured-data-validator/internal/structural"
	"github.com/jonathan/structured-data-validator/internal/types"
)

const typeKey = "@type"

// Process converts violations for one entity into errors. basePath prefixes every
// reported path ("" for a standalone document, "@graph[2]" for a graph member).
// Rules, applied in order:
//   - oneOf, const and type violations at @type are dropped, since the resolver
//     may have accepted a subtype the definition does not list;
//   - required violations from an at-least-one group collapse into one error per
//     object and group;
//   - a oneOf violation is reported through its closest branch when it has one,
//     otherwise as a bad choice of constant or a shape no alternative accepts;
//   - every other violation becomes an error at its own path.
func Process(violations []structural.Violation, basePath string, loc *LineLocator) []types.ValidationError {
	p := &processor{base: basePath, loc: loc, errs: []types.ValidationError{}, groups: make(map[string]bool)}
	p.process(violations)
	return p.errs
}

type processor struct {
	base   string
	loc    *LineLocator
	errs   []types.ValidationError
	groups map[string]bool
}

func (p *processor) add(path, message string) {
	p.errs = append(p.errs, types.ValidationError{Path: path, Message: message, Line: p.loc.Locate(path)})
}

func (p *processor) process(violations []structural.Violation) {
	for _, v := range violations {
		rel := v.Path.String()

		switch v.Keyword {
		case structural.KeywordOneOf, structural.KeywordConst, structural.KeywordType:
			if rel == typeKey {
				continue
			}
		}

		path := JoinPath(p.base, rel)
		switch v.Keyword {
		case structural.KeywordRequired:
			if len(v.Params.Group) > 0 {
				key := rel + "\x00" + strings.Join(v.Params.Group, "\x00")
				if p.groups[key] {
					continue
				}
				p.groups[key] = true
				p.add(path, AtLeastOne(v.Params.Owner, v.Params.Group))
				continue
			}
			if v.Path.IsRoot() {
				p.add(path, MissingRequired(v.Params.MissingProperty))
				continue
			}
			p.add(JoinPath(p.base, v.Path.Field(v.Params.MissingProperty).String()), MissingRequired(v.Params.MissingProperty))

		case structural.KeywordConst:
			p.add(path, InvalidValue(path, constText(v.Params.Allowed)))

		case structural.KeywordMinItems:
			p.add(path, TooFewItems(path, v.Params.Limit))

		case structural.KeywordOneOf:
			switch {
			case len(v.Params.Closest) > 0:
				p.process(v.Params.Closest)
			case len(v.Params.Choices) > 0:
				allowed := make([]string, len(v.Params.Choices))
				for i, c := range v.Params.Choices {
					allowed[i] = constText(c)
				}
				p.add(path, InvalidChoice(path, allowed))
			default:
				p.add(path, NoMatchingShape(path))
			}

		case structural.KeywordType:
			expected := make([]string, len(v.Params.Expected))
			for i, k := range v.Params.Expected {
				expected[i] = k.String()
			}
			p.add(path, WrongKind(path, expected))
		}
	}
}

// constText renders an allowed constant the way it appears in messages: strings
// unquoted, numbers as written, anything else by kind.
func constText(v *document.Value) string {
	if s, ok := v.Str(); ok {
		return s
	}
	if lit, ok := v.NumberLiteral(); ok {
		return lit
	}
	if b, ok := v.Bool(); ok {
		if b {
			return "true"
		}
		return "false"
	}
	return v.Kind().String()
}
