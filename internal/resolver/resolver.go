// Package resolver maps a document's @type value onto one of the curated schema
// definitions. Resolution never fails: values that match nothing resolve to the
// Organization definition and are reported as unmatched.
package resolver

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/jonathan/structured-data-validator/internal/document"
	"github.com/jonathan/structured-data-validator/internal/registry"
)

// DefaultType is the definition used when no other rule matches.
const DefaultType = registry.TypeOrganization

// Via records which rule produced a resolution.
type Via string

const (
	ViaExact     Via = "exact"
	ViaHeuristic Via = "heuristic"
	ViaReference Via = "reference" // last segment of an @id
	ViaDefault   Via = "default"
)

// Resolution is the outcome of resolving one @type value.
type Resolution struct {
	Definition *registry.Definition
	// TypeName is the display name of the document's type: the string itself, or
	// the first element of a list.
	TypeName string
	Matched  bool
	Via      Via
}

// Resolver resolves @type values against a registry.
type Resolver struct {
	reg    *registry.Registry
	logger *slog.Logger
}

// New returns a resolver over reg. A nil logger uses slog.Default().
func New(reg *registry.Registry, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{reg: reg, logger: logger}
}

var defaultResolver = New(registry.Default(), nil)

// Resolve resolves typeValue against the default registry.
func Resolve(typeValue *document.Value) Resolution {
	return defaultResolver.Resolve(typeValue)
}

// Resolve returns the best-matching definition for typeValue.
func (r *Resolver) Resolve(typeValue *document.Value) Resolution {
	display := DisplayName(typeValue)

	if !typeValue.Truthy() {
		r.logger.Debug("no @type found, using default schema", "default", DefaultType)
		return r.fallback(display)
	}

	switch typeValue.Kind() {
	case document.KindArray:
		for _, item := range typeValue.Items() {
			name, ok := item.Str()
			if !ok {
				continue
			}
			if def, via, ok := r.matchName(name); ok {
				return Resolution{Definition: def, TypeName: display, Matched: true, Via: via}
			}
		}
	case document.KindString:
		name, _ := typeValue.Str()
		if def, via, ok := r.matchName(name); ok {
			return Resolution{Definition: def, TypeName: display, Matched: true, Via: via}
		}
	case document.KindObject:
		if id, ok := typeValue.Get("@id"); ok {
			if s, ok := id.Str(); ok {
				name := s[strings.LastIndex(s, "/")+1:]
				if def, _, ok := r.matchName(name); ok {
					return Resolution{Definition: def, TypeName: name, Matched: true, Via: ViaReference}
				}
			}
		}
	}

	r.logger.Debug("unknown @type, using default schema", "type", display, "default", DefaultType)
	return r.fallback(display)
}

func (r *Resolver) fallback(display string) Resolution {
	def, _ := r.reg.Lookup(DefaultType)
	return Resolution{Definition: def, TypeName: display, Via: ViaDefault}
}

// matchName applies the exact match and then the subtype heuristics, in priority order.
func (r *Resolver) matchName(name string) (*registry.Definition, Via, bool) {
	if name == "" {
		return nil, "", false
	}
	if def, ok := r.reg.Lookup(name); ok {
		return def, ViaExact, true
	}

	target := heuristicType(name)
	if target == "" {
		return nil, "", false
	}
	def, ok := r.reg.Lookup(target)
	if !ok {
		return nil, "", false
	}
	return def, ViaHeuristic, true
}

func heuristicType(name string) string {
	switch {
	case strings.HasSuffix(name, "Organization") || name == "OnlineStore":
		return registry.TypeOrganization
	case strings.HasSuffix(name, "Business") || name == "ProfessionalService":
		return registry.TypeLocalBusiness
	case strings.Contains(name, "Article") || name == "BlogPosting":
		return registry.TypeArticle
	case slices.Contains(registry.WebPageSubtypes(), name):
		return registry.TypeWebPage
	case strings.HasSuffix(name, "Event"):
		return registry.TypeEvent
	}
	return ""
}

// DisplayName returns the type name used in messages: the string value, the first
// element of a list, or "" for anything else.
func DisplayName(typeValue *document.Value) string {
	switch typeValue.Kind() {
	case document.KindString:
		s, _ := typeValue.Str()
		return s
	case document.KindArray:
		items := typeValue.Items()
		if len(items) > 0 {
			s, _ := items[0].Str()
			return s
		}
	}
	return ""
}
