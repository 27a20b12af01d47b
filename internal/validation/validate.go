// Package validation checks JSON-LD structured data against the curated schema.org
// definitions and reports path-addressed errors and warnings.
//
// A document is parsed once, split into entities (a single object, the elements
// of a top-level array, or the members of @graph) and each entity is checked on
// its own: type resolution, structural validation, then the HTTPS and
// recommended-property checks.
package validation

import (
	"fmt"
	"log/slog"

	"github.com/jonathan/structured-data-validator/internal/diagnostics"
	"github.com/jonathan/structured-data-validator/internal/document"
	"github.com/jonathan/structured-data-validator/internal/registry"
	"github.com/jonathan/structured-data-validator/internal/resolver"
	"github.com/jonathan/structured-data-validator/internal/structural"
	"github.com/jonathan/structured-data-validator/internal/types"
)

const (
	contextKey = "@context"
	typeKey    = "@type"
	graphKey   = "@graph"
	idKey      = "@id"
)

// MsgArrayItemObject is reported for a top-level array element that is not an object.
const MsgArrayItemObject = "Array item must be an object"

// Validator runs validations with a fixed set of options. It holds no per-call
// state and is safe for concurrent use.
type Validator struct {
	opts     Options
	reg      *registry.Registry
	resolver *resolver.Resolver
	cache    *structural.Cache
	logger   *slog.Logger
}

// New returns a validator for opts.
func New(opts Options) *Validator {
	opts = opts.withDefaults()
	return &Validator{
		opts:     opts,
		reg:      opts.Registry,
		resolver: resolver.New(opts.Registry, opts.Logger),
		cache:    opts.Cache,
		logger:   opts.Logger,
	}
}

// Validate parses text and validates every entity it contains.
func Validate(text string, opts Options) *types.ValidationResult {
	return New(opts).Validate(text)
}

// Validate parses text and validates every entity it contains. It never fails:
// problems with the input are reported in the result.
func (v *Validator) Validate(text string) *types.ValidationResult {
	res := types.NewValidationResult()

	root, err := document.Parse(text)
	if err != nil {
		v.logger.Debug("invalid JSON-LD", "error", err)
		res.AddError(types.RootPath, diagnostics.MsgInvalidJSON, nil)
		return res
	}

	run := &run{Validator: v, loc: diagnostics.NewLineLocator(text), res: res}

	switch root.Kind() {
	case document.KindArray:
		for i, item := range root.Items() {
			base := fmt.Sprintf("[%d]", i)
			if item.Kind() != document.KindObject {
				run.addError(base, MsgArrayItemObject)
				continue
			}
			run.document(item, base)
		}
	case document.KindObject:
		run.document(root, "")
	default:
		run.addError(types.RootPath, diagnostics.MissingRequired(contextKey))
		run.addError(types.RootPath, diagnostics.MissingRequired(typeKey))
	}
	return res
}

// run carries the state of one Validate call.
type run struct {
	*Validator
	loc *diagnostics.LineLocator
	res *types.ValidationResult
}

func (r *run) addError(path, message string) {
	r.res.AddError(path, message, r.loc.Locate(path))
}

// addWarning records a warning whose line hint is looked up from near, which may
// differ from path when the warning concerns an absent property.
func (r *run) addWarning(path, near, message string) {
	r.res.AddWarning(path, message, r.loc.Locate(near))
}

// entity checks e into a result of its own and merges it into the run's.
func (r *run) entity(e *document.Value, base string, member bool) {
	sub := &run{Validator: r.Validator, loc: r.loc, res: types.NewValidationResult()}
	sub.check(e, base, member)
	r.res.Merge(sub.res)
}

// document validates one top-level object, which is either a graph or an entity.
func (r *run) document(doc *document.Value, base string) {
	if _, ok := doc.Get(graphKey); ok {
		r.graph(doc, base)
		return
	}
	r.entity(doc, base, false)
}
