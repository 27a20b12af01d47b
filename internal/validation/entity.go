package validation

import (
	"github.com/jonathan/structured-data-validator/internal/diagnostics"
	"github.com/jonathan/structured-data-validator/internal/document"
	"github.com/jonathan/structured-data-validator/internal/resolver"
)

// check validates one object. member is set for @graph members, which skip the
// recommended-property check unless GraphItemsNeedRecommended is on.
func (r *run) check(e *document.Value, base string, member bool) {
	at := diagnostics.JoinPath(base, "")

	ctx, _ := e.Get(contextKey)
	typ, _ := e.Get(typeKey)
	if !ctx.Truthy() || !typ.Truthy() {
		if !ctx.Truthy() {
			r.addError(at, diagnostics.MissingRequired(contextKey))
		}
		if !typ.Truthy() {
			r.addError(at, diagnostics.MissingRequired(typeKey))
		}
		return
	}

	resolution := r.resolver.Resolve(typ)
	def := resolution.Definition
	if !resolution.Matched {
		r.res.UnresolvedTypes = append(r.res.UnresolvedTypes, typeLabel(typ))
		if r.opts.UseFallbackForUnknownTypes {
			def = r.reg.Fallback()
		}
	}
	r.logger.Debug("validating entity", "path", at, "type", resolution.TypeName, "schema", def.Name, "via", resolution.Via)

	program, err := r.cache.Program(def)
	if err != nil {
		r.logger.Error("schema compilation failed", "schema", def.Name, "error", err)
		r.addError(at, diagnostics.MsgInternalError)
	} else {
		r.res.Errors = append(r.res.Errors, diagnostics.Process(program.Validate(e), base, r.loc)...)
	}

	if !r.opts.SkipHTTPURLCheck {
		r.checkHTTPURLs(e, base)
	}
	if !r.opts.SkipRecommendedCheck && (!member || r.opts.GraphItemsNeedRecommended) && !IsReferenceNode(e) {
		r.checkRecommended(e, base, def.Recommended, r.reg.DocURL(def.Name))
	}
}

// IsReferenceNode reports whether e only points at an entity described elsewhere:
// it carries an @id and at most two keys that do not start with "@".
func IsReferenceNode(e *document.Value) bool {
	obj := e.Object()
	if obj == nil || !obj.Has(idKey) {
		return false
	}
	plain := 0
	for _, k := range obj.Keys() {
		if len(k) == 0 || k[0] != '@' {
			plain++
		}
	}
	return plain <= 2
}

// typeLabel renders an unresolved @type value for UnresolvedTypes.
func typeLabel(typ *document.Value) string {
	if name := resolver.DisplayName(typ); name != "" {
		return name
	}
	if id, ok := typ.Get(idKey); ok {
		if s, ok := id.Str(); ok {
			return s
		}
	}
	return typ.Kind().String()
}

func (r *run) checkRecommended(e *document.Value, base string, recommended []string, docURL string) {
	at := diagnostics.JoinPath(base, "")
	for _, name := range recommended {
		if v, _ := e.Get(name); v.Truthy() {
			continue
		}
		r.addWarning(at, diagnostics.JoinPath(base, name), diagnostics.MissingRecommended(name, docURL, r.opts.DocLinks))
	}
}
