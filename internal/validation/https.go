package validation

import (
	"strings"

	"github.com/jonathan/structured-data-validator/internal/diagnostics"
	"github.com/jonathan/structured-data-validator/internal/document"
	"github.com/jonathan/structured-data-validator/internal/structural"
)

// Fields whose string values are never treated as links.
var httpExemptFields = map[string]bool{
	contextKey:    true,
	"description": true,
}

// checkHTTPURLs reports every string value in e that contains an http:// URL.
// The @context subtree, description fields and schema.org vocabulary values
// are exempt.
func (r *run) checkHTTPURLs(e *document.Value, base string) {
	walkStrings(e, structural.Root(), func(path structural.Path, s string) {
		if httpExemptFields[path.LastKey()] || isVocabularyURL(s) || !strings.Contains(s, "http://") {
			return
		}
		r.addError(diagnostics.JoinPath(base, path.String()), diagnostics.InsecureURL(s))
	})
}

func isVocabularyURL(s string) bool {
	return strings.Contains(s, "://schema.org/") || strings.Contains(s, "://www.schema.org/")
}

// walkStrings calls fn for every string in v in document order, skipping @context.
func walkStrings(v *document.Value, path structural.Path, fn func(structural.Path, string)) {
	switch v.Kind() {
	case document.KindString:
		s, _ := v.Str()
		fn(path, s)
	case document.KindArray:
		for i, item := range v.Items() {
			walkStrings(item, path.Index(i), fn)
		}
	case document.KindObject:
		for _, m := range v.Object().Members() {
			if m.Key == contextKey {
				continue
			}
			walkStrings(m.Value, path.Field(m.Key), fn)
		}
	}
}
