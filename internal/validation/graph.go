package validation

import (
	"fmt"

	"github.com/jonathan/structured-data-validator/internal/diagnostics"
	"github.com/jonathan/structured-data-validator/internal/document"
)

// MsgGraphShape is reported when @graph is neither an array nor an object.
const MsgGraphShape = "@graph must be an array of objects"

// graph validates each member of doc's @graph as an independent entity. Members
// without their own @context inherit the root's. A single object under @graph is
// treated as a one-member graph.
func (r *run) graph(doc *document.Value, base string) {
	graph, _ := doc.Get(graphKey)
	graphPath := diagnostics.JoinPath(base, graphKey)
	rootContext, hasContext := doc.Get(contextKey)

	inherit := func(member *document.Value) *document.Value {
		if !hasContext {
			return member
		}
		if ctx, ok := member.Get(contextKey); ok && ctx.Truthy() {
			return member
		}
		return member.Object().With(contextKey, rootContext)
	}

	switch graph.Kind() {
	case document.KindObject:
		r.entity(inherit(graph), graphPath, true)
	case document.KindArray:
		for i, member := range graph.Items() {
			path := graphPath + fmt.Sprintf("[%d]", i)
			if member.Kind() != document.KindObject {
				r.addError(path, diagnostics.MsgGraphItemObject)
				continue
			}
			r.entity(inherit(member), path, true)
		}
	default:
		r.addError(graphPath, MsgGraphShape)
	}
}
