package structural

import (
	"github.com/jonathan/structured-data-validator/internal/document"
)

// Keyword classifies a violation.
type Keyword string

const (
	KeywordRequired Keyword = "required"
	KeywordOneOf    Keyword = "oneOf"
	KeywordConst    Keyword = "const"
	KeywordType     Keyword = "type"
	KeywordMinItems Keyword = "minItems"
)

// Violation is a raw structural failure. Path is the location of the offending
// value; for required violations it is the object missing the property.
type Violation struct {
	Path    Path
	Keyword Keyword
	Params  Params
}

// Params carries the keyword-specific details of a violation. Only the fields
// relevant to the keyword are set.
type Params struct {
	// required
	MissingProperty string
	Group           []string // set when the property belongs to an at-least-one group
	Owner           string   // type name of the object that owns the group

	// const
	Allowed *document.Value

	// oneOf
	Branches int
	Closest  []Violation       // violations of the closest branch whose kind admits the value
	Choices  []*document.Value // constants admitting the value's kind, set when Closest is empty

	// type
	Expected []document.Kind
	Actual   document.Kind

	// minItems
	Limit int
}
