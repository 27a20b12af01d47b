package diagnostics

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Messages shown to users. They are part of the output contract.
const (
	MsgInvalidJSON     = "Invalid JSON syntax"
	MsgInternalError   = "Internal validation error"
	MsgGraphItemObject = "Graph item must be an object"
	MsgInsecurePrefix  = "URL must use HTTPS instead of HTTP for security. Found: "
)

// excerptRunes is the longest excerpt of an offending value quoted in a message.
const excerptRunes = 50

// DocLinkStyle selects how documentation links are rendered in warnings.
type DocLinkStyle string

const (
	DocLinksHTML DocLinkStyle = "html"
	DocLinksText DocLinkStyle = "text"
	DocLinksNone DocLinkStyle = "none"
)

// ParseDocLinkStyle accepts "", html, text and none. The empty string means html.
func ParseDocLinkStyle(s string) (DocLinkStyle, error) {
	switch DocLinkStyle(strings.ToLower(strings.TrimSpace(s))) {
	case "", DocLinksHTML:
		return DocLinksHTML, nil
	case DocLinksText:
		return DocLinksText, nil
	case DocLinksNone:
		return DocLinksNone, nil
	}
	return "", fmt.Errorf("unknown doc link style %q (want html, text or none)", s)
}

// MissingRequired formats a missing required property.
func MissingRequired(name string) string {
	return "Missing required property " + quote(name)
}

// InvalidValue formats a constant mismatch.
func InvalidValue(path, allowed string) string {
	return invalidFor(path) + "expected " + quote(allowed)
}

// InvalidChoice formats a value outside a set of allowed constants.
func InvalidChoice(path string, allowed []string) string {
	quoted := make([]string, len(allowed))
	for i, a := range allowed {
		quoted[i] = quote(a)
	}
	return invalidFor(path) + "expected " + joinOr(quoted)
}

// WrongKind formats a value of the wrong JSON kind, for example
// `Invalid value for "offers.price": expected number or string`.
func WrongKind(path string, expected []string) string {
	return invalidFor(path) + "expected " + joinOr(expected)
}

// NoMatchingShape formats a value that fits none of a union's alternatives.
func NoMatchingShape(path string) string {
	return invalidFor(path) + "does not match any allowed shape"
}

func invalidFor(path string) string {
	return "Invalid value for " + quote(path) + ": "
}

// quote wraps s in double quotes without escaping it.
func quote(s string) string {
	return `"` + s + `"`
}

// AtLeastOne formats an unsatisfied at-least-one group, for example
// "Product must have at least one of: review, aggregateRating, or offers".
func AtLeastOne(owner string, group []string) string {
	return fmt.Sprintf("%s must have at least one of: %s", owner, joinOr(group))
}

// TooFewItems formats a minItems violation.
func TooFewItems(path string, limit int) string {
	noun := "items"
	if limit == 1 {
		noun = "item"
	}
	return fmt.Sprintf("%s must contain at least %d %s", quote(path), limit, noun)
}

// InsecureURL formats an http:// finding with a truncated excerpt of the value.
func InsecureURL(value string) string {
	if utf8.RuneCountInString(value) <= excerptRunes {
		return MsgInsecurePrefix + value
	}
	runes := []rune(value)
	return MsgInsecurePrefix + string(runes[:excerptRunes]) + "..."
}

// MissingRecommended formats a missing recommended property, with a documentation
// link when docURL is known and the style allows it.
func MissingRecommended(name, docURL string, style DocLinkStyle) string {
	msg := "Missing recommended property " + quote(name)
	if docURL == "" {
		return msg
	}
	switch style {
	case DocLinksText:
		return msg + " - Learn more: " + docURL
	case DocLinksNone:
		return msg
	default:
		return msg + ` - <a href="` + docURL + `" target="_blank" style="color: blue; text-decoration: underline;">Learn more</a>`
	}
}

func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
}
