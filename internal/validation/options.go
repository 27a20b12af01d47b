package validation

import (
	"log/slog"

	"github.com/jonathan/structured-data-validator/internal/diagnostics"
	"github.com/jonathan/structured-data-validator/internal/registry"
	"github.com/jonathan/structured-data-validator/internal/structural"
)

// Options controls which checks run. The zero value runs the HTTPS and
// recommended-property checks with HTML documentation links.
type Options struct {
	SkipHTTPURLCheck          bool
	SkipRecommendedCheck      bool
	GraphItemsNeedRecommended bool // members of @graph get recommended-property warnings too

	// UseFallbackForUnknownTypes validates unresolved @type values against the
	// identity-only fallback definition instead of Organization.
	UseFallbackForUnknownTypes bool

	DocLinks diagnostics.DocLinkStyle

	// Concurrency bounds ValidateBlocks. Zero or less means one worker per block.
	Concurrency int

	// Programs are cached by definition name, so a custom Registry needs its own Cache.
	Registry *registry.Registry // nil uses registry.Default()
	Cache    *structural.Cache  // nil uses structural.DefaultCache()
	Logger   *slog.Logger       // nil uses slog.Default()
}

// DefaultOptions returns the options used when a caller expresses no preference.
func DefaultOptions() Options {
	return Options{DocLinks: diagnostics.DocLinksHTML}
}

// Validate checks option values that can be invalid.
func (o Options) Validate() error {
	if _, err := diagnostics.ParseDocLinkStyle(string(o.DocLinks)); err != nil {
		return &OptionsError{Field: "DocLinks", Cause: err}
	}
	if o.Concurrency < 0 {
		return &OptionsError{Field: "Concurrency", Message: "must not be negative"}
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.Registry == nil {
		o.Registry = registry.Default()
	}
	if o.Cache == nil {
		o.Cache = structural.DefaultCache()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if style, err := diagnostics.ParseDocLinkStyle(string(o.DocLinks)); err == nil {
		o.DocLinks = style
	} else {
		o.DocLinks = diagnostics.DocLinksHTML
	}
	return o
}
