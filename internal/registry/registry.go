// Package registry holds the curated schema.org type definitions recognized for
// rich-result eligibility, with their recommended properties and documentation links.
//
// The registry is built once and never mutated, so it is safe for concurrent use.
package registry

import "strings"

// Type names of the curated definitions.
const (
	TypeProduct              = "Product"
	TypeProductGroup         = "ProductGroup"
	TypeOrganization         = "Organization"
	TypeLocalBusiness        = "LocalBusiness"
	TypeArticle              = "Article"
	TypeFAQPage              = "FAQPage"
	TypeQAPage               = "QAPage"
	TypeHowTo                = "HowTo"
	TypeEvent                = "Event"
	TypeMerchantReturnPolicy = "MerchantReturnPolicy"
	TypeMemberProgram        = "MemberProgram"
	TypeOffer                = "Offer"
	TypeAggregateOffer       = "AggregateOffer"
	TypeSoftwareApplication  = "SoftwareApplication"
	TypeWebSite              = "WebSite"
	TypeWebPage              = "WebPage"
	TypePerson               = "Person"
	TypeBreadcrumbList       = "BreadcrumbList"

	// FallbackName names the minimal definition that only checks identity fields.
	FallbackName = "fallback"
)

const googleDocs = "https://developers.google.com/search/docs/appearance/structured-data/"

// docURLs maps type names, including a few aliases without their own definition,
// to their documentation page.
var docURLs = map[string]string{
	TypeProduct:              googleDocs + "product",
	TypeProductGroup:         googleDocs + "product-variants",
	TypeOrganization:         googleDocs + "organization",
	"OnlineStore":            googleDocs + "organization",
	TypeLocalBusiness:        googleDocs + "local-business",
	TypeArticle:              googleDocs + "article",
	TypeFAQPage:              googleDocs + "faqpage",
	TypeQAPage:               googleDocs + "qapage",
	TypeHowTo:                googleDocs + "how-to",
	TypeEvent:                googleDocs + "event",
	TypeSoftwareApplication:  googleDocs + "software-app",
	TypeMerchantReturnPolicy: googleDocs + "merchant-return-policy",
	TypeMemberProgram:        googleDocs + "loyalty-program",
	TypeOffer:                googleDocs + "product#offers",
	TypeAggregateOffer:       googleDocs + "product#aggregate-offers",
	TypeWebSite:              googleDocs + "sitelinks-searchbox",
	TypeWebPage:              "https://schema.org/WebPage",
	TypePerson:               "https://schema.org/Person",
	"ImageObject":            "https://schema.org/ImageObject",
	TypeBreadcrumbList:       googleDocs + "breadcrumb",
}

// Registry is an immutable set of definitions keyed by type name.
type Registry struct {
	byName   map[string]*Definition
	order    []string
	fallback *Definition
}

// New builds a registry from defs, in order. The fallback definition is kept apart
// from the named entries. Each definition's DocURL is filled from the documentation
// table when unset.
func New(fallback *Definition, defs ...*Definition) *Registry {
	r := &Registry{
		byName:   make(map[string]*Definition, len(defs)),
		fallback: fallback,
	}
	for _, d := range defs {
		if d.DocURL == "" {
			d.DocURL = docURLs[d.Name]
		}
		if _, dup := r.byName[d.Name]; !dup {
			r.order = append(r.order, d.Name)
		}
		r.byName[d.Name] = d
	}
	return r
}

// Lookup returns the definition registered under name. The fallback is not reachable by name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Names returns the registered type names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Fallback returns the minimal identity-only definition.
func (r *Registry) Fallback() *Definition {
	return r.fallback
}

// DocURL returns the documentation page for typeName, or "" when none is known.
// Aliases such as OnlineStore have a page without having their own definition.
func (r *Registry) DocURL(typeName string) string {
	if d, ok := r.byName[typeName]; ok && d.DocURL != "" {
		return d.DocURL
	}
	return docURLs[strings.TrimSpace(typeName)]
}

var defaultRegistry = New(
	fallbackDefinition(),
	productDefinition(),
	productGroupDefinition(),
	organizationDefinition(),
	localBusinessDefinition(),
	articleDefinition(),
	faqPageDefinition(),
	qaPageDefinition(),
	howToDefinition(),
	eventDefinition(),
	merchantReturnPolicyDefinition(),
	memberProgramDefinition(),
	offerDefinition(),
	aggregateOfferDefinition(),
	softwareApplicationDefinition(),
	webSiteDefinition(),
	webPageDefinition(),
	personDefinition(),
	breadcrumbListDefinition(),
)

// Default returns the process-wide registry of curated definitions.
func Default() *Registry {
	return defaultRegistry
}

// Lookup is shorthand for Default().Lookup.
func Lookup(name string) (*Definition, bool) {
	return defaultRegistry.Lookup(name)
}

func fallbackDefinition() *Definition {
	return &Definition{
		Name:     FallbackName,
		Required: []string{"@context", "@type"},
		Properties: []Property{
			prop("@context", str),
			prop("@type", str),
		},
	}
}
