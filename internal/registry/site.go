package registry

// WebPage subtypes accepted under the WebPage definition.
var webPageSubtypes = []string{
	"ItemPage",
	"AboutPage",
	"ContactPage",
	"CollectionPage",
	"ProfilePage",
	"SearchResultsPage",
}

// WebPageSubtypes returns the page types that validate against the WebPage definition.
func WebPageSubtypes() []string {
	out := make([]string, len(webPageSubtypes))
	copy(out, webPageSubtypes)
	return out
}

func softwareApplicationDefinition() *Definition {
	props := identityProps(bareContext(), constant(TypeSoftwareApplication))
	props = append(props,
		prop("name", str),
		prop("applicationCategory", str),
		prop("operatingSystem", str),
		prop("url", str),
		prop("description", str),
		prop("author", named(TypePerson, TypeOrganization)),
		prop("offers", typed(TypeOffer,
			prop("price", numOrStr),
			prop("priceCurrency", str),
		)),
		prop("aggregateRating", typed("AggregateRating",
			prop("ratingValue", numOrStr),
			prop("reviewCount", numOrStr),
		)),
	)

	return &Definition{
		Name:        TypeSoftwareApplication,
		Required:    []string{"@context", "@type", "name", "applicationCategory", "operatingSystem", "url"},
		Properties:  props,
		Recommended: []string{"description", "author", "offers", "aggregateRating"},
	}
}

func webSiteDefinition() *Definition {
	objectOrList := func() Constraint { return oneOf(object, objArray) }

	props := identityProps(schemaOrgContext(), constant(TypeWebSite))
	props = append(props,
		prop("@id", str),
		prop("url", str),
		prop("name", str),
		prop("description", str),
		prop("publisher", namedOrRef(TypeOrganization, TypePerson)),
		prop("potentialAction", oneOf(typed("SearchAction",
			prop("target", oneOf(str, typed("EntryPoint", prop("urlTemplate", str)))),
			prop("query-input", str),
		), objArray)),
		prop("inLanguage", str),
		prop("copyrightHolder", namedOrRef(TypeOrganization, TypePerson)),
		prop("copyrightYear", numOrStr),
		prop("isAccessibleForFree", boolean),
		prop("hasPart", objectOrList()),
		prop("isPartOf", objectOrList()),
		prop("alternateName", str),
	)

	return &Definition{
		Name:        TypeWebSite,
		Required:    []string{"@context", "@type"},
		Properties:  props,
		Recommended: []string{"url", "name", "description", "publisher"},
	}
}

func webPageDefinition() *Definition {
	ref := func() *ObjectShape { return shape(prop("@id", str)) }

	props := identityProps(schemaOrgContext(), oneOfConst(append([]string{TypeWebPage}, webPageSubtypes...)...))
	props = append(props,
		prop("@id", str),
		prop("url", str),
		prop("name", str),
		prop("description", str),
		prop("breadcrumb", oneOf(
			str,
			typed(TypeBreadcrumbList,
				prop("@id", str),
				prop("itemListElement", arrayOf(typed("ListItem",
					prop("position", num),
					prop("item", oneOf(str, shape(prop("@id", str), prop("name", str)))),
					prop("name", str),
				))),
			),
			ref(),
		)),
		prop("mainEntity", oneOf(str, object, ref())),
		prop("primaryImageOfPage", oneOf(
			str,
			typed("ImageObject",
				prop("@id", str),
				prop("url", str),
				prop("contentUrl", str),
				prop("width", numOrStr),
				prop("height", numOrStr),
				prop("caption", str),
			),
			ref(),
		)),
		prop("datePublished", str),
		prop("dateModified", str),
		prop("author", namedOrRef(TypePerson, TypeOrganization)),
		prop("isPartOf", oneOf(
			str,
			typed(TypeWebSite, prop("@id", str), prop("name", str)),
			ref(),
		)),
		prop("inLanguage", str),
		prop("potentialAction", oneOf(object, objArray)),
		prop("speakable", oneOf(typed("SpeakableSpecification",
			prop("cssSelector", strOrList),
			prop("xpath", strOrList),
		), objArray)),
		prop("lastReviewed", str),
		prop("reviewedBy", named(TypePerson, TypeOrganization)),
		prop("image", imageAny()),
	)

	return &Definition{
		Name:        TypeWebPage,
		Required:    []string{"@context", "@type"},
		Properties:  props,
		Recommended: []string{"url", "name", "description", "breadcrumb", "datePublished", "dateModified"},
	}
}

func personDefinition() *Definition {
	props := identityProps(schemaOrgContext(), constant(TypePerson))
	props = append(props,
		prop("@id", str),
		prop("name", str),
		prop("givenName", str),
		prop("familyName", str),
		prop("additionalName", str),
		prop("url", str),
		prop("image", imageAny()),
		prop("jobTitle", str),
		prop("worksFor", named(TypeOrganization)),
		prop("email", str),
		prop("telephone", str),
		prop("address", oneOf(str, postalAddress())),
		prop("sameAs", strOrList),
		prop("description", str),
		prop("birthDate", str),
		prop("gender", str),
		prop("nationality", named("Country")),
		prop("affiliation", oneOf(str, typed(TypeOrganization, prop("name", str)), objArray)),
		prop("alumniOf", oneOf(
			str,
			typedAny([]string{TypeOrganization, "EducationalOrganization"}, prop("name", str)),
			objArray,
		)),
		prop("award", strOrList),
		prop("knowsAbout", strOrList),
		prop("knowsLanguage", strOrList),
		prop("memberOf", oneOf(typedAny([]string{TypeOrganization, "ProgramMembership"}, prop("name", str)), objArray)),
	)

	return &Definition{
		Name:        TypePerson,
		Required:    []string{"@context", "@type"},
		Properties:  props,
		Recommended: []string{"name", "url", "image", "jobTitle", "worksFor", "sameAs"},
	}
}

func breadcrumbListDefinition() *Definition {
	item := typed("ListItem",
		prop("position", num),
		prop("item", oneOf(str, shape(
			prop("@id", str),
			prop("@type", str),
			prop("name", str),
			prop("url", str),
		))),
		prop("name", str),
		prop("url", str),
	).Require("@type", "position")

	props := identityProps(schemaOrgContext(), constant(TypeBreadcrumbList))
	props = append(props,
		prop("@id", str),
		prop("itemListElement", &ArrayOf{Items: item, MinItems: 1}),
		prop("numberOfItems", num),
		prop("name", str),
		prop("description", str),
	)

	return &Definition{
		Name:        TypeBreadcrumbList,
		Required:    []string{"@context", "@type", "itemListElement"},
		Properties:  props,
		Recommended: []string{},
	}
}
