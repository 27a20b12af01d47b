package registry

// Fragments reused by several definitions. Each call returns a fresh tree.

// schemaOrgContext accepts the http/https, www/bare and slash/no-slash spellings.
func schemaOrgContext() Constraint {
	return oneOfConst(
		"https://schema.org",
		"http://schema.org",
		"https://schema.org/",
		"http://schema.org/",
		"https://www.schema.org",
		"http://www.schema.org",
		"https://www.schema.org/",
		"http://www.schema.org/",
	)
}

// bareContext accepts only the two canonical spellings.
func bareContext() Constraint {
	return oneOfConst("https://schema.org", "http://schema.org")
}

func identityProps(context Constraint, typeConstraint Constraint) []Property {
	return []Property{
		prop("@context", context),
		prop("@type", typeConstraint),
	}
}

func imageObject(extra ...Property) *ObjectShape {
	return typed("ImageObject", append([]Property{prop("url", str)}, extra...)...)
}

// imageAny is a URL, a list of URLs or an ImageObject.
func imageAny(extra ...Property) Constraint {
	return oneOf(str, strArray, imageObject(extra...))
}

func postalAddressProps() []Property {
	return []Property{
		prop("streetAddress", str),
		prop("addressLocality", str),
		prop("addressRegion", str),
		prop("postalCode", str),
		prop("addressCountry", str),
	}
}

func postalAddress() *ObjectShape {
	return typed("PostalAddress", postalAddressProps()...)
}

func aggregateRating() *ObjectShape {
	return typed("AggregateRating",
		prop("ratingValue", numOrStr),
		prop("bestRating", numOrStr),
		prop("worstRating", numOrStr),
		prop("reviewCount", numOrStr),
		prop("ratingCount", numOrStr),
	)
}

func rating() *ObjectShape {
	return typed("Rating",
		prop("ratingValue", numOrStr),
		prop("bestRating", numOrStr),
		prop("worstRating", numOrStr),
	)
}

// named is a plain string, or an object of one of typeNames carrying a name.
func named(typeNames ...string) Constraint {
	if len(typeNames) == 1 {
		return oneOf(str, typed(typeNames[0], prop("name", str)))
	}
	return oneOf(str, typedAny(typeNames, prop("name", str)))
}

// namedOrRef is named, with an optional @id, or a bare {"@id": ...} reference.
func namedOrRef(typeNames ...string) Constraint {
	return oneOf(
		str,
		typedAny(typeNames, prop("@id", str), prop("name", str)),
		shape(prop("@id", str)),
	)
}

func brand(extra ...Property) Constraint {
	return oneOf(str, typed("Brand", append([]Property{prop("name", str)}, extra...)...))
}

func monetaryAmount() *ObjectShape {
	return typed("MonetaryAmount",
		prop("value", numOrStr),
		prop("currency", str),
	)
}

func quantitativeValue(props ...Property) *ObjectShape {
	return typed("QuantitativeValue", props...)
}

func priceSpecification() *ObjectShape {
	return typed("PriceSpecification",
		prop("price", numOrStr),
		prop("priceCurrency", str),
		prop("priceType", str),
		prop("validForMemberTier", object),
	)
}

func place() *ObjectShape {
	return typed("Place",
		prop("name", str),
		prop("address", oneOf(str, postalAddress())),
	)
}

func memberProgramTier() *ObjectShape {
	return typed("MemberProgramTier",
		prop("@id", str),
		prop("name", str),
		prop("url", str),
		prop("hasTierBenefit", strArray),
		prop("hasTierRequirement", shape(
			prop("@type", str),
			prop("name", str),
		)),
		prop("membershipPointsEarned", numOrStr),
	)
}

func listItems() *ArrayOf {
	return arrayOf(typed("ListItem",
		prop("position", num),
		prop("name", str),
	))
}

func sellerShape() *ObjectShape {
	return typedAny([]string{"Organization", "Person"}, prop("name", str))
}

func itemOffered() Constraint {
	return oneOf(str, shape(prop("@type", str), prop("name", str)))
}

func eligibleQuantity() *ObjectShape {
	return quantitativeValue(
		prop("value", numOrStr),
		prop("minValue", numOrStr),
		prop("maxValue", numOrStr),
		prop("unitCode", str),
	)
}

func eligibleRegion() Constraint {
	return oneOf(str, strArray, typed("Place", prop("name", str)))
}

func gtinProps() []Property {
	return []Property{
		prop("gtin", str),
		prop("gtin8", str),
		prop("gtin12", str),
		prop("gtin13", str),
		prop("gtin14", str),
	}
}
