package registry

func productDefinition() *Definition {
	notes := func(typeName string) *ObjectShape {
		return typed(typeName, prop("itemListElement", listItems()))
	}
	ageValue := oneOf(num, quantitativeValue(prop("value", num), prop("unitCode", str)))

	props := identityProps(schemaOrgContext(), oneOf(constant(TypeProduct), strArray))
	props = append(props,
		prop("@id", str),
		prop("name", str),
		prop("image", oneOf(str, strArray, typed("ImageObject", prop("url", str), prop("contentUrl", str)))),
		prop("description", str),
		prop("sku", str),
	)
	props = append(props, gtinProps()...)
	props = append(props,
		prop("isbn", str),
		prop("mpn", str),
		prop("brand", brand()),
		prop("review", selfOrList("review", typed("Review",
			prop("reviewRating", rating()),
			prop("author", named("Person")),
			prop("positiveNotes", notes("ItemList")),
			prop("negativeNotes", notes("ItemList")),
		))),
		prop("aggregateRating", aggregateRating()),
		prop("offers", selfOrList("offers", typedAny([]string{"Offer", "AggregateOffer"},
			prop("url", str),
			prop("priceCurrency", str),
			prop("price", numOrStr),
			prop("lowPrice", numOrStr),
			prop("highPrice", numOrStr),
			prop("offerCount", numOrStr),
			prop("priceSpecification", oneOf(priceSpecification(), objArray)),
			prop("itemCondition", str),
			prop("availability", str),
			prop("priceValidUntil", str),
			prop("seller", typed("Organization", prop("name", str))),
			prop("hasMerchantReturnPolicy", object),
			prop("shippingDetails", object),
		))),
		prop("audience", typed("PeopleAudience",
			prop("suggestedGender", str),
			prop("suggestedMaxAge", ageValue),
			prop("suggestedMinAge", ageValue),
		)),
		prop("color", str),
		prop("size", oneOf(str, typed("SizeSpecification",
			prop("name", str),
			prop("sizeGroup", strOrList),
			prop("sizeSystem", str),
		))),
		prop("material", str),
		prop("pattern", str),
		prop("inProductGroupWithID", str),
		prop("isVariantOf", typed("ProductGroup", prop("@id", str))),
		prop("hasCertification", oneOf(typed("Certification",
			prop("issuedBy", object),
			prop("name", str),
			prop("certificationIdentification", str),
			prop("certificationRating", object),
		), objArray)),
		prop("subjectOf", typed("3DModel",
			prop("encoding", typed("MediaObject", prop("contentUrl", str))),
		)),
		prop("url", str),
	)

	return &Definition{
		Name:        TypeProduct,
		Required:    []string{"@context", "@type"},
		Properties:  props,
		Recommended: []string{"name", "image", "description", "sku", "brand"},
		AtLeastOne:  []string{"review", "aggregateRating", "offers"},
	}
}

func productGroupDefinition() *Definition {
	variantProps := []Property{prop("@id", str), prop("url", str), prop("sku", str)}
	variantProps = append(variantProps, gtinProps()...)
	variantProps = append(variantProps,
		prop("name", str),
		prop("description", str),
		prop("image", strOrList),
		prop("color", str),
		prop("size", str),
		prop("material", str),
		prop("pattern", str),
		prop("offers", object),
	)

	props := identityProps(schemaOrgContext(), constant(TypeProductGroup))
	props = append(props,
		prop("@id", str),
		prop("name", str),
		prop("description", str),
		prop("url", str),
		prop("aggregateRating", aggregateRating()),
		prop("brand", brand()),
		prop("review", oneOf(typed("Review",
			prop("reviewRating", object),
			prop("author", object),
		), objArray)),
		prop("productGroupID", str),
		prop("variesBy", strOrList),
		prop("hasVariant", selfOrList("hasVariant", typed(TypeProduct, variantProps...))),
		prop("audience", typed("PeopleAudience",
			prop("suggestedGender", str),
			prop("suggestedAge", object),
		)),
		prop("pattern", str),
		prop("material", str),
		prop("category", str),
		prop("mpn", str),
		prop("sku", str),
		prop("image", strOrList),
	)

	return &Definition{
		Name:        TypeProductGroup,
		Required:    []string{"@context", "@type"},
		Properties:  props,
		Recommended: []string{"name", "description", "url", "productGroupID", "hasVariant"},
	}
}
