package registry

func organizationDefinition() *Definition {
	// Subtypes other than OnlineStore are accepted by the resolver, not by this union.
	props := identityProps(schemaOrgContext(), oneOfConst(TypeOrganization, "OnlineStore"))
	props = append(props,
		prop("name", str),
		prop("alternateName", str),
		prop("url", str),
		prop("logo", oneOf(str, typed("ImageObject", prop("url", str), prop("contentUrl", str)))),
		prop("description", str),
		prop("email", str),
		prop("telephone", str),
		prop("faxNumber", str),
		prop("address", selfOrList("address", typed("PostalAddress",
			append(postalAddressProps(), prop("postOfficeBoxNumber", str))...,
		))),
		prop("contactPoint", selfOrList("contactPoint", typed("ContactPoint",
			prop("telephone", str),
			prop("contactType", str),
			prop("email", str),
			prop("areaServed", strOrList),
			prop("availableLanguage", strOrList),
		))),
		prop("sameAs", strOrList),
		prop("foundingDate", str),
		prop("founder", named("Person", "Organization")),
		prop("duns", str),
		prop("taxID", str),
		prop("vatID", str),
		prop("globalLocationNumber", str),
		prop("legalName", str),
		prop("leiCode", str),
		prop("naics", str),
		prop("isicV4", str),
		prop("iso6523Code", str),
		prop("numberOfEmployees", oneOf(numOrStr, quantitativeValue(
			prop("value", numOrStr),
			prop("minValue", numOrStr),
			prop("maxValue", numOrStr),
		))),
		prop("department", selfOrList("department", typed(TypeOrganization, prop("name", str)))),
		prop("award", strOrList),
		prop("brand", brand(prop("logo", str))),
		prop("hasMerchantReturnPolicy", selfOrList("hasMerchantReturnPolicy", typed(TypeMerchantReturnPolicy,
			prop("applicableCountry", strOrList),
			prop("returnPolicyCountry", str),
			prop("returnPolicyCategory", str),
			prop("merchantReturnDays", numOrStr),
			prop("returnMethod", str),
			prop("returnFees", str),
			prop("refundType", str),
			prop("returnShippingFeesAmount", monetaryAmount()),
		))),
		prop("hasMemberProgram", selfOrList("hasMemberProgram", typed(TypeMemberProgram,
			prop("name", str),
			prop("description", str),
			prop("url", str),
			prop("membershipNumber", str),
			prop("programName", str),
			prop("hasTiers", arrayOf(memberProgramTier())),
		))),
		prop("aggregateRating", aggregateRating()),
		prop("review", selfOrList("review", typed("Review",
			prop("reviewRating", rating()),
			prop("author", named("Person")),
			prop("datePublished", str),
			prop("reviewBody", str),
		))),
		prop("location", oneOf(str, place())),
		prop("memberOf", selfOrList("memberOf", typedAny([]string{TypeOrganization, "ProgramMembership"}, prop("name", str)))),
		prop("knowsAbout", strOrList),
		prop("knowsLanguage", strOrList),
		prop("parentOrganization", typed(TypeOrganization, prop("name", str))),
		prop("subOrganization", selfOrList("subOrganization", typed(TypeOrganization, prop("name", str)))),
		prop("owns", selfOrList("owns", shape(prop("@type", str), prop("name", str)))),
		prop("publishingPrinciples", str),
		prop("sponsor", named("Person", "Organization")),
		prop("slogan", str),
		prop("dissolutionDate", str),
		prop("areaServed", strOrList),
		prop("serviceType", str),
		prop("tickerSymbol", str),
	)

	return &Definition{
		Name:        TypeOrganization,
		Required:    []string{"@context", "@type"},
		Properties:  props,
		Recommended: []string{"name"},
	}
}

func localBusinessDefinition() *Definition {
	props := identityProps(bareContext(), constant(TypeLocalBusiness))
	props = append(props,
		prop("name", str),
		prop("address", postalAddress().Require("@type")),
		prop("telephone", str),
		prop("url", str),
		prop("image", str),
		prop("priceRange", str),
		prop("openingHoursSpecification", selfOrList("openingHoursSpecification", typed("OpeningHoursSpecification",
			prop("dayOfWeek", strOrList),
			prop("opens", str),
			prop("closes", str),
		))),
	)

	return &Definition{
		Name:        TypeLocalBusiness,
		Required:    []string{"@context", "@type", "address", "telephone"},
		Properties:  props,
		Recommended: []string{"name", "url", "image", "priceRange", "openingHoursSpecification"},
	}
}
