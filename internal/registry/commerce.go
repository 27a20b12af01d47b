package registry

func eventDefinition() *Definition {
	props := identityProps(bareContext(), constant(TypeEvent))
	props = append(props,
		prop("name", str),
		prop("startDate", str),
		prop("endDate", str),
		prop("location", oneOf(str, place())),
		prop("image", strOrList),
		prop("description", str),
		prop("offers", selfOrList("offers", typed(TypeOffer,
			prop("url", str),
			prop("price", numOrStr),
			prop("priceCurrency", str),
			prop("availability", str),
			prop("validFrom", str),
		))),
		prop("performer", named(TypePerson, TypeOrganization)),
		prop("organizer", named(TypePerson, TypeOrganization)),
	)

	return &Definition{
		Name:        TypeEvent,
		Required:    []string{"@context", "@type", "name", "startDate"},
		Properties:  props,
		Recommended: []string{"location", "image", "endDate", "offers"},
	}
}

func merchantReturnPolicyDefinition() *Definition {
	props := identityProps(schemaOrgContext(), constant(TypeMerchantReturnPolicy))
	props = append(props,
		prop("applicableCountry", strOrList),
		prop("returnPolicyCountry", str),
		prop("returnPolicyCategory", str),
		prop("merchantReturnDays", numOrStr),
		prop("returnMethod", str),
		prop("returnFees", str),
		prop("refundType", str),
		prop("returnShippingFeesAmount", monetaryAmount()),
		prop("restockingFee", oneOf(monetaryAmount(), str)),
		prop("additionalProperty", selfOrList("additionalProperty", typed("PropertyValue",
			prop("name", str),
			prop("value", str),
		))),
		prop("merchantReturnLink", str),
		prop("inStoreReturnsOffered", boolean),
		prop("itemCondition", str),
		prop("itemDefectReturnLabelSource", str),
		prop("itemDefectReturnShippingFeesAmount", monetaryAmount()),
		prop("customerRemorseReturnFees", str),
		prop("customerRemorseReturnLabelSource", str),
		prop("customerRemorseReturnShippingFeesAmount", monetaryAmount()),
	)

	return &Definition{
		Name:       TypeMerchantReturnPolicy,
		Required:   []string{"@context", "@type"},
		Properties: props,
		Recommended: []string{
			"applicableCountry", "returnPolicyCountry", "returnPolicyCategory",
			"merchantReturnDays", "returnMethod", "returnFees", "refundType",
		},
	}
}

func memberProgramDefinition() *Definition {
	props := identityProps(schemaOrgContext(), constant(TypeMemberProgram))
	props = append(props,
		prop("name", str),
		prop("description", str),
		prop("url", str),
		prop("membershipNumber", str),
		prop("programName", str),
		prop("member", selfOrList("member", typedAny([]string{TypePerson, TypeOrganization}, prop("name", str)))),
		prop("hostingOrganization", typed(TypeOrganization, prop("name", str))),
		prop("hasTiers", arrayOf(memberProgramTier())),
		prop("membershipPointsEarned", numOrStr),
		prop("award", strOrList),
	)

	return &Definition{
		Name:        TypeMemberProgram,
		Required:    []string{"@context", "@type"},
		Properties:  props,
		Recommended: []string{"name", "description", "url", "hasTiers"},
	}
}

func offerDefinition() *Definition {
	transit := func() *ObjectShape {
		return quantitativeValue(
			prop("minValue", numOrStr),
			prop("maxValue", numOrStr),
			prop("unitCode", str),
		)
	}

	props := identityProps(schemaOrgContext(), constant(TypeOffer))
	props = append(props,
		prop("url", str),
		prop("priceCurrency", str),
		prop("price", oneOf(numOrStr, priceSpecification())),
		prop("priceSpecification", oneOf(priceSpecification(), objArray)),
		prop("itemCondition", str),
		prop("availability", str),
		prop("availabilityStarts", str),
		prop("availabilityEnds", str),
		prop("priceValidUntil", str),
		prop("validFrom", str),
		prop("validThrough", str),
		prop("seller", sellerShape()),
		prop("itemOffered", itemOffered()),
		prop("eligibleQuantity", eligibleQuantity()),
		prop("eligibleRegion", eligibleRegion()),
	)
	props = append(props, gtinProps()...)
	props = append(props,
		prop("mpn", str),
		prop("sku", str),
		prop("serialNumber", str),
		prop("hasMerchantReturnPolicy", typed(TypeMerchantReturnPolicy)),
		prop("shippingDetails", typed("OfferShippingDetails",
			prop("shippingRate", monetaryAmount()),
			prop("shippingDestination", typed("DefinedRegion", prop("addressCountry", str))),
			prop("deliveryTime", typed("ShippingDeliveryTime",
				prop("handlingTime", transit()),
				prop("transitTime", transit()),
			)),
		)),
		prop("hasMeasurement", selfOrList("hasMeasurement", quantitativeValue(
			prop("value", numOrStr),
			prop("unitCode", str),
			prop("unitText", str),
		))),
	)

	return &Definition{
		Name:        TypeOffer,
		Required:    []string{"@context", "@type"},
		Properties:  props,
		Recommended: []string{"url", "priceCurrency", "price", "availability", "itemCondition"},
	}
}

func aggregateOfferDefinition() *Definition {
	props := identityProps(schemaOrgContext(), constant(TypeAggregateOffer))
	props = append(props,
		prop("url", str),
		prop("priceCurrency", str),
		prop("lowPrice", numOrStr),
		prop("highPrice", numOrStr),
		prop("offerCount", numOrStr),
		prop("offers", arrayOf(typed(TypeOffer))),
		prop("itemCondition", str),
		prop("availability", str),
		prop("availabilityStarts", str),
		prop("availabilityEnds", str),
		prop("priceValidUntil", str),
		prop("validFrom", str),
		prop("validThrough", str),
		prop("seller", sellerShape()),
		prop("itemOffered", itemOffered()),
		prop("eligibleQuantity", eligibleQuantity()),
		prop("eligibleRegion", eligibleRegion()),
		prop("hasMerchantReturnPolicy", typed(TypeMerchantReturnPolicy)),
		prop("shippingDetails", typed("OfferShippingDetails")),
	)

	return &Definition{
		Name:        TypeAggregateOffer,
		Required:    []string{"@context", "@type"},
		Properties:  props,
		Recommended: []string{"url", "priceCurrency", "lowPrice", "highPrice", "offerCount"},
	}
}
