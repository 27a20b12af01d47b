package registry

func articleDefinition() *Definition {
	props := identityProps(bareContext(), oneOfConst(TypeArticle, "NewsArticle", "BlogPosting"))
	props = append(props,
		prop("headline", str),
		prop("image", imageAny()),
		prop("datePublished", str),
		prop("dateModified", str),
		prop("author", oneOf(
			str,
			typed(TypePerson, prop("name", str)),
			typed(TypeOrganization, prop("name", str)),
		)),
		prop("publisher", typed(TypeOrganization,
			prop("name", str),
			prop("logo", oneOf(str, imageObject())),
		)),
		prop("description", str),
		prop("articleBody", str),
	)

	return &Definition{
		Name:        TypeArticle,
		Required:    []string{"@context", "@type"},
		Properties:  props,
		Recommended: []string{"headline", "image", "datePublished", "dateModified", "author", "publisher"},
	}
}

func faqAnswer() *ObjectShape {
	return typed("Answer", prop("text", str)).Require("@type", "text")
}

func faqPageDefinition() *Definition {
	question := typed("Question",
		prop("name", str),
		prop("acceptedAnswer", faqAnswer()),
		prop("suggestedAnswer", oneOf(
			faqAnswer(),
			arrayOf(selfRef("properties/mainEntity/items/properties/suggestedAnswer/oneOf/0")),
		)),
	).Require("@type", "name").RequireOneOf("acceptedAnswer", "suggestedAnswer")

	props := identityProps(bareContext(), constant(TypeFAQPage))
	props = append(props, prop("mainEntity", &ArrayOf{Items: question, MinItems: 1}))

	return &Definition{
		Name:       TypeFAQPage,
		Required:   []string{"@context", "@type", "mainEntity"},
		Properties: props,
	}
}

func qaAnswer() *ObjectShape {
	return typed("Answer",
		prop("text", str),
		prop("author", named(TypePerson)),
		prop("upvoteCount", numOrStr),
		prop("dateCreated", str),
	).Require("@type", "text")
}

func qaPageDefinition() *Definition {
	question := typed("Question",
		prop("name", str),
		prop("text", str),
		prop("answerCount", numOrStr),
		prop("acceptedAnswer", qaAnswer()),
		prop("suggestedAnswer", oneOf(
			qaAnswer(),
			arrayOf(selfRef("properties/mainEntity/properties/suggestedAnswer/oneOf/0")),
		)),
	).Require("@type", "name", "answerCount").RequireOneOf("acceptedAnswer", "suggestedAnswer")

	props := identityProps(bareContext(), constant(TypeQAPage))
	props = append(props, prop("mainEntity", question))

	return &Definition{
		Name:       TypeQAPage,
		Required:   []string{"@context", "@type", "mainEntity"},
		Properties: props,
	}
}

func howToStep() *ObjectShape {
	return typed("HowToStep",
		prop("name", str),
		prop("text", str),
		prop("image", oneOf(str, imageObject())),
	).Require("@type", "text")
}

func howToDefinition() *Definition {
	props := identityProps(bareContext(), constant(TypeHowTo))
	props = append(props,
		prop("name", str),
		prop("description", str),
		prop("image", oneOf(str, imageObject())),
		prop("totalTime", str),
		prop("estimatedCost", oneOf(str, typed("MonetaryAmount",
			prop("currency", str),
			prop("value", numOrStr),
		))),
		prop("tool", selfOrList("tool", typed("HowToTool", prop("name", str)))),
		prop("supply", selfOrList("supply", typed("HowToSupply", prop("name", str)))),
		prop("step", oneOf(
			arrayOf(howToStep()),
			typed("ItemList", prop("itemListElement", arrayOf(howToStep()))).Require("@type", "itemListElement"),
		)),
	)

	return &Definition{
		Name:        TypeHowTo,
		Required:    []string{"@context", "@type", "name", "step"},
		Properties:  props,
		Recommended: []string{"description", "totalTime", "tool", "supply", "estimatedCost"},
	}
}
