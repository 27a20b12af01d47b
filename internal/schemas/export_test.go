package schemas

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/structured-data-validator/internal/document"
	"github.com/jonathan/structured-data-validator/internal/registry"
	"github.com/jonathan/structured-data-validator/internal/structural"
)

func TestExport_Product(t *testing.T) {
	def, ok := registry.Lookup(registry.TypeProduct)
	require.True(t, ok)

	schema, err := Export(def)
	require.NoError(t, err)

	assert.Equal(t, draft07, schema["$schema"])
	assert.Equal(t, registry.TypeProduct, schema["title"])
	assert.Equal(t, def.DocURL, schema["$comment"])
	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []string{"@context", "@type"}, schema["required"])
	assert.Equal(t, def.Recommended, schema["x-recommended"])
	assert.Len(t, schema["anyOf"], 3)

	props := schema["properties"].(map[string]any)
	review := props["review"].(map[string]any)
	branches := review["anyOf"].([]any)
	require.Len(t, branches, 2)
	array := branches[1].(map[string]any)
	assert.Equal(t, "array", array["type"])
	assert.Equal(t, map[string]any{"$ref": "#/properties/review/anyOf/0"}, array["items"])

	price := props["offers"].(map[string]any)["anyOf"].([]any)[0].(map[string]any)["properties"].(map[string]any)["price"]
	assert.Equal(t, map[string]any{"type": []string{"number", "string"}}, price)
}

func TestExport_MinItemsAndConst(t *testing.T) {
	def, _ := registry.Lookup(registry.TypeBreadcrumbList)
	schema, err := Export(def)
	require.NoError(t, err)

	props := schema["properties"].(map[string]any)
	list := props["itemListElement"].(map[string]any)
	assert.Equal(t, 1, list["minItems"])
	assert.Equal(t, map[string]any{"const": "BreadcrumbList"}, props["@type"])
}

func TestExport_AllDefinitionsMarshal(t *testing.T) {
	reg := registry.Default()
	for _, name := range reg.Names() {
		def, _ := reg.Lookup(name)
		data, err := ExportJSON(def)
		require.NoError(t, err, name)

		var round map[string]any
		require.NoError(t, json.Unmarshal(data, &round), name)
		assert.Equal(t, name, round["title"])
	}
}

func TestExport_Errors(t *testing.T) {
	_, err := Export(nil)
	assert.Error(t, err)

	_, err = Export(&registry.Definition{Name: "Broken", Properties: []registry.Property{{Name: "x"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "property x")
}

func TestRefPointer(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"properties/review/oneOf/0", "#/properties/review/anyOf/0"},
		{"properties/mainEntity/items/properties/suggestedAnswer/oneOf/0", "#/properties/mainEntity/items/properties/suggestedAnswer/anyOf/0"},
		{"properties/oneOf/oneOf/1", "#/properties/oneOf/anyOf/1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, refPointer(tt.in))
	}
}

func TestChecker_AgreesWithStructuralValidator(t *testing.T) {
	checker := NewChecker(structural.NewCache())

	tests := []struct {
		typeName string
		doc      string
		valid    bool
	}{
		{registry.TypeOrganization, `{"@context":"https://schema.org","@type":"Organization","name":"Acme"}`, true},
		{registry.TypeOrganization, `{"@context":"https://schema.org","@type":"FooBarBaz"}`, false},
		{registry.TypeProduct, `{"@context":"https://schema.org","@type":"Product","name":"Widget"}`, false},
		{registry.TypeProduct, `{"@context":"https://schema.org","@type":"Product","offers":[{"@type":"Offer","price":"1"},{"@type":"Offer","price":2}]}`, true},
		{registry.TypeProduct, `{"@context":"https://schema.org","@type":"Product","review":[{"@type":"Review"},{"@type":"Rating"}]}`, false},
		{registry.TypeFAQPage, `{"@context":"https://schema.org","@type":"FAQPage","mainEntity":[{"@type":"Question","name":"Q","suggestedAnswer":[{"@type":"Answer","text":"A"}]}]}`, true},
		{registry.TypeFAQPage, `{"@context":"https://schema.org","@type":"FAQPage","mainEntity":[]}`, false},
		{registry.TypeBreadcrumbList, `{"@context":"https://schema.org","@type":"BreadcrumbList","itemListElement":[{"@type":"ListItem","position":1,"item":"https://a.com"}]}`, true},
		{registry.TypeLocalBusiness, `{"@context":"https://schema.org","@type":"LocalBusiness","address":"x","telephone":"1"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			def, ok := registry.Lookup(tt.typeName)
			require.True(t, ok)
			entity, err := document.Parse(tt.doc)
			require.NoError(t, err)

			c, err := checker.Check(def, entity)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, c.StructuralValid)
			assert.True(t, c.Agree(), "json schema errors: %v", c.JSONSchemaErrors)
			if !tt.valid {
				assert.NotEmpty(t, c.JSONSchemaErrors)
			}
		})
	}
}

func TestChecker_CompileError(t *testing.T) {
	checker := NewChecker(structural.NewCache())
	broken := &registry.Definition{Name: "Broken", Properties: []registry.Property{
		{Name: "x", Constraint: &registry.SelfReference{Pointer: "properties/nope"}},
	}}

	_, err := checker.Check(broken, document.NewObject())
	var cerr *structural.CompileError
	assert.ErrorAs(t, err, &cerr)
}

func TestChecker_AllExportedSchemasLoad(t *testing.T) {
	checker := NewChecker(nil)
	reg := registry.Default()
	for _, name := range reg.Names() {
		def, _ := reg.Lookup(name)
		_, err := checker.schema(def)
		assert.NoError(t, err, name)
	}
}
