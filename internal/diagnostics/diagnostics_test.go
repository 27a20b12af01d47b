package diagnostics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/structured-data-validator/internal/document"
	"github.com/jonathan/structured-data-validator/internal/registry"
	"github.com/jonathan/structured-data-validator/internal/structural"
	"github.com/jonathan/structured-data-validator/internal/types"
)

func violationsFor(t *testing.T, typeName, text string) []structural.Violation {
	t.Helper()
	def, ok := registry.Lookup(typeName)
	require.True(t, ok)
	p, err := structural.DefaultCache().Program(def)
	require.NoError(t, err)
	v, err := document.Parse(text)
	require.NoError(t, err)
	return p.Validate(v)
}

func messages(errs []types.ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Message
	}
	return out
}

func TestProcess_ProductGroupCollapses(t *testing.T) {
	vs := violationsFor(t, registry.TypeProduct, `{"@context":"https://schema.org","@type":"Product","name":"Widget"}`)
	errs := Process(vs, "", nil)

	require.Len(t, errs, 1)
	assert.Equal(t, types.RootPath, errs[0].Path)
	assert.Equal(t, "Product must have at least one of: review, aggregateRating, or offers", errs[0].Message)
	assert.Nil(t, errs[0].Line)
}

func TestProcess_TypeViolationsDropped(t *testing.T) {
	vs := violationsFor(t, registry.TypeOrganization, `{"@context":"https://schema.org","@type":"FooBarBaz"}`)
	require.NotEmpty(t, vs)
	assert.Empty(t, Process(vs, "", nil))

	vs = violationsFor(t, registry.TypeEvent, `{"@context":"https://schema.org","@type":"Concert","name":"x","startDate":"2025"}`)
	require.NotEmpty(t, vs)
	assert.Empty(t, Process(vs, "", nil))
}

func TestProcess_NestedRequiredAndConst(t *testing.T) {
	doc := `{"@context":"https://schema.org","@type":"FAQPage","mainEntity":[
		{"@type":"Question","name":"Q","acceptedAnswer":{"@type":"Reply","text":"A"}},
		{"@type":"Question"}
	]}`
	errs := Process(violationsFor(t, registry.TypeFAQPage, doc), "@graph[1]", nil)

	require.Len(t, errs, 3)
	assert.Equal(t, "@graph[1].mainEntity[0].acceptedAnswer.@type", errs[0].Path)
	assert.Equal(t, `Invalid value for "@graph[1].mainEntity[0].acceptedAnswer.@type": expected "Answer"`, errs[0].Message)

	assert.Equal(t, "@graph[1].mainEntity[1].name", errs[1].Path)
	assert.Equal(t, `Missing required property "name"`, errs[1].Message)

	assert.Equal(t, "@graph[1].mainEntity[1]", errs[2].Path)
	assert.Equal(t, "Question must have at least one of: acceptedAnswer or suggestedAnswer", errs[2].Message)
}

func TestProcess_TopLevelRequiredUsesBasePath(t *testing.T) {
	vs := violationsFor(t, registry.TypeLocalBusiness, `{"@context":"https://schema.org","@type":"LocalBusiness"}`)

	errs := Process(vs, "", nil)
	assert.Equal(t, []string{`Missing required property "address"`, `Missing required property "telephone"`}, messages(errs))
	assert.Equal(t, types.RootPath, errs[0].Path)

	errs = Process(vs, "[3]", nil)
	assert.Equal(t, "[3]", errs[0].Path)
}

func TestProcess_MinItems(t *testing.T) {
	vs := violationsFor(t, registry.TypeBreadcrumbList, `{"@context":"https://schema.org","@type":"BreadcrumbList","itemListElement":[]}`)
	errs := Process(vs, "", nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "itemListElement", errs[0].Path)
	assert.Equal(t, `"itemListElement" must contain at least 1 item`, errs[0].Message)
}

func TestProcess_UnionAndKindErrors(t *testing.T) {
	vs := violationsFor(t, registry.TypeOffer, `{"@context":"https://schema.org","@type":"Offer","price":true,"seller":"Acme"}`)
	require.Len(t, vs, 2)

	errs := Process(vs, "", nil)
	assert.Equal(t, []string{"price", "seller"}, []string{errs[0].Path, errs[1].Path})
	assert.Equal(t, []string{
		`Invalid value for "price": does not match any allowed shape`,
		`Invalid value for "seller": expected object`,
	}, messages(errs))
}

func TestProcess_UnionClosestBranch(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		doc      string
		paths    []string
		want     []string
	}{
		{
			name:     "unknown context",
			typeName: registry.TypeOrganization,
			doc:      `{"@context":"https://example.com","@type":"Organization","name":"Acme"}`,
			paths:    []string{"@context"},
			want: []string{`Invalid value for "@context": expected "https://schema.org", "http://schema.org", ` +
				`"https://schema.org/", "http://schema.org/", "https://www.schema.org", "http://www.schema.org", ` +
				`"https://www.schema.org/", or "http://www.schema.org/"`},
		},
		{
			name:     "offer with unknown type",
			typeName: registry.TypeProduct,
			doc:      `{"@context":"https://schema.org","@type":"Product","offers":{"@type":"Banana","price":1}}`,
			paths:    []string{"offers.@type"},
			want:     []string{`Invalid value for "offers.@type": expected "Offer" or "AggregateOffer"`},
		},
		{
			name:     "offer as a plain string",
			typeName: registry.TypeProduct,
			doc:      `{"@context":"https://schema.org","@type":"Product","offers":"free"}`,
			paths:    []string{"offers"},
			want:     []string{`Invalid value for "offers": does not match any allowed shape`},
		},
		{
			name:     "offer price as object",
			typeName: registry.TypeProduct,
			doc:      `{"@context":"https://schema.org","@type":"Product","offers":{"@type":"Offer","price":{"x":1}}}`,
			paths:    []string{"offers.price"},
			want:     []string{`Invalid value for "offers.price": expected number or string`},
		},
		{
			name:     "brand of the wrong type",
			typeName: registry.TypeProduct,
			doc:      `{"@context":"https://schema.org","@type":"Product","offers":{"@type":"Offer"},"brand":{"@type":"Car","name":5}}`,
			paths:    []string{"brand.@type", "brand.name"},
			want: []string{
				`Invalid value for "brand.@type": expected "Brand"`,
				`Invalid value for "brand.name": expected string`,
			},
		},
		{
			name:     "suggested answer without text",
			typeName: registry.TypeFAQPage,
			doc:      `{"@context":"https://schema.org","@type":"FAQPage","mainEntity":[{"@type":"Question","name":"Q","suggestedAnswer":{"@type":"Answer"}}]}`,
			paths:    []string{"mainEntity[0].suggestedAnswer.text"},
			want:     []string{`Missing required property "text"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Process(violationsFor(t, tt.typeName, tt.doc), "", nil)
			paths := make([]string, len(errs))
			for i, e := range errs {
				paths[i] = e.Path
			}
			assert.Equal(t, tt.paths, paths)
			assert.Equal(t, tt.want, messages(errs))
		})
	}
}

func TestProcess_UnionUnderGraphBase(t *testing.T) {
	vs := violationsFor(t, registry.TypeProduct, `{"@context":"https://schema.org","@type":"Product","review":[{"@type":"Review"},{"@type":"Rating"}]}`)
	errs := Process(vs, "@graph[1]", nil)

	require.Len(t, errs, 1)
	assert.Equal(t, "@graph[1].review[1].@type", errs[0].Path)
	assert.Equal(t, `Invalid value for "@graph[1].review[1].@type": expected "Review"`, errs[0].Message)
}

func TestProcess_LineHints(t *testing.T) {
	doc := strings.Join([]string{
		`{`,
		`  "@context": "https://schema.org",`,
		`  "@type": "BreadcrumbList",`,
		`  "itemListElement": [`,
		`    {"@type": "ListItem", "position": 1}`,
		`  ]`,
		`}`,
	}, "\n")
	vs := violationsFor(t, registry.TypeBreadcrumbList, doc)
	errs := Process(vs, "", NewLineLocator(doc))
	require.Empty(t, errs)

	thing := strings.Replace(doc, `"@type": "ListItem", `, `"@type": "Thing", `, 1)
	vs = violationsFor(t, registry.TypeBreadcrumbList, thing)
	errs = Process(vs, "", NewLineLocator(thing))
	require.Len(t, errs, 1)
	require.NotNil(t, errs[0].Line)
	assert.Equal(t, 5, *errs[0].Line)

	wordy := strings.Replace(doc, `"position": 1`, `"position": "one"`, 1)
	vs = violationsFor(t, registry.TypeBreadcrumbList, wordy)
	errs = Process(vs, "", NewLineLocator(wordy))
	require.Len(t, errs, 1)
	assert.Equal(t, `Invalid value for "itemListElement[0].position": expected number`, errs[0].Message)
	require.NotNil(t, errs[0].Line)
	assert.Equal(t, 5, *errs[0].Line)
}

func TestLineLocator(t *testing.T) {
	src := "{\n  \"name\": \"a\",\n  \"offers\": {\n    \"name\": \"b\",\n    \"price\": 1\n  }\n}"
	loc := NewLineLocator(src)

	tests := []struct {
		path string
		want int
	}{
		{"name", 2},
		{"offers", 3},
		{"offers.name", 4},
		{"offers[0].price", 5},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := loc.Locate(tt.path)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}

	assert.Nil(t, loc.Locate("missing"))
	assert.Nil(t, loc.Locate(types.RootPath))
	assert.Nil(t, loc.Locate(""))

	var nilLoc *LineLocator
	assert.Nil(t, nilLoc.Locate("name"))
}

func TestLineLocator_SearchesAfterPreviousKey(t *testing.T) {
	src := "{\n  \"offers\": {\"price\": 1},\n  \"price\": 2\n}"
	loc := NewLineLocator(src)

	got := loc.Locate("offers.price")
	require.NotNil(t, got)
	assert.Equal(t, 3, *got, "the line holding offers is not searched again")

	assert.Nil(t, NewLineLocator(`{"offers": {"price": 1}}`).Locate("offers.price"))
}

func TestLineLocator_SingleLine(t *testing.T) {
	loc := NewLineLocator(`{"@context":"https://schema.org","@type":"Organization","url":"http://acme.com"}`)
	got := loc.Locate("url")
	require.NotNil(t, got)
	assert.Equal(t, 1, *got)
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		base, rel, want string
	}{
		{"", "", "root"},
		{"root", "", "root"},
		{"", "url", "url"},
		{"root", "url", "url"},
		{"@graph[0]", "", "@graph[0]"},
		{"@graph[0]", "offers[1].price", "@graph[0].offers[1].price"},
		{"[2]", "url", "[2].url"},
		{"@graph", "[1]", "@graph[1]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinPath(tt.base, tt.rel), "%q + %q", tt.base, tt.rel)
	}
}

func TestPathKeys(t *testing.T) {
	assert.Equal(t, []string{"@graph", "offers", "price"}, PathKeys("@graph[1].offers[0].price"))
	assert.Equal(t, []string{"url"}, PathKeys("[2].url"))
	assert.Nil(t, PathKeys("root"))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, `Missing required property "@type"`, MissingRequired("@type"))
	assert.Equal(t, `Invalid value for "a.b": expected "X"`, InvalidValue("a.b", "X"))
	assert.Equal(t, "T must have at least one of: a", AtLeastOne("T", []string{"a"}))
	assert.Equal(t, `"list" must contain at least 2 items`, TooFewItems("list", 2))
	assert.Equal(t, `Invalid value for "a": expected "X" or "Y"`, InvalidChoice("a", []string{"X", "Y"}))
	assert.Equal(t, `Invalid value for "a": expected number or string`, WrongKind("a", []string{"number", "string"}))
	assert.Equal(t, `Invalid value for "a": does not match any allowed shape`, NoMatchingShape("a"))

	short := "http://acme.com"
	assert.Equal(t, MsgInsecurePrefix+short, InsecureURL(short))

	long := "http://example.com/" + strings.Repeat("é", 60)
	msg := InsecureURL(long)
	assert.True(t, strings.HasSuffix(msg, "..."))
	excerpt := strings.TrimSuffix(strings.TrimPrefix(msg, MsgInsecurePrefix), "...")
	assert.Equal(t, 50, len([]rune(excerpt)))
}

func TestMessages_RawQuoting(t *testing.T) {
	assert.Equal(t, `Missing required property "say "hi""`, MissingRequired(`say "hi"`))
	assert.Equal(t, `Invalid value for "a\b": expected "C:\dir"`, InvalidValue(`a\b`, `C:\dir`))
	assert.Equal(t, `"x\y" must contain at least 1 item`, TooFewItems(`x\y`, 1))
	assert.Equal(t, `Missing recommended property "é\n"`, MissingRecommended(`é\n`, "", DocLinksHTML))
}

func TestMissingRecommended(t *testing.T) {
	url := "https://developers.google.com/search/docs/appearance/structured-data/product"

	html := MissingRecommended("sku", url, DocLinksHTML)
	assert.True(t, strings.HasPrefix(html, `Missing recommended property "sku" - <a href="`+url+`"`))
	assert.Contains(t, html, ">Learn more</a>")

	assert.Equal(t, `Missing recommended property "sku" - Learn more: `+url, MissingRecommended("sku", url, DocLinksText))
	assert.Equal(t, `Missing recommended property "sku"`, MissingRecommended("sku", url, DocLinksNone))
	assert.Equal(t, `Missing recommended property "sku"`, MissingRecommended("sku", "", DocLinksHTML))
}

func TestParseDocLinkStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    DocLinkStyle
		wantErr bool
	}{
		{"", DocLinksHTML, false},
		{"HTML", DocLinksHTML, false},
		{"text", DocLinksText, false},
		{" none ", DocLinksNone, false},
		{"markdown", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDocLinkStyle(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
