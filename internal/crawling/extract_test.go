package crawling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONLD_MultipleBlocks(t *testing.T) {
	html := `
		<html>
			<head>
				<script type="application/ld+json">
					{"@context":"https://schema.org","@type":"Organization","name":"Acme"}
				</script>
				<script type="text/javascript">var x = 1;</script>
				<script src="/app.js"></script>
			</head>
			<body>
				<script type="application/ld+json" id="product">{"@type":"Product"}</script>
			</body>
		</html>
	`

	blocks, err := ExtractJSONLD(html)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, 0, blocks[0].Index)
	assert.Equal(t, `{"@context":"https://schema.org","@type":"Organization","name":"Acme"}`, blocks[0].Content)
	assert.Empty(t, blocks[0].ID)

	assert.Equal(t, 1, blocks[1].Index)
	assert.Equal(t, "product", blocks[1].ID)
	assert.Equal(t, `{"@type":"Product"}`, blocks[1].Content)
}

func TestExtractJSONLD_TypeMatching(t *testing.T) {
	tests := []struct {
		name       string
		scriptType string
		want       bool
	}{
		{"exact", "application/ld+json", true},
		{"upper case", "Application/LD+JSON", true},
		{"padded", "  application/ld+json ", true},
		{"with charset", "application/ld+json; charset=utf-8", true},
		{"plain json", "application/json", false},
		{"javascript", "text/javascript", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := `<script type="` + tt.scriptType + `">{"a":1}</script>`
			blocks, err := ExtractJSONLD(html)
			require.NoError(t, err)
			if tt.want {
				assert.Len(t, blocks, 1)
			} else {
				assert.Empty(t, blocks)
			}
		})
	}
}

func TestExtractJSONLD_SkipsEmptyBlocks(t *testing.T) {
	html := `
		<script type="application/ld+json">   </script>
		<script type="application/ld+json">{"@type":"WebSite"}</script>
	`

	blocks, err := ExtractJSONLD(html)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, 0, blocks[0].Index)
}

func TestExtractJSONLD_KeepsMalformedContent(t *testing.T) {
	blocks, err := ExtractJSONLD(`<script type="application/ld+json">{"@type": </script>`)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, `{"@type":`, blocks[0].Content)
}

func TestExtractJSONLD_CDATA(t *testing.T) {
	html := `<script type="application/ld+json"><![CDATA[ {"@type":"Event"} ]]></script>`

	blocks, err := ExtractJSONLD(html)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, `{"@type":"Event"}`, blocks[0].Content)
}

func TestExtractJSONLD_NoBlocks(t *testing.T) {
	blocks, err := ExtractJSONLD(`<html><body><p>Hello</p></body></html>`)
	require.NoError(t, err)
	assert.NotNil(t, blocks)
	assert.Empty(t, blocks)
}

func TestContents(t *testing.T) {
	blocks := []Block{{Index: 0, Content: "a"}, {Index: 1, Content: "b"}}
	assert.Equal(t, []string{"a", "b"}, Contents(blocks))
	assert.Empty(t, Contents(nil))
}

func TestExtractionError(t *testing.T) {
	err := &ExtractionError{Message: "failed to parse HTML"}
	assert.Equal(t, "extraction error: failed to parse HTML", err.Error())
	assert.Nil(t, err.Unwrap())
}
