package crawling

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LDJSONType is the script type that marks a JSON-LD block.
const LDJSONType = "application/ld+json"

// Block is one ld+json script found in a page.
type Block struct {
	// Index is the position of the block among the page's ld+json scripts.
	Index int `json:"index"`
	// ID is the script element's id attribute, if any.
	ID      string `json:"id,omitempty"`
	Content string `json:"content"`
}

// ExtractJSONLD returns the text of every <script type="application/ld+json"> element in
// document order. Blocks that are empty after trimming are skipped; the rest keep
// their raw text so that syntax errors surface during validation.
func ExtractJSONLD(htmlContent string) ([]Block, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &ExtractionError{
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}

	blocks := make([]Block, 0)
	doc.Find("script[type]").Each(func(_ int, s *goquery.Selection) {
		scriptType, _ := s.Attr("type")
		if !isLDJSON(scriptType) {
			return
		}

		content := unwrapCDATA(strings.TrimSpace(s.Text()))
		if content == "" {
			return
		}

		id, _ := s.Attr("id")
		blocks = append(blocks, Block{
			Index:   len(blocks),
			ID:      id,
			Content: content,
		})
	})

	return blocks, nil
}

// Contents returns just the block texts, in order.
func Contents(blocks []Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.Content
	}
	return out
}

// isLDJSON matches the media type case-insensitively and ignores parameters such as charset.
func isLDJSON(scriptType string) bool {
	mediaType, _, _ := strings.Cut(scriptType, ";")
	return strings.EqualFold(strings.TrimSpace(mediaType), LDJSONType)
}

// unwrapCDATA strips a <![CDATA[ ... ]]> wrapper left by XHTML templates.
func unwrapCDATA(s string) string {
	if !strings.HasPrefix(s, "<![CDATA[") {
		return s
	}
	s = strings.TrimPrefix(s, "<![CDATA[")
	s = strings.TrimSuffix(strings.TrimSpace(s), "]]>")
	return strings.TrimSpace(s)
}
