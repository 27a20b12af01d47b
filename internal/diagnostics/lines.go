package diagnostics

import (
	"strings"

	"github.com/jonathan/structured-data-validator/internal/types"
)

// LineLocator estimates source lines for diagnostic paths by searching for quoted
// keys. The estimate is advisory: it ignores nesting and matches the first
// occurrence after the line of the previous key.
type LineLocator struct {
	lines []string
}

// NewLineLocator splits source into lines.
func NewLineLocator(source string) *LineLocator {
	return &LineLocator{lines: strings.Split(source, "\n")}
}

// Locate returns the 1-based line for path, or nil when its last key is not found.
// A nil locator locates nothing.
func (l *LineLocator) Locate(path string) *int {
	if l == nil {
		return nil
	}
	keys := PathKeys(path)
	if len(keys) == 0 {
		return nil
	}

	start, last := 0, -1
	for i, key := range keys {
		needle := `"` + key + `"`
		found := -1
		for n := start; n < len(l.lines); n++ {
			if strings.Contains(l.lines[n], needle) {
				found = n
				break
			}
		}
		if found < 0 {
			if i == len(keys)-1 {
				return nil
			}
			continue
		}
		start, last = found+1, found
	}

	line := last + 1
	return &line
}

// PathKeys returns the object keys of a dot/bracket path, dropping indexes and
// the "root" placeholder. "@graph[1].offers[0].price" yields @graph, offers, price.
func PathKeys(path string) []string {
	if path == "" || path == types.RootPath {
		return nil
	}
	var keys []string
	for _, part := range strings.Split(path, ".") {
		if i := strings.IndexByte(part, '['); i >= 0 {
			part = part[:i]
		}
		if part != "" {
			keys = append(keys, part)
		}
	}
	return keys
}

// JoinPath appends rel to base in dot/bracket notation. An empty result is
// reported as "root".
func JoinPath(base, rel string) string {
	if base == types.RootPath {
		base = ""
	}
	switch {
	case base == "" && rel == "":
		return types.RootPath
	case base == "":
		return rel
	case rel == "":
		return base
	case strings.HasPrefix(rel, "["):
		return base + rel
	}
	return base + "." + rel
}
