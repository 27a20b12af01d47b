package document

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// MaxDepth bounds container nesting so hostile input cannot exhaust the stack.
const MaxDepth = 512

// Parse decodes text into an ordered Value tree. Exactly one JSON value must be present.
//
// The token stream skips separators without checking them, so the whole input is
// checked with Valid before the tree is built.
func Parse(text string) (*Value, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &SyntaxError{Message: "empty input"}
	}
	if !json.Valid([]byte(text)) {
		var discard any
		return nil, &SyntaxError{Message: "invalid JSON", Cause: json.Unmarshal([]byte(text), &discard)}
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SyntaxError{Message: "empty input"}
		}
		return nil, &SyntaxError{Message: "invalid JSON", Cause: err}
	}

	v, err := parseValue(dec, tok, 0)
	if err != nil {
		return nil, err
	}

	if extra, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, &SyntaxError{Message: "invalid data after top-level value", Cause: err}
		}
		return nil, &SyntaxError{Message: fmt.Sprintf("unexpected %v after top-level value", extra)}
	}

	return v, nil
}

func parseValue(dec *json.Decoder, tok json.Token, depth int) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		if depth >= MaxDepth {
			return nil, &SyntaxError{Message: fmt.Sprintf("nesting deeper than %d levels", MaxDepth)}
		}
		switch t {
		case '{':
			return parseObject(dec, depth+1)
		case '[':
			return parseArray(dec, depth+1)
		default:
			return nil, &SyntaxError{Message: fmt.Sprintf("unexpected delimiter %q", rune(t))}
		}
	case string:
		return NewString(t), nil
	case json.Number:
		return NewNumber(string(t)), nil
	case float64:
		return NewNumber(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case bool:
		return NewBool(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, &SyntaxError{Message: fmt.Sprintf("unexpected token %v", tok)}
	}
}

func parseObject(dec *json.Decoder, depth int) (*Value, error) {
	obj := &Object{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &SyntaxError{Message: "invalid object key", Cause: err}
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, &SyntaxError{Message: fmt.Sprintf("object key must be a string, got %v", keyTok)}
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, &SyntaxError{Message: fmt.Sprintf("invalid value for key %q", key), Cause: err}
		}
		val, err := parseValue(dec, valTok, depth)
		if err != nil {
			return nil, err
		}
		obj.set(key, val)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return &Value{kind: KindObject, object: obj}, nil
}

func parseArray(dec *json.Decoder, depth int) (*Value, error) {
	items := make([]*Value, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &SyntaxError{Message: "invalid array element", Cause: err}
		}
		item, err := parseValue(dec, tok, depth)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return &Value{kind: KindArray, items: items}, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return &SyntaxError{Message: fmt.Sprintf("expected %q", rune(want)), Cause: err}
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return &SyntaxError{Message: fmt.Sprintf("expected %q, got %v", rune(want), tok)}
	}
	return nil
}
