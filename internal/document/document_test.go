package document

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesKeyOrder(t *testing.T) {
	v, err := Parse(`{"@type":"Product","name":"Widget","@context":"https://schema.org","offers":{"price":"9.99"}}`)
	require.NoError(t, err)

	require.Equal(t, KindObject, v.Kind())
	assert.Equal(t, []string{"@type", "name", "@context", "offers"}, v.Object().Keys())

	offers, ok := v.Get("offers")
	require.True(t, ok)
	price, ok := offers.Get("price")
	require.True(t, ok)
	s, ok := price.Str()
	require.True(t, ok)
	assert.Equal(t, "9.99", s)
}

func TestParse_DuplicateKeyLastValueFirstPosition(t *testing.T) {
	v, err := Parse(`{"a":1,"b":2,"a":3}`)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, v.Object().Keys())
	a, _ := v.Get("a")
	lit, ok := a.NumberLiteral()
	require.True(t, ok)
	assert.Equal(t, "3", lit)
}

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
	}{
		{"null", `null`, KindNull},
		{"true", `true`, KindBool},
		{"number", `4.50`, KindNumber},
		{"string", `"x"`, KindString},
		{"array", `[1,"a",null]`, KindArray},
		{"empty object", `{}`, KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestParse_NumberKeepsLiteral(t *testing.T) {
	v, err := Parse(`{"ratingValue": 4.50}`)
	require.NoError(t, err)

	rating, _ := v.Get("ratingValue")
	lit, ok := rating.NumberLiteral()
	require.True(t, ok)
	assert.Equal(t, "4.50", lit)

	f, ok := rating.Float()
	require.True(t, ok)
	assert.InDelta(t, 4.5, f, 0.0001)
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ``},
		{"whitespace only", "   \n"},
		{"bare word", `{ invalid json }`},
		{"unterminated object", `{"a": 1`},
		{"trailing data", `{"a": 1} {"b": 2}`},
		{"trailing comma", `{"a": 1,}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, v)

			var syntaxErr *SyntaxError
			assert.True(t, errors.As(err, &syntaxErr), "error should be SyntaxError, got %T", err)
		})
	}
}

func TestParse_DepthLimit(t *testing.T) {
	input := strings.Repeat("[", MaxDepth+1) + strings.Repeat("]", MaxDepth+1)

	_, err := Parse(input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nesting deeper")
}

func TestValue_Truthy(t *testing.T) {
	tests := []struct {
		name  string
		value *Value
		want  bool
	}{
		{"nil", nil, false},
		{"null", Null(), false},
		{"false", NewBool(false), false},
		{"true", NewBool(true), true},
		{"zero", NewNumber("0"), false},
		{"zero float", NewNumber("0.0"), false},
		{"non-zero", NewNumber("3"), true},
		{"empty string", NewString(""), false},
		{"string", NewString("x"), true},
		{"empty array", NewArray(), true},
		{"empty object", NewObject(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Truthy())
		})
	}
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, NewNumber("1").Equal(NewNumber("1.0")))
	assert.True(t, NewString("Product").Equal(NewString("Product")))
	assert.False(t, NewString("1").Equal(NewNumber("1")))
	assert.True(t, NewArray(NewString("a")).Equal(NewArray(NewString("a"))))
	assert.False(t, NewArray(NewString("a")).Equal(NewArray()))

	left := NewObject(Member{Key: "a", Value: NewBool(true)}, Member{Key: "b", Value: Null()})
	right := NewObject(Member{Key: "b", Value: Null()}, Member{Key: "a", Value: NewBool(true)})
	assert.True(t, left.Equal(right))
}

func TestObject_WithDoesNotMutate(t *testing.T) {
	original := NewObject(Member{Key: "@type", Value: NewString("Organization")})

	extended := original.Object().With("@context", NewString("https://schema.org"))

	assert.False(t, original.Object().Has("@context"))
	assert.Equal(t, []string{"@type", "@context"}, extended.Object().Keys())
}

func TestValue_NilIsNull(t *testing.T) {
	var v *Value

	assert.True(t, v.IsNull())
	assert.Nil(t, v.Object())
	assert.Nil(t, v.Items())
	_, ok := v.Get("x")
	assert.False(t, ok)
}

func TestValue_Interface(t *testing.T) {
	v, err := Parse(`{"a":[1,"x",true,null],"b":{"c":2.50}}`)
	require.NoError(t, err)

	got := v.Interface().(map[string]any)
	items := got["a"].([]any)
	assert.Equal(t, "1", fmt.Sprint(items[0]))
	assert.Equal(t, "x", items[1])
	assert.Equal(t, true, items[2])
	assert.Nil(t, items[3])
	assert.Equal(t, "2.50", fmt.Sprint(got["b"].(map[string]any)["c"]))
}
