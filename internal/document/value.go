// Package document models a parsed JSON-LD block as an ordered, immutable tree.
//
// Objects keep their keys in source order so that every traversal over a document
// (structural validation, URL checks, line hints) is deterministic.
package document

import (
	"strconv"

	json "github.com/goccy/go-json"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one node of a document. A nil *Value behaves like JSON null.
type Value struct {
	kind    Kind
	boolean bool
	text    string // string contents, or the number literal as written
	items   []*Value
	object  *Object
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value *Value
}

// Object is an ordered mapping. The zero value is an empty object.
type Object struct {
	members []Member
	index   map[string]int
}

// Null returns a null value.
func Null() *Value { return &Value{kind: KindNull} }

// NewBool returns a boolean value.
func NewBool(b bool) *Value { return &Value{kind: KindBool, boolean: b} }

// NewNumber returns a number value from its literal text. The literal is not checked.
func NewNumber(literal string) *Value { return &Value{kind: KindNumber, text: literal} }

// NewString returns a string value.
func NewString(s string) *Value { return &Value{kind: KindString, text: s} }

// NewArray returns an array value holding items.
func NewArray(items ...*Value) *Value { return &Value{kind: KindArray, items: items} }

// NewObject returns an object value with the given members in order.
// A repeated key keeps its first position and its last value.
func NewObject(members ...Member) *Value {
	obj := &Object{}
	for _, m := range members {
		obj.set(m.Key, m.Value)
	}
	return &Value{kind: KindObject, object: obj}
}

// Kind returns the variant held by v.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether v is null or nil.
func (v *Value) IsNull() bool { return v.Kind() == KindNull }

// Str returns the string contents when v is a string.
func (v *Value) Str() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	return v.text, true
}

// Bool returns the boolean when v is a boolean.
func (v *Value) Bool() (bool, bool) {
	if v.Kind() != KindBool {
		return false, false
	}
	return v.boolean, true
}

// NumberLiteral returns the number exactly as it was written in the source.
func (v *Value) NumberLiteral() (string, bool) {
	if v.Kind() != KindNumber {
		return "", false
	}
	return v.text, true
}

// Float returns the number as a float64.
func (v *Value) Float() (float64, bool) {
	if v.Kind() != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Items returns the elements of an array, or nil.
func (v *Value) Items() []*Value {
	if v.Kind() != KindArray {
		return nil
	}
	return v.items
}

// Object returns the object payload, or nil when v is not an object.
func (v *Value) Object() *Object {
	if v.Kind() != KindObject {
		return nil
	}
	return v.object
}

// Get looks up key when v is an object.
func (v *Value) Get(key string) (*Value, bool) {
	obj := v.Object()
	if obj == nil {
		return nil, false
	}
	return obj.Get(key)
}

// Truthy mirrors JavaScript truthiness: null, false, 0, NaN and "" are falsy;
// arrays and objects are always truthy, even when empty.
func (v *Value) Truthy() bool {
	switch v.Kind() {
	case KindNull:
		return false
	case KindBool:
		return v.boolean
	case KindNumber:
		f, ok := v.Float()
		return ok && f != 0
	case KindString:
		return v.text != ""
	default:
		return true
	}
}

// Equal reports deep equality. Numbers compare by value, so 1 and 1.0 are equal.
func (v *Value) Equal(other *Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case KindNull:
		return true
	case KindBool:
		return v.boolean == other.boolean
	case KindNumber:
		a, okA := v.Float()
		b, okB := other.Float()
		if okA && okB {
			return a == b
		}
		return v.text == other.text
	case KindString:
		return v.text == other.text
	case KindArray:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.object.Len() != other.object.Len() {
			return false
		}
		for _, m := range v.object.members {
			ov, ok := other.object.Get(m.Key)
			if !ok || !m.Value.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (*Value, bool) {
	if o == nil || o.index == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Has reports whether key is present, whatever its value.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Keys returns the keys in source order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns the members in source order. The slice must not be modified.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	return o.members
}

// With returns a copy of the object value with key set to value. The receiver is unchanged.
func (o *Object) With(key string, value *Value) *Value {
	cp := &Object{}
	for _, m := range o.Members() {
		cp.set(m.Key, m.Value)
	}
	cp.set(key, value)
	return &Value{kind: KindObject, object: cp}
}

func (o *Object) set(key string, value *Value) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.members[i].Value = value
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: value})
}

// Interface converts v to plain Go values: nil, bool, json.Number, string,
// []any and map[string]any. Object key order is not preserved.
func (v *Value) Interface() any {
	switch v.Kind() {
	case KindBool:
		return v.boolean
	case KindNumber:
		return json.Number(v.text)
	case KindString:
		return v.text
	case KindArray:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, v.object.Len())
		for _, m := range v.object.Members() {
			out[m.Key] = m.Value.Interface()
		}
		return out
	}
	return nil
}
