package iconic

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedParamType = errors.New("unsupported parameter value type")
	ErrNestedListParam      = errors.New("list parameters cannot contain lists")
	ErrEmptyParamName       = errors.New("parameter name cannot be empty")
)

// Token is implemented by enumerated parameter values. The returned token is
// the underlying API value, never a display name.
type Token interface {
	Token() string
}

// Date is a calendar date without a time component. It serializes as
// YYYY-MM-DD, unlike time.Time values which serialize as full RFC 3339
// timestamps in UTC.
type Date struct {
	t time.Time
}

// NewDate creates a Date from year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the date as a UTC midnight time.Time.
func (d Date) Time() time.Time {
	return d.t
}

// String renders the date in the API's YYYY-MM-DD wire format.
func (d Date) String() string {
	return d.t.Format("2006-01-02")
}

// ParamTransform is a named, ordered rewrite applied to a Params bag before
// generic encoding. Transforms resolve contextual fields (such as the order
// section filter) into plain wire values.
type ParamTransform struct {
	Name  string
	Apply func(p *Params) error
}

type paramField struct {
	name  string
	value interface{}
}

// WireParams is the encoded, transport-ready form of a Params bag. List
// values appear under their "key[]" wire key with one entry per element, in
// order; the transport repeats the key accordingly.
type WireParams struct {
	Values  url.Values
	Headers map[string]string
}

// Params is an ordered bag of logical request parameters. Field names use
// underscore-separated logical form ("brand_ids"); Encode produces the
// camelCase wire keys the API expects ("brandIds").
//
// Supported value types: string, bool, integer and float kinds, Date,
// time.Time, Token, named string/integer types, and non-nested slices of any
// of those. Nil values (and nil pointers) are dropped. Anything else is a
// programming error and Encode fails.
type Params struct {
	fields     []paramField
	transforms []ParamTransform
	headerKeys map[string]string
}

// NewParams creates an empty parameter bag.
func NewParams() *Params {
	return &Params{}
}

// Set stores a value under a logical field name, replacing any previous
// value and keeping the field's original position.
func (p *Params) Set(name string, value interface{}) *Params {
	for i := range p.fields {
		if p.fields[i].name == name {
			p.fields[i].value = value

			return p
		}
	}

	p.fields = append(p.fields, paramField{name: name, value: value})

	return p
}

// Get returns the stored value for a logical field name.
func (p *Params) Get(name string) (interface{}, bool) {
	for i := range p.fields {
		if p.fields[i].name == name {
			return p.fields[i].value, true
		}
	}

	return nil, false
}

// Delete removes a field from the bag.
func (p *Params) Delete(name string) {
	for i := range p.fields {
		if p.fields[i].name == name {
			p.fields = append(p.fields[:i], p.fields[i+1:]...)

			return
		}
	}
}

// Len returns the number of fields currently in the bag.
func (p *Params) Len() int {
	return len(p.fields)
}

// AddTransform appends a named transform. Transforms run in insertion order
// before the generic encoding rules.
func (p *Params) AddTransform(t ParamTransform) *Params {
	p.transforms = append(p.transforms, t)

	return p
}

// RouteHeader marks a logical field as transport metadata: during Encode its
// value is emitted as the given HTTP header instead of a query/body
// parameter.
func (p *Params) RouteHeader(field, header string) *Params {
	if p.headerKeys == nil {
		p.headerKeys = make(map[string]string)
	}

	p.headerKeys[field] = header

	return p
}

// Encode applies all transforms and produces the wire-ready parameters.
// Encoding is pure: calling Encode twice on the same bag yields identical
// results.
func (p *Params) Encode() (*WireParams, error) {
	work := p.clone()

	for _, t := range work.transforms {
		err := t.Apply(work)
		if err != nil {
			return nil, fmt.Errorf("applying parameter transform %q: %w", t.Name, err)
		}
	}

	wire := &WireParams{
		Values:  url.Values{},
		Headers: map[string]string{},
	}

	for _, f := range work.fields {
		if f.name == "" {
			return nil, ErrEmptyParamName
		}

		value, present := deref(f.value)
		if !present {
			continue
		}

		if header, ok := work.headerKeys[f.name]; ok {
			encoded, err := encodeScalar(value)
			if err != nil {
				return nil, fmt.Errorf("encoding header field %q: %w", f.name, err)
			}

			wire.Headers[header] = encoded

			continue
		}

		err := encodeField(wire.Values, f.name, value)
		if err != nil {
			return nil, err
		}
	}

	return wire, nil
}

// clone copies the bag so Encode-time transforms never mutate the caller's
// Params.
func (p *Params) clone() *Params {
	dup := &Params{
		fields:     make([]paramField, len(p.fields)),
		transforms: p.transforms,
		headerKeys: p.headerKeys,
	}
	copy(dup.fields, p.fields)

	return dup
}

// CamelCase converts an underscore-separated logical field name to the
// camelCase wire key: "brand_ids" becomes "brandIds". The transform is pure
// and deterministic so no two logical names can collide.
func CamelCase(name string) string {
	segments := strings.Split(name, "_")

	var builder strings.Builder

	wroteFirst := false

	for _, seg := range segments {
		if seg == "" {
			continue
		}

		if !wroteFirst {
			builder.WriteString(strings.ToLower(seg[:1]))
			builder.WriteString(seg[1:])

			wroteFirst = true

			continue
		}

		builder.WriteString(strings.ToUpper(seg[:1]))
		builder.WriteString(seg[1:])
	}

	return builder.String()
}

func encodeField(values url.Values, name string, value interface{}) error {
	key := CamelCase(name)

	if isList(value) {
		elements, err := encodeList(name, value)
		if err != nil {
			return err
		}

		listKey := key + "[]"
		for _, el := range elements {
			values.Add(listKey, el)
		}

		return nil
	}

	encoded, err := encodeScalar(value)
	if err != nil {
		return fmt.Errorf("encoding field %q: %w", name, err)
	}

	values.Set(key, encoded)

	return nil
}

func isList(value interface{}) bool {
	if _, ok := value.([]byte); ok {
		return false
	}

	kind := reflect.ValueOf(value).Kind()

	return kind == reflect.Slice || kind == reflect.Array
}

func encodeList(name string, value interface{}) ([]string, error) {
	list := reflect.ValueOf(value)
	elements := make([]string, 0, list.Len())

	for i := 0; i < list.Len(); i++ {
		element, present := deref(list.Index(i).Interface())
		if !present {
			continue
		}

		if isList(element) {
			return nil, fmt.Errorf("field %q: %w", name, ErrNestedListParam)
		}

		encoded, err := encodeScalar(element)
		if err != nil {
			return nil, fmt.Errorf("encoding field %q element %d: %w", name, i, err)
		}

		elements = append(elements, encoded)
	}

	return elements, nil
}

// encodeScalar serializes one scalar value. Unrecognized types are rejected
// rather than stringified.
func encodeScalar(value interface{}) (string, error) {
	switch v := value.(type) {
	case Date:
		return v.String(), nil
	case time.Time:
		return v.UTC().Format(time.RFC3339), nil
	case Token:
		return v.Token(), nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}

	// Named string/integer types (enums without a Token method) still encode
	// as their underlying value.
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedParamType, value)
	}
}

// deref unwraps pointers and interfaces, reporting whether a concrete value
// is present. Nil values are absent and never serialized.
func deref(value interface{}) (interface{}, bool) {
	if value == nil {
		return nil, false
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}

		rv = rv.Elem()
	}

	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map) && rv.IsNil() {
		return nil, false
	}

	return rv.Interface(), true
}
