package canvas

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Pair is a single flattened query-string entry. Name carries the full
// Rails-style bracket path (for example "assignment[peer_reviews]" or
// "include[]"); Value is the final string form sent on the wire. Pairs are
// not percent-encoded; that happens at URL assembly in EncodePairs.
type Pair struct {
	Name  string
	Value string
}

// Member is a named entry in a query tree whose value has not been
// flattened yet. A []Member flattens in declaration order, which is the
// supported way to pin exact parameter ordering; plain maps are emitted in
// sorted key order instead, because Go map iteration order is randomized.
type Member struct {
	Name  string
	Value any
}

// Flatten converts a nested query tree into an ordered sequence of flat
// name/value pairs using the Rails bracket convention Canvas expects:
// a mapping key k under prefix p becomes p[k], a sequence element under
// prefix p becomes p[] once per element.
//
// A tree is nil (dropped entirely), a bool ("true"/"false"), a scalar
// (string, integer, float, fmt.Stringer), a string-keyed map, a []Member
// or []Pair, or any other slice. Inside a generic slice, a 2-element
// sub-slice whose first element is a string is treated as an explicit
// name/value pair; any other sub-slice length is ErrMalformedPair.
//
// Flatten is idempotent on already-flat input: Flatten(pairs) == pairs
// for any []Pair.
func Flatten(tree any) ([]Pair, error) {
	return resolveQuery(tree, false)
}

// Join flattens each tree independently and concatenates the results in
// argument order. Duplicate names are legal and all emitted; no merging
// or conflict resolution happens, mirroring how web forms accept repeated
// keys.
func Join(trees ...any) ([]Pair, error) {
	var joined []Pair

	for _, tree := range trees {
		pairs, err := Flatten(tree)
		if err != nil {
			return nil, err
		}

		joined = append(joined, pairs...)
	}

	return joined, nil
}

// EncodePairs assembles a percent-encoded query string from flattened
// pairs, preserving their order. url.Values cannot be used here because it
// is backed by a map and loses the emission order the serializer
// guarantees.
func EncodePairs(pairs []Pair) string {
	var builder strings.Builder

	for i, pair := range pairs {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(pair.Name))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.Value))
	}

	return builder.String()
}

// RequestURL joins base with path and appends the flattened query, if any.
// An empty path resolves to base itself.
func RequestURL(base, path string, query any) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}

	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parsing path: %w", err)
	}

	resolved := baseURL.ResolveReference(ref)

	pairs, err := Flatten(query)
	if err != nil {
		return "", err
	}

	if len(pairs) > 0 {
		resolved.RawQuery = EncodePairs(pairs)
	}

	return resolved.String(), nil
}

// resolveQuery is the recursive worker behind Flatten. bracketed reports
// whether the current tree is nested inside another one, in which case
// names gain a bracket suffix.
func resolveQuery(tree any, bracketed bool) ([]Pair, error) {
	if tree == nil {
		return nil, nil
	}

	switch v := tree.(type) {
	case Member:
		return resolveEntry(v.Name, v.Value, bracketed)
	case Pair:
		return resolveEntry(v.Name, v.Value, bracketed)
	case []Member:
		return resolveEntries(len(v), func(i int) (string, any) { return v[i].Name, v[i].Value }, bracketed)
	case []Pair:
		return resolveEntries(len(v), func(i int) (string, any) { return v[i].Name, v[i].Value }, bracketed)
	case []byte:
		return []Pair{{Value: string(v)}}, nil
	case string:
		return []Pair{{Value: v}}, nil
	case bool:
		if v {
			return []Pair{{Value: "true"}}, nil
		}

		return []Pair{{Value: "false"}}, nil
	}

	value := reflect.ValueOf(tree)
	switch value.Kind() {
	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return nil, nil
		}

		return resolveQuery(value.Elem().Interface(), bracketed)
	case reflect.Map:
		return resolveMap(value, bracketed)
	case reflect.Slice, reflect.Array:
		return resolveSequence(value, bracketed)
	default:
		scalar, err := formatScalar(tree)
		if err != nil {
			return nil, err
		}

		return []Pair{{Value: scalar}}, nil
	}
}

// resolveEntry flattens one explicit name/value entry.
func resolveEntry(name string, value any, bracketed bool) ([]Pair, error) {
	if bracketed {
		name = "[" + name + "]"
	}

	sub, err := resolveQuery(value, true)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, len(sub))
	for _, p := range sub {
		pairs = append(pairs, Pair{Name: name + p.Name, Value: p.Value})
	}

	return pairs, nil
}

func resolveEntries(n int, at func(int) (string, any), bracketed bool) ([]Pair, error) {
	var pairs []Pair

	for i := range n {
		name, value := at(i)

		sub, err := resolveEntry(name, value, bracketed)
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, sub...)
	}

	return pairs, nil
}

// resolveMap emits a string-keyed map in sorted key order so output is
// deterministic regardless of Go's randomized map iteration.
func resolveMap(value reflect.Value, bracketed bool) ([]Pair, error) {
	if value.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: map keyed by %s", ErrUnsupportedQueryType, value.Type().Key())
	}

	keys := make([]string, 0, value.Len())
	for _, key := range value.MapKeys() {
		keys = append(keys, key.String())
	}

	sort.Strings(keys)

	var pairs []Pair

	for _, key := range keys {
		sub, err := resolveEntry(key, value.MapIndex(reflect.ValueOf(key).Convert(value.Type().Key())).Interface(), bracketed)
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, sub...)
	}

	return pairs, nil
}

// resolveSequence emits a generic sequence. Elements that are themselves
// explicit pairs keep their own names; everything else shares the repeated
// "[]" suffix (bare "" at the top level).
func resolveSequence(value reflect.Value, bracketed bool) ([]Pair, error) {
	var pairs []Pair

	for i := range value.Len() {
		element := value.Index(i).Interface()

		sub, err := resolveElement(element, bracketed)
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, sub...)
	}

	return pairs, nil
}

func resolveElement(element any, bracketed bool) ([]Pair, error) {
	switch v := element.(type) {
	case Member:
		return resolveEntry(v.Name, v.Value, bracketed)
	case Pair:
		return resolveEntry(v.Name, v.Value, bracketed)
	}

	if name, inner, ok, err := asRawPair(element); err != nil {
		return nil, err
	} else if ok {
		return resolveEntry(name, inner, bracketed)
	}

	name := ""
	if bracketed {
		name = "[]"
	}

	sub, err := resolveQuery(element, true)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, len(sub))
	for _, p := range sub {
		pairs = append(pairs, Pair{Name: name + p.Name, Value: p.Value})
	}

	return pairs, nil
}

// asRawPair reports whether element is a slice-shaped explicit pair, such
// as []any{"per_page", 10} nested inside a generic sequence. A sub-slice
// of any other length is a caller programming error.
func asRawPair(element any) (string, any, bool, error) {
	if _, isBytes := element.([]byte); isBytes {
		return "", nil, false, nil
	}

	value := reflect.ValueOf(element)
	if !value.IsValid() || (value.Kind() != reflect.Slice && value.Kind() != reflect.Array) {
		return "", nil, false, nil
	}

	if value.Type().Elem().Kind() == reflect.String && value.Kind() == reflect.Slice {
		// []string is a plain sequence of scalars, never a pair.
		return "", nil, false, nil
	}

	if value.Len() != 2 {
		return "", nil, false, fmt.Errorf("%w: sequence element of length %d", ErrMalformedPair, value.Len())
	}

	name, ok := value.Index(0).Interface().(string)
	if !ok {
		return "", nil, false, fmt.Errorf("%w: name %v is not a string", ErrMalformedPair, value.Index(0).Interface())
	}

	return name, value.Index(1).Interface(), true, nil
}

func formatScalar(v any) (string, error) {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), nil
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(value.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(value.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(value.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(value.Float(), 'f', -1, 64), nil
	case reflect.String:
		return value.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedQueryType, v)
	}
}
