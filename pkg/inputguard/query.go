package inputguard

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// maxBracketDepth bounds a[b][c]... nesting.
const maxBracketDepth = 5

// errBracketKey reports a key that opens a bracket but is not a well-formed
// bracket expression, or nests deeper than maxBracketDepth. Such keys would
// otherwise reach the scanners as one opaque name.
var errBracketKey = errors.New("malformed or too deeply nested bracket key")

// parseValues turns url.Values into a nested mapping using bracket notation:
// a[b][c]=v nests mappings, a[]=v appends to a sequence and a repeated plain
// key becomes a sequence. When two keys disagree on the shape of a value
// the one sorting last wins.
func parseValues(values url.Values) (map[string]any, error) {
	out := make(map[string]any, len(values))
	for _, key := range slices.Sorted(maps.Keys(values)) {
		name, path, err := splitBracketKey(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, key)
		}
		for _, v := range values[key] {
			assign(out, name, path, v)
		}
	}
	return out, nil
}

// splitBracketKey splits "a[b][]" into "a" and ["b", ""]. Keys without an
// opening bracket are returned as they are.
func splitBracketKey(key string) (string, []string, error) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return key, nil, nil
	}
	if open == 0 {
		return "", nil, errBracketKey
	}

	name, rest := key[:open], key[open:]
	var path []string
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, errBracketKey
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", nil, errBracketKey
		}
		seg := rest[1:end]
		if strings.ContainsRune(seg, '[') {
			return "", nil, errBracketKey
		}
		path = append(path, seg)
		rest = rest[end+1:]
	}
	if len(path) > maxBracketDepth {
		return "", nil, errBracketKey
	}
	return name, path, nil
}

func assign(parent map[string]any, key string, path []string, value string) {
	if len(path) == 0 {
		switch cur := parent[key].(type) {
		case nil:
			parent[key] = value
		case string:
			parent[key] = []any{cur, value}
		case []any:
			parent[key] = append(cur, value)
		default:
			parent[key] = value
		}
		return
	}

	if path[0] == "" {
		var seq []any
		switch cur := parent[key].(type) {
		case nil:
		case []any:
			seq = cur
		default:
			seq = []any{cur}
		}
		if len(path) == 1 {
			parent[key] = append(seq, value)
			return
		}
		child := make(map[string]any)
		assign(child, path[1], path[2:], value)
		parent[key] = append(seq, child)
		return
	}

	child, ok := parent[key].(map[string]any)
	if !ok {
		child = make(map[string]any)
		parent[key] = child
	}
	assign(child, path[0], path[1:], value)
}

// encodeValues is the inverse of parseValues: nested mappings become a[b]=v,
// scalars inside sequences become a[]=v, so a one-element sequence stays a
// sequence, and containers inside sequences become a[i][k]=v.
func encodeValues(m map[string]any) url.Values {
	out := make(url.Values, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		encodeValue(out, key, m[key])
	}
	return out
}

func encodeValue(out url.Values, name string, v any) {
	switch val := v.(type) {
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(val)) {
			encodeValue(out, name+"["+key+"]", val[key])
		}
	case []any:
		for i, el := range val {
			switch el.(type) {
			case map[string]any, []any:
				encodeValue(out, name+"["+strconv.Itoa(i)+"]", el)
			default:
				out.Add(name+"[]", scalarString(el))
			}
		}
	default:
		out.Add(name, scalarString(val))
	}
}

func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
