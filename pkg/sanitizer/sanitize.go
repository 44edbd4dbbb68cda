package sanitizer

import (
	"fmt"
	"maps"
	"slices"
)

// DefaultMaxDepth bounds how deep Sanitize descends into nested values.
const DefaultMaxDepth = 128

// Option configures Sanitize.
type Option func(*walker)

// WithMaxDepth overrides DefaultMaxDepth. Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(w *walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// WithDroppedKeyHook registers fn to be called for every key removed by
// CleanKey. path is the dotted location of the mapping that held the key,
// empty for the top level.
func WithDroppedKeyHook(fn func(path, key string)) Option {
	return func(w *walker) {
		if fn != nil {
			w.onDroppedKey = fn
		}
	}
}

type walker struct {
	maxDepth     int
	onDroppedKey func(path, key string)
}

// Sanitize returns a deep copy of v with every string leaf passed through
// CleanString and every mapping key passed through CleanKey. Keys that CleanKey
// rejects are dropped along with their values. Sequences keep their order and
// length; numbers, booleans, nil and unknown types are returned unchanged.
//
// v is expected to have the shape produced by encoding/json: map[string]any,
// []any, string, json.Number, float64, bool or nil. The input is never
// modified.
//
// Keys are visited in sorted order, so when two keys clean to the same name
// the one sorting last wins.
func Sanitize(v any, opts ...Option) (result any, err error) {
	w := &walker{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(w)
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrSanitizeFailed, r)
		}
	}()

	return w.walk(v, "", 0)
}

func (w *walker) walk(v any, path string, depth int) (any, error) {
	if depth > w.maxDepth {
		return nil, ErrMaxDepthExceeded
	}

	switch val := v.(type) {
	case string:
		return CleanString(val), nil

	case []any:
		out := make([]any, len(val))
		for i, el := range val {
			cleaned, err := w.walk(el, indexPath(path, i), depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = cleaned
		}
		return out, nil

	case map[string]any:
		out := make(map[string]any, len(val))
		for _, key := range slices.Sorted(maps.Keys(val)) {
			cleanedKey, ok := CleanKey(key)
			if !ok {
				if w.onDroppedKey != nil {
					w.onDroppedKey(path, key)
				}
				continue
			}
			cleaned, err := w.walk(val[key], keyPath(path, cleanedKey), depth+1)
			if err != nil {
				return nil, err
			}
			out[cleanedKey] = cleaned
		}
		return out, nil

	default:
		return v, nil
	}
}
