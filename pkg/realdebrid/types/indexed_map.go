package types

import (
	"fmt"
	"github.com/goccy/go-json"
	"github.com/valyala/fastjson"
	"strconv"
)

// IndexedMap decodes either a JSON object or a JSON array into a string keyed map.
// Object keys are kept as is; array elements are keyed by their index ("0", "1", ...).
// The API sends an empty array where it means an empty object.
type IndexedMap[T any] map[string]T

func (m *IndexedMap[T]) UnmarshalJSON(data []byte) error {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return err
	}

	out := make(IndexedMap[T])
	switch v.Type() {
	case fastjson.TypeObject:
		obj, _ := v.Object()
		var decodeErr error
		obj.Visit(func(key []byte, item *fastjson.Value) {
			if decodeErr != nil {
				return
			}
			var elem T
			if err := json.Unmarshal(item.MarshalTo(nil), &elem); err != nil {
				decodeErr = fmt.Errorf("error deserializing object value %q: %w", key, err)
				return
			}
			out[string(key)] = elem
		})
		if decodeErr != nil {
			return decodeErr
		}
	case fastjson.TypeArray:
		items, _ := v.Array()
		for i, item := range items {
			var elem T
			if err := json.Unmarshal(item.MarshalTo(nil), &elem); err != nil {
				return fmt.Errorf("error deserializing array value %d: %w", i, err)
			}
			out[strconv.Itoa(i)] = elem
		}
	default:
		return fmt.Errorf("expected an object or array, got %s", v.Type())
	}

	*m = out
	return nil
}
