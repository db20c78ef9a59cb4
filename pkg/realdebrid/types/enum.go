package types

import (
	"fmt"
	"github.com/goccy/go-json"
	"slices"
)

// unmarshalEnum decodes a JSON string into dst, rejecting values outside allowed.
func unmarshalEnum[T ~string](data []byte, name string, dst *T, allowed []T) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if !slices.Contains(allowed, T(s)) {
		return fmt.Errorf("unknown %s %q", name, s)
	}
	*dst = T(s)
	return nil
}
