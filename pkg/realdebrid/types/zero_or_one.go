package types

import (
	"bytes"
	"fmt"
	"strconv"
)

// ZeroOrOne is a boolean carried on the wire as the integer 0 or 1.
// Use *ZeroOrOne for fields that may be null or absent.
type ZeroOrOne bool

func (b ZeroOrOne) Bool() bool {
	return bool(b)
}

func (b ZeroOrOne) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (b *ZeroOrOne) UnmarshalJSON(data []byte) error {
	raw := string(bytes.TrimSpace(data))
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid type: %s, expected an integer between 0 and 1", raw)
	}
	switch n {
	case 0:
		*b = false
	case 1:
		*b = true
	default:
		return fmt.Errorf("invalid value: %d, expected 0 or 1", n)
	}
	return nil
}

// OptionalBool returns the value of an optional 0/1 field and whether it was set.
func OptionalBool(b *ZeroOrOne) (value bool, ok bool) {
	if b == nil {
		return false, false
	}
	return bool(*b), true
}
