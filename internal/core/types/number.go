package types

import (
	"bytes"
	"encoding/json"
)

// Number is a raw numeric field as the data layer sent it. It decodes from a
// JSON number, a string or null and is read with ParseLoose, so malformed
// values degrade to zero instead of failing the whole decode.
type Number string

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*n = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(s)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		*n = Number(data)
	default:
		// Booleans, objects and arrays carry no number.
		*n = ""
	}
	return nil
}

// Parse is ParseLoose on the raw value.
func (n Number) Parse() (Money, bool) {
	return ParseLoose(string(n))
}

// Money is the value, zero when unusable.
func (n Number) Money() Money {
	d, _ := n.Parse()
	return d
}
