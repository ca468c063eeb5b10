package types

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// StringOrNumber holds a JSON value that extraction providers emit as either a
// string or a number. Normalizers dispatch on the original kind: a numeric NCB
// of 0.35 means 35%, while the string "0.35" goes through token extraction.
type StringOrNumber struct {
	Str      string
	Num      float64
	IsNumber bool
	Valid    bool
}

// StringValue wraps a plain string value for normalizer input.
func StringValue(s string) StringOrNumber {
	return StringOrNumber{Str: s, Valid: s != ""}
}

// NumberValue wraps a plain numeric value for normalizer input.
func NumberValue(f float64) StringOrNumber {
	return StringOrNumber{Num: f, IsNumber: true, Valid: true}
}

func (v *StringOrNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = StringOrNumber{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*v = NumberValue(f)
	return nil
}

func (v StringOrNumber) MarshalJSON() ([]byte, error) {
	switch {
	case !v.Valid:
		return []byte("null"), nil
	case v.IsNumber:
		return json.Marshal(v.Num)
	default:
		return json.Marshal(v.Str)
	}
}
