package handler

import (
	"bytes"
	"encoding/json"
)

// FlexString is a text field that also accepts other JSON scalars.
// Numbers and booleans keep their literal text, null is empty and
// objects or arrays are kept as compact JSON.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return err
	}

	*f = FlexString(compact.String())

	return nil
}

// FlexStrings converts a list of FlexString to plain strings.
func FlexStrings(in []FlexString) []string {
	if in == nil {
		return nil
	}

	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}

	return out
}
