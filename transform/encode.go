package transform

import "encoding/json"

// EncodeStringList converts a collection field to its flat-text form. String
// input passes through unchanged so re-encoding an already-encoded record is
// idempotent; array input is JSON-serialized.
func EncodeStringList(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []string:
		b, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(b)
	case []any:
		items := make([]string, 0, len(x))
		for _, item := range x {
			if item == nil {
				continue
			}
			items = append(items, stringify(item))
		}
		b, err := json.Marshal(items)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return ""
	}
}

// DecodeStringList reverses EncodeStringList. Flat text that is not a JSON
// array is treated as a single-element list, which keeps legacy plain-string
// columns readable.
func DecodeStringList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return []string{s}
	}
	return out
}
