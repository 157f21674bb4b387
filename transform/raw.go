// Package transform maps loosely typed form state onto canonical backend
// records. Transformers are lossy-tolerant: unrecognized or malformed values
// become nulls or defaults, never failures. Rejection is the validator's job.
package transform

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// RawRecord is loosely typed form state as delivered by the UI layer.
type RawRecord map[string]any

// now is the transformer's single clock touchpoint, swappable in tests.
var now = time.Now

const dateLayout = "2006-01-02"

// resolver evaluates an entity's alias table against one raw record. Per
// canonical field the alias list is ordered and the first present, non-empty
// raw value wins; the canonical name itself is always tried first.
type resolver struct {
	raw     RawRecord
	aliases map[string][]string
}

func (r resolver) lookup(field string) (any, bool) {
	if v, ok := r.present(field); ok {
		return v, true
	}
	for _, alias := range r.aliases[field] {
		if v, ok := r.present(alias); ok {
			return v, true
		}
	}
	return nil, false
}

func (r resolver) present(key string) (any, bool) {
	v, ok := r.raw[key]
	if !ok || v == nil {
		return nil, false
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return nil, false
	}
	return v, true
}

// str resolves the field to a string, stringifying numeric input (zip codes
// and room numbers routinely arrive as numbers). Dates pass through here
// unmodified; format checking belongs to the validator.
func (r resolver) str(field string) string {
	v, ok := r.lookup(field)
	if !ok {
		return ""
	}
	return stringify(v)
}

// number resolves numeric-looking input to a float; absent, empty or
// non-numeric input becomes nil, never NaN.
func (r resolver) number(field string) *float64 {
	v, ok := r.lookup(field)
	if !ok {
		return nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil
	}
	return &f
}

// integer is number truncated to int.
func (r resolver) integer(field string) *int {
	f := r.number(field)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// boolean resolves truthy input with an explicit per-field default for
// absent or unrecognizable values.
func (r resolver) boolean(field string, def bool) bool {
	v, ok := r.lookup(field)
	if !ok {
		return def
	}
	b, ok := toBool(v)
	if !ok {
		return def
	}
	return b
}

// list resolves a collection field to its flat-text encoding. String input
// passes through unchanged; array input is JSON-serialized.
func (r resolver) list(field string) string {
	v, ok := r.lookup(field)
	if !ok {
		return ""
	}
	return EncodeStringList(v)
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case float32:
		return toFloat(float64(x))
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return toFloat(f)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return toFloat(f)
	default:
		return 0, false
	}
}

func toBool(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "yes", "y", "1", "on":
			return true, true
		case "false", "no", "n", "0", "off":
			return false, true
		}
		return false, false
	case float64:
		return x != 0, true
	case int:
		return x != 0, true
	default:
		return false, false
	}
}
