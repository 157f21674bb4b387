package validate

import (
	"math"
	"strings"

	"github.com/paramvora-homewiz/formsync/enums"
)

// requireString flags the field as missing when it is empty after trimming.
func requireString(r *Result, field, value string) {
	if strings.TrimSpace(value) == "" {
		r.markMissing(field)
	}
}

// requireNumber flags the field as missing when it is null or NaN. Booleans
// never go through here: false is a valid value, not an absence.
func requireNumber(r *Result, field string, value *float64) {
	if value == nil || math.IsNaN(*value) {
		r.markMissing(field)
	}
}

// checkEnum verifies catalog membership for a set field. Unset optional
// fields are skipped; out-of-vocabulary values are rejected, never coerced.
func checkEnum(r *Result, field, value, enumName string) {
	if value == "" {
		return
	}
	if !enums.IsMember(enumName, value) {
		allowed, err := enums.Values(enumName)
		if err != nil {
			r.addError(field, "unknown enumeration "+enumName)
			return
		}
		r.addError(field, "must be one of "+strings.Join(allowed, ", "))
	}
}

func checkEmail(r *Result, field, value string) {
	if value == "" {
		return
	}
	if !validEmail(value) {
		r.addError(field, "invalid email address")
	}
}

func checkPhone(r *Result, field, value string) {
	if value == "" {
		return
	}
	if !validPhone(value) {
		r.addError(field, "phone number must contain 10 to 15 digits")
	}
}

func checkDate(r *Result, field, value string) {
	if value == "" {
		return
	}
	if !validDate(value) {
		r.addError(field, "date must be a valid YYYY-MM-DD date")
	}
}

// checkDateOrder enforces end strictly after start, reporting on the end
// field. Runs only when both values are valid dates; malformed values were
// already reported by the format scan. Strict YYYY-MM-DD compares lexically.
func checkDateOrder(r *Result, endField, start, end, msg string) {
	if !validDate(start) || !validDate(end) {
		return
	}
	if end <= start {
		r.addError(endField, msg)
	}
}

func checkFloatMin(r *Result, field string, value *float64, min float64, msg string) {
	if value == nil {
		return
	}
	if *value < min {
		r.addError(field, msg)
	}
}

func checkIntRange(r *Result, field string, value *int, min, max int, msg string) {
	if value == nil {
		return
	}
	if *value < min || *value > max {
		r.addError(field, msg)
	}
}

func checkIntMin(r *Result, field string, value *int, min int, msg string) {
	if value == nil {
		return
	}
	if *value < min {
		r.addError(field, msg)
	}
}
