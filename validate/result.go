// Package validate runs canonical records through the fixed validation
// passes: required-field scan, enum scan, format scan, then cross-field scan.
// Invalid input is returned as structured data, never as an error value, and
// the result is the caller's authoritative gate: records with IsValid=false
// must not be persisted.
package validate

// Result is the structured outcome of one validation pass. Even fully empty
// input produces a well-formed Result.
type Result struct {
	IsValid         bool              `json:"is_valid"`
	Errors          map[string]string `json:"errors"`
	MissingRequired []string          `json:"missing_required"`
}

func newResult() *Result {
	return &Result{
		Errors:          map[string]string{},
		MissingRequired: []string{},
	}
}

func (r *Result) markMissing(field string) {
	r.MissingRequired = append(r.MissingRequired, field)
}

func (r *Result) isMissing(field string) bool {
	for _, f := range r.MissingRequired {
		if f == field {
			return true
		}
	}
	return false
}

// addError records a field error. A field that already failed the required
// scan reports only the required failure, and the first error per field wins.
func (r *Result) addError(field, msg string) {
	if r.isMissing(field) {
		return
	}
	if _, dup := r.Errors[field]; dup {
		return
	}
	r.Errors[field] = msg
}

func (r *Result) finalize() Result {
	r.IsValid = len(r.Errors) == 0 && len(r.MissingRequired) == 0
	return *r
}
