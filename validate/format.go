package validate

import (
	"regexp"
	"time"

	validator "github.com/go-playground/validator/v10"
)

// fieldValidator backs the email format scan. Shared and read-only after
// init; validator.Validate is safe for concurrent use.
var fieldValidator = validator.New()

func validEmail(s string) bool {
	return fieldValidator.Var(s, "email") == nil
}

var nonDigits = regexp.MustCompile(`\D`)

// validPhone accepts 10 to 15 digits after stripping formatting characters,
// so "(415)555-0101" and "+1 415 555 0101" both pass.
func validPhone(s string) bool {
	digits := nonDigits.ReplaceAllString(s, "")
	return len(digits) >= 10 && len(digits) <= 15
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validDate requires strict lexical YYYY-MM-DD plus calendar validity, so
// "2024-1-01" and "2024-02-30" both fail.
func validDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
