package validators

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Matches 24h clock times like "9:30", "09:30" or "23:59".
var hhmmRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Register attaches all custom validators to the given instance and
// makes reported field names follow the struct's json tags, so error
// responses name fields the way clients sent them.
func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("hhmm", HHMM)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// HHMM reports whether the field is a clock time in HH:MM format.
func HHMM(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return hhmmRegex.MatchString(field.String())
}
