package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// clockRE matches zero-padded 24h times, e.g. "09:00".
	clockRE = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	// tagNameRE matches one-or-more whitespace-separated word tokens.
	tagNameRE = regexp.MustCompile(`^\w+(\s+\w+)*$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	must(v.RegisterValidation("docid", func(fl validator.FieldLevel) bool {
		return ValidDocumentID(fl.Field().String())
	}))
	must(v.RegisterValidation("userid", func(fl validator.FieldLevel) bool {
		return ValidUserID(fl.Field().String())
	}))
	must(v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockRE.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("tagname", func(fl validator.FieldLevel) bool {
		return tagNameRE.MatchString(fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Validate runs the structural schema checks declared on v's fields.
// It never touches the store; referential integrity is not checked.
func Validate(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return ValidationErr("invalid record: %v", err)
	}
	return nil
}
