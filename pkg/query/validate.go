// Package query validates search criteria and assembles the backend
// search query string.
package query

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	domain "github.com/donaldgifford/searchit/pkg/types"
)

// Validation messages. These are shown to the user verbatim.
const (
	MsgKeywordMandatory = "Keyword is mandatory"
	MsgZipcodeMandatory = "Zipcode is mandatory"
	MsgZipcodeInvalid   = "Zipcode is invalid"
)

const (
	tagNonBlank    = "nonblank"
	tagZipRequired = "zip_required"
	tagZipFormat   = "zip_format"
)

var zipcodePattern = regexp.MustCompile(`^[0-9]{5}$`)

// messages is ordered by priority: the first failing rule wins.
var messages = []struct {
	tag string
	msg string
}{
	{tagNonBlank, MsgKeywordMandatory},
	{tagZipRequired, MsgZipcodeMandatory},
	{tagZipFormat, MsgZipcodeInvalid},
}

// ValidationError is returned when search criteria are rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation(tagNonBlank, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}

	v.RegisterStructValidation(validateLocation, domain.SearchCriteria{})

	return v
}

// validateLocation checks the custom zip only when a custom location is used.
func validateLocation(sl validator.StructLevel) {
	c, ok := sl.Current().Interface().(domain.SearchCriteria)
	if !ok || !c.CustomLocation {
		return
	}

	switch {
	case strings.TrimSpace(c.CustomZip) == "":
		sl.ReportError(c.CustomZip, "CustomZip", "CustomZip", tagZipRequired, "")
	case !zipcodePattern.MatchString(c.CustomZip):
		sl.ReportError(c.CustomZip, "CustomZip", "CustomZip", tagZipFormat, "")
	}
}

// Validate checks the criteria before any network call is made. It
// returns a *ValidationError carrying one of the fixed user messages.
func Validate(c domain.SearchCriteria) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, m := range messages {
		for _, fe := range fieldErrs {
			if fe.Tag() == m.tag {
				return &ValidationError{Field: fe.StructField(), Message: m.msg}
			}
		}
	}

	return &ValidationError{Field: fieldErrs[0].StructField(), Message: fieldErrs[0].Error()}
}
