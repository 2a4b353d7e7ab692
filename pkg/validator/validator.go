package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			key := fieldPath(e.Namespace())
			switch e.Tag() {
			case "required":
				errors[key] = field + " is required"
			case "required_without":
				errors[key] = field + " is required when " + jsonName(e.Param()) + " is not provided"
			case "email":
				errors[key] = field + " must be a valid email address"
			case "uuid":
				errors[key] = field + " must be a valid UUID"
			case "oneof":
				errors[key] = field + " must be one of: " + strings.Join(strings.Fields(e.Param()), ", ")
			case "datetime":
				errors[key] = field + " must match the format " + e.Param()
			case "min":
				if e.Kind() == reflect.String {
					errors[key] = field + " must be at least " + e.Param() + " characters"
				} else {
					errors[key] = field + " must be at least " + e.Param()
				}
			case "max":
				if e.Kind() == reflect.String {
					errors[key] = field + " must be at most " + e.Param() + " characters"
				} else {
					errors[key] = field + " must be at most " + e.Param()
				}
			case "gt":
				errors[key] = field + " must be greater than " + e.Param()
			case "lt":
				errors[key] = field + " must be less than " + e.Param()
			case "gte":
				errors[key] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[key] = field + " must be less than or equal to " + e.Param()
			default:
				errors[key] = field + " is invalid"
			}
		}
	}

	return errors
}

// fieldPath drops the root struct name: "CreateUserRequest.emergency_contact.name"
// becomes "emergency_contact.name".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// jsonName converts a Go field name used as a tag parameter (DoctorID) to
// its snake_case form (doctor_id).
func jsonName(goName string) string {
	var b strings.Builder
	runes := []rune(goName)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
