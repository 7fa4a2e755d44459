// Package validation wraps go-playground/validator with the domain's custom
// rules. All request DTOs are checked here before any storage call.
package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"desa-profil-backend/pkg/apperr"
	"desa-profil-backend/pkg/utils"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Validator returns the shared validator instance with custom rules
// registered.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()

		// Report field names from json tags so errors match the wire format.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		// nip: optional civil-servant ID, exactly 18 digits when present.
		validate.RegisterValidation("nip", func(fl validator.FieldLevel) bool {
			v := strings.TrimSpace(fl.Field().String())
			if v == "" {
				return true
			}
			digits := 0
			for _, r := range v {
				if !unicode.IsDigit(r) {
					return false
				}
				digits++
			}
			return digits == 18
		})

		// strippedmin=N: rich HTML content whose plain text must be at least
		// N characters long.
		validate.RegisterValidation("strippedmin", func(fl validator.FieldLevel) bool {
			min, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return utils.StrippedLen(fl.Field().String()) >= min
		})
	})
	return validate
}

// ValidateStruct runs the validator and converts the first failure into a
// typed ValidationError carrying the offending field.
func ValidateStruct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return apperr.NewValidation("", err.Error())
	}

	fe := errs[0]
	return apperr.NewValidation(fe.Field(), messageFor(fe))
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "numeric":
		return "must contain only digits"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "nip":
		return "must be exactly 18 digits"
	case "strippedmin":
		return fmt.Sprintf("must be at least %s characters (excluding HTML formatting)", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
