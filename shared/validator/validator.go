package validator

import (
	"regexp"
	"strconv"

	val "github.com/go-playground/validator/v10"

	"pitstop/shared/failure"
)

var validate *val.Validate

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern  = regexp.MustCompile(`^(09|1[0-4]):[0-5][0-9]$`)
)

// IsValidPhoneNumber reports whether s is exactly 10 ASCII digits.
func IsValidPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

// IsValidDate reports whether s is a YYYY-MM-DD date with year 2025 or later,
// month 01-12 and day 01-31. The day is only range-checked, never checked
// against the calendar, so 2025-02-31 passes.
func IsValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}

	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[5:7])
	day, _ := strconv.Atoi(s[8:10])

	if year < 2025 || month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}

	return true
}

// IsValidTime reports whether s is an HH:MM slot inside the 09:00-14:59
// booking window.
func IsValidTime(s string) bool {
	return timePattern.MatchString(s)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("phone10", func(fl val.FieldLevel) bool {
		return IsValidPhoneNumber(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("bookingdate", func(fl val.FieldLevel) bool {
		return IsValidDate(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("slottime", func(fl val.FieldLevel) bool {
		return IsValidTime(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// ValidateStruct performs validation on the struct using the validator
// package. If the struct is invalid according to the validation rules, an
// error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
