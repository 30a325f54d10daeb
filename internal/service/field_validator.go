// Package service
package service

import (
	"fmt"
	. "github.com/half-nothing/simple-fms/internal/interfaces/service"
	"strings"
	"unicode/utf8"
)

type FieldValidator struct {
	Min, Max          int
	ErrShort, ErrLong *Status
}

// CheckString 去除首尾空白后校验长度, 返回规整后的值
func (v *FieldValidator) CheckString(value string) (string, *Status) {
	value = strings.TrimSpace(value)
	length := utf8.RuneCountInString(value)
	if length > v.Max {
		return value, v.ErrLong
	}
	if length < v.Min {
		return value, v.ErrShort
	}
	return value, nil
}

func newValidator(field string, maxLength int) *FieldValidator {
	name := strings.ToUpper(strings.ReplaceAll(field, " ", "_"))
	return &FieldValidator{
		Min:      1,
		Max:      maxLength,
		ErrShort: &Status{StatusName: name + "_EMPTY", Description: field + " must not be empty", Kind: Invalid},
		ErrLong:  &Status{StatusName: name + "_TOO_LONG", Description: fmt.Sprintf("%s must be at most %d characters", field, maxLength), Kind: Invalid},
	}
}

var (
	cityValidator        = newValidator("City", 50)
	countryValidator     = newValidator("Country", 50)
	locationValidator    = newValidator("Location", 50)
	airportNameValidator = newValidator("Airport name", 100)
	iataCodeValidator    = newValidator("IATA code", 10)
	firstNameValidator   = newValidator("First name", 30)
	lastNameValidator    = newValidator("Last name", 30)
	licenseValidator     = newValidator("License number", 20)
)
