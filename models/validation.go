package models

import (
	"fmt"

	"github.com/go-playground/validator"
)

var validate = validator.New()

// The backend enforces column lengths too, but sqlite ignores VARCHAR(n),
// so lengths are checked up front for both
func validateLength(value string, maxLength int) error {
	if err := validate.Var(value, fmt.Sprintf("max=%d", maxLength)); err != nil {
		return &Error{Kind: ErrMalformedInput, Err: fmt.Errorf("'%v' is longer than %d characters", value, maxLength)}
	}
	return nil
}

func validatePhones(numbers []string) error {
	for _, number := range numbers {
		if err := validateLength(number, MAX_PHONE_LENGTH); err != nil {
			return err
		}
	}
	return nil
}

func (changes PersonChanges) validate() error {
	fields := []struct {
		value     *string
		maxLength int
	}{
		{changes.FirstName, MAX_FIRST_NAME_LENGTH},
		{changes.LastName, MAX_LAST_NAME_LENGTH},
		{changes.Email, MAX_EMAIL_LENGTH},
	}

	for _, field := range fields {
		if field.value == nil {
			continue
		}
		if err := validateLength(*field.value, field.maxLength); err != nil {
			return err
		}
	}

	if changes.Phones != nil {
		return validatePhones(*changes.Phones)
	}

	return nil
}
