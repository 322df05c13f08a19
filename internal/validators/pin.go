// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PINLength is the number of digits in a vault PIN.
const PINLength = 6

var pinPattern = regexp.MustCompile(`^[0-9]{6}$`)

// ValidatePIN checks that pin is exactly six ASCII digits.
func ValidatePIN(pin string) error {
	err := validation.Validate(pin,
		validation.Required,
		validation.Match(pinPattern),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPIN, err)
	}
	return nil
}
