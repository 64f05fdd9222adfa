package entity

import (
	"fmt"
	"unicode/utf8"

	"magazine-catalog/internal/utils/text"
)

// Magazine name length bounds, counted in characters.
const (
	MinMagazineNameLength = 2
	MaxMagazineNameLength = 16
)

// ValidateText checks that a free-form text value is well formed.
// Author names and article titles accept any well-formed string, including the empty one.
func ValidateText(field, value string) error {
	if !utf8.ValidString(value) {
		return typeError(field, "must be a valid UTF-8 string")
	}
	return nil
}

// ValidateMagazineName checks that name is a string of 2 to 16 characters.
func ValidateMagazineName(name string) error {
	if err := ValidateText("name", name); err != nil {
		return err
	}

	n := text.CountRunes(name)
	if n < MinMagazineNameLength || n > MaxMagazineNameLength {
		return rangeError("name", fmt.Sprintf("must be between %d and %d characters, got %d",
			MinMagazineNameLength, MaxMagazineNameLength, n))
	}
	return nil
}

// ValidateCategory checks that category is a non-empty string.
func ValidateCategory(category string) error {
	if err := ValidateText("category", category); err != nil {
		return err
	}
	if category == "" {
		return rangeError("category", "must be a non-empty string")
	}
	return nil
}
