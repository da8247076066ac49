package cli

import (
	"fmt"
	"regexp"
	"strings"

	"charm.land/huh/v2"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("%w (e.g., #FF0000), got: %s", ErrInvalidColor, color)
	}
	return nil
}

// NormalizeColor validates color and upper-cases its hex digits
func NormalizeColor(color string) (string, error) {
	color = strings.TrimSpace(color)
	if err := ValidateColorHex(color); err != nil {
		return "", err
	}
	return strings.ToUpper(color), nil
}

// Confirm asks a yes/no question on the terminal
var Confirm = func(title, description string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&ok).
		Run()
	if err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return ok, nil
}
