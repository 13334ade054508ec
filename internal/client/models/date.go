package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(common.DateLayout, s)
}

func requireDate(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", common.ErrorValidation, field)
	}
	return optionalDate(field, value)
}

func optionalDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := ParseDate(value); err != nil {
		return fmt.Errorf("%w: %s must be YYYY-MM-DD, got %q", common.ErrorValidation, field, value)
	}
	return nil
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", common.ErrorValidation, field)
	}
	return nil
}
