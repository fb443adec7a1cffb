package utils

import (
	"time"

	"github.com/aarondl/null/v8"

	apperrors "gmao-system/pkg/errors"
)

// Accepted client formats for date and timestamp fields. Date-only values
// come from HTML date inputs, the rest from API clients.
var timeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseNullTime converts an optional client string into a null.Time.
// A nil or empty string yields an invalid (NULL) time.
func ParseNullTime(field string, value *string) (null.Time, error) {
	if value == nil || *value == "" {
		return null.Time{}, nil
	}
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, *value); err == nil {
			return null.TimeFrom(t), nil
		}
	}
	return null.Time{}, apperrors.NewValidationError("field '%s' is not a valid date/time: %q", field, *value)
}
